package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"handouts/internal/auth"
	"handouts/internal/config"
	"handouts/internal/geo"
	"handouts/internal/insight"
	"handouts/internal/listing"
	"handouts/internal/logging"
	"handouts/internal/session"
	"handouts/internal/store"
	"handouts/internal/tui"
)

const version = "0.1.0"

var (
	// Global flags
	verbose    bool
	apiKey     string
	configPath string

	cfg    config.Config
	logger *zap.Logger
)

// rootCmd launches the interactive marketplace.
var rootCmd = &cobra.Command{
	Use:   "handouts",
	Short: "Handouts - community aid marketplace",
	Long: `Handouts is a neighbor-to-neighbor aid marketplace.

Givers post items they can spare; needers post what they are missing.
Every listing is a direct connection, no warehouses and no waiting lists.

Run without arguments to start the interactive interface. Without an API
key the insight assistant runs on deterministic offline copy.`,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd.Context())
	},
}

// listingsCmd prints the seeded marketplace to stdout, filtered.
var listingsCmd = &cobra.Command{
	Use:   "listings",
	Short: "Print the demo listings, optionally filtered",
	Long: `Prints the seeded demo listings without starting the interface.

Example:
  handouts listings --kind NEED --category Food`,
	RunE: runListings,
}

var (
	listingsKind     string
	listingsCategory string
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the handouts version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("handouts %s\n", version)
	},
}

func init() {
	// Assigned here rather than in the composite literal so the closure's
	// reference to rootCmd does not form an initialization cycle.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
		if apiKey != "" {
			cfg.Insight.APIKey = apiKey
		}

		// The interactive UI owns the terminal; its logs go to a file.
		if cmd == rootCmd {
			logger, err = logging.NewInteractive(cfg.Logging, verbose)
		} else {
			logger, err = logging.New(cfg.Logging, verbose)
		}
		return err
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "GenAI API key (overrides config and environment)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.handouts/config.yaml)")

	listingsCmd.Flags().StringVar(&listingsKind, "kind", "ALL", "NEED, OFFER or ALL")
	listingsCmd.Flags().StringVar(&listingsCategory, "category", "All", "category name or All")

	rootCmd.AddCommand(listingsCmd)
	rootCmd.AddCommand(versionCmd)
}

// runInteractive assembles the collaborators and hands them to the TUI.
func runInteractive(ctx context.Context) error {
	insights := buildInsightProvider(ctx)

	st, err := openStore()
	if err != nil {
		return err
	}
	if c, ok := st.(interface{ Close() error }); ok {
		defer c.Close()
	}

	m := tui.New(tui.Options{
		Session:  session.New(),
		Store:    st,
		Insight:  insights,
		Auth:     &auth.Stub{Delay: cfg.AuthDelay()},
		Geocoder: geo.NewNominatim(cfg.Geo.BaseURL, cfg.GeoTimeout()),
		Logger:   logger,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interface error: %w", err)
	}
	return nil
}

// buildInsightProvider prefers Gemini and degrades to the offline provider
// when there is no key or the client cannot be built.
func buildInsightProvider(ctx context.Context) insight.Provider {
	timeout := cfg.InsightTimeout()
	if cfg.Insight.APIKey == "" {
		logger.Info("no API key; using offline insight provider")
		return insight.WithFallback(insight.Static{}, timeout)
	}
	g, err := insight.NewGemini(ctx, cfg.Insight.APIKey, cfg.Insight.Model)
	if err != nil {
		logger.Warn("GenAI client unavailable; using offline insight provider", zap.Error(err))
		return insight.WithFallback(insight.Static{}, timeout)
	}
	logger.Info("insight provider ready", zap.String("model", cfg.Insight.Model))
	return insight.WithFallback(g, timeout)
}

// openStore prefers the SQLite store and falls back to the in-memory slice.
func openStore() (store.Store, error) {
	st, err := store.NewSQLiteSeeded()
	if err != nil {
		logger.Warn("sqlite store unavailable; using in-memory store", zap.Error(err))
		return store.NewMemorySeeded(), nil
	}
	return st, nil
}

func runListings(cmd *cobra.Command, args []string) error {
	sel := listing.Selection{
		Category: listing.Category(listingsCategory),
		Kind:     listing.Kind(strings.ToUpper(listingsKind)),
	}
	if sel.Kind != listing.KindAll && !sel.Kind.Valid() {
		return fmt.Errorf("unknown kind %q (want NEED, OFFER or ALL)", listingsKind)
	}
	if sel.Category != listing.CategoryAll && !sel.Category.Valid() {
		return fmt.Errorf("unknown category %q", listingsCategory)
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	if c, ok := st.(interface{ Close() error }); ok {
		defer c.Close()
	}

	all, err := st.All()
	if err != nil {
		return err
	}
	filtered := listing.Filter(all, sel)
	if len(filtered) == 0 {
		fmt.Println("no listings match")
		return nil
	}
	for _, l := range filtered {
		detail := ""
		if l.Kind == listing.KindNeed {
			detail = fmt.Sprintf("urgency %d", int(l.Urgency))
		} else if l.Pickup != "" {
			detail = fmt.Sprintf("pickup %s", strings.ToLower(string(l.Pickup)))
		}
		fmt.Printf("%-5s  %-18s  %-35s  %s\n", l.Kind, l.Category, l.Title, detail)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
