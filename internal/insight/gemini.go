package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"handouts/internal/listing"
	"handouts/internal/session"
)

// DefaultModel matches the model the original demo used.
const DefaultModel = "gemini-2.5-flash"

// Gemini generates insight text through the Google GenAI API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates the provider. The API key is required; the model
// defaults to DefaultModel.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) generate(ctx context.Context, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("empty GenAI response")
	}
	return text, nil
}

// jsonConfig builds a structured-output config for the given schema.
func jsonConfig(schema *genai.Schema) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}
}

func categoryNames() []string {
	cats := listing.Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return names
}

// AnalyzeRequest structures a raw aid request into title, description,
// category, urgency and location.
func (g *Gemini) AnalyzeRequest(ctx context.Context, text string) (*Analysis, error) {
	prompt := fmt.Sprintf(`Analyze this social aid request: %q. Extract the item title, a polite description, the category, urgency level (1-5 where 5 is life-threatening), and a vague location (city/area).`, text)
	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":       {Type: genai.TypeString},
			"description": {Type: genai.TypeString},
			"category":    {Type: genai.TypeString, Enum: categoryNames()},
			"urgency":     {Type: genai.TypeInteger},
			"location":    {Type: genai.TypeString},
		},
		Required: []string{"title", "description", "category", "urgency", "location"},
	}
	raw, err := g.generate(ctx, prompt, jsonConfig(schema))
	if err != nil {
		return nil, err
	}
	var a Analysis
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		return nil, fmt.Errorf("parse analysis: %w", err)
	}
	return &a, nil
}

// CommunityInsights writes the dashboard impact summary.
func (g *Gemini) CommunityInsights(ctx context.Context, m Metrics) (string, error) {
	prompt := fmt.Sprintf(`Generate a 2-sentence inspirational "Community Impact Summary" for a dashboard.
Data: %d active needs, %d successful matches this week.
Trend: High demand in %s.
Tone: Professional, hopeful, data-driven.`, m.ActiveNeeds, m.Matches, m.Trend)
	return g.generate(ctx, prompt, nil)
}

// CommunityPulse writes the story, prediction and hotspot list.
func (g *Gemini) CommunityPulse(ctx context.Context) (*Pulse, error) {
	prompt := `Generate a "Community Pulse" analysis for a social aid platform in Toronto.
Include:
1. A "story" paragraph (approx 40 words) summarizing recent needs vs offers (mention winter clothing surge).
2. A "prediction" sentence for the next 7 days based on weather (cold).
3. A list of 3 "hotspot" areas (neighborhoods).`
	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"story":      {Type: genai.TypeString},
			"prediction": {Type: genai.TypeString},
			"hotspots":   {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		},
		Required: []string{"story", "prediction", "hotspots"},
	}
	raw, err := g.generate(ctx, prompt, jsonConfig(schema))
	if err != nil {
		return nil, err
	}
	var p Pulse
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("parse pulse: %w", err)
	}
	return &p, nil
}

// DashboardTips returns three short tips for the role.
func (g *Gemini) DashboardTips(ctx context.Context, role session.Role) ([]string, error) {
	prompt := "Give 3 short, punchy tips for someone donating items on a social good platform."
	if role == session.RoleNeeder {
		prompt = "Give 3 short, punchy tips for someone requesting help on a donation platform."
	}
	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"tips": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		},
		Required: []string{"tips"},
	}
	raw, err := g.generate(ctx, prompt, jsonConfig(schema))
	if err != nil {
		return nil, err
	}
	var out struct {
		Tips []string `json:"tips"`
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("parse tips: %w", err)
	}
	if len(out.Tips) == 0 {
		return nil, fmt.Errorf("no tips returned")
	}
	return out.Tips, nil
}

// ProfileInsights writes a personalized note for the profile page.
func (g *Gemini) ProfileInsights(ctx context.Context, role session.Role, location string, prefs []listing.Category) (string, error) {
	names := make([]string, len(prefs))
	for i, p := range prefs {
		names[i] = string(p)
	}
	wants := strings.Join(names, ", ")
	var prompt string
	if role == session.RoleNeeder {
		prompt = fmt.Sprintf(`I am a "Needer" in %s looking for %s. Give me 2 short, helpful tips or updates about local aid availability.`, location, wants)
	} else {
		prompt = fmt.Sprintf(`I am a "Giver" in %s interested in donating %s. Give me 2 short, motivating tips on what is most needed nearby right now.`, location, wants)
	}
	return g.generate(ctx, prompt, nil)
}

// OptimizeDescription rewrites the text for clarity and tone.
func (g *Gemini) OptimizeDescription(ctx context.Context, text string, kind listing.Kind) (string, error) {
	var prompt string
	if kind == listing.KindNeed {
		prompt = fmt.Sprintf(`Rewrite this request to be polite, clear, and empathetic (approx 2 sentences): %q`, text)
	} else {
		prompt = fmt.Sprintf(`Rewrite this donation offer to be friendly, clear, and inviting (approx 2 sentences): %q`, text)
	}
	return g.generate(ctx, prompt, nil)
}
