// Package geo turns coordinates into the free-text location label used on
// listings and profiles. Nominatim does the lookup; any failure falls back
// to rendering the raw coordinates, never an error the UI has to handle.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the public Nominatim endpoint.
const DefaultBaseURL = "https://nominatim.openstreetmap.org"

// ReverseGeocoder resolves a coordinate pair to a human label.
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (string, error)
}

// FallbackLabel renders raw coordinates the way the views show them when
// geocoding is unavailable.
func FallbackLabel(lat, lon float64) string {
	return fmt.Sprintf("%.4f, %.4f", lat, lon)
}

// Nominatim is the OpenStreetMap reverse geocoder.
type Nominatim struct {
	baseURL    string
	httpClient *http.Client
}

// NewNominatim creates the client. Empty baseURL uses the public endpoint;
// a non-positive timeout defaults to 10 seconds.
func NewNominatim(baseURL string, timeout time.Duration) *Nominatim {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Nominatim{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type nominatimResponse struct {
	Address struct {
		Road    string `json:"road"`
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		County  string `json:"county"`
	} `json:"address"`
}

// ReverseGeocode composes "road, city" from the Nominatim address, falling
// through town/village/county like the original. Callers should substitute
// FallbackLabel on error.
func (n *Nominatim) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lon))
	endpoint := fmt.Sprintf("%s/reverse?%s", n.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build reverse geocode request: %w", err)
	}
	// Nominatim's usage policy requires an identifying agent.
	req.Header.Set("User-Agent", "handouts-demo/1.0")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("reverse geocode: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reverse geocode: unexpected status %d", resp.StatusCode)
	}

	var body nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode reverse geocode response: %w", err)
	}
	return composeLabel(body, lat, lon), nil
}

func composeLabel(body nominatimResponse, lat, lon float64) string {
	city := body.Address.City
	if city == "" {
		city = body.Address.Town
	}
	if city == "" {
		city = body.Address.Village
	}
	if city == "" {
		city = body.Address.County
	}
	road := body.Address.Road
	switch {
	case city != "" && road != "":
		return fmt.Sprintf("%s, %s", road, city)
	case city != "":
		return city
	default:
		return FallbackLabel(lat, lon)
	}
}

// Static always returns the same label; the test double.
type Static struct {
	Label string
}

func (s Static) ReverseGeocode(context.Context, float64, float64) (string, error) {
	return s.Label, nil
}
