// Package gemini calls the Gemini generateContent REST API to produce
// free-text health suggestions. The client is deliberately dumb: it builds
// a prompt, POSTs it, and returns the first candidate's text or an error.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vitalog/vitalog-server/internal/config"
	"github.com/vitalog/vitalog-server/internal/model"
)

var _ model.SuggestionProvider = (*Client)(nil)

type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	model      string
}

// NewClient creates a Gemini client. The HTTP client timeout is the hard
// upper bound on a generation call; callers may impose a shorter one via
// context.
func NewClient(cfg config.Gemini) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		endpoint:   strings.TrimSuffix(cfg.Endpoint, "/"),
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate produces a suggestion from the user's profile and recent entries.
func (c *Client) Generate(ctx context.Context, payload model.SuggestionContext) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("gemini api key is not configured")
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: buildPrompt(payload)}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.endpoint, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("generate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("generate request returned %d: %s", resp.StatusCode, string(snippet))
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	text := firstCandidateText(parsed)
	if text == "" {
		return "", fmt.Errorf("response contains no candidate text")
	}

	return text, nil
}

func firstCandidateText(resp generateResponse) string {
	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			if t := strings.TrimSpace(p.Text); t != "" {
				return t
			}
		}
	}
	return ""
}

func buildPrompt(payload model.SuggestionContext) string {
	var sb strings.Builder

	sb.WriteString("User profile:\n")
	if !payload.Profile.BirthDate.IsZero() {
		age := ageYears(payload.Profile.BirthDate, time.Now())
		fmt.Fprintf(&sb, "- Age: %d\n", age)
	}
	fmt.Fprintf(&sb, "- Initial height: %.1f cm\n", payload.Profile.InitialHeight)
	fmt.Fprintf(&sb, "- Initial weight: %.1f kg\n", payload.Profile.InitialWeight)

	sb.WriteString("\nRecent entries, most recent first:\n")
	if len(payload.RecentEntries) == 0 {
		sb.WriteString("- (no entries logged yet)\n")
	}
	for _, entry := range payload.RecentEntries {
		fmt.Fprintf(&sb, "- %s: height %.1f cm, weight %.1f kg, breakfast: %s, lunch: %s, dinner: %s\n",
			model.FormatDate(entry.Date), entry.Height, entry.Weight,
			entry.Breakfast, entry.Lunch, entry.Dinner)
	}

	sb.WriteString("\nBased on this health data, provide a personalized, encouraging health suggestion for today. ")
	sb.WriteString("Keep it concise (2-3 sentences), actionable, and positive. ")
	sb.WriteString("Focus on nutrition, exercise, or lifestyle tips.")

	return sb.String()
}

func ageYears(birthDate, now time.Time) int {
	years := now.Year() - birthDate.Year()
	if now.YearDay() < birthDate.YearDay() {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
