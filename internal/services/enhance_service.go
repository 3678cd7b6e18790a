package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

const (
	defaultGeminiURL   = "https://generativelanguage.googleapis.com"
	defaultGeminiModel = "gemini-2.5-flash"
	enhanceTimeout     = 15 * time.Second
)

// EnhanceService generates marketing copy for listings through an external
// text-generation model. Every call is best-effort: a missing API key or any
// failure falls back to the caller's input instead of surfacing an error,
// and the request is bounded by the client timeout.
type EnhanceService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
}

// NewEnhanceService creates a new EnhanceService. With an empty apiKey the
// service is unconfigured and every call falls back immediately. An empty
// apiURL uses the public endpoint.
func NewEnhanceService(apiKey, apiURL string) *EnhanceService {
	if apiURL == "" {
		apiURL = defaultGeminiURL
	}
	return &EnhanceService{
		apiKey: apiKey,
		apiURL: apiURL,
		model:  defaultGeminiModel,
		client: &http.Client{Timeout: enhanceTimeout},
	}
}

// EnhanceDescription rewrites a raw product description into short marketing
// copy. On any failure the raw description comes back unchanged.
func (s *EnhanceService) EnhanceDescription(ctx context.Context, name, category, raw string) string {
	if s.apiKey == "" {
		return raw
	}

	prompt := fmt.Sprintf(`You are a professional copywriter for an agricultural marketplace.
Write a short, appetizing, and appealing description (max 2 sentences) for a product.
Product Name: %s
Category: %s
User Notes: %s

Focus on freshness, local origin, and quality.`, name, category, raw)

	text, err := s.generate(ctx, prompt)
	if err != nil {
		log.Printf("Text generation error: %v", err)
		return raw
	}
	return text
}

// SuggestRecipe produces one short recipe idea featuring the product.
func (s *EnhanceService) SuggestRecipe(ctx context.Context, productName string) string {
	if s.apiKey == "" {
		return "API key missing. Cannot generate recipe."
	}

	prompt := fmt.Sprintf(`Suggest one simple, delicious recipe idea that features %q as the main ingredient.
Keep it brief (max 50 words). Format it as "Try this: [Recipe Name] - [Brief instruction]".`, productName)

	text, err := s.generate(ctx, prompt)
	if err != nil {
		log.Printf("Text generation error: %v", err)
		return "Could not generate recipe at this time."
	}
	return text
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

func (s *EnhanceService) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal generation request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", s.apiURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("generation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generation request returned status %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode generation response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("generation response contained no candidates")
	}

	text := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("generation response contained empty text")
	}
	return text, nil
}
