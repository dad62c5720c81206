package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ecotrack/domain"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel   = "gemini-2.0-flash"

	temperature     = 0.7
	maxOutputTokens = 250
)

type (
	GeminiService interface {
		// GenerateContent returns the first text part of the first candidate.
		GenerateContent(ctx context.Context, prompt string) (string, error)
	}

	geminiService struct {
		apiKey     string
		model      string
		baseURL    string
		httpClient *http.Client
	}
)

func NewGeminiService(apiKey, model, baseURL string, httpClient *http.Client) GeminiService {
	if model == "" {
		model = DefaultModel
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &geminiService{
		apiKey:     apiKey,
		model:      model,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (s *geminiService) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if s.apiKey == "" {
		return "", domain.ErrGeminiNotConfigured
	}

	requestJSON, err := json.Marshal(GenerateContentRequest{
		Contents: []Content{
			{Parts: []Part{{Text: prompt}}},
		},
		GenerationConfig: &GenerationConfig{
			Temperature:     temperature,
			MaxOutputTokens: maxOutputTokens,
		},
	})
	if err != nil {
		return "", err
	}

	geminiURL := fmt.Sprintf("%s/models/%s:generateContent", s.baseURL, url.PathEscape(s.model))
	geminiReq, err := http.NewRequestWithContext(ctx, http.MethodPost, geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	geminiReq.Header.Set("Content-Type", "application/json")
	// key stays out of the URL so transport errors never carry it
	geminiReq.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.httpClient.Do(geminiReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGeminiProcessingFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGeminiProcessingFailed, err)
	}

	var geminiResp GenerateContentResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("%w: %s", domain.ErrGeminiProcessingFailed, resp.Status)
		}
		return "", fmt.Errorf("%w: malformed response: %v", domain.ErrGeminiProcessingFailed, err)
	}

	if geminiResp.Error != nil {
		return "", fmt.Errorf("%w: %s (%d %s)", domain.ErrGeminiProcessingFailed,
			geminiResp.Error.Message, geminiResp.Error.Code, geminiResp.Error.Status)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s", domain.ErrGeminiProcessingFailed, resp.Status)
	}
	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no candidates in response", domain.ErrGeminiProcessingFailed)
	}

	text := strings.TrimSpace(geminiResp.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("%w: empty text in response", domain.ErrGeminiProcessingFailed)
	}
	return text, nil
}
