package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"hirehub/internal/domain"
)

const baseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// GeminiClient implements domain.CareerAdvisor against the Gemini
// generateContent API.
type GeminiClient struct {
	apiKey string
	model  string
	http   *http.Client
}

func NewGeminiClient(apiKey, model string) *GeminiClient {
	return &GeminiClient{
		apiKey: apiKey,
		model:  model,
		http:   &http.Client{Timeout: 60 * time.Second},
	}
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateRequest struct {
	Contents []struct {
		Parts []part `json:"parts"`
	} `json:"contents"`
	GenerationConfig struct {
		Temperature float64 `json:"temperature"`
	} `json:"generationConfig"`
}

// AnalyzeResume sends the base64 PDF inline with the ATS analysis prompt
// and returns the model's JSON verdict.
func (g *GeminiClient) AnalyzeResume(ctx context.Context, pdfBase64 string) (json.RawMessage, error) {
	// The widget sends a data URI; the API wants the bare payload.
	pdfBase64 = strings.TrimPrefix(pdfBase64, "data:application/pdf;base64,")

	parts := []part{
		{Text: resumeAnalyzerPrompt},
		{InlineData: &inlineData{MimeType: "application/pdf", Data: pdfBase64}},
	}
	return g.generateJSON(ctx, parts)
}

// CareerGuidance asks the model for career advice grounded on the given
// skill set.
func (g *GeminiClient) CareerGuidance(ctx context.Context, skills []string) (json.RawMessage, error) {
	parts := []part{{Text: careerGuidancePrompt(skills)}}
	return g.generateJSON(ctx, parts)
}

func (g *GeminiClient) generateJSON(ctx context.Context, parts []part) (json.RawMessage, error) {
	var req generateRequest
	req.Contents = append(req.Contents, struct {
		Parts []part `json:"parts"`
	}{Parts: parts})
	req.GenerationConfig.Temperature = 0.2

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", baseURL, g.model, g.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("model request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model request failed with status %d: %s", resp.StatusCode, string(body))
	}

	text, err := extractText(body)
	if err != nil {
		return nil, err
	}

	cleaned := CleanJSONResponse(text)
	if !json.Valid([]byte(cleaned)) {
		// Hand the raw text back for diagnostics; the caller forwards it
		// instead of retrying.
		return nil, &domain.RawModelError{Raw: text}
	}
	return json.RawMessage(cleaned), nil
}

// extractText pulls the first candidate's text out of a generateContent
// response.
func extractText(body []byte) (string, error) {
	var resp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to parse model response: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("model response has no candidates")
	}
	text := resp.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("model returned an empty text part")
	}
	return text, nil
}

// CleanJSONResponse strips markdown code fences the model tends to wrap
// JSON in, and trims to the outermost object.
func CleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)

	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start != -1 && end != -1 && end > start {
		content = content[start : end+1]
	}

	return strings.TrimSpace(content)
}
