package domain

import (
	"context"
	"encoding/json"
)

// RawModelError is returned when the generative model answers with
// something that does not parse as JSON. It carries the raw text so the
// client can see it for diagnostics instead of retrying.
type RawModelError struct {
	Raw string
}

func (e *RawModelError) Error() string {
	return "model returned a response that was not valid JSON"
}

// CareerAdvisor proxies resume and career analysis to a generative model.
// Responses are whatever JSON the model produced, forwarded as-is.
type CareerAdvisor interface {
	AnalyzeResume(ctx context.Context, pdfBase64 string) (json.RawMessage, error)
	CareerGuidance(ctx context.Context, skills []string) (json.RawMessage, error)
}

type UtilsUsecase interface {
	Upload(ctx context.Context, dataURI, folder, existingKey string) (*UploadResult, error)
	AnalyzeResume(ctx context.Context, pdfBase64 string) (json.RawMessage, error)
	CareerGuidance(ctx context.Context, skills []string) (json.RawMessage, error)
}
