package usecase

import (
	"context"
	"encoding/json"

	"hirehub/internal/domain"
	"hirehub/pkg/apperror"
	"hirehub/pkg/logger"
	"hirehub/pkg/storage"

	"github.com/google/uuid"
)

type utilsUsecase struct {
	files   domain.FileStore
	advisor domain.CareerAdvisor
}

func NewUtilsUsecase(files domain.FileStore, advisor domain.CareerAdvisor) domain.UtilsUsecase {
	return &utilsUsecase{files: files, advisor: advisor}
}

// Upload stores a base64 data URI. When existingKey is set the old object
// is deleted first: an overwrite, not an update.
func (u *utilsUsecase) Upload(ctx context.Context, dataURI, folder, existingKey string) (*domain.UploadResult, error) {
	if dataURI == "" {
		return nil, apperror.BadRequest("File data is required")
	}
	contentType, data, err := storage.ParseDataURI(dataURI)
	if err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	if existingKey != "" {
		if err := u.files.Delete(ctx, existingKey); err != nil {
			logger.Log.Warn("failed to delete existing object", "key", existingKey, "error", err)
		}
	}

	if folder == "" {
		folder = "uploads"
	}
	key := folder + "/" + uuid.NewString() + extensionFor(contentType)

	result, err := u.files.Upload(ctx, key, contentType, data)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return result, nil
}

func (u *utilsUsecase) AnalyzeResume(ctx context.Context, pdfBase64 string) (json.RawMessage, error) {
	if pdfBase64 == "" {
		return nil, apperror.BadRequest("PDF data is required")
	}
	return u.advisor.AnalyzeResume(ctx, pdfBase64)
}

func (u *utilsUsecase) CareerGuidance(ctx context.Context, skills []string) (json.RawMessage, error) {
	if len(skills) == 0 {
		return nil, apperror.BadRequest("Skills are required")
	}
	return u.advisor.CareerGuidance(ctx, skills)
}

func extensionFor(contentType string) string {
	switch contentType {
	case "application/pdf":
		return ".pdf"
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
