package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"hirehub/internal/domain"
	"hirehub/pkg/apperror"
	"hirehub/pkg/logger"

	"github.com/google/uuid"
)

type companyUsecase struct {
	companyRepo domain.CompanyRepository
	files       domain.FileStore
}

func NewCompanyUsecase(companyRepo domain.CompanyRepository, files domain.FileStore) domain.CompanyUsecase {
	return &companyUsecase{companyRepo: companyRepo, files: files}
}

func (u *companyUsecase) CreateCompany(ctx context.Context, company *domain.Company, logoFileName, logoContentType string, logoData []byte) error {
	userID, err := sessionUserID(ctx)
	if err != nil {
		return err
	}
	if sessionRole(ctx) != domain.RoleRecruiter {
		return apperror.Forbidden("Only recruiters can create companies")
	}
	if company.Name == "" {
		return apperror.BadRequest("Company name is required")
	}

	// Cap enforced here, not in the UI.
	count, err := u.companyRepo.CountByRecruiter(ctx, userID)
	if err != nil {
		return apperror.Internal(err)
	}
	if count >= domain.MaxCompaniesPerRecruiter {
		return apperror.BadRequest(fmt.Sprintf("A recruiter can own at most %d companies", domain.MaxCompaniesPerRecruiter))
	}

	company.RecruiterID = userID

	if len(logoData) > 0 {
		if !strings.HasPrefix(logoContentType, "image/") {
			return apperror.BadRequest("Company logo must be an image")
		}
		key := "companies/" + uuid.NewString() + strings.ToLower(filepath.Ext(logoFileName))
		result, err := u.files.Upload(ctx, key, logoContentType, logoData)
		if err != nil {
			return apperror.Internal(err)
		}
		company.LogoURL = &result.URL
		company.LogoKey = &result.Key
	}

	if err := u.companyRepo.Create(ctx, company); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *companyUsecase) GetCompany(ctx context.Context, id int64) (*domain.Company, error) {
	company, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, apperror.Internal(err)
	}
	return company, nil
}

func (u *companyUsecase) ListMyCompanies(ctx context.Context) ([]domain.Company, error) {
	userID, err := sessionUserID(ctx)
	if err != nil {
		return nil, err
	}
	companies, err := u.companyRepo.FetchByRecruiter(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return companies, nil
}

func (u *companyUsecase) DeleteCompany(ctx context.Context, id int64) error {
	userID, err := sessionUserID(ctx)
	if err != nil {
		return err
	}

	company, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Company not found")
		}
		return apperror.Internal(err)
	}
	if company.RecruiterID != userID {
		return apperror.Forbidden("You do not own this company")
	}

	if company.LogoKey != nil {
		if err := u.files.Delete(ctx, *company.LogoKey); err != nil {
			logger.Log.Warn("failed to delete company logo", "key", *company.LogoKey, "error", err)
		}
	}

	if err := u.companyRepo.Delete(ctx, id); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
