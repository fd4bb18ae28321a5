package domain

import (
	"context"
	"time"
)

// MaxCompaniesPerRecruiter caps how many companies a single recruiter can
// own. Enforced server-side at creation time.
const MaxCompaniesPerRecruiter = 3

type Company struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Website     *string   `json:"website"`
	LogoURL     *string   `json:"logo_url"`
	LogoKey     *string   `json:"-"`
	RecruiterID string    `json:"recruiter_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id int64) (*Company, error)
	FetchByRecruiter(ctx context.Context, recruiterID string) ([]Company, error)
	CountByRecruiter(ctx context.Context, recruiterID string) (int, error)
	Delete(ctx context.Context, id int64) error
}

type CompanyUsecase interface {
	CreateCompany(ctx context.Context, company *Company, logoFileName, logoContentType string, logoData []byte) error
	GetCompany(ctx context.Context, id int64) (*Company, error)
	ListMyCompanies(ctx context.Context) ([]Company, error)
	DeleteCompany(ctx context.Context, id int64) error
}
