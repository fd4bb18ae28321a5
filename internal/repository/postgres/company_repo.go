package postgres

import (
	"context"
	"errors"
	"time"

	"hirehub/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) Create(ctx context.Context, company *domain.Company) error {
	query := `INSERT INTO companies (name, description, website, logo_url, logo_key, recruiter_id, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	company.CreatedAt = time.Now()
	return r.db.QueryRow(ctx, query,
		company.Name, company.Description, company.Website, company.LogoURL, company.LogoKey,
		company.RecruiterID, company.CreatedAt,
	).Scan(&company.ID)
}

func (r *companyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	query := `SELECT id, name, description, website, logo_url, logo_key, recruiter_id, created_at
              FROM companies WHERE id = $1`
	var company domain.Company
	err := r.db.QueryRow(ctx, query, id).Scan(
		&company.ID, &company.Name, &company.Description, &company.Website,
		&company.LogoURL, &company.LogoKey, &company.RecruiterID, &company.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepo) FetchByRecruiter(ctx context.Context, recruiterID string) ([]domain.Company, error) {
	query := `SELECT id, name, description, website, logo_url, logo_key, recruiter_id, created_at
              FROM companies WHERE recruiter_id = $1 ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, recruiterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		var company domain.Company
		if err := rows.Scan(
			&company.ID, &company.Name, &company.Description, &company.Website,
			&company.LogoURL, &company.LogoKey, &company.RecruiterID, &company.CreatedAt,
		); err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}
	return companies, rows.Err()
}

func (r *companyRepo) CountByRecruiter(ctx context.Context, recruiterID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM companies WHERE recruiter_id = $1`, recruiterID).Scan(&count)
	return count, err
}

func (r *companyRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
