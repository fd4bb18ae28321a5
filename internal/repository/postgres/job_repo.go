package postgres

import (
	"context"
	"errors"
	"time"

	"hirehub/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jobColumns = `id, title, description, role, salary, location, openings, job_type, work_location, is_active, company_id, posted_by_recruiter_id, created_at, updated_at`

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (title, description, role, salary, location, openings, job_type, work_location, is_active, company_id, posted_by_recruiter_id, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`

	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		job.Title, job.Description, job.Role, job.Salary, job.Location, job.Openings,
		job.JobType, job.WorkLocation, job.IsActive, job.CompanyID, job.PostedBy,
		job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.Title, &job.Description, &job.Role, &job.Salary, &job.Location,
		&job.Openings, &job.JobType, &job.WorkLocation, &job.IsActive, &job.CompanyID,
		&job.PostedBy, &job.CreatedAt, &job.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) GetByIDWithCompany(ctx context.Context, id int64) (*domain.JobWithCompany, error) {
	query := `
		SELECT
			j.id, j.title, j.description, j.role, j.salary, j.location, j.openings,
			j.job_type, j.work_location, j.is_active, j.company_id, j.posted_by_recruiter_id,
			j.created_at, j.updated_at,
			COALESCE(c.name, 'Unknown Company') AS company_name,
			c.logo_url
		FROM jobs j
		LEFT JOIN companies c ON j.company_id = c.id
		WHERE j.id = $1`

	var job domain.JobWithCompany
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.Title, &job.Description, &job.Role, &job.Salary, &job.Location,
		&job.Openings, &job.JobType, &job.WorkLocation, &job.IsActive, &job.CompanyID,
		&job.PostedBy, &job.CreatedAt, &job.UpdatedAt,
		&job.CompanyName, &job.CompanyLogoURL,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Search returns active jobs only; the filter is hardcoded here so no
// request parameter can surface inactive postings. Title and location
// match via ILIKE, backed by trigram indexes.
func (r *jobRepo) Search(ctx context.Context, filter domain.JobFilter) ([]domain.JobWithCompany, int64, error) {
	query := `
		SELECT
			j.id, j.title, j.description, j.role, j.salary, j.location, j.openings,
			j.job_type, j.work_location, j.is_active, j.company_id, j.posted_by_recruiter_id,
			j.created_at, j.updated_at,
			COALESCE(c.name, 'Unknown Company') AS company_name,
			c.logo_url
		FROM jobs j
		LEFT JOIN companies c ON j.company_id = c.id
		WHERE j.is_active = TRUE
		  AND ($1 = '' OR j.title ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR j.location ILIKE '%' || $2 || '%')
		ORDER BY j.created_at DESC
		LIMIT $3 OFFSET $4`

	rows, err := r.db.Query(ctx, query, filter.Title, filter.Location, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.JobWithCompany
	for rows.Next() {
		var job domain.JobWithCompany
		if err := rows.Scan(
			&job.ID, &job.Title, &job.Description, &job.Role, &job.Salary, &job.Location,
			&job.Openings, &job.JobType, &job.WorkLocation, &job.IsActive, &job.CompanyID,
			&job.PostedBy, &job.CreatedAt, &job.UpdatedAt,
			&job.CompanyName, &job.CompanyLogoURL,
		); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery := `
		SELECT COUNT(*) FROM jobs
		WHERE is_active = TRUE
		  AND ($1 = '' OR title ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR location ILIKE '%' || $2 || '%')`
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, filter.Title, filter.Location).Scan(&total); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET title = $2, description = $3, role = $4, salary = $5, location = $6,
              openings = $7, job_type = $8, work_location = $9, is_active = $10, updated_at = $11
              WHERE id = $1`
	job.UpdatedAt = time.Now()
	tag, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.Role, job.Salary, job.Location,
		job.Openings, job.JobType, job.WorkLocation, job.IsActive, job.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
