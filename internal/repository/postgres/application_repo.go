package postgres

import (
	"context"
	"errors"
	"time"

	"hirehub/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application. The composite primary key turns a
// second apply into domain.ErrDuplicate.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `INSERT INTO applications (job_id, applicant_id, subscribed, applied_at)
              VALUES ($1, $2, $3, $4)`
	app.AppliedAt = time.Now()
	_, err := r.db.Exec(ctx, query, app.JobID, app.ApplicantID, app.Subscribed, app.AppliedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

// FetchByJobID returns applications for a job, subscribed applicants
// first, then by applied_at ascending.
func (r *applicationRepo) FetchByJobID(ctx context.Context, jobID int64) ([]domain.ApplicationWithApplicant, error) {
	query := `
		SELECT
			a.job_id, a.applicant_id, a.subscribed, a.applied_at,
			u.name, u.email, u.resume_url
		FROM applications a
		JOIN users u ON a.applicant_id = u.id
		WHERE a.job_id = $1
		ORDER BY a.subscribed DESC, a.applied_at ASC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.ApplicationWithApplicant
	for rows.Next() {
		var app domain.ApplicationWithApplicant
		if err := rows.Scan(
			&app.JobID, &app.ApplicantID, &app.Subscribed, &app.AppliedAt,
			&app.ApplicantName, &app.ApplicantEmail, &app.ResumeURL,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

func (r *applicationRepo) FetchByApplicant(ctx context.Context, applicantID string) ([]domain.ApplicationWithJob, error) {
	query := `
		SELECT
			a.job_id, a.applicant_id, a.subscribed, a.applied_at,
			j.title, COALESCE(c.name, 'Unknown Company'), j.location
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		LEFT JOIN companies c ON j.company_id = c.id
		WHERE a.applicant_id = $1
		ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, applicantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.ApplicationWithJob
	for rows.Next() {
		var app domain.ApplicationWithJob
		if err := rows.Scan(
			&app.JobID, &app.ApplicantID, &app.Subscribed, &app.AppliedAt,
			&app.JobTitle, &app.CompanyName, &app.Location,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}
