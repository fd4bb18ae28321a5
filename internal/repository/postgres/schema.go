package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema bootstrap. Tables are created on service startup; statements are
// idempotent so every service can run them safely against a shared
// database.
var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS pg_trgm`,

	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL CHECK (role IN ('jobseeker', 'recruiter')),
		bio TEXT,
		resume_url TEXT,
		resume_key TEXT,
		profile_pic_url TEXT,
		profile_pic_key TEXT,
		subscribed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	// Set semantics for skills come from the composite primary key.
	`CREATE TABLE IF NOT EXISTS user_skills (
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		skill TEXT NOT NULL,
		PRIMARY KEY (user_id, skill)
	)`,

	`CREATE TABLE IF NOT EXISTS companies (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		website TEXT,
		logo_url TEXT,
		logo_key TEXT,
		recruiter_id UUID NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS jobs (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT '',
		salary BIGINT NOT NULL DEFAULT 0,
		location TEXT NOT NULL DEFAULT '',
		openings INT NOT NULL DEFAULT 1,
		job_type TEXT NOT NULL DEFAULT '',
		work_location TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		company_id BIGINT NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
		posted_by_recruiter_id UUID NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	// One application per (job, applicant), enforced by the primary key
	// rather than client-side checks.
	`CREATE TABLE IF NOT EXISTS applications (
		job_id BIGINT NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		applicant_id UUID NOT NULL REFERENCES users(id),
		subscribed BOOLEAN NOT NULL DEFAULT FALSE,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (job_id, applicant_id)
	)`,
}

// Performance indexes. Trigram (gin_trgm_ops) indexes back the fuzzy
// ILIKE search on job title and location.
var indexStatements = []string{
	`CREATE INDEX IF NOT EXISTS idx_users_role ON users(role)`,
	`CREATE INDEX IF NOT EXISTS idx_user_skills_skill ON user_skills(skill)`,
	`CREATE INDEX IF NOT EXISTS idx_companies_recruiter_id ON companies(recruiter_id)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_company_id ON jobs(company_id)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_posted_by_recruiter ON jobs(posted_by_recruiter_id)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_active_created ON jobs(is_active, created_at DESC) WHERE is_active = TRUE`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_title_trgm ON jobs USING gin(title gin_trgm_ops)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_location_trgm ON jobs USING gin(location gin_trgm_ops)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_applicant_id ON applications(applicant_id)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_job_subscribed_applied ON applications(job_id, subscribed DESC, applied_at ASC)`,
}

// Migrate creates tables and indexes if they do not exist yet.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	for _, stmt := range indexStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
