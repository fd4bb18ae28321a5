package domain

import (
	"context"
	"time"
)

type Job struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Role         string    `json:"role"`
	Salary       int64     `json:"salary"`
	Location     string    `json:"location"`
	Openings     int       `json:"openings"`
	JobType      string    `json:"job_type"`
	WorkLocation string    `json:"work_location"`
	IsActive     bool      `json:"is_active"`
	CompanyID    int64     `json:"company_id"`
	PostedBy     string    `json:"posted_by_recruiter_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// JobWithCompany extends Job with company data for listing pages
type JobWithCompany struct {
	Job
	CompanyName    string  `json:"company_name"`
	CompanyLogoURL *string `json:"company_logo_url"`
}

// JobFilter narrows Search results. Title and Location match fuzzily
// (ILIKE backed by trigram indexes).
type JobFilter struct {
	Title    string
	Location string
	Limit    int
	Offset   int
}

type JobUpdate struct {
	Title        string
	Description  string
	Role         string
	Salary       int64
	Location     string
	Openings     int
	JobType      string
	WorkLocation string
	IsActive     bool
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	GetByIDWithCompany(ctx context.Context, id int64) (*JobWithCompany, error)
	// Search returns active jobs only.
	Search(ctx context.Context, filter JobFilter) ([]JobWithCompany, int64, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, companyID int64, job *Job) error
	GetJob(ctx context.Context, id int64) (*JobWithCompany, error)
	SearchJobs(ctx context.Context, title, location string, page, pageSize int) ([]JobWithCompany, int64, error)
	UpdateJob(ctx context.Context, id int64, update JobUpdate) (*Job, error)
	DeleteJob(ctx context.Context, id int64) error
}
