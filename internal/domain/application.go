package domain

import (
	"context"
	"time"
)

type Application struct {
	JobID       int64     `json:"job_id"`
	ApplicantID string    `json:"applicant_id"`
	// Copied from the applicant at apply time so recruiters see the
	// priority the candidate had when they applied.
	Subscribed bool      `json:"subscribed"`
	AppliedAt  time.Time `json:"applied_at"`
}

// ApplicationWithApplicant is the recruiter's view of an application.
type ApplicationWithApplicant struct {
	Application
	ApplicantName  string  `json:"applicant_name"`
	ApplicantEmail string  `json:"applicant_email"`
	ResumeURL      *string `json:"resume_url"`
}

// ApplicationWithJob is the jobseeker's view of their own applications.
type ApplicationWithJob struct {
	Application
	JobTitle    string `json:"job_title"`
	CompanyName string `json:"company_name"`
	Location    string `json:"location"`
}

type ApplicationRepository interface {
	// Create returns ErrDuplicate when the applicant already applied to
	// the job (enforced by the composite primary key).
	Create(ctx context.Context, app *Application) error
	// FetchByJobID orders subscribed applicants first, then by applied_at
	// ascending.
	FetchByJobID(ctx context.Context, jobID int64) ([]ApplicationWithApplicant, error)
	FetchByApplicant(ctx context.Context, applicantID string) ([]ApplicationWithJob, error)
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, jobID int64) (*Application, error)
	ListForJob(ctx context.Context, jobID int64) ([]ApplicationWithApplicant, error)
	ListMine(ctx context.Context) ([]ApplicationWithJob, error)
}
