package usecase

import (
	"context"
	"errors"

	"hirehub/internal/domain"
	"hirehub/pkg/apperror"
)

type jobUsecase struct {
	jobRepo     domain.JobRepository
	companyRepo domain.CompanyRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, companyRepo domain.CompanyRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo, companyRepo: companyRepo}
}

func (u *jobUsecase) CreateJob(ctx context.Context, companyID int64, job *domain.Job) error {
	userID, err := sessionUserID(ctx)
	if err != nil {
		return err
	}
	if sessionRole(ctx) != domain.RoleRecruiter {
		return apperror.Forbidden("Only recruiters can post jobs")
	}

	company, err := u.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Company not found")
		}
		return apperror.Internal(err)
	}
	// Ownership check per request: only the recruiter behind the company
	// can post under it.
	if company.RecruiterID != userID {
		return apperror.Forbidden("You do not own this company")
	}

	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.Salary < 0 {
		return apperror.BadRequest("Salary cannot be negative")
	}
	if job.Openings < 1 {
		job.Openings = 1
	}

	job.CompanyID = companyID
	job.PostedBy = userID
	job.IsActive = true

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// GetJob returns a job by id. Inactive jobs stay retrievable for the
// recruiter who posted them and look nonexistent to everyone else.
func (u *jobUsecase) GetJob(ctx context.Context, id int64) (*domain.JobWithCompany, error) {
	job, err := u.jobRepo.GetByIDWithCompany(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	if !job.IsActive {
		userID, _ := ctx.Value(domain.KeyUserID).(string)
		if userID == "" || userID != job.PostedBy {
			return nil, apperror.NotFound("Job not found")
		}
	}
	return job, nil
}

func (u *jobUsecase) SearchJobs(ctx context.Context, title, location string, page, pageSize int) ([]domain.JobWithCompany, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	jobs, total, err := u.jobRepo.Search(ctx, domain.JobFilter{
		Title:    title,
		Location: location,
		Limit:    pageSize,
		Offset:   (page - 1) * pageSize,
	})
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return jobs, total, nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, id int64, update domain.JobUpdate) (*domain.Job, error) {
	job, err := u.ownedJob(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Title == "" {
		return nil, apperror.BadRequest("Title is required")
	}
	if update.Salary < 0 {
		return nil, apperror.BadRequest("Salary cannot be negative")
	}

	job.Title = update.Title
	job.Description = update.Description
	job.Role = update.Role
	job.Salary = update.Salary
	job.Location = update.Location
	job.Openings = update.Openings
	job.JobType = update.JobType
	job.WorkLocation = update.WorkLocation
	job.IsActive = update.IsActive

	if err := u.jobRepo.Update(ctx, job); err != nil {
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id int64) error {
	if _, err := u.ownedJob(ctx, id); err != nil {
		return err
	}
	if err := u.jobRepo.Delete(ctx, id); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// ownedJob loads a job and verifies the session user posted it.
func (u *jobUsecase) ownedJob(ctx context.Context, id int64) (*domain.Job, error) {
	userID, err := sessionUserID(ctx)
	if err != nil {
		return nil, err
	}

	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if job.PostedBy != userID {
		return nil, apperror.Forbidden("You do not own this job posting")
	}
	return job, nil
}
