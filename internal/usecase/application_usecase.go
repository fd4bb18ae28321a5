package usecase

import (
	"context"
	"errors"
	"fmt"

	"hirehub/internal/domain"
	"hirehub/pkg/apperror"
	"hirehub/pkg/logger"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	userRepo        domain.UserRepository
	mail            domain.MailPublisher
}

func NewApplicationUsecase(applicationRepo domain.ApplicationRepository, jobRepo domain.JobRepository, userRepo domain.UserRepository, mail domain.MailPublisher) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		userRepo:        userRepo,
		mail:            mail,
	}
}

func (u *applicationUsecase) Apply(ctx context.Context, jobID int64) (*domain.Application, error) {
	userID, err := sessionUserID(ctx)
	if err != nil {
		return nil, err
	}
	if sessionRole(ctx) != domain.RoleJobseeker {
		return nil, apperror.Forbidden("Only jobseekers can apply to jobs")
	}

	applicant, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if applicant.ResumeURL == nil {
		return nil, apperror.BadRequest("Upload a resume to your profile before applying")
	}

	job, err := u.jobRepo.GetByIDWithCompany(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if !job.IsActive {
		return nil, apperror.NotFound("Job not found")
	}

	app := &domain.Application{
		JobID:       jobID,
		ApplicantID: userID,
		// Denormalized at apply time; a later subscription change does
		// not reorder existing applications.
		Subscribed: applicant.Subscribed,
	}
	if err := u.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("You have already applied to this job")
		}
		return nil, apperror.Internal(err)
	}

	if err := u.mail.Publish(ctx, domain.MailMessage{
		To:      applicant.Email,
		Subject: fmt.Sprintf("Application received: %s at %s", job.Title, job.CompanyName),
		HTML: fmt.Sprintf(
			"<p>Hi %s,</p><p>Your application for <b>%s</b> at <b>%s</b> has been received.</p>",
			applicant.Name, job.Title, job.CompanyName,
		),
	}); err != nil {
		logger.Log.Warn("failed to enqueue application mail", "email", applicant.Email, "error", err)
	}

	return app, nil
}

func (u *applicationUsecase) ListForJob(ctx context.Context, jobID int64) ([]domain.ApplicationWithApplicant, error) {
	userID, err := sessionUserID(ctx)
	if err != nil {
		return nil, err
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if job.PostedBy != userID {
		return nil, apperror.Forbidden("You do not own this job posting")
	}

	applications, err := u.applicationRepo.FetchByJobID(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return applications, nil
}

func (u *applicationUsecase) ListMine(ctx context.Context) ([]domain.ApplicationWithJob, error) {
	userID, err := sessionUserID(ctx)
	if err != nil {
		return nil, err
	}
	applications, err := u.applicationRepo.FetchByApplicant(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return applications, nil
}
