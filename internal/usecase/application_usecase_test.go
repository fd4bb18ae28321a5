package usecase_test

import (
	"testing"

	"hirehub/internal/domain"
	"hirehub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func activeJob(id int64, postedBy string) *domain.JobWithCompany {
	return &domain.JobWithCompany{
		Job:         domain.Job{ID: id, Title: "Backend Engineer", IsActive: true, PostedBy: postedBy},
		CompanyName: "Acme",
	}
}

func TestApplyRequiresResume(t *testing.T) {
	appRepo := new(MockApplicationRepo)
	jobRepo := new(MockJobRepo)
	userRepo := new(MockUserRepo)
	uc := usecase.NewApplicationUsecase(appRepo, jobRepo, userRepo, new(MockMailPublisher))
	ctx := sessionCtx("user-1", domain.RoleJobseeker)

	userRepo.On("GetByID", mock.Anything, "user-1").
		Return(&domain.User{ID: "user-1", Email: "u@example.com"}, nil)

	_, err := uc.Apply(ctx, 5)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Upload a resume to your profile before applying")
	appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApplyRecruiterForbidden(t *testing.T) {
	uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo), new(MockUserRepo), new(MockMailPublisher))

	_, err := uc.Apply(sessionCtx("recruiter-1", domain.RoleRecruiter), 5)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Only jobseekers can apply")
}

func TestApplyDuplicate(t *testing.T) {
	appRepo := new(MockApplicationRepo)
	jobRepo := new(MockJobRepo)
	userRepo := new(MockUserRepo)
	mail := new(MockMailPublisher)
	uc := usecase.NewApplicationUsecase(appRepo, jobRepo, userRepo, mail)
	ctx := sessionCtx("user-1", domain.RoleJobseeker)

	resume := "https://cdn.example/resume.pdf"
	userRepo.On("GetByID", mock.Anything, "user-1").
		Return(&domain.User{ID: "user-1", Email: "u@example.com", ResumeURL: &resume}, nil)
	jobRepo.On("GetByIDWithCompany", mock.Anything, int64(5)).Return(activeJob(5, "recruiter-1"), nil)
	appRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).
		Return(domain.ErrDuplicate)

	_, err := uc.Apply(ctx, 5)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "You have already applied to this job")
	mail.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestApplyCopiesSubscriptionFlag(t *testing.T) {
	appRepo := new(MockApplicationRepo)
	jobRepo := new(MockJobRepo)
	userRepo := new(MockUserRepo)
	mail := new(MockMailPublisher)
	uc := usecase.NewApplicationUsecase(appRepo, jobRepo, userRepo, mail)
	ctx := sessionCtx("user-1", domain.RoleJobseeker)

	resume := "https://cdn.example/resume.pdf"
	userRepo.On("GetByID", mock.Anything, "user-1").
		Return(&domain.User{ID: "user-1", Email: "u@example.com", ResumeURL: &resume, Subscribed: true}, nil)
	jobRepo.On("GetByIDWithCompany", mock.Anything, int64(5)).Return(activeJob(5, "recruiter-1"), nil)
	appRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).Return(nil)
	mail.On("Publish", mock.Anything, mock.Anything).Return(nil)

	app, err := uc.Apply(ctx, 5)
	assert.NoError(t, err)
	assert.True(t, app.Subscribed)
	mail.AssertCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestApplyToInactiveJob(t *testing.T) {
	appRepo := new(MockApplicationRepo)
	jobRepo := new(MockJobRepo)
	userRepo := new(MockUserRepo)
	uc := usecase.NewApplicationUsecase(appRepo, jobRepo, userRepo, new(MockMailPublisher))
	ctx := sessionCtx("user-1", domain.RoleJobseeker)

	resume := "https://cdn.example/resume.pdf"
	userRepo.On("GetByID", mock.Anything, "user-1").
		Return(&domain.User{ID: "user-1", ResumeURL: &resume}, nil)
	paused := activeJob(9, "recruiter-1")
	paused.IsActive = false
	jobRepo.On("GetByIDWithCompany", mock.Anything, int64(9)).Return(paused, nil)

	_, err := uc.Apply(ctx, 9)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Job not found")
	appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestListForJobOwnerOnly(t *testing.T) {
	appRepo := new(MockApplicationRepo)
	jobRepo := new(MockJobRepo)
	uc := usecase.NewApplicationUsecase(appRepo, jobRepo, new(MockUserRepo), new(MockMailPublisher))

	jobRepo.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Job{ID: 5, PostedBy: "recruiter-1"}, nil)

	t.Run("another recruiter is rejected", func(t *testing.T) {
		_, err := uc.ListForJob(sessionCtx("recruiter-2", domain.RoleRecruiter), 5)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "You do not own this job posting")
		appRepo.AssertNotCalled(t, "FetchByJobID", mock.Anything, mock.Anything)
	})

	t.Run("the owner gets the list", func(t *testing.T) {
		appRepo.On("FetchByJobID", mock.Anything, int64(5)).
			Return([]domain.ApplicationWithApplicant{{ApplicantName: "Asha"}}, nil)

		apps, err := uc.ListForJob(sessionCtx("recruiter-1", domain.RoleRecruiter), 5)
		assert.NoError(t, err)
		assert.Len(t, apps, 1)
	})
}
