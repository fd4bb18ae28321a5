package usecase_test

import (
	"context"
	"testing"

	"hirehub/internal/domain"
	"hirehub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateJobOwnership(t *testing.T) {
	jobRepo := new(MockJobRepo)
	companyRepo := new(MockCompanyRepo)
	uc := usecase.NewJobUsecase(jobRepo, companyRepo)

	t.Run("jobseeker cannot post", func(t *testing.T) {
		ctx := sessionCtx("user-1", domain.RoleJobseeker)
		err := uc.CreateJob(ctx, 1, &domain.Job{Title: "Backend Engineer"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only recruiters can post jobs")
	})

	t.Run("recruiter cannot post under someone else's company", func(t *testing.T) {
		ctx := sessionCtx("recruiter-1", domain.RoleRecruiter)
		companyRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Company{ID: 1, RecruiterID: "recruiter-2"}, nil)

		err := uc.CreateJob(ctx, 1, &domain.Job{Title: "Backend Engineer"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "You do not own this company")
		jobRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("owner posts and the job defaults to active", func(t *testing.T) {
		ctx := sessionCtx("recruiter-2", domain.RoleRecruiter)
		companyRepo.On("GetByID", mock.Anything, int64(2)).
			Return(&domain.Company{ID: 2, RecruiterID: "recruiter-2"}, nil)
		jobRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Job")).Return(nil)

		job := &domain.Job{Title: "Backend Engineer", Salary: 1200000}
		err := uc.CreateJob(ctx, 2, job)
		assert.NoError(t, err)
		assert.True(t, job.IsActive)
		assert.Equal(t, "recruiter-2", job.PostedBy)
		assert.Equal(t, 1, job.Openings)
	})
}

func TestInactiveJobVisibility(t *testing.T) {
	jobRepo := new(MockJobRepo)
	uc := usecase.NewJobUsecase(jobRepo, new(MockCompanyRepo))

	inactive := &domain.JobWithCompany{
		Job:         domain.Job{ID: 7, Title: "Paused role", IsActive: false, PostedBy: "recruiter-1"},
		CompanyName: "Acme",
	}
	jobRepo.On("GetByIDWithCompany", mock.Anything, int64(7)).Return(inactive, nil)

	t.Run("anonymous viewer gets a 404", func(t *testing.T) {
		_, err := uc.GetJob(context.Background(), 7)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Job not found")
	})

	t.Run("another recruiter gets a 404", func(t *testing.T) {
		_, err := uc.GetJob(sessionCtx("recruiter-2", domain.RoleRecruiter), 7)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Job not found")
	})

	t.Run("the posting recruiter still sees it", func(t *testing.T) {
		job, err := uc.GetJob(sessionCtx("recruiter-1", domain.RoleRecruiter), 7)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), job.ID)
	})
}

func TestUpdateJobOwnership(t *testing.T) {
	jobRepo := new(MockJobRepo)
	uc := usecase.NewJobUsecase(jobRepo, new(MockCompanyRepo))

	jobRepo.On("GetByID", mock.Anything, int64(3)).
		Return(&domain.Job{ID: 3, Title: "Old title", PostedBy: "recruiter-1"}, nil)

	t.Run("non-owner cannot update", func(t *testing.T) {
		_, err := uc.UpdateJob(sessionCtx("recruiter-2", domain.RoleRecruiter), 3, domain.JobUpdate{Title: "New"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "You do not own this job posting")
		jobRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		err := uc.DeleteJob(sessionCtx("recruiter-2", domain.RoleRecruiter), 3)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "You do not own this job posting")
		jobRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("owner updates", func(t *testing.T) {
		jobRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Job")).Return(nil)

		job, err := uc.UpdateJob(sessionCtx("recruiter-1", domain.RoleRecruiter), 3, domain.JobUpdate{
			Title:    "New title",
			Openings: 2,
			IsActive: false,
		})
		assert.NoError(t, err)
		assert.Equal(t, "New title", job.Title)
		assert.False(t, job.IsActive)
	})
}

func TestCompanyCap(t *testing.T) {
	companyRepo := new(MockCompanyRepo)
	uc := usecase.NewCompanyUsecase(companyRepo, new(MockFileStore))
	ctx := sessionCtx("recruiter-1", domain.RoleRecruiter)

	companyRepo.On("CountByRecruiter", mock.Anything, "recruiter-1").Return(3, nil)

	err := uc.CreateCompany(ctx, &domain.Company{Name: "Fourth Co"}, "", "", nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "at most 3 companies")
	companyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
