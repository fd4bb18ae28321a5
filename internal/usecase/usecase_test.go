package usecase_test

import (
	"context"
	"testing"

	"hirehub/internal/domain"
	"hirehub/internal/usecase"
	"hirehub/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdateProfile(ctx context.Context, id string, update domain.ProfileUpdate) error {
	return m.Called(ctx, id, update).Error(0)
}
func (m *MockUserRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}
func (m *MockUserRepo) UpdateResume(ctx context.Context, id, url, key string) error {
	return m.Called(ctx, id, url, key).Error(0)
}
func (m *MockUserRepo) UpdateProfilePic(ctx context.Context, id, url, key string) error {
	return m.Called(ctx, id, url, key).Error(0)
}
func (m *MockUserRepo) SetSubscribed(ctx context.Context, id string, subscribed bool) error {
	return m.Called(ctx, id, subscribed).Error(0)
}
func (m *MockUserRepo) GetSkills(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockUserRepo) AddSkill(ctx context.Context, userID, skill string) (bool, error) {
	args := m.Called(ctx, userID, skill)
	return args.Bool(0), args.Error(1)
}
func (m *MockUserRepo) RemoveSkill(ctx context.Context, userID, skill string) (bool, error) {
	args := m.Called(ctx, userID, skill)
	return args.Bool(0), args.Error(1)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) GetByIDWithCompany(ctx context.Context, id int64) (*domain.JobWithCompany, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobWithCompany), args.Error(1)
}
func (m *MockJobRepo) Search(ctx context.Context, filter domain.JobFilter) ([]domain.JobWithCompany, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.JobWithCompany), args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) Create(ctx context.Context, company *domain.Company) error {
	return m.Called(ctx, company).Error(0)
}
func (m *MockCompanyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyRepo) FetchByRecruiter(ctx context.Context, recruiterID string) ([]domain.Company, error) {
	args := m.Called(ctx, recruiterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}
func (m *MockCompanyRepo) CountByRecruiter(ctx context.Context, recruiterID string) (int, error) {
	args := m.Called(ctx, recruiterID)
	return args.Int(0), args.Error(1)
}
func (m *MockCompanyRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) FetchByJobID(ctx context.Context, jobID int64) ([]domain.ApplicationWithApplicant, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApplicationWithApplicant), args.Error(1)
}
func (m *MockApplicationRepo) FetchByApplicant(ctx context.Context, applicantID string) ([]domain.ApplicationWithJob, error) {
	args := m.Called(ctx, applicantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApplicationWithJob), args.Error(1)
}

type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Upload(ctx context.Context, key, contentType string, data []byte) (*domain.UploadResult, error) {
	args := m.Called(ctx, key, contentType, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UploadResult), args.Error(1)
}
func (m *MockFileStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type MockMailPublisher struct {
	mock.Mock
}

func (m *MockMailPublisher) Publish(ctx context.Context, msg domain.MailMessage) error {
	return m.Called(ctx, msg).Error(0)
}

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateOrder(ctx context.Context, amount int, currency, receipt string) (string, error) {
	args := m.Called(ctx, amount, currency, receipt)
	return args.String(0), args.Error(1)
}
func (m *MockGateway) VerifySignature(cb domain.PaymentCallback) bool {
	return m.Called(cb).Bool(0)
}

// sessionCtx mimics what the auth middleware places on the request context.
func sessionCtx(userID, role string) context.Context {
	ctx := context.WithValue(context.Background(), domain.KeyUserID, userID)
	return context.WithValue(ctx, domain.KeyUserRole, role)
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	userRepo := new(MockUserRepo)
	files := new(MockFileStore)
	mail := new(MockMailPublisher)
	tokens := token.NewManager("test-secret")
	uc := usecase.NewAuthUsecase(userRepo, tokens, files, mail, "http://localhost:3000")

	var created *domain.User

	files.On("Upload", mock.Anything, mock.Anything, "application/pdf", mock.Anything).
		Return(&domain.UploadResult{URL: "https://cdn.example/resume.pdf", Key: "resumes/abc.pdf"}, nil)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
		Return(nil).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.User)
			created.ID = "user-1"
		})
	mail.On("Publish", mock.Anything, mock.Anything).Return(nil)

	user, signed, err := uc.Register(context.Background(), domain.RegisterInput{
		Name:              "Asha",
		Email:             "Asha@Example.com",
		Password:          "correct-horse",
		Phone:             "9876543210",
		Role:              domain.RoleJobseeker,
		ResumeFileName:    "resume.pdf",
		ResumeContentType: "application/pdf",
		ResumeData:        []byte("%PDF-1.4"),
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, signed)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.NotNil(t, user.ResumeURL)

	t.Run("login with the registered password", func(t *testing.T) {
		userRepo.On("GetByEmail", mock.Anything, "asha@example.com").Return(created, nil)
		userRepo.On("GetSkills", mock.Anything, "user-1").Return([]string{}, nil)

		got, signed, err := uc.Login(context.Background(), "asha@example.com", "correct-horse")
		assert.NoError(t, err)
		assert.NotEmpty(t, signed)
		assert.Equal(t, "user-1", got.ID)
	})

	t.Run("login with the wrong password", func(t *testing.T) {
		userRepo.On("GetByEmail", mock.Anything, "asha@example.com").Return(created, nil)

		_, _, err := uc.Login(context.Background(), "asha@example.com", "wrong-horse")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid email or password")
	})
}

func TestRegisterRejectsRecruiterResume(t *testing.T) {
	userRepo := new(MockUserRepo)
	files := new(MockFileStore)
	mail := new(MockMailPublisher)
	uc := usecase.NewAuthUsecase(userRepo, token.NewManager("test-secret"), files, mail, "http://localhost:3000")

	_, _, err := uc.Register(context.Background(), domain.RegisterInput{
		Name:       "Rita",
		Email:      "rita@example.com",
		Password:   "long-enough",
		Phone:      "9876543210",
		Role:       domain.RoleRecruiter,
		ResumeData: []byte("%PDF-1.4"),
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Only jobseekers can upload a resume")
	files.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAddSkillIdempotent(t *testing.T) {
	userRepo := new(MockUserRepo)
	uc := usecase.NewUserUsecase(userRepo, new(MockFileStore))
	ctx := sessionCtx("user-1", domain.RoleJobseeker)

	// Repo reports the skill was already present; no error either way.
	userRepo.On("AddSkill", mock.Anything, "user-1", "Go").Return(false, nil)
	userRepo.On("GetSkills", mock.Anything, "user-1").Return([]string{"Go", "SQL"}, nil)

	skills, err := uc.AddSkill(ctx, "Go")
	assert.NoError(t, err)
	assert.Equal(t, []string{"Go", "SQL"}, skills)
}

func TestRemoveAbsentSkill(t *testing.T) {
	userRepo := new(MockUserRepo)
	uc := usecase.NewUserUsecase(userRepo, new(MockFileStore))
	ctx := sessionCtx("user-1", domain.RoleJobseeker)

	userRepo.On("RemoveSkill", mock.Anything, "user-1", "Rust").Return(false, nil)

	_, err := uc.RemoveSkill(ctx, "Rust")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Skill not found")
	userRepo.AssertNotCalled(t, "GetSkills", mock.Anything, mock.Anything)
}

func TestSessionMissing(t *testing.T) {
	uc := usecase.NewUserUsecase(new(MockUserRepo), new(MockFileStore))

	_, err := uc.GetMe(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "User not authenticated")
}
