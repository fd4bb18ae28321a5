package v1_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hirehub/config"
	v1 "hirehub/internal/delivery/http/v1"
	"hirehub/internal/domain"
	"hirehub/internal/usecase"
	"hirehub/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticUserRepo serves a single fixed user. Only the lookups the /me
// path touches are implemented; the rest are never reached.
type staticUserRepo struct {
	user   domain.User
	skills []string
}

func (r *staticUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if id != r.user.ID {
		return nil, domain.ErrNotFound
	}
	u := r.user
	return &u, nil
}

func (r *staticUserRepo) GetSkills(ctx context.Context, userID string) ([]string, error) {
	return r.skills, nil
}

func (r *staticUserRepo) Create(ctx context.Context, user *domain.User) error { return nil }
func (r *staticUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, domain.ErrNotFound
}
func (r *staticUserRepo) UpdateProfile(ctx context.Context, id string, update domain.ProfileUpdate) error {
	return nil
}
func (r *staticUserRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return nil
}
func (r *staticUserRepo) UpdateResume(ctx context.Context, id, url, key string) error     { return nil }
func (r *staticUserRepo) UpdateProfilePic(ctx context.Context, id, url, key string) error { return nil }
func (r *staticUserRepo) SetSubscribed(ctx context.Context, id string, subscribed bool) error {
	return nil
}
func (r *staticUserRepo) AddSkill(ctx context.Context, userID, skill string) (bool, error) {
	return false, nil
}
func (r *staticUserRepo) RemoveSkill(ctx context.Context, userID, skill string) (bool, error) {
	return false, nil
}

func testConfig() *config.Config {
	return &config.Config{
		FrontendURL:              "http://localhost:3000",
		RateLimitWindowSeconds:   60,
		RateLimitLoginThreshold:  100,
		RateLimitGlobalThreshold: 1000,
	}
}

// The session identity travels from the auth middleware to the usecase
// through the request context; the full engine must carry it end to end,
// not just the middleware in isolation.
func TestAuthenticatedRequestReachesSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := &staticUserRepo{
		user: domain.User{
			ID:    "user-1",
			Name:  "Dev",
			Email: "dev@example.com",
			Role:  domain.RoleJobseeker,
		},
		skills: []string{"go"},
	}
	tokens := token.NewManager("test-secret")
	router := v1.NewUserRouter(testConfig(), tokens, usecase.NewUserUsecase(repo, nil))

	sessionToken, err := tokens.IssueSession("user-1", "dev@example.com", domain.RoleJobseeker)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/user/me", nil)
	req.Header.Set("Authorization", "Bearer "+sessionToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "dev@example.com")
}

func TestMissingTokenIsUnauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tokens := token.NewManager("test-secret")
	router := v1.NewUserRouter(testConfig(), tokens, usecase.NewUserUsecase(&staticUserRepo{}, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/user/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
