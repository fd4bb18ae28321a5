package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("resource already exists")
)

// User roles
const (
	RoleJobseeker = "jobseeker"
	RoleRecruiter = "recruiter"
)

type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Phone         string    `json:"phone"`
	Role          string    `json:"role"`
	Bio           *string   `json:"bio"`
	ResumeURL     *string   `json:"resume_url"`
	ResumeKey     *string   `json:"-"`
	ProfilePicURL *string   `json:"profile_pic_url"`
	ProfilePicKey *string   `json:"-"`
	Subscribed    bool      `json:"subscribed"`
	Skills        []string  `json:"skills,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ProfileUpdate struct {
	Name  string
	Phone string
	Bio   *string
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	UpdateResume(ctx context.Context, id, url, key string) error
	UpdateProfilePic(ctx context.Context, id, url, key string) error
	SetSubscribed(ctx context.Context, id string, subscribed bool) error
	GetSkills(ctx context.Context, userID string) ([]string, error)
	// AddSkill reports whether the skill was newly added; adding a skill
	// already in the set is a no-op.
	AddSkill(ctx context.Context, userID, skill string) (bool, error)
	// RemoveSkill reports whether the skill was present.
	RemoveSkill(ctx context.Context, userID, skill string) (bool, error)
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     string
	Bio      string
	// Optional resume file (jobseekers only)
	ResumeFileName    string
	ResumeContentType string
	ResumeData        []byte
}

type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*User, string, error)
	Login(ctx context.Context, email, password string) (*User, string, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}

type UserUsecase interface {
	GetMe(ctx context.Context) (*User, error)
	GetProfile(ctx context.Context, id string) (*User, error)
	UpdateProfile(ctx context.Context, update ProfileUpdate) (*User, error)
	UpdateProfilePic(ctx context.Context, fileName, contentType string, data []byte) (*User, error)
	UpdateResume(ctx context.Context, fileName, contentType string, data []byte) (*User, error)
	AddSkill(ctx context.Context, skill string) ([]string, error)
	RemoveSkill(ctx context.Context, skill string) ([]string, error)
}
