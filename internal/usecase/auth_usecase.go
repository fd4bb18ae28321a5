package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hirehub/internal/domain"
	"hirehub/pkg/apperror"
	"hirehub/pkg/logger"
	"hirehub/pkg/token"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo    domain.UserRepository
	tokens      *token.Manager
	files       domain.FileStore
	mail        domain.MailPublisher
	frontendURL string
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *token.Manager, files domain.FileStore, mail domain.MailPublisher, frontendURL string) domain.AuthUsecase {
	return &authUsecase{
		userRepo:    userRepo,
		tokens:      tokens,
		files:       files,
		mail:        mail,
		frontendURL: frontendURL,
	}
}

func (u *authUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, string, error) {
	if input.Role != domain.RoleJobseeker && input.Role != domain.RoleRecruiter {
		return nil, "", apperror.BadRequest("Role must be jobseeker or recruiter")
	}
	if len(input.Password) < 8 {
		return nil, "", apperror.BadRequest("Password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        strings.ToLower(input.Email),
		PasswordHash: string(hash),
		Phone:        input.Phone,
		Role:         input.Role,
	}
	if input.Bio != "" {
		user.Bio = &input.Bio
	}

	// Optional resume at registration, jobseekers only.
	if len(input.ResumeData) > 0 {
		if input.Role != domain.RoleJobseeker {
			return nil, "", apperror.BadRequest("Only jobseekers can upload a resume")
		}
		if err := checkPDF(input.ResumeFileName, input.ResumeContentType); err != nil {
			return nil, "", err
		}
		result, err := u.files.Upload(ctx, "resumes/"+uuid.NewString()+".pdf", "application/pdf", input.ResumeData)
		if err != nil {
			return nil, "", apperror.Internal(err)
		}
		user.ResumeURL = &result.URL
		user.ResumeKey = &result.Key
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, "", apperror.Conflict("An account with this email already exists")
		}
		return nil, "", apperror.Internal(err)
	}

	signed, err := u.tokens.IssueSession(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	// Best-effort welcome mail; registration never fails on delivery.
	if err := u.mail.Publish(ctx, domain.MailMessage{
		To:      user.Email,
		Subject: "Welcome to HireHub",
		HTML:    fmt.Sprintf("<p>Hi %s,</p><p>Your HireHub account is ready. Good luck with the search!</p>", user.Name),
	}); err != nil {
		logger.Log.Warn("failed to enqueue welcome mail", "email", user.Email, "error", err)
	}

	return user, signed, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := u.userRepo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		// Same response for unknown email and wrong password.
		return nil, "", apperror.Unauthorized("Invalid email or password")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", apperror.Unauthorized("Invalid email or password")
	}

	signed, err := u.tokens.IssueSession(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	user.Skills, _ = u.userRepo.GetSkills(ctx, user.ID)
	return user, signed, nil
}

func (u *authUsecase) ForgotPassword(ctx context.Context, email string) error {
	user, err := u.userRepo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Do not reveal whether the account exists.
			return nil
		}
		return apperror.Internal(err)
	}

	reset, err := u.tokens.IssueReset(user.ID, user.Email)
	if err != nil {
		return apperror.Internal(err)
	}

	link := u.frontendURL + "/reset/" + reset
	if err := u.mail.Publish(ctx, domain.MailMessage{
		To:      user.Email,
		Subject: "Reset your HireHub password",
		HTML: fmt.Sprintf(
			"<p>Hi %s,</p><p>Click <a href=%q>here</a> to reset your password. The link expires in 15 minutes.</p><p>If you did not request this, ignore this mail.</p>",
			user.Name, link,
		),
	}); err != nil {
		logger.Log.Warn("failed to enqueue password reset mail", "email", user.Email, "error", err)
	}

	return nil
}

func (u *authUsecase) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	claims, err := u.tokens.ParseReset(resetToken)
	if err != nil {
		return apperror.Unauthorized("Invalid or expired reset link")
	}
	if len(newPassword) < 8 {
		return apperror.BadRequest("Password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Internal(err)
	}

	if err := u.userRepo.UpdatePassword(ctx, claims.Subject, string(hash)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

// checkPDF enforces the PDF-only rule for resumes by extension and
// declared content type.
func checkPDF(fileName, contentType string) error {
	if !strings.HasSuffix(strings.ToLower(fileName), ".pdf") {
		return apperror.BadRequest("Resume must be a PDF file")
	}
	if contentType != "" && contentType != "application/pdf" {
		return apperror.BadRequest("Resume must be a PDF file")
	}
	return nil
}
