package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"hirehub/internal/domain"
	"hirehub/pkg/apperror"
	"hirehub/pkg/logger"

	"github.com/google/uuid"
)

type userUsecase struct {
	userRepo domain.UserRepository
	files    domain.FileStore
}

func NewUserUsecase(userRepo domain.UserRepository, files domain.FileStore) domain.UserUsecase {
	return &userUsecase{userRepo: userRepo, files: files}
}

func (u *userUsecase) GetMe(ctx context.Context) (*domain.User, error) {
	userID, err := sessionUserID(ctx)
	if err != nil {
		return nil, err
	}
	return u.loadWithSkills(ctx, userID)
}

func (u *userUsecase) GetProfile(ctx context.Context, id string) (*domain.User, error) {
	return u.loadWithSkills(ctx, id)
}

func (u *userUsecase) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.User, error) {
	userID, err := sessionUserID(ctx)
	if err != nil {
		return nil, err
	}
	if update.Name == "" {
		return nil, apperror.BadRequest("Name is required")
	}

	if err := u.userRepo.UpdateProfile(ctx, userID, update); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return u.loadWithSkills(ctx, userID)
}

func (u *userUsecase) UpdateProfilePic(ctx context.Context, fileName, contentType string, data []byte) (*domain.User, error) {
	userID, err := sessionUserID(ctx)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, apperror.BadRequest("Image file is required")
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, apperror.BadRequest("Profile picture must be an image")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	// Overwrite pattern: drop the old object first, then upload.
	if user.ProfilePicKey != nil {
		if err := u.files.Delete(ctx, *user.ProfilePicKey); err != nil {
			logger.Log.Warn("failed to delete previous profile picture", "key", *user.ProfilePicKey, "error", err)
		}
	}

	key := "profiles/" + uuid.NewString() + strings.ToLower(filepath.Ext(fileName))
	result, err := u.files.Upload(ctx, key, contentType, data)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if err := u.userRepo.UpdateProfilePic(ctx, userID, result.URL, result.Key); err != nil {
		return nil, apperror.Internal(err)
	}
	return u.loadWithSkills(ctx, userID)
}

func (u *userUsecase) UpdateResume(ctx context.Context, fileName, contentType string, data []byte) (*domain.User, error) {
	userID, err := sessionUserID(ctx)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, apperror.BadRequest("Resume file is required")
	}
	if err := checkPDF(fileName, contentType); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if user.ResumeKey != nil {
		if err := u.files.Delete(ctx, *user.ResumeKey); err != nil {
			logger.Log.Warn("failed to delete previous resume", "key", *user.ResumeKey, "error", err)
		}
	}

	result, err := u.files.Upload(ctx, "resumes/"+uuid.NewString()+".pdf", "application/pdf", data)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if err := u.userRepo.UpdateResume(ctx, userID, result.URL, result.Key); err != nil {
		return nil, apperror.Internal(err)
	}
	return u.loadWithSkills(ctx, userID)
}

// AddSkill is idempotent by membership: re-adding an existing skill
// leaves the set unchanged.
func (u *userUsecase) AddSkill(ctx context.Context, skill string) ([]string, error) {
	userID, err := sessionUserID(ctx)
	if err != nil {
		return nil, err
	}
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return nil, apperror.BadRequest("Skill name is required")
	}

	if _, err := u.userRepo.AddSkill(ctx, userID, skill); err != nil {
		return nil, apperror.Internal(err)
	}
	skills, err := u.userRepo.GetSkills(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return skills, nil
}

func (u *userUsecase) RemoveSkill(ctx context.Context, skill string) ([]string, error) {
	userID, err := sessionUserID(ctx)
	if err != nil {
		return nil, err
	}
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return nil, apperror.BadRequest("Skill name is required")
	}

	removed, err := u.userRepo.RemoveSkill(ctx, userID, skill)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if !removed {
		return nil, apperror.NotFound("Skill not found")
	}
	skills, err := u.userRepo.GetSkills(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return skills, nil
}

func (u *userUsecase) loadWithSkills(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	skills, err := u.userRepo.GetSkills(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	user.Skills = skills
	return user, nil
}
