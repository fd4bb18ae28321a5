package postgres

import (
	"context"
	"errors"
	"time"

	"hirehub/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const pgUniqueViolation = "23505"

const userColumns = `id, name, email, password_hash, phone, role, bio, resume_url, resume_key, profile_pic_url, profile_pic_key, subscribed, created_at, updated_at`

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Phone, &user.Role,
		&user.Bio, &user.ResumeURL, &user.ResumeKey, &user.ProfilePicURL, &user.ProfilePicKey,
		&user.Subscribed, &user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (name, email, password_hash, phone, role, bio, resume_url, resume_key, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	err := r.db.QueryRow(ctx, query,
		user.Name, user.Email, user.PasswordHash, user.Phone, user.Role,
		user.Bio, user.ResumeURL, user.ResumeKey, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *userRepo) UpdateProfile(ctx context.Context, id string, update domain.ProfileUpdate) error {
	query := `UPDATE users SET name = $2, phone = $3, bio = $4, updated_at = now() WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, update.Name, update.Phone, update.Bio)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) UpdateResume(ctx context.Context, id, url, key string) error {
	query := `UPDATE users SET resume_url = $2, resume_key = $3, updated_at = now() WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, url, key)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) UpdateProfilePic(ctx context.Context, id, url, key string) error {
	query := `UPDATE users SET profile_pic_url = $2, profile_pic_key = $3, updated_at = now() WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, url, key)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) SetSubscribed(ctx context.Context, id string, subscribed bool) error {
	query := `UPDATE users SET subscribed = $2, updated_at = now() WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, subscribed)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) GetSkills(ctx context.Context, userID string) ([]string, error) {
	query := `SELECT skill FROM user_skills WHERE user_id = $1 ORDER BY skill`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []string
	for rows.Next() {
		var skill string
		if err := rows.Scan(&skill); err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	return skills, rows.Err()
}

// AddSkill is idempotent by membership: re-adding an existing skill is a
// no-op and reports false.
func (r *userRepo) AddSkill(ctx context.Context, userID, skill string) (bool, error) {
	query := `INSERT INTO user_skills (user_id, skill) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	tag, err := r.db.Exec(ctx, query, userID, skill)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *userRepo) RemoveSkill(ctx context.Context, userID, skill string) (bool, error) {
	query := `DELETE FROM user_skills WHERE user_id = $1 AND skill = $2`
	tag, err := r.db.Exec(ctx, query, userID, skill)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
