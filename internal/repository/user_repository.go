package repository

import (
	"context"
	"database/sql"
	"errors"

	"able-match/internal/database"
	"able-match/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProfileUpdate struct {
	Skills             string
	ExperienceLevel    string
	PreferredLocation  string
	SalaryExpectation  string
	DisabilityType     string
	AccessibilityNeeds string
	WorkPreferences    string
}

type UserRepository interface {
	Create(ctx context.Context, u user.User) error
	GetByID(ctx context.Context, id uuid.UUID) (user.User, error)
	GetByEmail(ctx context.Context, email string) (user.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, p ProfileUpdate) error
}

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

const userColumns = `id, username, email, password_hash, user_type,
	COALESCE(disability_type, ''), COALESCE(skills, ''), COALESCE(experience_level, ''),
	COALESCE(preferred_location, ''), COALESCE(salary_expectation, ''),
	COALESCE(accessibility_needs, ''), COALESCE(work_preferences, ''),
	created_at, updated_at`

func (r *PostgresUserRepository) Create(ctx context.Context, u user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, username, email, password_hash, user_type)
		 VALUES ($1, $2, $3, $4, $5)`,
		u.ID, u.Username, u.Email, u.PasswordHash, u.UserType,
	)
	return err
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, p ProfileUpdate) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE users SET
			skills = $2,
			experience_level = $3,
			preferred_location = $4,
			salary_expectation = $5,
			disability_type = $6,
			accessibility_needs = $7,
			work_preferences = $8,
			updated_at = now()
		 WHERE id = $1`,
		id, p.Skills, p.ExperienceLevel, p.PreferredLocation,
		p.SalaryExpectation, p.DisabilityType, p.AccessibilityNeeds, p.WorkPreferences,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return user.ErrNotFound
	}
	return nil
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.UserType,
		&u.DisabilityType, &u.Skills, &u.ExperienceLevel,
		&u.PreferredLocation, &u.SalaryExpectation,
		&u.AccessibilityNeeds, &u.WorkPreferences,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}
