package repository

import (
	"context"
	"database/sql"
	"errors"

	"able-match/internal/database"
	"able-match/internal/domain/match"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type MatchRepository interface {
	// Insert persists a new match. It reports inserted=false when the
	// (user, job) uniqueness constraint already holds a row, the
	// benign outcome of two concurrent generation runs.
	Insert(ctx context.Context, m match.Match) (inserted bool, err error)
	GetByID(ctx context.Context, id uuid.UUID) (match.Match, error)
	GetByUserAndJob(ctx context.Context, userID, jobID uuid.UUID) (match.Match, error)
	ExistsByUserAndJob(ctx context.Context, userID, jobID uuid.UUID) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status match.Status) error
	ListByUser(ctx context.Context, userID uuid.UUID, status match.Status) ([]match.Match, error)
}

type PostgresMatchRepository struct {
	db querier
}

func NewPostgresMatchRepository(db database.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

const matchColumns = `id, user_id, job_id, match_score, skills_match, experience_match,
	location_match, accessibility_match, salary_match, match_details, status, created_at`

func (r *PostgresMatchRepository) Insert(ctx context.Context, m match.Match) (bool, error) {
	affected, err := r.db.Exec(ctx,
		`INSERT INTO job_matches (id, user_id, job_id, match_score, skills_match,
			experience_match, location_match, accessibility_match, salary_match,
			match_details, status)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		 ON CONFLICT (user_id, job_id) DO NOTHING`,
		m.ID, m.UserID, m.JobID, m.MatchScore, m.SkillsMatch,
		m.ExperienceMatch, m.LocationMatch, m.AccessibilityMatch, m.SalaryMatch,
		m.Details, m.Status,
	)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PostgresMatchRepository) GetByID(ctx context.Context, id uuid.UUID) (match.Match, error) {
	row := r.db.QueryRow(ctx, `SELECT `+matchColumns+` FROM job_matches WHERE id = $1`, id)
	return scanMatch(row)
}

func (r *PostgresMatchRepository) GetByUserAndJob(ctx context.Context, userID, jobID uuid.UUID) (match.Match, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+matchColumns+` FROM job_matches WHERE user_id = $1 AND job_id = $2`,
		userID, jobID,
	)
	return scanMatch(row)
}

func (r *PostgresMatchRepository) ExistsByUserAndJob(ctx context.Context, userID, jobID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM job_matches WHERE user_id = $1 AND job_id = $2)`,
		userID, jobID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresMatchRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status match.Status) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE job_matches SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return match.ErrNotFound
	}
	return nil
}

func (r *PostgresMatchRepository) ListByUser(ctx context.Context, userID uuid.UUID, status match.Status) ([]match.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM job_matches WHERE user_id = $1`
	args := []any{userID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY match_score DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]match.Match, 0)
	for rows.Next() {
		m, err := scanMatchRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanMatch(row database.Row) (match.Match, error) {
	m, err := scanMatchRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return match.Match{}, match.ErrNotFound
		}
		return match.Match{}, err
	}
	return m, nil
}

func scanMatchRow(row database.Row) (match.Match, error) {
	var m match.Match
	err := row.Scan(
		&m.ID, &m.UserID, &m.JobID, &m.MatchScore, &m.SkillsMatch,
		&m.ExperienceMatch, &m.LocationMatch, &m.AccessibilityMatch,
		&m.SalaryMatch, &m.Details, &m.Status, &m.CreatedAt,
	)
	return m, err
}
