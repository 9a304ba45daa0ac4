package postgres

import (
	"context"
	"database/sql"

	domain "github.com/ecoverse/ecosort/internal/domain/community"
)

type ChallengeRepository struct{ db *sql.DB }

func NewChallengeRepository(db *sql.DB) *ChallengeRepository { return &ChallengeRepository{db: db} }

// Upsert keyed on day; concurrent writers race with last-write-wins.
func (r *ChallengeRepository) Upsert(ctx context.Context, d *domain.ChallengeDay) error {
	const q = `
INSERT INTO challenge_days (day, completed, updated_at)
VALUES ($1,$2,$3)
ON CONFLICT (day) DO UPDATE SET
 completed = EXCLUDED.completed,
 updated_at = EXCLUDED.updated_at;`
	_, err := r.db.ExecContext(ctx, q, d.Day, d.Completed, d.UpdatedAt)
	return err
}

// CompletedDays returns the day numbers marked complete, ascending.
func (r *ChallengeRepository) CompletedDays(ctx context.Context) ([]int, error) {
	const q = `SELECT day FROM challenge_days WHERE completed ORDER BY day ASC;`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []int
	for rows.Next() {
		var day int
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		out = append(out, day)
	}
	return out, rows.Err()
}
