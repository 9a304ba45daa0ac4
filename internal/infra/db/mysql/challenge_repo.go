package mysql

import (
	"context"
	"database/sql"

	domain "github.com/ecoverse/ecosort/internal/domain/community"
)

type ChallengeRepository struct {
	db *sql.DB
}

func NewChallengeRepository(db *sql.DB) *ChallengeRepository {
	return &ChallengeRepository{db: db}
}

// Upsert keyed on day; concurrent writers race with last-write-wins.
func (r *ChallengeRepository) Upsert(ctx context.Context, d *domain.ChallengeDay) error {
	const q = `
INSERT INTO challenge_days (day, completed, updated_at)
VALUES (?,?,?)
ON DUPLICATE KEY UPDATE
 completed=VALUES(completed), updated_at=VALUES(updated_at);
`
	_, err := r.db.ExecContext(ctx, q, d.Day, d.Completed, d.UpdatedAt)
	return err
}

// CompletedDays returns the day numbers marked complete, ascending.
func (r *ChallengeRepository) CompletedDays(ctx context.Context) ([]int, error) {
	const q = `SELECT day FROM challenge_days WHERE completed=1 ORDER BY day ASC;`
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
