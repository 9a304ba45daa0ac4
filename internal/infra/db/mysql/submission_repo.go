package mysql

import (
	"context"
	"database/sql"

	domain "github.com/ecoverse/ecosort/internal/domain/community"
)

// SubmissionRepository persists the write-only records: carbon submissions,
// volunteer signups, contact messages.
type SubmissionRepository struct {
	db *sql.DB
}

func NewSubmissionRepository(db *sql.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) SaveCarbon(ctx context.Context, c *domain.CarbonSubmission) error {
	const q = `
INSERT INTO carbon_submissions (id, commute, diet, score, created_at)
VALUES (?,?,?,?,?);
`
	_, err := r.db.ExecContext(ctx, q, c.ID, c.Commute, c.Diet, c.Score, c.CreatedAt)
	return err
}

func (r *SubmissionRepository) SaveVolunteer(ctx context.Context, v *domain.VolunteerSignup) error {
	const q = `
INSERT INTO volunteer_signups (id, name, email, interests, created_at)
VALUES (?,?,?,?,?);
`
	_, err := r.db.ExecContext(ctx, q, v.ID, v.Name, v.Email, v.Interests, v.CreatedAt)
	return err
}

func (r *SubmissionRepository) SaveContact(ctx context.Context, m *domain.ContactMessage) error {
	const q = `
INSERT INTO contact_messages (id, email, message, created_at)
VALUES (?,?,?,?);
`
	_, err := r.db.ExecContext(ctx, q, m.ID, m.Email, m.Message, m.CreatedAt)
	return err
}
