package mysql

import (
	"context"
	"database/sql"

	domain "github.com/ecoverse/ecosort/internal/domain/community"
)

type ListingRepository struct {
	db *sql.DB
}

func NewListingRepository(db *sql.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

// Save insert Listing record
func (r *ListingRepository) Save(ctx context.Context, l *domain.Listing) error {
	const q = `
INSERT INTO listings
(id, title, price, item_condition, contact, emoji, seller_id, seller_name, created_at)
VALUES (?,?,?,?,?,?,?,?,?);
`
	_, err := r.db.ExecContext(ctx, q,
		l.ID, l.Title, l.Price, l.Condition, l.Contact, l.Emoji,
		l.SellerID, l.SellerName, l.CreatedAt,
	)
	return err
}

// Latest listings, newest first
func (r *ListingRepository) Latest(ctx context.Context, limit int) ([]*domain.Listing, error) {
	if limit <= 0 {
		limit = 50
	}
	const q = `
SELECT id, title, price, item_condition, contact, emoji, seller_id, seller_name, created_at
FROM listings
ORDER BY created_at DESC LIMIT ?;
`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := rows.Scan(
			&l.ID, &l.Title, &l.Price, &l.Condition, &l.Contact, &l.Emoji,
			&l.SellerID, &l.SellerName, &l.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}
