package community

import "context"

// ListingRepository port (persistence for marketplace listings)
type ListingRepository interface {
	Save(ctx context.Context, l *Listing) error
	Latest(ctx context.Context, limit int) ([]*Listing, error)
}

// ChallengeRepository port; Upsert keys on the day number.
type ChallengeRepository interface {
	Upsert(ctx context.Context, d *ChallengeDay) error
	CompletedDays(ctx context.Context) ([]int, error)
}

// SubmissionRepository port for the remaining write-only records.
type SubmissionRepository interface {
	SaveCarbon(ctx context.Context, c *CarbonSubmission) error
	SaveVolunteer(ctx context.Context, v *VolunteerSignup) error
	SaveContact(ctx context.Context, m *ContactMessage) error
}
