package community

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ecoverse/ecosort/internal/application"
	domain "github.com/ecoverse/ecosort/internal/domain/community"
)

// Service implements the use-cases behind the community endpoints.
// Thread-safe; every call works on its own record.
type Service struct {
	Listings    domain.ListingRepository
	Challenges  domain.ChallengeRepository
	Submissions domain.SubmissionRepository
	Clock       application.Clock
}

// CreateListingCommand carries the fields a seller submits.
type CreateListingCommand struct {
	Title      string
	Price      string
	Condition  string
	Contact    string
	Emoji      string
	SellerID   string
	SellerName string
}

func (s *Service) CreateListing(ctx context.Context, cmd CreateListingCommand) (*domain.Listing, error) {
	if strings.TrimSpace(cmd.Title) == "" {
		return nil, fmt.Errorf("listing title is required")
	}
	l := &domain.Listing{
		ID:         domain.ListingID(uuid.New().String()),
		Title:      strings.TrimSpace(cmd.Title),
		Price:      cmd.Price,
		Condition:  cmd.Condition,
		Contact:    cmd.Contact,
		Emoji:      cmd.Emoji,
		SellerID:   cmd.SellerID,
		SellerName: cmd.SellerName,
		CreatedAt:  s.Clock.Now(),
	}
	if err := s.Listings.Save(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// LatestListings returns up to limit listings, newest first.
func (s *Service) LatestListings(ctx context.Context, limit int) ([]*domain.Listing, error) {
	return s.Listings.Latest(ctx, limit)
}

// SetChallengeDay upserts one day of the daily challenge.
func (s *Service) SetChallengeDay(ctx context.Context, day int, completed bool) error {
	if day < 1 {
		return fmt.Errorf("challenge day must be positive")
	}
	return s.Challenges.Upsert(ctx, &domain.ChallengeDay{
		Day:       day,
		Completed: completed,
		UpdatedAt: s.Clock.Now(),
	})
}

// CompletedChallengeDays returns the day numbers marked complete.
func (s *Service) CompletedChallengeDays(ctx context.Context) ([]int, error) {
	days, err := s.Challenges.CompletedDays(ctx)
	if err != nil {
		return nil, err
	}
	if days == nil {
		days = []int{}
	}
	return days, nil
}

// SubmitCarbon scores a footprint questionnaire and stores the submission.
// Scoring mirrors the questionnaire weights: car and meat dominate.
func (s *Service) SubmitCarbon(ctx context.Context, commute, diet string) (int, error) {
	score := 1000
	if strings.Contains(commute, "Car") {
		score += 500
	}
	if strings.Contains(commute, "EV") {
		score += 200
	}
	if strings.Contains(diet, "Meat") {
		score += 600
	}
	if strings.Contains(diet, "Vegan") {
		score -= 100
	}

	sub := &domain.CarbonSubmission{
		ID:        uuid.New().String(),
		Commute:   commute,
		Diet:      diet,
		Score:     score,
		CreatedAt: s.Clock.Now(),
	}
	if err := s.Submissions.SaveCarbon(ctx, sub); err != nil {
		return 0, err
	}
	return score, nil
}

func (s *Service) SignUpVolunteer(ctx context.Context, name, email, interests string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("volunteer name is required")
	}
	return s.Submissions.SaveVolunteer(ctx, &domain.VolunteerSignup{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		Email:     email,
		Interests: interests,
		CreatedAt: s.Clock.Now(),
	})
}

func (s *Service) SubmitContact(ctx context.Context, email, message string) error {
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("contact message is required")
	}
	return s.Submissions.SaveContact(ctx, &domain.ContactMessage{
		ID:        uuid.New().String(),
		Email:     email,
		Message:   strings.TrimSpace(message),
		CreatedAt: s.Clock.Now(),
	})
}
