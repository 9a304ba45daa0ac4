package payments

import (
	"context"

	domain "github.com/ecoverse/ecosort/internal/domain/payments"
)

// Donation amount is fixed: $5.00.
const (
	donationAmount   = 500
	donationCurrency = "usd"
)

// Service creates payment intents for the fixed donation.
type Service struct {
	Provider domain.Provider
}

func NewService(p domain.Provider) *Service {
	return &Service{Provider: p}
}

func (s *Service) CreateDonationIntent(ctx context.Context) (string, error) {
	return s.Provider.CreateIntent(ctx, donationAmount, donationCurrency)
}
