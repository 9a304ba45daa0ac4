package payments

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Simulated issues gateway-shaped client secrets without calling a real
// payment service. The secret format mirrors what the frontend widget
// expects from a hosted gateway.
type Simulated struct{}

func NewSimulated() *Simulated { return &Simulated{} }

func (s *Simulated) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("amount must be positive")
	}
	if currency == "" {
		return "", fmt.Errorf("currency is required")
	}
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	secret := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("pi_%s_secret_%s", id[:24], secret[:24]), nil
}
