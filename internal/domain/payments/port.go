package payments

import "context"

// Provider port for creating payment intents. The client secret is opaque
// and handed straight to the frontend payment widget.
type Provider interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (clientSecret string, err error)
}
