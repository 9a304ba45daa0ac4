package analysis

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	domain "github.com/ecoverse/ecosort/internal/domain/analysis"
)

const (
	// MaxItemLength bounds prompt size and cost per submission.
	MaxItemLength = 200

	defaultTimeout = 15 * time.Second
	retryBackoff   = 250 * time.Millisecond
)

// Service runs the item analysis pipeline: normalize the description, ask
// the generator once (with one bounded retry on transport failure), then
// sanitize the raw text into a typed Result. Results are never cached; every
// submission is a fresh call.
//
// Service is safe for concurrent use; each call owns all of its state.
type Service struct {
	Gen         domain.Generator
	Transcripts domain.TranscriptStore
	Timeout     time.Duration
}

func NewService(gen domain.Generator, transcripts domain.TranscriptStore) *Service {
	return &Service{Gen: gen, Transcripts: transcripts, Timeout: defaultTimeout}
}

// Normalize validates and trims the user-supplied item description. Pure; no
// generator call is made for rejected input.
func Normalize(item string) (string, error) {
	trimmed := strings.TrimSpace(item)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty description", domain.ErrInvalidItem)
	}
	if len(trimmed) > MaxItemLength {
		return "", fmt.Errorf("%w: description exceeds %d characters", domain.ErrInvalidItem, MaxItemLength)
	}
	return trimmed, nil
}

// Analyze runs one submission through the pipeline.
func (s *Service) Analyze(ctx context.Context, item string) (*domain.Result, error) {
	normalized, err := Normalize(item)
	if err != nil {
		return nil, err
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	raw, err := s.generate(ctx, normalized)
	if err != nil {
		return nil, err
	}

	res, err := domain.Sanitize(raw)
	if err != nil {
		s.archive(normalized, raw)
		return nil, err
	}
	return res, nil
}

// generate calls the provider, retrying once after a short backoff when the
// failure is transport-level. Timeouts and provider-side errors are not
// retried.
func (s *Service) generate(ctx context.Context, item string) (string, error) {
	raw, err := s.Gen.Generate(ctx, item)
	if err == nil {
		return raw, nil
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "", domain.ErrAnalysisTimeout
	}
	if !errors.Is(err, domain.ErrServiceUnavailable) {
		return "", err
	}

	select {
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", domain.ErrAnalysisTimeout
		}
		return "", fmt.Errorf("%w: %v", domain.ErrServiceUnavailable, ctx.Err())
	case <-time.After(retryBackoff):
	}

	raw, err = s.Gen.Generate(ctx, item)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", domain.ErrAnalysisTimeout
		}
		return "", err
	}
	return raw, nil
}

// archive keeps the raw model text for diagnostics. The text is logged and
// stored server-side only; archive failures must not mask the pipeline error.
func (s *Service) archive(item, raw string) {
	log.Printf("analysis sanitize failed item=%q raw=%q", item, raw)
	if s.Transcripts == nil {
		return
	}
	key := fmt.Sprintf("transcripts/%s.txt", uuid.New().String())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := s.Transcripts.Archive(ctx, key, []byte(raw)); err != nil {
		log.Printf("transcript archive failed key=%s: %v", key, err)
	}
}
