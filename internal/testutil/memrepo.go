// Package testutil provides in-memory fakes shared by package tests.
package testutil

import (
	"context"
	"sort"
	"sync"

	domain "github.com/ecoverse/ecosort/internal/domain/community"
)

// MemListingRepo is an in-memory ListingRepository.
type MemListingRepo struct {
	mu       sync.Mutex
	listings []*domain.Listing
	SaveErr  error
}

func (r *MemListingRepo) Save(ctx context.Context, l *domain.Listing) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *l
	r.listings = append(r.listings, &cp)
	return nil
}

func (r *MemListingRepo) Latest(ctx context.Context, limit int) ([]*domain.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Listing, len(r.listings))
	copy(out, r.listings)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// MemChallengeRepo is an in-memory ChallengeRepository keyed by day.
type MemChallengeRepo struct {
	mu   sync.Mutex
	days map[int]*domain.ChallengeDay
}

func (r *MemChallengeRepo) Upsert(ctx context.Context, d *domain.ChallengeDay) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.days == nil {
		r.days = make(map[int]*domain.ChallengeDay)
	}
	cp := *d
	r.days[d.Day] = &cp
	return nil
}

func (r *MemChallengeRepo) CompletedDays(ctx context.Context) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []int
	for day, d := range r.days {
		if d.Completed {
			out = append(out, day)
		}
	}
	sort.Ints(out)
	return out, nil
}

// MemSubmissionRepo is an in-memory SubmissionRepository.
type MemSubmissionRepo struct {
	mu         sync.Mutex
	Carbon     []*domain.CarbonSubmission
	Volunteers []*domain.VolunteerSignup
	Contacts   []*domain.ContactMessage
	SaveErr    error
}

func (r *MemSubmissionRepo) SaveCarbon(ctx context.Context, c *domain.CarbonSubmission) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.Carbon = append(r.Carbon, &cp)
	return nil
}

func (r *MemSubmissionRepo) SaveVolunteer(ctx context.Context, v *domain.VolunteerSignup) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *v
	r.Volunteers = append(r.Volunteers, &cp)
	return nil
}

func (r *MemSubmissionRepo) SaveContact(ctx context.Context, m *domain.ContactMessage) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *m
	r.Contacts = append(r.Contacts, &cp)
	return nil
}
