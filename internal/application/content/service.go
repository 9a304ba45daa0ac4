package content

import (
	domain "github.com/ecoverse/ecosort/internal/domain/content"
)

// Service serves the static news and events feeds.
type Service struct {
	news   []domain.NewsItem
	events []domain.Event
}

func NewService() *Service {
	return &Service{
		news:   domain.SeedNews(),
		events: domain.SeedEvents(),
	}
}

func (s *Service) News() []domain.NewsItem { return s.news }

func (s *Service) Events() []domain.Event { return s.events }
