package stats

import (
	"context"
	"errors"
	"time"

	"alumni-connect/internal/domain/donation"
	"alumni-connect/internal/domain/event"
	"alumni-connect/internal/domain/user"
	"alumni-connect/internal/usecase"
)

var ErrInternal = errors.New("internal error")

const (
	cacheKey = "stats:overview"
	cacheTTL = 60 * time.Second
)

type Overview struct {
	TotalAlumni     int64 `json:"total_alumni"`
	UpcomingEvents  int64 `json:"upcoming_events"`
	RecentDonations int64 `json:"recent_donations"`
}

type Service struct {
	users     user.Repository
	events    event.Repository
	donations donation.Repository
	cache     usecase.Cache

	now func() time.Time
}

func NewService(users user.Repository, events event.Repository, donations donation.Repository, cache usecase.Cache) *Service {
	return &Service{
		users:     users,
		events:    events,
		donations: donations,
		cache:     cache,
		now:       time.Now,
	}
}

// Overview returns the dashboard counters, served from cache when fresh.
func (s *Service) Overview(ctx context.Context) (Overview, error) {
	if s.cache != nil {
		var cached Overview
		if ok, err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	alumni, err := s.users.Count(ctx)
	if err != nil {
		return Overview{}, ErrInternal
	}
	upcoming, err := s.events.CountUpcoming(ctx, s.now().UTC())
	if err != nil {
		return Overview{}, ErrInternal
	}
	given, err := s.donations.Count(ctx)
	if err != nil {
		return Overview{}, ErrInternal
	}

	out := Overview{TotalAlumni: alumni, UpcomingEvents: upcoming, RecentDonations: given}
	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, cacheKey, out, cacheTTL)
	}
	return out, nil
}
