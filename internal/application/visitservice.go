// Package application contains the services that sit between the driving
// adapters (HTTP, CLI) and the driven ports. Services depend only on port
// interfaces so they can be tested with substitute stores.
package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ericfisherdev/nametrack/internal/domain/model"
	"github.com/ericfisherdev/nametrack/internal/domain/port/driven"
)

// ErrEmptyName is returned by Greet when the visitor name is empty. The HTTP
// router cannot produce an empty path segment, but other callers can.
var ErrEmptyName = errors.New("name must not be empty")

// lastSeenFormat renders timestamps in greetings and reports.
const lastSeenFormat = "2006-01-02 15:04:05"

// VisitService implements the visit-tracking use cases over the VisitStore port.
type VisitService struct {
	visits driven.VisitStore
	now    func() time.Time
}

// NewVisitService creates a VisitService using the wall clock.
func NewVisitService(visits driven.VisitStore) *VisitService {
	return &VisitService{
		visits: visits,
		now:    time.Now,
	}
}

// Greet records a visit for name and returns the personalized greeting.
// The greeting intentionally reports the count *before* this visit ("times
// previously"), not the new total; the stored record carries the new total.
func (s *VisitService) Greet(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", ErrEmptyName
	}

	receipt, err := s.visits.RecordVisit(ctx, name, s.now())
	if err != nil {
		return "", fmt.Errorf("record visit: %w", err)
	}

	if receipt.First() {
		return fmt.Sprintf("Hello %s! This is your first visit!", name), nil
	}

	return fmt.Sprintf(
		"Hello %s! You've been called %d times previously. Last seen: %s",
		name,
		receipt.PreviousCount,
		receipt.PreviousLastSeen.UTC().Format(lastSeenFormat),
	), nil
}

// TopNames returns up to limit records ranked descending by the given order.
func (s *VisitService) TopNames(ctx context.Context, limit int, order model.SortOrder) ([]model.VisitRecord, error) {
	return s.visits.ListTop(ctx, limit, order)
}

// Reset irreversibly removes every visit record.
func (s *VisitService) Reset(ctx context.Context) error {
	return s.visits.ClearAll(ctx)
}
