// Package order contains order-related use cases, including the allocation
// of human-readable order numbers.
package order

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bakehouse/backend/internal/application/adapter"
	domainerror "github.com/bakehouse/backend/internal/domain/error"
)

const (
	// dayKeyLayout renders the calendar day that scopes sequence contention.
	dayKeyLayout = "20060102"

	// sequenceWidth is the minimum zero-padded width of the sequence part.
	// Sequences past 999 simply widen; the width is a floor, not a cap.
	sequenceWidth = 3

	// maxDailySequence is a soft guard against runaway counters, well past
	// anything a single shop produces in a day.
	maxDailySequence = 999999
)

// dayCounter serializes allocation for one calendar day. The counter is
// seeded from the store's current maximum on first use in the process.
type dayCounter struct {
	mu     sync.Mutex
	seeded bool
	last   int
}

// NumberAllocator hands out order numbers of the form
// <prefix><YYYYMMDD><sequence>. Allocations for the same day are mutually
// exclusive; different days never contend.
type NumberAllocator struct {
	repo   adapter.OrderRepository
	prefix string

	mu   sync.Mutex
	days map[string]*dayCounter
}

// NewNumberAllocator creates a new NumberAllocator instance.
func NewNumberAllocator(repo adapter.OrderRepository, prefix string) *NumberAllocator {
	return &NumberAllocator{
		repo:   repo,
		prefix: prefix,
		days:   make(map[string]*dayCounter),
	}
}

// Next allocates the next order number for the calendar day of at. The
// observe-max-then-claim step runs under the day's lock, so N concurrent
// callers on the same day receive N distinct sequences.
func (a *NumberAllocator) Next(ctx context.Context, at time.Time) (string, error) {
	day := at.Format(dayKeyLayout)
	counter := a.counterFor(day)

	counter.mu.Lock()
	defer counter.mu.Unlock()

	if !counter.seeded {
		max, err := a.repo.MaxSequenceForPrefix(ctx, a.prefix+day)
		if err != nil {
			return "", fmt.Errorf("failed to seed sequence for day %s: %w", day, err)
		}
		counter.last = max
		counter.seeded = true
	}

	if counter.last >= maxDailySequence {
		return "", domainerror.NewOrderError(
			domainerror.ErrCodeAllocationExhausted,
			fmt.Sprintf("sequence for day %s exceeded %d", day, maxDailySequence),
			domainerror.ErrAllocationExhausted,
		)
	}

	counter.last++
	return fmt.Sprintf("%s%s%0*d", a.prefix, day, sequenceWidth, counter.last), nil
}

// counterFor returns the day's counter, creating it lazily. Only the map
// access is guarded here; per-day work happens under the counter's own lock.
func (a *NumberAllocator) counterFor(day string) *dayCounter {
	a.mu.Lock()
	defer a.mu.Unlock()

	counter, ok := a.days[day]
	if !ok {
		counter = &dayCounter{}
		a.days[day] = counter
	}
	return counter
}

// Release drops the in-memory counter for the given day, forcing the next
// allocation to reseed from the store. Called when a claimed number turns
// out to collide with a concurrently persisted order.
func (a *NumberAllocator) Release(day string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if counter, ok := a.days[day]; ok {
		counter.mu.Lock()
		counter.seeded = false
		counter.mu.Unlock()
	}
}

// DayKey renders the allocation key for an instant.
func DayKey(at time.Time) string {
	return at.Format(dayKeyLayout)
}
