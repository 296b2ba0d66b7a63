package telemetry

import (
	"slices"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

// Repository stores the events of a game.
type Repository interface {
	RecordEvent(eventType EventType, metadata EventMetadata) error
	Events(f Filter) ([]Event, error)
	Clear() error
}

// Filter selects events. A zero Filter matches everything.
type Filter struct {
	Since time.Time
	Types []EventType
}

func (f Filter) match(e Event) bool {
	if e.Timestamp.Before(f.Since) {
		return false
	}
	return len(f.Types) == 0 || slices.Contains(f.Types, e.Type)
}

// MemoryRepository keeps one game's events in memory, in recording order.
type MemoryRepository struct {
	mu     sync.RWMutex
	events []Event
	now    func() time.Time
}

// NewMemoryRepository stamps events with now, or time.Now when nil.
func NewMemoryRepository(now func() time.Time) *MemoryRepository {
	if now == nil {
		now = time.Now
	}
	return &MemoryRepository{now: now}
}

// RecordEvent appends an event. IDs count from 1 and restart after Clear.
func (r *MemoryRepository) RecordEvent(eventType EventType, metadata EventMetadata) error {
	raw, err := json.Marshal(metadata)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{
		ID:        len(r.events) + 1,
		Type:      eventType,
		Timestamp: r.now(),
		Metadata:  string(raw),
	})
	return nil
}

func (r *MemoryRepository) Events(f Filter) ([]Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Event, 0, len(r.events))
	for _, e := range r.events {
		if f.match(e) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *MemoryRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
	return nil
}
