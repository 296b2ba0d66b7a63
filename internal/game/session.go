package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/malikacodes/nursing-game/internal/nurse"
	"github.com/malikacodes/nursing-game/internal/scenario"
)

var ErrTierMismatch = errors.New("catalog tier does not match nurse")

// Session is all mutable state of one game. The engine threads it through
// every call instead of holding it.
type Session struct {
	ID      uuid.UUID
	Nurse   *nurse.Nurse
	Catalog *scenario.Catalog

	Phase       Phase
	Shift       int
	Consecutive int
	Answered    int
	Completed   int

	StartedAt time.Time
}

// NewSession starts a game on shift 1 in the given phase.
func NewSession(n *nurse.Nurse, c *scenario.Catalog, start Phase, now time.Time) (*Session, error) {
	if n == nil || c == nil {
		return nil, errors.New("session needs a nurse and a catalog")
	}
	if n.Tier() != "" && n.Tier() != c.Tier() {
		return nil, fmt.Errorf("%w: nurse is %s, catalog is %s", ErrTierMismatch, n.Tier(), c.Tier())
	}
	if !start.valid() {
		return nil, fmt.Errorf("invalid start phase %d", start)
	}
	return &Session{
		ID:        uuid.New(),
		Nurse:     n,
		Catalog:   c,
		Phase:     start,
		Shift:     1,
		StartedAt: now,
	}, nil
}
