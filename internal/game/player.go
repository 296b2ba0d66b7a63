package game

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/malikacodes/nursing-game/internal/scenario"
	"github.com/malikacodes/nursing-game/internal/stats"
)

// Player makes the decisions the engine cannot. Implementations block on
// input; an error ends the game.
type Player interface {
	// Choose returns a zero-based option index for the prompt.
	Choose(ctx context.Context, p Prompt) (int, error)
	LeaveEarly(ctx context.Context) (bool, error)
	// WorkOvertime is only asked when efficiency allows overtime.
	WorkOvertime(ctx context.Context) (bool, error)
	Continue(ctx context.Context) (bool, error)
	Notify(ctx context.Context, ev Event)
}

// Prompt is one scenario waiting for a choice.
type Prompt struct {
	Scenario *scenario.Scenario
	FollowUp bool
	// Mistake is set when a mistake penalty was applied before this prompt.
	Mistake *Mistake
}

// Mistake is the penalty applied by a failed mistake roll.
type Mistake struct {
	Chance      int
	PatientCare int
	Reputation  int
	Stress      int
}

type EventKind string

const (
	EventShiftStarted  EventKind = "shift_started"
	EventNoScenario    EventKind = "no_scenario"
	EventOutcome       EventKind = "outcome"
	EventFollowUp      EventKind = "follow_up"
	EventLeftEarly     EventKind = "left_early"
	EventBreakRequired EventKind = "break_required"
	EventOvertime      EventKind = "overtime"
	EventBreak         EventKind = "break"
	EventGameOver      EventKind = "game_over"
)

// Event tells the player what happened. Only the fields relevant to Kind
// are set.
type Event struct {
	Kind    EventKind
	Session *Session

	Scenario *scenario.Scenario
	Outcome  *scenario.Outcome
	Changes  []stats.Change

	// Outcome: savings around the choice. They are equal when a cost was
	// refused for lack of funds.
	SavingsBefore decimal.Decimal
	SavingsAfter  decimal.Decimal

	// LeftEarly: FullPay is what the shift would have paid, Paid what was
	// credited. Overtime: Paid is the differential.
	FullPay decimal.Decimal
	Paid    decimal.Decimal

	// Forced marks a break taken because efficiency was too low for
	// overtime.
	Forced bool
	// LowEfficiency marks overtime that left efficiency below the warning
	// threshold.
	LowEfficiency bool

	MaxConsecutive int
	Summary        *Summary
}
