package console

import (
	"context"
	"fmt"

	"github.com/malikacodes/nursing-game/internal/game"
)

var _ game.Player = (*Console)(nil)

func (c *Console) Choose(ctx context.Context, p game.Prompt) (int, error) {
	s := p.Scenario
	c.println("\n" + c.styles.title.Render("=== "+s.Title+" ==="))
	c.println(s.Description)
	c.println()

	if m := p.Mistake; m != nil {
		c.println(c.styles.warning.Render("WARNING: Due to low efficiency, you made a mistake!"))
		c.printf("• Patient Care decreased by %d%%\n", m.PatientCare)
		c.printf("• Reputation decreased by %d%%\n", m.Reputation)
		c.printf("• Stress increased by %d%%\n\n", m.Stress)
	}

	for i, label := range s.Labels() {
		c.printf("%d) %s\n", i+1, label)
	}
	c.println()

	n, err := c.askChoice(ctx, len(s.Options))
	if err != nil {
		return 0, err
	}
	return n - 1, nil
}

func (c *Console) LeaveEarly(ctx context.Context) (bool, error) {
	return c.confirm(ctx, "Do you need to leave early due to illness?", false)
}

// WorkOvertime offers the break-or-overtime menu printed with
// EventBreakRequired.
func (c *Console) WorkOvertime(ctx context.Context) (bool, error) {
	c.println()
	n, err := c.askChoice(ctx, 2)
	if err != nil {
		return false, err
	}
	return n == 2, nil
}

func (c *Console) Continue(ctx context.Context) (bool, error) {
	return c.confirm(ctx, "Continue to next shift?", true)
}

func (c *Console) Notify(_ context.Context, ev game.Event) {
	switch ev.Kind {
	case game.EventShiftStarted:
		sess := ev.Session
		c.println("\n" + c.styles.heading.Render(fmt.Sprintf("=== Shift %d (%s) ===", sess.Shift, sess.Phase.Description())))
		c.printf("Consecutive shifts worked: %d\n", sess.Consecutive)
		c.println(c.statsTable(sess.Nurse.Stats().Snapshot()))
		c.println(c.financeLine(sess.Nurse.Finances().Snapshot()))

	case game.EventNoScenario:
		c.println("\nNo appropriate scenarios available for your specialization this shift.")

	case game.EventOutcome:
		if ev.Outcome != nil {
			c.printf("\nOutcome: %s\n", ev.Outcome.Description)
		}
		c.println("\nImpact of your decision:")
		c.renderChanges(ev.Changes)
		if paid := ev.SavingsAfter.Sub(ev.SavingsBefore); !paid.IsZero() {
			c.printf("Savings: %s ($%s → $%s)\n", signedMoney(paid), ev.SavingsBefore.StringFixed(2), ev.SavingsAfter.StringFixed(2))
		} else if ev.Outcome != nil && ev.Outcome.Financial.IsNegative() {
			c.printf("Savings: unchanged, could not afford $%s\n", ev.Outcome.Financial.Neg().StringFixed(2))
		}
		c.println()

	case game.EventFollowUp:
		c.println("\nFollow-up situation:")

	case game.EventLeftEarly:
		c.println("\nLeaving shift early due to illness...")
		c.printf("Pay: -$%s (Received: $%s instead of $%s)\n",
			ev.FullPay.Sub(ev.Paid).StringFixed(2), ev.Paid.StringFixed(2), ev.FullPay.StringFixed(2))
		c.renderChanges(ev.Changes)

	case game.EventBreakRequired:
		if ev.Forced {
			eff := ev.Session.Nurse.Stats().Efficiency()
			c.printf("\nYour efficiency is too low (%d%%) to safely work overtime.\n", eff)
			c.println("You must take a break to recover.")
			return
		}
		c.printf("\nYou've worked %d consecutive shifts.\n", ev.MaxConsecutive)
		c.println("1. Take a mandatory break")
		c.println("2. Work overtime (Warning: This will decrease efficiency and increase mistake probability)")

	case game.EventOvertime:
		c.println("\nWorking overtime...")
		c.renderChanges(ev.Changes)
		c.printf("Overtime pay: 1.5x regular rate (+$%s)\n", ev.Paid.StringFixed(2))
		if ev.LowEfficiency {
			c.println("\n" + c.styles.warning.Render("WARNING: Your efficiency is dangerously low!"))
			c.println("You are now more likely to make mistakes in patient care.")
		}

	case game.EventBreak:
		c.println("\nYou took a mandatory break.")
		c.renderChanges(ev.Changes)
		c.printf("\nReturning to %s\n", ev.Session.Phase.Description())

	case game.EventGameOver:
		c.gameOver(ev)
	}
}

func (c *Console) gameOver(ev game.Event) {
	s := ev.Summary
	if s == nil {
		return
	}
	c.println("\n" + c.styles.heading.Render("=== Game Over ==="))
	c.printf("You completed %d shifts as a %s nurse!\n", s.ShiftsCompleted, s.Specialization)
	c.println("\nFinal Status:")
	c.println(c.statsTable(s.Stats))
	c.println("\nFinancial Status:")
	c.printf("• Final Salary: $%s/year\n", s.Finances.Salary.StringFixed(2))
	c.printf("• Savings: $%s\n", s.Finances.Savings.StringFixed(2))
	if t := s.Telemetry; t.Scenarios > 0 {
		c.println("\n" + c.styles.dim.Render(fmt.Sprintf("%d scenarios handled, %d mistakes, %d breaks, %d overtime shifts.",
			t.Scenarios, t.Mistakes, t.Breaks, t.Overtimes)))
	}
}
