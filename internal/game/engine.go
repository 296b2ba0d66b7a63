package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/malikacodes/nursing-game/internal/config"
	"github.com/malikacodes/nursing-game/internal/nurse"
	"github.com/malikacodes/nursing-game/internal/random"
	"github.com/malikacodes/nursing-game/internal/scenario"
	"github.com/malikacodes/nursing-game/internal/stats"
	"github.com/malikacodes/nursing-game/internal/telemetry"
)

var ErrChoiceOutOfRange = errors.New("choice out of range")

// Engine runs shifts for a Session. It holds no game state of its own.
type Engine struct {
	Balance config.Balance
	Rand    random.Source
	Events  telemetry.Repository
	Clock   Clock
	Logger  *log.Logger
}

// ShiftReport summarizes one processed shift.
type ShiftReport struct {
	Shift     int             `json:"shift"`
	Phase     string          `json:"phase"`
	Night     bool            `json:"night"`
	NightPay  decimal.Decimal `json:"night_pay"`
	Presented []string        `json:"presented"`
	Skipped   int             `json:"skipped"`
	Mistakes  int             `json:"mistakes"`
	LeftEarly bool            `json:"left_early"`
}

// BreakReport says how a required break was resolved.
type BreakReport struct {
	Overtime      bool            `json:"overtime"`
	Forced        bool            `json:"forced"`
	Differential  decimal.Decimal `json:"differential"`
	LowEfficiency bool            `json:"low_efficiency"`
}

func (e Engine) logf(format string, args ...any) {
	if e.Logger != nil {
		e.Logger.Printf(format, args...)
	}
}

func (e Engine) logReport(kind string, v any) {
	if e.Logger == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		e.logf("%s report: %v", kind, err)
		return
	}
	e.logf("%s report: %s", kind, b)
}

func (e Engine) record(et telemetry.EventType, md telemetry.EventMetadata) {
	if e.Events == nil {
		return
	}
	if err := e.Events.RecordEvent(et, md); err != nil {
		e.logf("telemetry: record %s: %v", et, err)
	}
}

// NewSession starts a session stamped with the engine clock.
func (e Engine) NewSession(n *nurse.Nurse, c *scenario.Catalog, start Phase) (*Session, error) {
	return NewSession(n, c, start, e.now())
}

func (e Engine) now() time.Time {
	if e.Clock == nil {
		return time.Now()
	}
	return e.Clock.Now()
}

// ProcessShift plays one shift: ambient specialization effects, a first
// half of scenarios, the offer to leave early, then a second half drawn
// without repeating anything from the first.
func (e Engine) ProcessShift(ctx context.Context, sess *Session, p Player) (ShiftReport, error) {
	n := sess.Nurse
	night := sess.Phase.IsNight()

	sess.Answered = 0
	report := ShiftReport{Shift: sess.Shift, Phase: sess.Phase.String(), Night: night}
	report.NightPay = n.ApplyShiftEffects(night, e.Balance.NightShiftStress)
	sess.Completed++

	e.logf("shift %d (%s): stress=%d efficiency=%d", sess.Shift, sess.Phase, n.Stats().Stress(), n.Stats().Efficiency())
	e.record(telemetry.EventShiftStarted, telemetry.EventMetadata{
		"shift": sess.Shift,
		"phase": sess.Phase.String(),
		"night": night,
	})
	if night {
		e.record(telemetry.EventNightPayReceived, telemetry.EventMetadata{
			"amount": report.NightPay.StringFixed(2),
		})
	}

	var drawn []*scenario.Scenario
	playHalf := func() error {
		half := e.draw(sess, drawn)
		for _, s := range half {
			if s != nil {
				drawn = append(drawn, s)
			}
		}
		for _, s := range half {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := e.present(ctx, sess, p, s, &report); err != nil {
				return err
			}
			sess.Answered++
		}
		return nil
	}

	if err := playHalf(); err != nil {
		return report, err
	}

	leave, err := p.LeaveEarly(ctx)
	if err != nil {
		return report, fmt.Errorf("leave early: %w", err)
	}
	if leave {
		e.leaveEarly(ctx, sess, p)
		report.LeftEarly = true
		return report, nil
	}

	if err := playHalf(); err != nil {
		return report, err
	}
	return report, nil
}

// draw picks ScenariosPerHalf scenarios, none of them in exclude or
// repeated. Slots with nothing eligible are nil.
func (e Engine) draw(sess *Session, exclude []*scenario.Scenario) []*scenario.Scenario {
	night := sess.Phase.IsNight()
	spec := sess.Nurse.Specialization()
	seen := append([]*scenario.Scenario(nil), exclude...)

	out := make([]*scenario.Scenario, 0, e.Balance.ScenariosPerHalf)
	for i := 0; i < e.Balance.ScenariosPerHalf; i++ {
		s, ok := sess.Catalog.Draw(e.Rand, night, spec, seen)
		if !ok {
			out = append(out, nil)
			continue
		}
		seen = append(seen, s)
		out = append(out, s)
	}
	return out
}

func (e Engine) present(ctx context.Context, sess *Session, p Player, s *scenario.Scenario, report *ShiftReport) error {
	if s == nil {
		report.Skipped++
		e.record(telemetry.EventScenarioUnavailable, telemetry.EventMetadata{"shift": sess.Shift})
		p.Notify(ctx, Event{Kind: EventNoScenario, Session: sess})
		return nil
	}
	report.Presented = append(report.Presented, s.Title)
	return e.resolve(ctx, sess, p, s, 0, report)
}

// MistakeChance is the percent chance of a mistake at efficiency.
func (e Engine) MistakeChance(efficiency int) int {
	return e.Balance.MistakeChance(efficiency)
}

// rollMistake applies the mistake penalty when the roll fails. The random
// source is only used when the chance is above zero.
func (e Engine) rollMistake(sess *Session) *Mistake {
	st := sess.Nurse.Stats()
	chance := e.MistakeChance(st.Efficiency())
	if chance <= 0 || e.Rand.Intn(100) >= chance {
		return nil
	}

	m := &Mistake{
		Chance:      chance,
		PatientCare: e.Balance.MistakePatientCarePenalty,
		Reputation:  e.Balance.MistakeReputationPenalty,
		Stress:      e.Balance.MistakeStressPenalty,
	}
	st.DecreasePatientCare(m.PatientCare)
	st.DecreaseReputation(m.Reputation)
	st.AddStress(m.Stress)
	return m
}

// resolve rolls for a mistake, asks for a choice, applies it and then
// resolves the chosen option's follow-up the same way.
func (e Engine) resolve(ctx context.Context, sess *Session, p Player, s *scenario.Scenario, depth int, report *ShiftReport) error {
	if depth >= e.Balance.FollowUpDepthLimit {
		e.logf("follow-up %q skipped: depth limit %d reached", s.Title, e.Balance.FollowUpDepthLimit)
		return nil
	}

	n := sess.Nurse
	efficiency := n.Stats().Efficiency()
	mistake := e.rollMistake(sess)
	if mistake != nil {
		report.Mistakes++
		e.record(telemetry.EventMistakeMade, telemetry.EventMetadata{
			"scenario":   s.Title,
			"efficiency": efficiency,
			"chance":     mistake.Chance,
		})
	}

	e.record(telemetry.EventScenarioPresented, telemetry.EventMetadata{
		"title":      s.Title,
		"id":         s.ID,
		"difficulty": s.Difficulty,
		"follow_up":  depth > 0,
	})
	if depth > 0 {
		e.record(telemetry.EventFollowUpPresented, telemetry.EventMetadata{"title": s.Title})
	}

	choice, err := p.Choose(ctx, Prompt{Scenario: s, FollowUp: depth > 0, Mistake: mistake})
	if err != nil {
		return fmt.Errorf("choose option for %q: %w", s.Title, err)
	}
	if choice < 0 || choice >= len(s.Options) {
		return fmt.Errorf("%w: %d for %q with %d options", ErrChoiceOutOfRange, choice+1, s.Title, len(s.Options))
	}

	before := n.Stats().Snapshot()
	savings := n.Finances().Savings()
	res := s.SelectOption(choice, n)
	changes := stats.Diff(before, n.Stats().Snapshot())

	e.logf("%q option %d: %s", s.Title, choice+1, strings.Join(res.Outcome.Effects(), ", "))
	e.record(telemetry.EventOptionChosen, telemetry.EventMetadata{
		"title":  s.Title,
		"option": choice,
		"label":  s.Options[choice].Label,
	})
	p.Notify(ctx, Event{
		Kind:          EventOutcome,
		Session:       sess,
		Scenario:      s,
		Outcome:       res.Outcome,
		Changes:       changes,
		SavingsBefore: savings,
		SavingsAfter:  n.Finances().Savings(),
	})

	if !res.HasFollowUp() {
		return nil
	}
	p.Notify(ctx, Event{Kind: EventFollowUp, Session: sess, Scenario: res.FollowUp})
	return e.resolve(ctx, sess, p, res.FollowUp, depth+1, report)
}

func (e Engine) leaveEarly(ctx context.Context, sess *Session, p Player) {
	n := sess.Nurse
	st := n.Stats()
	before := st.Snapshot()

	full := n.Finances().CalculateShiftPay()
	paid := n.Finances().AdjustSalaryForPartialShift()
	st.DecreaseReputation(e.Balance.EarlyDepartureReputationLoss)
	st.ReduceStress(e.Balance.EarlyDepartureStressRelief)
	st.ImproveEfficiency(e.Balance.EarlyDepartureEfficiencyGain)

	e.record(telemetry.EventLeftEarly, telemetry.EventMetadata{
		"shift": sess.Shift,
		"paid":  paid.StringFixed(2),
	})
	p.Notify(ctx, Event{
		Kind:    EventLeftEarly,
		Session: sess,
		FullPay: full,
		Paid:    paid,
		Changes: stats.Diff(before, st.Snapshot()),
	})
}

// TakeBreak resolves a required break. With enough efficiency the player
// may work overtime instead; otherwise the break is forced. Either way the
// consecutive-shift counter resets. The phase does not advance.
func (e Engine) TakeBreak(ctx context.Context, sess *Session, p Player) (BreakReport, error) {
	n := sess.Nurse
	st := n.Stats()
	forced := st.Efficiency() < e.Balance.OvertimeMinEfficiency

	p.Notify(ctx, Event{
		Kind:           EventBreakRequired,
		Session:        sess,
		Forced:         forced,
		MaxConsecutive: e.Balance.MaxConsecutiveShifts,
	})

	if !forced {
		overtime, err := p.WorkOvertime(ctx)
		if err != nil {
			return BreakReport{}, fmt.Errorf("overtime: %w", err)
		}
		if overtime {
			return e.workOvertime(ctx, sess, p), nil
		}
	}

	before := st.Snapshot()
	sess.Consecutive = 0
	st.ReduceStress(e.Balance.BreakStressRelief)
	st.ImproveEfficiency(e.Balance.BreakEfficiencyGain)

	e.record(telemetry.EventBreakTaken, telemetry.EventMetadata{"shift": sess.Shift, "forced": forced})
	p.Notify(ctx, Event{Kind: EventBreak, Session: sess, Forced: forced, Changes: stats.Diff(before, st.Snapshot())})
	return BreakReport{Forced: forced}, nil
}

func (e Engine) workOvertime(ctx context.Context, sess *Session, p Player) BreakReport {
	n := sess.Nurse
	st := n.Stats()
	before := st.Snapshot()

	st.DecreaseEfficiency(e.Balance.OvertimeEfficiencyCost)
	st.AddStress(e.Balance.OvertimeStress)
	var diff decimal.Decimal
	if e.Balance.OvertimeRaisesBaseSalary {
		diff = n.Finances().ApplyOvertimePay()
	} else {
		diff = n.Finances().CreditOvertime()
	}
	sess.Consecutive = 0
	low := st.Efficiency() < e.Balance.LowEfficiencyWarning

	e.logf("overtime: differential %s, salary now %s", diff.StringFixed(2), n.Finances().Salary().StringFixed(2))
	e.record(telemetry.EventOvertimeWorked, telemetry.EventMetadata{
		"shift":        sess.Shift,
		"differential": diff.StringFixed(2),
		"compounding":  e.Balance.OvertimeRaisesBaseSalary,
	})
	p.Notify(ctx, Event{
		Kind:          EventOvertime,
		Session:       sess,
		Paid:          diff,
		LowEfficiency: low,
		Changes:       stats.Diff(before, st.Snapshot()),
	})
	return BreakReport{Overtime: true, Differential: diff, LowEfficiency: low}
}

// Advance moves the session to the next shift.
func (e Engine) Advance(sess *Session) {
	sess.Shift++
	sess.Consecutive++
	sess.Phase = sess.Phase.Next()
}

// Run plays shifts until the player declines to continue. After a shift
// that reaches the consecutive limit a break is taken instead of asking,
// and the same shift slot is played again.
func (e Engine) Run(ctx context.Context, sess *Session, p Player) (Summary, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Summary{}, err
		}

		p.Notify(ctx, Event{Kind: EventShiftStarted, Session: sess})
		shift, err := e.ProcessShift(ctx, sess, p)
		if err != nil {
			return Summary{}, err
		}
		e.logReport("shift", shift)

		if sess.Consecutive >= e.Balance.MaxConsecutiveShifts {
			brk, err := e.TakeBreak(ctx, sess, p)
			if err != nil {
				return Summary{}, err
			}
			e.logReport("break", brk)
			continue
		}

		more, err := p.Continue(ctx)
		if err != nil {
			return Summary{}, fmt.Errorf("continue: %w", err)
		}
		if !more {
			break
		}
		e.Advance(sess)
	}

	e.record(telemetry.EventGameEnded, telemetry.EventMetadata{
		"shifts":         sess.Completed,
		"specialization": string(sess.Nurse.Specialization()),
	})
	summary, err := e.Summarize(sess)
	if err != nil {
		return Summary{}, err
	}
	p.Notify(ctx, Event{Kind: EventGameOver, Session: sess, Summary: &summary})
	return summary, nil
}
