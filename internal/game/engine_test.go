package game

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malikacodes/nursing-game/internal/config"
	"github.com/malikacodes/nursing-game/internal/nurse"
	"github.com/malikacodes/nursing-game/internal/random"
	"github.com/malikacodes/nursing-game/internal/scenario"
	"github.com/malikacodes/nursing-game/internal/stats"
	"github.com/malikacodes/nursing-game/internal/telemetry"
)

// scriptedPlayer answers from fixed scripts. An exhausted script answers
// 0 or false.
type scriptedPlayer struct {
	choices  []int
	leave    []bool
	overtime []bool
	cont     []bool

	prompts       []Prompt
	events        []Event
	overtimeAsked int
	err           error
}

func (p *scriptedPlayer) Choose(_ context.Context, pr Prompt) (int, error) {
	p.prompts = append(p.prompts, pr)
	if p.err != nil {
		return 0, p.err
	}
	if len(p.choices) == 0 {
		return 0, nil
	}
	c := p.choices[0]
	p.choices = p.choices[1:]
	return c, nil
}

func pop(s *[]bool) bool {
	if len(*s) == 0 {
		return false
	}
	v := (*s)[0]
	*s = (*s)[1:]
	return v
}

func (p *scriptedPlayer) LeaveEarly(context.Context) (bool, error) { return pop(&p.leave), nil }

func (p *scriptedPlayer) WorkOvertime(context.Context) (bool, error) {
	p.overtimeAsked++
	return pop(&p.overtime), nil
}

func (p *scriptedPlayer) Continue(context.Context) (bool, error) { return pop(&p.cont), nil }

func (p *scriptedPlayer) Notify(_ context.Context, ev Event) { p.events = append(p.events, ev) }

func (p *scriptedPlayer) titles() []string {
	out := make([]string, 0, len(p.prompts))
	for _, pr := range p.prompts {
		out = append(out, pr.Scenario.Title)
	}
	return out
}

func (p *scriptedPlayer) kinds(k EventKind) []Event {
	var out []Event
	for _, ev := range p.events {
		if ev.Kind == k {
			out = append(out, ev)
		}
	}
	return out
}

func simpleDef(id, title string, shift scenario.Shift) scenario.Definition {
	return scenario.Definition{
		ID:          id,
		Title:       title,
		Description: title + " description",
		Difficulty:  1,
		Shift:       shift,
		Options: []scenario.OptionDefinition{
			{Label: "Study the chart", Outcome: scenario.OutcomeDefinition{Description: "Learned", Knowledge: 1}},
			{Label: "Ask a colleague", Outcome: scenario.OutcomeDefinition{Description: "Helped", Knowledge: 2}},
		},
	}
}

func testDefs(perShift int) []scenario.Definition {
	var defs []scenario.Definition
	for i := 0; i < perShift; i++ {
		defs = append(defs, simpleDef(fmt.Sprintf("day-%d", i), fmt.Sprintf("Day %d", i), scenario.Day))
		defs = append(defs, simpleDef(fmt.Sprintf("night-%d", i), fmt.Sprintf("Night %d", i), scenario.Night))
	}
	return defs
}

type fixture struct {
	engine  Engine
	session *Session
	nurse   *nurse.Nurse
	rng     *random.Fixed
	events  *telemetry.MemoryRepository
}

func newFixture(t *testing.T, defs []scenario.Definition, shift nurse.ShiftPreference, efficiency int, rolls ...int) fixture {
	t.Helper()

	n, err := nurse.Create(nurse.Profile{
		Name:           "Avery",
		Specialization: nurse.MedSurg,
		Tier:           nurse.NewGrad,
		Shift:          shift,
	})
	require.NoError(t, err)
	n.Stats().SetEfficiency(efficiency)

	cat, err := scenario.NewCatalog(nurse.NewGrad, defs)
	require.NoError(t, err)

	clock := NewFakeClock(time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC), time.Second)
	rng := random.NewFixed(rolls...)
	repo := telemetry.NewMemoryRepository(clock.Now)
	e := Engine{Balance: config.Default(), Rand: rng, Events: repo, Clock: clock}

	sess, err := e.NewSession(n, cat, StartPhase(shift))
	require.NoError(t, err)
	return fixture{engine: e, session: sess, nurse: n, rng: rng, events: repo}
}

func TestProcessShift_FourDistinctScenarios(t *testing.T) {
	// MedSurg gains 2 efficiency per shift, so 80 stays clear of mistakes.
	f := newFixture(t, testDefs(4), nurse.DayShift, 80, 0, 0, 0, 0)
	p := &scriptedPlayer{choices: []int{1, 0, 1, 0}}

	report, err := f.engine.ProcessShift(context.Background(), f.session, p)
	require.NoError(t, err)

	assert.Equal(t, []string{"Day 0", "Day 1", "Day 2", "Day 3"}, p.titles())
	assert.Equal(t, p.titles(), report.Presented)
	assert.Equal(t, 4, f.session.Answered)
	assert.Equal(t, 1, f.session.Completed)
	assert.Equal(t, 4, f.rng.Calls(), "no mistake rolls at efficiency 82")
	assert.False(t, report.LeftEarly)
	assert.True(t, report.NightPay.IsZero())
	assert.Equal(t, 35+2+1+2+1, f.nurse.Stats().Knowledge())
	assert.Len(t, p.kinds(EventOutcome), 4)
}

func TestProcessShift_NeverRepeatsWithinShift(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		f := newFixture(t, testDefs(5), nurse.DayShift, 90)
		f.engine.Rand = random.New(seed)
		p := &scriptedPlayer{}

		_, err := f.engine.ProcessShift(context.Background(), f.session, p)
		require.NoError(t, err)

		seen := map[string]bool{}
		for _, title := range p.titles() {
			assert.Falsef(t, seen[title], "seed %d repeated %q", seed, title)
			seen[title] = true
		}
		assert.Len(t, seen, 4)
	}
}

func TestProcessShift_ScenarioUnavailable(t *testing.T) {
	f := newFixture(t, testDefs(1), nurse.DayShift, 80, 0)
	p := &scriptedPlayer{}

	report, err := f.engine.ProcessShift(context.Background(), f.session, p)
	require.NoError(t, err)

	assert.Equal(t, []string{"Day 0"}, p.titles())
	assert.Len(t, p.kinds(EventNoScenario), 3)
	assert.Equal(t, 3, report.Skipped)
	assert.Equal(t, 4, f.session.Answered)
	assert.Equal(t, 1, f.rng.Calls(), "only the first slot draws; empty pools consume no randomness")

	events, err := f.events.Events(telemetry.Filter{Types: []telemetry.EventType{telemetry.EventScenarioUnavailable}})
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

func TestProcessShift_MistakePenalty(t *testing.T) {
	// 27 + 2 puts efficiency at 29, the 40% bracket.
	f := newFixture(t, testDefs(4), nurse.DayShift, 27, 0, 0, 39, 40)
	p := &scriptedPlayer{leave: []bool{true}}

	report, err := f.engine.ProcessShift(context.Background(), f.session, p)
	require.NoError(t, err)
	require.Len(t, p.prompts, 2)

	m := p.prompts[0].Mistake
	require.NotNil(t, m)
	assert.Equal(t, Mistake{Chance: 40, PatientCare: 10, Reputation: 5, Stress: 10}, *m)
	assert.Nil(t, p.prompts[1].Mistake)
	assert.Equal(t, 1, report.Mistakes)

	st := f.nurse.Stats()
	assert.Equal(t, 40, st.PatientCare())
	assert.Equal(t, 30-5-5, st.Reputation(), "mistake then early departure")
	assert.Equal(t, 0, st.Stress(), "+10 mistake then -15 for leaving")
}

func TestProcessShift_MistakeBrackets(t *testing.T) {
	tests := []struct {
		name       string
		efficiency int
		rolls      int
	}{
		{name: "below 30 rolls", efficiency: 26, rolls: 4},
		{name: "30 rolls", efficiency: 28, rolls: 4},
		{name: "69 rolls", efficiency: 67, rolls: 4},
		{name: "70 does not roll", efficiency: 68, rolls: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, testDefs(4), nurse.DayShift, tt.efficiency, 0, 0, 99, 99)
			p := &scriptedPlayer{leave: []bool{true}}

			_, err := f.engine.ProcessShift(context.Background(), f.session, p)
			require.NoError(t, err)
			assert.Equal(t, tt.rolls, f.rng.Calls())
		})
	}
}

func TestProcessShift_LeaveEarly(t *testing.T) {
	f := newFixture(t, testDefs(4), nurse.DayShift, 80)
	p := &scriptedPlayer{leave: []bool{true}}

	report, err := f.engine.ProcessShift(context.Background(), f.session, p)
	require.NoError(t, err)

	assert.True(t, report.LeftEarly)
	assert.Len(t, p.prompts, 2)
	assert.Equal(t, 2, f.session.Answered)
	assert.Equal(t, 1, f.session.Completed)

	left := p.kinds(EventLeftEarly)
	require.Len(t, left, 1)
	full := decimal.NewFromInt(40000).Div(decimal.NewFromInt(365))
	assert.True(t, full.Equal(left[0].FullPay), "full pay %s", left[0].FullPay)
	assert.True(t, full.Div(decimal.NewFromInt(2)).Equal(left[0].Paid))
	assert.True(t, left[0].Paid.Equal(f.nurse.Finances().Balance()))

	st := f.nurse.Stats()
	assert.Equal(t, 25, st.Reputation())
	assert.Equal(t, 92, st.Efficiency())
	assert.Contains(t, left[0].Changes, stats.Change{Stat: stats.NameReputation, Before: 30, After: 25})
}

func TestProcessShift_NightPay(t *testing.T) {
	f := newFixture(t, testDefs(4), nurse.NightShift, 80)
	p := &scriptedPlayer{leave: []bool{true}}
	savings := f.nurse.Finances().Savings()

	report, err := f.engine.ProcessShift(context.Background(), f.session, p)
	require.NoError(t, err)

	assert.True(t, report.Night)
	assert.Equal(t, []string{"Night 0", "Night 1"}, p.titles())

	want := decimal.NewFromInt(40000).Div(decimal.NewFromInt(52)).Div(decimal.NewFromInt(3)).Mul(decimal.RequireFromString("1.15"))
	assert.True(t, want.Equal(report.NightPay), "night pay %s", report.NightPay)
	assert.True(t, savings.Add(want).Equal(f.nurse.Finances().Savings()))

	events, err := f.events.Events(telemetry.Filter{Types: []telemetry.EventType{telemetry.EventNightPayReceived}})
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func followUpDefs() []scenario.Definition {
	root := simpleDef("escalation", "Escalation", scenario.Day)
	root.Options[0].FollowUp = &scenario.Definition{
		Title:       "Escalation Follow-up",
		Description: "The family asks again",
		Difficulty:  2,
		Options: []scenario.OptionDefinition{
			{Label: "Call the doctor", Outcome: scenario.OutcomeDefinition{Description: "Resolved", PatientCare: 3}},
		},
	}
	return []scenario.Definition{root}
}

func TestProcessShift_FollowUp(t *testing.T) {
	f := newFixture(t, followUpDefs(), nurse.DayShift, 80)
	p := &scriptedPlayer{leave: []bool{true}}

	_, err := f.engine.ProcessShift(context.Background(), f.session, p)
	require.NoError(t, err)

	assert.Equal(t, []string{"Escalation", "Escalation Follow-up"}, p.titles())
	assert.False(t, p.prompts[0].FollowUp)
	assert.True(t, p.prompts[1].FollowUp)
	assert.Len(t, p.kinds(EventFollowUp), 1)
	assert.Equal(t, 53, f.nurse.Stats().PatientCare())
}

func TestProcessShift_FollowUpDepthLimit(t *testing.T) {
	f := newFixture(t, followUpDefs(), nurse.DayShift, 80)
	f.engine.Balance.FollowUpDepthLimit = 1
	p := &scriptedPlayer{leave: []bool{true}}

	_, err := f.engine.ProcessShift(context.Background(), f.session, p)
	require.NoError(t, err)
	assert.Equal(t, []string{"Escalation"}, p.titles())
}

// chainDefs nests follow-ups under the first option until the chain is
// levels deep.
func chainDefs(levels int) []scenario.Definition {
	var next *scenario.Definition
	for i := levels; i >= 1; i-- {
		d := scenario.Definition{
			Title:       fmt.Sprintf("Level %d", i),
			Description: "It escalates",
			Difficulty:  1,
			Options: []scenario.OptionDefinition{
				{Label: "Respond", Outcome: scenario.OutcomeDefinition{Description: "Handled"}, FollowUp: next},
			},
		}
		next = &d
	}
	next.ID = "long-chain"
	next.Shift = scenario.Day
	return []scenario.Definition{*next}
}

func TestProcessShift_LongestLoadableChainPlaysInFull(t *testing.T) {
	f := newFixture(t, chainDefs(8), nurse.DayShift, 80, 0)
	p := &scriptedPlayer{leave: []bool{true}}

	_, err := f.engine.ProcessShift(context.Background(), f.session, p)
	require.NoError(t, err)

	require.Len(t, p.prompts, f.engine.Balance.FollowUpDepthLimit)
	assert.Equal(t, "Level 1", p.prompts[0].Scenario.Title)
	assert.Equal(t, "Level 8", p.prompts[7].Scenario.Title)
	assert.Len(t, p.kinds(EventFollowUp), 7)
}

func TestProcessShift_OutcomeSavings(t *testing.T) {
	tests := []struct {
		name string
		cost int64
		paid int64
	}{
		{name: "affordable cost is paid", cost: -15, paid: -15},
		{name: "unaffordable cost is refused", cost: -5000, paid: 0},
		{name: "windfall is credited", cost: 40, paid: 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := simpleDef("textbook", "Textbook", scenario.Day)
			def.Options[0].Outcome.Financial = scenario.Amount{Decimal: decimal.NewFromInt(tt.cost)}
			f := newFixture(t, []scenario.Definition{def}, nurse.DayShift, 80, 0)
			start := f.nurse.Finances().Savings()
			p := &scriptedPlayer{}

			_, err := f.engine.ProcessShift(context.Background(), f.session, p)
			require.NoError(t, err)

			out := p.kinds(EventOutcome)
			require.Len(t, out, 1)
			assert.True(t, start.Equal(out[0].SavingsBefore), "before %s", out[0].SavingsBefore)
			assert.True(t, out[0].SavingsAfter.Equal(f.nurse.Finances().Savings()), "after %s", out[0].SavingsAfter)
			assert.True(t, decimal.NewFromInt(tt.paid).Equal(out[0].SavingsAfter.Sub(out[0].SavingsBefore)))
		})
	}
}

func TestProcessShift_ChoiceErrors(t *testing.T) {
	f := newFixture(t, testDefs(4), nurse.DayShift, 80)
	_, err := f.engine.ProcessShift(context.Background(), f.session, &scriptedPlayer{choices: []int{5}})
	assert.ErrorIs(t, err, ErrChoiceOutOfRange)

	f = newFixture(t, testDefs(4), nurse.DayShift, 80)
	boom := errors.New("stdin closed")
	_, err = f.engine.ProcessShift(context.Background(), f.session, &scriptedPlayer{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestTakeBreak_ForcedBelowMinimum(t *testing.T) {
	f := newFixture(t, testDefs(4), nurse.DayShift, 20)
	f.nurse.Stats().SetStress(50)
	f.session.Consecutive = 3
	p := &scriptedPlayer{overtime: []bool{true}}

	report, err := f.engine.TakeBreak(context.Background(), f.session, p)
	require.NoError(t, err)

	assert.True(t, report.Forced)
	assert.False(t, report.Overtime)
	assert.Zero(t, p.overtimeAsked)
	assert.Zero(t, f.session.Consecutive)
	assert.Equal(t, 40, f.nurse.Stats().Stress())
	assert.Equal(t, 40, f.nurse.Stats().Efficiency())

	required := p.kinds(EventBreakRequired)
	require.Len(t, required, 1)
	assert.True(t, required[0].Forced)
	assert.Equal(t, 3, required[0].MaxConsecutive)
}

func TestTakeBreak_ChoosesBreak(t *testing.T) {
	f := newFixture(t, testDefs(4), nurse.DayShift, 50)
	f.session.Consecutive = 3
	p := &scriptedPlayer{overtime: []bool{false}}

	report, err := f.engine.TakeBreak(context.Background(), f.session, p)
	require.NoError(t, err)

	assert.False(t, report.Forced)
	assert.Equal(t, 1, p.overtimeAsked)
	assert.Equal(t, 70, f.nurse.Stats().Efficiency())
	assert.Zero(t, f.session.Consecutive)
	assert.Equal(t, DayFirst, f.session.Phase)
}

func TestTakeBreak_OvertimeCompounds(t *testing.T) {
	f := newFixture(t, testDefs(4), nurse.DayShift, 80)
	ctx := context.Background()
	ledger := f.nurse.Finances()

	first, err := f.engine.TakeBreak(ctx, f.session, &scriptedPlayer{overtime: []bool{true}})
	require.NoError(t, err)
	require.True(t, first.Overtime)

	wantDiff := decimal.NewFromInt(40000).Div(decimal.NewFromInt(365)).Mul(decimal.RequireFromString("0.5"))
	assert.True(t, wantDiff.Equal(first.Differential), "differential %s", first.Differential)
	assert.True(t, decimal.NewFromInt(40000).Add(wantDiff).Equal(ledger.Salary()))
	assert.Equal(t, 65, f.nurse.Stats().Efficiency())
	assert.Equal(t, 20, f.nurse.Stats().Stress())
	assert.False(t, first.LowEfficiency)

	second, err := f.engine.TakeBreak(ctx, f.session, &scriptedPlayer{overtime: []bool{true}})
	require.NoError(t, err)
	assert.True(t, second.Differential.GreaterThan(first.Differential), "raise compounds")
	assert.Equal(t, 50, f.nurse.Stats().Efficiency())
}

func TestTakeBreak_OvertimeCreditedWhenNotCompounding(t *testing.T) {
	f := newFixture(t, testDefs(4), nurse.DayShift, 40)
	f.engine.Balance.OvertimeRaisesBaseSalary = false
	p := &scriptedPlayer{overtime: []bool{true}}

	report, err := f.engine.TakeBreak(context.Background(), f.session, p)
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(40000).Equal(f.nurse.Finances().Salary()))
	assert.True(t, report.Differential.Equal(f.nurse.Finances().Balance()))
	assert.True(t, report.LowEfficiency, "40 - 15 is below the warning line")
	assert.True(t, p.kinds(EventOvertime)[0].LowEfficiency)
}

func TestAdvance(t *testing.T) {
	f := newFixture(t, testDefs(4), nurse.NightShift, 80)
	f.engine.Advance(f.session)

	assert.Equal(t, 2, f.session.Shift)
	assert.Equal(t, 1, f.session.Consecutive)
	assert.Equal(t, NightSecond, f.session.Phase)

	f.engine.Advance(f.session)
	assert.Equal(t, DayFirst, f.session.Phase)
}

func TestRun_BreakReplaysShift(t *testing.T) {
	f := newFixture(t, testDefs(4), nurse.DayShift, 100)
	p := &scriptedPlayer{cont: []bool{true, true, true, false}, overtime: []bool{false}}

	summary, err := f.engine.Run(context.Background(), f.session, p)
	require.NoError(t, err)

	events, err := f.events.Events(telemetry.Filter{Types: []telemetry.EventType{telemetry.EventShiftStarted}})
	require.NoError(t, err)
	require.Len(t, events, 5)
	assert.Len(t, p.kinds(EventShiftStarted), 5)

	var recorded []string
	for _, ev := range events {
		recorded = append(recorded, ev.Metadata)
	}
	assert.JSONEq(t, `{"shift":1,"phase":"DAY_FIRST","night":false}`, recorded[0])
	assert.JSONEq(t, `{"shift":3,"phase":"NIGHT_FIRST","night":true}`, recorded[2])
	assert.JSONEq(t, `{"shift":4,"phase":"NIGHT_SECOND","night":true}`, recorded[3])
	assert.JSONEq(t, `{"shift":4,"phase":"NIGHT_SECOND","night":true}`, recorded[4])

	assert.Equal(t, 5, summary.ShiftsCompleted)
	assert.Equal(t, 4, f.session.Shift)
	assert.Equal(t, 1, p.overtimeAsked)
	assert.Equal(t, 5, summary.Telemetry.Shifts)
	assert.Equal(t, 3, summary.Telemetry.NightShifts)
	assert.Equal(t, 1, summary.Telemetry.Breaks)
	assert.Equal(t, 20, summary.Telemetry.Scenarios)
	assert.Equal(t, "Avery", summary.Nurse)
	assert.Equal(t, "Medical-Surgical", summary.Specialization)
	assert.True(t, summary.EndedAt.After(summary.StartedAt))

	over := p.kinds(EventGameOver)
	require.Len(t, over, 1)
	require.NotNil(t, over[0].Summary)
	assert.Equal(t, summary.SessionID, over[0].Summary.SessionID)
}

func TestRun_LogsReports(t *testing.T) {
	f := newFixture(t, testDefs(4), nurse.DayShift, 100)
	var buf bytes.Buffer
	f.engine.Logger = log.New(&buf, "", 0)
	p := &scriptedPlayer{cont: []bool{true, true, true, false}, overtime: []bool{false}}

	_, err := f.engine.Run(context.Background(), f.session, p)
	require.NoError(t, err)

	text := buf.String()
	assert.Equal(t, 5, strings.Count(text, "shift report: "))
	assert.Contains(t, text, `shift report: {"shift":1,"phase":"DAY_FIRST","night":false,`)
	assert.Equal(t, 1, strings.Count(text, "break report: "))
	assert.Contains(t, text, `break report: {"overtime":false,"forced":false,`)
	assert.Contains(t, text, `"Day 0" option 1: Knowledge: +1`)
}

func TestRun_StopsOnCancel(t *testing.T) {
	f := newFixture(t, testDefs(4), nurse.DayShift, 100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.engine.Run(ctx, f.session, &scriptedPlayer{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummary_WriteJSON(t *testing.T) {
	f := newFixture(t, testDefs(4), nurse.DayShift, 100)
	summary, err := f.engine.Run(context.Background(), f.session, &scriptedPlayer{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, summary.WriteJSON(&buf))
	assert.Contains(t, buf.String(), `"shifts_completed": 1`)
	assert.Contains(t, buf.String(), `"nurse": "Avery"`)
	assert.Contains(t, buf.String(), `"salary": "40000"`)
}
