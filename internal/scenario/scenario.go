package scenario

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/malikacodes/nursing-game/internal/finance"
	"github.com/malikacodes/nursing-game/internal/nurse"
	"github.com/malikacodes/nursing-game/internal/stats"
)

// Target is what an Outcome mutates. *nurse.Nurse satisfies it.
type Target interface {
	Stats() *stats.Stats
	Finances() *finance.Ledger
}

// Outcome is the fixed consequence of picking an option.
type Outcome struct {
	Description string
	Knowledge   int
	PatientCare int
	Efficiency  int
	Stress      int
	Financial   decimal.Decimal
}

// Apply routes each non-zero delta to the ledgers. Stat deltas go through
// the clamping Improve methods; stress picks AddStress or ReduceStress by
// sign. The financial delta is applied as MakePayment(-Financial), so a
// negative delta is a cost that is silently skipped when savings cannot
// cover it.
func (o Outcome) Apply(t Target) {
	s := t.Stats()
	if o.Knowledge != 0 {
		s.ImproveKnowledge(o.Knowledge)
	}
	if o.PatientCare != 0 {
		s.ImprovePatientCare(o.PatientCare)
	}
	if o.Efficiency != 0 {
		s.ImproveEfficiency(o.Efficiency)
	}
	switch {
	case o.Stress > 0:
		s.AddStress(o.Stress)
	case o.Stress < 0:
		s.ReduceStress(-o.Stress)
	}
	if !o.Financial.IsZero() {
		t.Finances().MakePayment(o.Financial.Neg())
	}
}

// Effects lists the signed non-zero deltas, e.g. "Knowledge: +2".
func (o Outcome) Effects() []string {
	var out []string
	add := func(name stats.Name, v int) {
		if v != 0 {
			out = append(out, fmt.Sprintf("%s: %+d", name, v))
		}
	}
	add(stats.NameKnowledge, o.Knowledge)
	add(stats.NamePatientCare, o.PatientCare)
	add(stats.NameEfficiency, o.Efficiency)
	add(stats.NameStress, o.Stress)
	if !o.Financial.IsZero() {
		sign := "+"
		if o.Financial.IsNegative() {
			sign = "-"
		}
		out = append(out, fmt.Sprintf("Savings: %s$%s", sign, o.Financial.Abs().StringFixed(2)))
	}
	return out
}

// Option is one answer to a scenario. FollowUp, when set, is presented
// right after the outcome is applied.
type Option struct {
	Label    string
	Outcome  Outcome
	FollowUp *Scenario
}

// Result pairs the applied outcome with the follow-up to present next.
// Both are nil when the choice was out of range.
type Result struct {
	Outcome  *Outcome
	FollowUp *Scenario
}

func (r Result) HasFollowUp() bool { return r.FollowUp != nil }

// Scenario is a narrative prompt with ordered options. It is not mutated
// once a catalog has been built from it.
type Scenario struct {
	ID          string
	Title       string
	Description string
	Difficulty  int
	Options     []Option

	specializations []nurse.Specialization
	followUp        bool
}

func New(title, description string, difficulty int) *Scenario {
	return &Scenario{
		Title:       title,
		Description: description,
		Difficulty:  difficulty,
	}
}

func (s *Scenario) AddOption(label string, o Outcome) *Scenario {
	s.Options = append(s.Options, Option{Label: label, Outcome: o})
	return s
}

// AddFollowUp attaches f to the option at index and marks f as a follow-up.
// Indexes without an option are ignored.
func (s *Scenario) AddFollowUp(index int, f *Scenario) *Scenario {
	if index < 0 || index >= len(s.Options) || f == nil {
		return s
	}
	f.followUp = true
	s.Options[index].FollowUp = f
	return s
}

func (s *Scenario) RequireSpecialization(specs ...nurse.Specialization) *Scenario {
	for _, sp := range specs {
		if !slices.Contains(s.specializations, sp) {
			s.specializations = append(s.specializations, sp)
		}
	}
	return s
}

// Specializations returns the required tracks; empty means any.
func (s *Scenario) Specializations() []nurse.Specialization {
	return slices.Clone(s.specializations)
}

func (s *Scenario) IsApplicableTo(spec nurse.Specialization) bool {
	return len(s.specializations) == 0 || slices.Contains(s.specializations, spec)
}

func (s *Scenario) IsFollowUp() bool { return s.followUp }

func (s *Scenario) Labels() []string {
	labels := make([]string, len(s.Options))
	for i, o := range s.Options {
		labels[i] = o.Label
	}
	return labels
}

// SelectOption applies the outcome at choice (zero-based) to t and
// returns it with the option's follow-up. An out-of-range choice returns
// an empty Result and changes nothing. A nil t only looks the option up.
func (s *Scenario) SelectOption(choice int, t Target) Result {
	if choice < 0 || choice >= len(s.Options) {
		return Result{}
	}
	opt := s.Options[choice]
	if t != nil {
		opt.Outcome.Apply(t)
	}
	out := opt.Outcome
	return Result{Outcome: &out, FollowUp: opt.FollowUp}
}

// PreviewOutcome returns the outcome at choice without applying it.
func (s *Scenario) PreviewOutcome(choice int) (Outcome, bool) {
	if choice < 0 || choice >= len(s.Options) {
		return Outcome{}, false
	}
	return s.Options[choice].Outcome, true
}

func (s *Scenario) HasFollowUp(choice int) bool {
	return choice >= 0 && choice < len(s.Options) && s.Options[choice].FollowUp != nil
}

func (s *Scenario) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== %s ===\n%s\n\nOptions:\n", s.Title, s.Description)
	for i, o := range s.Options {
		fmt.Fprintf(&b, "%d. %s\n", i+1, o.Label)
	}
	return b.String()
}
