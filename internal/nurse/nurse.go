package nurse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/malikacodes/nursing-game/internal/finance"
	"github.com/malikacodes/nursing-game/internal/stats"
)

var (
	ErrNameRequired          = errors.New("nurse name required")
	ErrUnknownSpecialization = errors.New("unknown specialization")
	ErrUnknownTier           = errors.New("unknown tier")
	ErrUnknownShift          = errors.New("unknown shift preference")
)

// Nurse is the player character. It owns its stats and ledger for its
// whole lifetime; the specialization never changes after creation.
type Nurse struct {
	ID             uuid.UUID
	Name           string
	specialization Specialization
	tier           Tier
	stats          *stats.Stats
	finances       *finance.Ledger
}

// New returns a base character with default stats and the specialization's
// starting salary. Tier and shift adjustments are applied by Create.
func New(name string, spec Specialization) *Nurse {
	attrs := spec.Attributes()
	n := &Nurse{
		ID:             uuid.New(),
		Name:           name,
		specialization: spec,
		stats:          stats.New(),
		finances:       finance.New(attrs.StartingSalary),
	}
	if attrs.CreationStress > 0 {
		n.stats.AddStress(attrs.CreationStress)
	}
	return n
}

// Profile holds the choices made at character creation.
type Profile struct {
	Name           string
	Specialization Specialization
	Tier           Tier
	Shift          ShiftPreference
}

func (p Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrNameRequired
	}
	if !p.Specialization.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownSpecialization, p.Specialization)
	}
	if !p.Tier.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTier, p.Tier)
	}
	if !p.Shift.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownShift, p.Shift)
	}
	return nil
}

// Create builds a character and applies the starting adjustments in order:
// tier profile, specialization modifiers, shift preference. Every step goes
// through the clamped setters and the result is normalized.
func Create(p Profile) (*Nurse, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := New(strings.TrimSpace(p.Name), p.Specialization)
	n.tier = p.Tier
	s := n.stats

	tp := p.Tier.Profile()
	s.SetKnowledge(tp.Knowledge)
	s.SetPatientCare(tp.PatientCare)
	s.SetEfficiency(tp.Efficiency)
	s.SetEnergy(tp.Energy)
	s.SetReputation(tp.Reputation)
	n.finances.AdjustBaseSalary(tp.SalaryMultiplier)

	mods := p.Specialization.Attributes().Modifiers
	s.SetKnowledge(s.Knowledge() + mods.Knowledge)
	s.SetPatientCare(s.PatientCare() + mods.PatientCare)
	s.SetEfficiency(s.Efficiency() + mods.Efficiency)
	s.SetStress(s.Stress() + mods.Stress)
	s.SetReputation(s.Reputation() + mods.Reputation)

	adj := p.Shift.Adjustment()
	s.SetKnowledge(s.Knowledge() + adj.Knowledge)
	s.SetEfficiency(s.Efficiency() + adj.Efficiency)
	s.SetPatientCare(s.PatientCare() + adj.PatientCare)
	s.SetEnergy(s.Energy() + adj.Energy)
	if p.Shift.Night() {
		n.finances.SetNightShiftDifferential(true)
	}

	s.Normalize()
	return n, nil
}

// ApplyShiftEffects applies the per-shift specialization modifiers. On a
// night shift it also adds nightStress and credits night pay at the
// specialization's differential. The credited amount is returned (zero on
// day shifts).
func (n *Nurse) ApplyShiftEffects(night bool, nightStress int) decimal.Decimal {
	attrs := n.specialization.Attributes()

	n.stats.AddStress(attrs.StressPerShift)
	n.stats.ImproveEfficiency(attrs.EfficiencyPerShift)

	if !night {
		return decimal.Zero
	}
	n.stats.AddStress(nightStress)
	return n.finances.ReceiveNightShiftPay(attrs.NightDifferential)
}

func (n *Nurse) Specialization() Specialization { return n.specialization }
func (n *Nurse) Tier() Tier                     { return n.tier }
func (n *Nurse) Stats() *stats.Stats            { return n.stats }
func (n *Nurse) Finances() *finance.Ledger      { return n.finances }

func (n *Nurse) String() string {
	return fmt.Sprintf("Nurse %s\nSpecialization: %s\nStats: %s\nFinancials: %s",
		n.Name, n.specialization.DisplayName(), n.stats, n.finances)
}
