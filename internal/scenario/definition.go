package scenario

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/malikacodes/nursing-game/internal/nurse"
)

// Shift is the time of day a scenario is drawn in.
type Shift string

const (
	Day   Shift = "day"
	Night Shift = "night"
)

func (s Shift) Valid() bool { return s == Day || s == Night }

// maxFollowUpDepth bounds a follow-up chain, counting the top-level entry
// as the first level. It matches the default engine depth limit.
const maxFollowUpDepth = 8

var (
	ErrInvalidDefinition = errors.New("invalid scenario definition")
	ErrDuplicateID       = errors.New("duplicate scenario id")
)

// Definition is one catalog entry as authored in Go or in a catalog file.
// Shift, Tier and Specializations are only read on top-level entries; an
// empty Tier means the scenario is drawn for every tier.
type Definition struct {
	ID              string                 `yaml:"id"`
	Title           string                 `yaml:"title"`
	Description     string                 `yaml:"description"`
	Difficulty      int                    `yaml:"difficulty"`
	Shift           Shift                  `yaml:"shift,omitempty"`
	Tier            nurse.Tier             `yaml:"tier,omitempty"`
	Specializations []nurse.Specialization `yaml:"specializations,omitempty"`
	Options         []OptionDefinition     `yaml:"options"`
}

type OptionDefinition struct {
	Label    string            `yaml:"label"`
	Outcome  OutcomeDefinition `yaml:"outcome"`
	FollowUp *Definition       `yaml:"follow_up,omitempty"`
}

type OutcomeDefinition struct {
	Description string `yaml:"description"`
	Knowledge   int    `yaml:"knowledge,omitempty"`
	PatientCare int    `yaml:"patient_care,omitempty"`
	Efficiency  int    `yaml:"efficiency,omitempty"`
	Stress      int    `yaml:"stress,omitempty"`
	Financial   Amount `yaml:"financial,omitempty"`
}

// Amount is a decimal that reads from both quoted and bare YAML scalars.
type Amount struct {
	decimal.Decimal
}

func (a *Amount) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: amount must be a scalar", n.Line)
	}
	d, err := decimal.NewFromString(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: amount %q: %w", n.Line, n.Value, err)
	}
	a.Decimal = d
	return nil
}

func (a Amount) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: a.String()}, nil
}

// ForTier reports whether the entry belongs in a catalog built for t.
func (d Definition) ForTier(t nurse.Tier) bool {
	return d.Tier == "" || d.Tier == t
}

// Validate checks a top-level entry.
func (d Definition) Validate() error {
	if !d.Shift.Valid() {
		return fmt.Errorf("%w: %s: shift must be day or night, got %q", ErrInvalidDefinition, d.label(), d.Shift)
	}
	if d.Tier != "" && !d.Tier.Valid() {
		return fmt.Errorf("%w: %s: unknown tier %q", ErrInvalidDefinition, d.label(), d.Tier)
	}
	for _, sp := range d.Specializations {
		if !sp.Valid() {
			return fmt.Errorf("%w: %s: unknown specialization %q", ErrInvalidDefinition, d.label(), sp)
		}
	}
	return d.validateBody(0)
}

func (d Definition) validateBody(depth int) error {
	if depth >= maxFollowUpDepth {
		return fmt.Errorf("%w: %s: follow-up chain longer than %d levels", ErrInvalidDefinition, d.label(), maxFollowUpDepth)
	}
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("%w: %s: title required", ErrInvalidDefinition, d.label())
	}
	if d.Difficulty < 1 || d.Difficulty > 3 {
		return fmt.Errorf("%w: %s: difficulty must be 1-3, got %d", ErrInvalidDefinition, d.label(), d.Difficulty)
	}
	if len(d.Options) == 0 {
		return fmt.Errorf("%w: %s: at least one option required", ErrInvalidDefinition, d.label())
	}
	for i, o := range d.Options {
		if strings.TrimSpace(o.Label) == "" {
			return fmt.Errorf("%w: %s: option %d has no label", ErrInvalidDefinition, d.label(), i+1)
		}
		if o.FollowUp != nil {
			if err := o.FollowUp.validateBody(depth + 1); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d Definition) label() string {
	if d.ID != "" {
		return d.ID
	}
	if d.Title != "" {
		return fmt.Sprintf("%q", d.Title)
	}
	return "<unnamed>"
}

// Build turns the definition into a fresh Scenario tree. Every call
// allocates new scenarios so catalogs never share pointers.
func (d Definition) Build() *Scenario {
	s := New(d.Title, d.Description, d.Difficulty)
	s.ID = d.ID
	s.RequireSpecialization(d.Specializations...)
	for i, o := range d.Options {
		s.AddOption(o.Label, o.Outcome.build())
		if o.FollowUp != nil {
			s.AddFollowUp(i, o.FollowUp.Build())
		}
	}
	return s
}

func (o OutcomeDefinition) build() Outcome {
	return Outcome{
		Description: o.Description,
		Knowledge:   o.Knowledge,
		PatientCare: o.PatientCare,
		Efficiency:  o.Efficiency,
		Stress:      o.Stress,
		Financial:   o.Financial.Decimal,
	}
}
