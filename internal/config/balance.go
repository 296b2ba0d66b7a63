package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// MistakeBracket gives the mistake chance (percent) for efficiency below
// Below.
type MistakeBracket struct {
	Below  int `yaml:"below" json:"below"`
	Chance int `yaml:"chance" json:"chance"`
}

// Balance holds gameplay balance configuration
type Balance struct {
	// Shift structure
	MaxConsecutiveShifts int `yaml:"max_consecutive_shifts" json:"max_consecutive_shifts"`
	ScenariosPerHalf     int `yaml:"scenarios_per_half" json:"scenarios_per_half"`
	FollowUpDepthLimit   int `yaml:"follow_up_depth_limit" json:"follow_up_depth_limit"`

	// Mistakes, checked lowest bracket first
	MistakeBrackets           []MistakeBracket `yaml:"mistake_brackets" json:"mistake_brackets"`
	MistakePatientCarePenalty int              `yaml:"mistake_patient_care_penalty" json:"mistake_patient_care_penalty"`
	MistakeReputationPenalty  int              `yaml:"mistake_reputation_penalty" json:"mistake_reputation_penalty"`
	MistakeStressPenalty      int              `yaml:"mistake_stress_penalty" json:"mistake_stress_penalty"`

	// Night shifts
	NightShiftStress int `yaml:"night_shift_stress" json:"night_shift_stress"`

	// Leaving early
	EarlyDepartureReputationLoss int `yaml:"early_departure_reputation_loss" json:"early_departure_reputation_loss"`
	EarlyDepartureStressRelief   int `yaml:"early_departure_stress_relief" json:"early_departure_stress_relief"`
	EarlyDepartureEfficiencyGain int `yaml:"early_departure_efficiency_gain" json:"early_departure_efficiency_gain"`

	// Overtime
	OvertimeMinEfficiency    int  `yaml:"overtime_min_efficiency" json:"overtime_min_efficiency"`
	OvertimeEfficiencyCost   int  `yaml:"overtime_efficiency_cost" json:"overtime_efficiency_cost"`
	OvertimeStress           int  `yaml:"overtime_stress" json:"overtime_stress"`
	OvertimeRaisesBaseSalary bool `yaml:"overtime_raises_base_salary" json:"overtime_raises_base_salary"`
	LowEfficiencyWarning     int  `yaml:"low_efficiency_warning" json:"low_efficiency_warning"`

	// Breaks
	BreakStressRelief   int `yaml:"break_stress_relief" json:"break_stress_relief"`
	BreakEfficiencyGain int `yaml:"break_efficiency_gain" json:"break_efficiency_gain"`
}

// Default returns the default balance configuration
func Default() Balance {
	return Balance{
		MaxConsecutiveShifts: 3,
		ScenariosPerHalf:     2,
		FollowUpDepthLimit:   8,
		MistakeBrackets: []MistakeBracket{
			{Below: 30, Chance: 40},
			{Below: 50, Chance: 20},
			{Below: 70, Chance: 10},
		},
		MistakePatientCarePenalty:    10,
		MistakeReputationPenalty:     5,
		MistakeStressPenalty:         10,
		NightShiftStress:             1,
		EarlyDepartureReputationLoss: 5,
		EarlyDepartureStressRelief:   15,
		EarlyDepartureEfficiencyGain: 10,
		OvertimeMinEfficiency:        30,
		OvertimeEfficiencyCost:       15,
		OvertimeStress:               20,
		OvertimeRaisesBaseSalary:     true,
		LowEfficiencyWarning:         30,
		BreakStressRelief:            10,
		BreakEfficiencyGain:          20,
	}
}

// Casual returns easier balance for casual difficulty
func Casual() Balance {
	cfg := Default()
	cfg.MistakeBrackets = []MistakeBracket{
		{Below: 30, Chance: 20},
		{Below: 50, Chance: 10},
		{Below: 70, Chance: 5},
	}
	cfg.MistakeStressPenalty = 5
	cfg.BreakStressRelief = 15
	cfg.OvertimeRaisesBaseSalary = false
	return cfg
}

// Hard returns harder balance for experienced players
func Hard() Balance {
	cfg := Default()
	cfg.MaxConsecutiveShifts = 4
	cfg.MistakeBrackets = []MistakeBracket{
		{Below: 30, Chance: 50},
		{Below: 50, Chance: 30},
		{Below: 70, Chance: 15},
		{Below: 80, Chance: 5},
	}
	cfg.MistakeReputationPenalty = 8
	cfg.EarlyDepartureReputationLoss = 10
	cfg.OvertimeMinEfficiency = 40
	cfg.BreakEfficiencyGain = 15
	return cfg
}

// Preset returns the named difficulty. An empty name is "normal".
func Preset(name string) (Balance, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "normal", "default":
		return Default(), nil
	case "casual":
		return Casual(), nil
	case "hard":
		return Hard(), nil
	}
	return Balance{}, fmt.Errorf("unknown difficulty %q (want normal, casual or hard)", name)
}

// MistakeChance returns the percent chance of a mistake at the given
// efficiency: the first bracket whose bound is above it, else zero.
func (b Balance) MistakeChance(efficiency int) int {
	for _, br := range b.MistakeBrackets {
		if efficiency < br.Below {
			return br.Chance
		}
	}
	return 0
}

var ErrInvalidBalance = errors.New("invalid balance")

func (b Balance) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(b.MaxConsecutiveShifts >= 1, "max_consecutive_shifts must be at least 1")
	check(b.ScenariosPerHalf >= 1, "scenarios_per_half must be at least 1")
	check(b.FollowUpDepthLimit >= 1, "follow_up_depth_limit must be at least 1")

	prev := -1
	for i, br := range b.MistakeBrackets {
		check(br.Below > prev, "mistake_brackets[%d]: below must increase", i)
		check(br.Chance >= 0 && br.Chance <= 100, "mistake_brackets[%d]: chance must be 0-100", i)
		prev = br.Below
	}

	for name, v := range map[string]int{
		"mistake_patient_care_penalty":    b.MistakePatientCarePenalty,
		"mistake_reputation_penalty":      b.MistakeReputationPenalty,
		"mistake_stress_penalty":          b.MistakeStressPenalty,
		"night_shift_stress":              b.NightShiftStress,
		"early_departure_reputation_loss": b.EarlyDepartureReputationLoss,
		"early_departure_stress_relief":   b.EarlyDepartureStressRelief,
		"early_departure_efficiency_gain": b.EarlyDepartureEfficiencyGain,
		"overtime_min_efficiency":         b.OvertimeMinEfficiency,
		"overtime_efficiency_cost":        b.OvertimeEfficiencyCost,
		"overtime_stress":                 b.OvertimeStress,
		"low_efficiency_warning":          b.LowEfficiencyWarning,
		"break_stress_relief":             b.BreakStressRelief,
		"break_efficiency_gain":           b.BreakEfficiencyGain,
	} {
		check(v >= 0, "%s must not be negative", name)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidBalance, errors.Join(errs...))
	}
	return nil
}

// LoadBalance overlays the YAML file at path on base. Keys missing from
// the file keep their base values.
func LoadBalance(path string, base Balance) (Balance, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Balance{}, fmt.Errorf("read balance: %w", err)
	}
	if err := yaml.Unmarshal(b, &base); err != nil {
		return Balance{}, fmt.Errorf("parse balance %s: %w", path, err)
	}
	if err := base.Validate(); err != nil {
		return Balance{}, fmt.Errorf("%s: %w", path, err)
	}
	return base, nil
}
