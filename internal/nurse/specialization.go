package nurse

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Specialization string

const (
	MedSurg Specialization = "med_surg"
	ICU     Specialization = "icu"
	ER      Specialization = "er"
)

// Specializations lists every track in menu order.
var Specializations = []Specialization{MedSurg, ICU, ER}

// StatModifiers are the signed starting-stat adjustments of a track.
type StatModifiers struct {
	Knowledge   int `json:"knowledge"`
	PatientCare int `json:"patient_care"`
	Efficiency  int `json:"efficiency"`
	Stress      int `json:"stress"`
	Reputation  int `json:"reputation"`
}

// Attributes is the static balance record of a specialization.
// ExperienceMultiplier and ReputationLossMultiplier are carried for display
// only; nothing in the simulation reads them.
type Attributes struct {
	DisplayName              string
	Focus                    string
	StartingSalary           decimal.Decimal
	ExperienceMultiplier     float64
	StressPerShift           int
	EfficiencyPerShift       int
	ReputationLossMultiplier float64
	NightDifferential        decimal.Decimal
	CreationStress           int
	Modifiers                StatModifiers
	Strengths                []string
	Challenges               []string
}

var attributes = map[Specialization]Attributes{
	MedSurg: {
		DisplayName:              "Medical-Surgical",
		Focus:                    "General nursing care, post-operative care, and chronic condition management",
		StartingSalary:           decimal.NewFromInt(50000),
		ExperienceMultiplier:     0.5,
		StressPerShift:           -1,
		EfficiencyPerShift:       2,
		ReputationLossMultiplier: 0.5,
		NightDifferential:        decimal.RequireFromString("1.15"),
		Modifiers:                StatModifiers{Knowledge: -10, PatientCare: -5, Efficiency: 10, Stress: -5},
		Strengths: []string{
			"Manages six to eight stable patients",
			"Highly efficient documentation skills",
			"Lower severity of mistakes",
		},
		Challenges: []string{
			"Slower clinical knowledge progression",
			"Lower starting salary",
			"Frequent patient call lights",
		},
	},
	ICU: {
		DisplayName:              "Intensive Care",
		Focus:                    "Critical care for unstable and high-acuity patients",
		StartingSalary:           decimal.NewFromInt(75000),
		ExperienceMultiplier:     1.0,
		StressPerShift:           3,
		EfficiencyPerShift:       -2,
		ReputationLossMultiplier: 2.0,
		NightDifferential:        decimal.RequireFromString("1.15"),
		Modifiers:                StatModifiers{Knowledge: 10, PatientCare: -5, Efficiency: -5, Stress: 15},
		Strengths: []string{
			"Manages only two critically ill patients",
			"Higher salary",
			"Opportunities for advancement",
		},
		Challenges: []string{
			"Hourly documentation requirements",
			"High-stress environment",
			"Mistakes have severe consequences",
		},
	},
	ER: {
		DisplayName:              "Emergency",
		Focus:                    "Acute care and rapid assessment of emergent conditions",
		StartingSalary:           decimal.NewFromInt(65000),
		ExperienceMultiplier:     1.2,
		StressPerShift:           2,
		EfficiencyPerShift:       2,
		ReputationLossMultiplier: 2.0,
		NightDifferential:        decimal.RequireFromString("1.25"),
		CreationStress:           3,
		Modifiers:                StatModifiers{Knowledge: 10, PatientCare: -10, Efficiency: 15, Stress: 15},
		Strengths: []string{
			"Quick decision-making improves efficiency",
			"Higher pay incentives",
			"Lower fatigue accumulation",
		},
		Challenges: []string{
			"Unstable patient conditions",
			"High initial stress load",
			"Unpredictable workloads",
		},
	},
}

func (s Specialization) Valid() bool {
	_, ok := attributes[s]
	return ok
}

// Attributes returns the balance record for s. Unknown values yield the
// zero record.
func (s Specialization) Attributes() Attributes {
	return attributes[s]
}

func (s Specialization) DisplayName() string {
	if a, ok := attributes[s]; ok {
		return a.DisplayName
	}
	return string(s)
}

// DetailedDescription renders the menu text for the specialization picker.
func (s Specialization) DetailedDescription() string {
	a := s.Attributes()

	var b strings.Builder
	fmt.Fprintf(&b, "%s - %s\n\n", a.DisplayName, a.Focus)
	b.WriteString("Strengths:\n")
	for _, line := range a.Strengths {
		fmt.Fprintf(&b, "• %s\n", line)
	}
	b.WriteString("\nChallenges:\n")
	for _, line := range a.Challenges {
		fmt.Fprintf(&b, "• %s\n", line)
	}
	b.WriteString("\nStarting Stats Impact:\n")
	fmt.Fprintf(&b, "• Knowledge: %s\n", signedPct(a.Modifiers.Knowledge))
	fmt.Fprintf(&b, "• Patient Care: %s\n", signedPct(a.Modifiers.PatientCare))
	fmt.Fprintf(&b, "• Efficiency: %s\n", signedPct(a.Modifiers.Efficiency))
	fmt.Fprintf(&b, "• Stress: %s\n", signedPct(a.Modifiers.Stress))
	fmt.Fprintf(&b, "• Starting Salary: $%s", a.StartingSalary.StringFixed(0))
	return b.String()
}

func signedPct(v int) string {
	if v > 0 {
		return fmt.Sprintf("+%d%%", v)
	}
	return fmt.Sprintf("%d%%", v)
}

// ParseSpecialization accepts the stable identifier or the display name,
// case-insensitively.
func ParseSpecialization(v string) (Specialization, error) {
	v = strings.TrimSpace(v)
	for _, s := range Specializations {
		if strings.EqualFold(v, string(s)) || strings.EqualFold(v, s.DisplayName()) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown specialization %q", v)
}
