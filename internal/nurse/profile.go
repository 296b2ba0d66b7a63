package nurse

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Tier is the experience level picked at character creation. It also
// selects which specialty scenario set a game draws from.
type Tier string

const (
	NewGrad     Tier = "new_grad"
	Experienced Tier = "experienced"
)

var Tiers = []Tier{NewGrad, Experienced}

// TierProfile overwrites the base stats when a character is created.
type TierProfile struct {
	DisplayName      string
	Knowledge        int
	PatientCare      int
	Efficiency       int
	Energy           int
	Reputation       int
	SalaryMultiplier decimal.Decimal
	Notes            [5]string
}

var tierProfiles = map[Tier]TierProfile{
	NewGrad: {
		DisplayName:      "New Graduate Nurse",
		Knowledge:        40,
		PatientCare:      45,
		Efficiency:       40,
		Energy:           80,
		Reputation:       30,
		SalaryMultiplier: decimal.RequireFromString("0.8"),
		Notes: [5]string{
			"Learning the basics",
			"Developing clinical skills",
			"Building time management",
			"Young and enthusiastic",
			"Building trust",
		},
	},
	Experienced: {
		DisplayName:      "Experienced Nurse",
		Knowledge:        60,
		PatientCare:      60,
		Efficiency:       55,
		Energy:           60,
		Reputation:       70,
		SalaryMultiplier: decimal.RequireFromString("1.2"),
		Notes: [5]string{
			"Strong foundation",
			"Refined clinical skills",
			"Established workflow",
			"Seasoned endurance",
			"Established credibility",
		},
	},
}

func (t Tier) Valid() bool {
	_, ok := tierProfiles[t]
	return ok
}

func (t Tier) Profile() TierProfile { return tierProfiles[t] }

func (t Tier) DisplayName() string {
	if p, ok := tierProfiles[t]; ok {
		return p.DisplayName
	}
	return string(t)
}

// Preview lists the starting stats a tier grants.
func (t Tier) Preview() string {
	p := t.Profile()
	pct := p.SalaryMultiplier.Mul(decimal.NewFromInt(100)).StringFixed(0)

	var b strings.Builder
	b.WriteString("Starting Stats:\n")
	fmt.Fprintf(&b, "• Knowledge: %d%% (%s)\n", p.Knowledge, p.Notes[0])
	fmt.Fprintf(&b, "• Patient Care: %d%% (%s)\n", p.PatientCare, p.Notes[1])
	fmt.Fprintf(&b, "• Efficiency: %d%% (%s)\n", p.Efficiency, p.Notes[2])
	fmt.Fprintf(&b, "• Energy: %d%% (%s)\n", p.Energy, p.Notes[3])
	fmt.Fprintf(&b, "• Reputation: %d%% (%s)\n", p.Reputation, p.Notes[4])
	fmt.Fprintf(&b, "• Base Salary: %s%% of specialty rate", pct)
	return b.String()
}

func ParseTier(v string) (Tier, error) {
	v = strings.TrimSpace(v)
	for _, t := range Tiers {
		if strings.EqualFold(v, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tier %q", v)
}

// ShiftPreference decides the starting phase and the last stat adjustment
// at creation.
type ShiftPreference string

const (
	DayShift   ShiftPreference = "day"
	NightShift ShiftPreference = "night"
)

var ShiftPreferences = []ShiftPreference{DayShift, NightShift}

// ShiftAdjustment is the signed stat change a shift preference applies.
type ShiftAdjustment struct {
	DisplayName string
	PatientCare int
	Knowledge   int
	Efficiency  int
	Energy      int
	Notes       [4]string
	PayNote     string
}

var shiftAdjustments = map[ShiftPreference]ShiftAdjustment{
	DayShift: {
		DisplayName: "Day Shift",
		PatientCare: 10,
		Knowledge:   5,
		Efficiency:  -5,
		Energy:      10,
		Notes: [4]string{
			"More direct patient interaction",
			"More procedures and teaching opportunities",
			"More interruptions and tasks",
			"Natural sleep cycle",
		},
		PayNote: "Standard rate",
	},
	NightShift: {
		DisplayName: "Night Shift",
		PatientCare: -5,
		Knowledge:   10,
		Efficiency:  10,
		Energy:      -15,
		Notes: [4]string{
			"Less patient interaction",
			"More independence in decision making",
			"Fewer interruptions",
			"Fighting natural sleep cycle",
		},
		PayNote: "+20% night differential",
	},
}

func (p ShiftPreference) Valid() bool {
	_, ok := shiftAdjustments[p]
	return ok
}

func (p ShiftPreference) Adjustment() ShiftAdjustment { return shiftAdjustments[p] }

func (p ShiftPreference) DisplayName() string {
	if a, ok := shiftAdjustments[p]; ok {
		return a.DisplayName
	}
	return string(p)
}

func (p ShiftPreference) Night() bool { return p == NightShift }

func (p ShiftPreference) Preview() string {
	a := p.Adjustment()

	var b strings.Builder
	fmt.Fprintf(&b, "• Patient Care: %s (%s)\n", signedPct(a.PatientCare), a.Notes[0])
	fmt.Fprintf(&b, "• Knowledge: %s (%s)\n", signedPct(a.Knowledge), a.Notes[1])
	fmt.Fprintf(&b, "• Efficiency: %s (%s)\n", signedPct(a.Efficiency), a.Notes[2])
	fmt.Fprintf(&b, "• Energy: %s (%s)\n", signedPct(a.Energy), a.Notes[3])
	fmt.Fprintf(&b, "• Base Pay: %s", a.PayNote)
	return b.String()
}

func ParseShiftPreference(v string) (ShiftPreference, error) {
	v = strings.TrimSpace(v)
	for _, p := range ShiftPreferences {
		if strings.EqualFold(v, string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown shift preference %q", v)
}
