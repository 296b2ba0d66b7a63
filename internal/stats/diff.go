package stats

import "fmt"

type Name string

const (
	NameKnowledge   Name = "Knowledge"
	NamePatientCare Name = "Patient Care"
	NameEfficiency  Name = "Efficiency"
	NameStress      Name = "Stress"
	NameReputation  Name = "Reputation"
	NameEnergy      Name = "Energy"
)

// Change records how one stat moved between two snapshots.
type Change struct {
	Stat   Name `json:"stat"`
	Before int  `json:"before"`
	After  int  `json:"after"`
}

func (c Change) Delta() int { return c.After - c.Before }

func (c Change) String() string {
	sign := ""
	if c.Delta() > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s: %s%d points (%d → %d)", c.Stat, sign, c.Delta(), c.Before, c.After)
}

// Diff lists the stats that differ between before and after, in display
// order. Unchanged stats are omitted.
func Diff(before, after Snapshot) []Change {
	pairs := []Change{
		{Stat: NameKnowledge, Before: before.Knowledge, After: after.Knowledge},
		{Stat: NamePatientCare, Before: before.PatientCare, After: after.PatientCare},
		{Stat: NameEfficiency, Before: before.Efficiency, After: after.Efficiency},
		{Stat: NameStress, Before: before.Stress, After: after.Stress},
		{Stat: NameReputation, Before: before.Reputation, After: after.Reputation},
		{Stat: NameEnergy, Before: before.Energy, After: after.Energy},
	}

	changes := make([]Change, 0, len(pairs))
	for _, c := range pairs {
		if c.Delta() != 0 {
			changes = append(changes, c)
		}
	}
	return changes
}
