package stats

import "fmt"

const (
	Min = 0
	Max = 100
)

const (
	DefaultKnowledge   = 50
	DefaultPatientCare = 50
	DefaultEfficiency  = 50
	DefaultStress      = 0
	DefaultReputation  = 50
	DefaultEnergy      = 70
)

// Stats holds the six bounded attributes of a nurse.
// Every mutation leaves each field within [Min, Max].
type Stats struct {
	knowledge   int
	patientCare int
	efficiency  int
	stress      int
	reputation  int
	energy      int
}

func New() *Stats {
	return &Stats{
		knowledge:   DefaultKnowledge,
		patientCare: DefaultPatientCare,
		efficiency:  DefaultEfficiency,
		stress:      DefaultStress,
		reputation:  DefaultReputation,
		energy:      DefaultEnergy,
	}
}

func clamp(v int) int {
	return min(max(v, Min), Max)
}

// add saturates amount to the stat range first so v+amount cannot overflow.
func add(v, amount int) int {
	amount = min(max(amount, -Max), Max)
	return clamp(v + amount)
}

func sub(v, amount int) int {
	amount = min(max(amount, -Max), Max)
	return clamp(v - amount)
}

func (s *Stats) ImproveKnowledge(amount int)   { s.knowledge = add(s.knowledge, amount) }
func (s *Stats) ImprovePatientCare(amount int) { s.patientCare = add(s.patientCare, amount) }
func (s *Stats) ImproveEfficiency(amount int)  { s.efficiency = add(s.efficiency, amount) }
func (s *Stats) ImproveReputation(amount int)  { s.reputation = add(s.reputation, amount) }

func (s *Stats) DecreaseKnowledge(amount int)   { s.knowledge = sub(s.knowledge, amount) }
func (s *Stats) DecreasePatientCare(amount int) { s.patientCare = sub(s.patientCare, amount) }
func (s *Stats) DecreaseEfficiency(amount int)  { s.efficiency = sub(s.efficiency, amount) }
func (s *Stats) DecreaseReputation(amount int)  { s.reputation = sub(s.reputation, amount) }

func (s *Stats) AddStress(amount int)    { s.stress = add(s.stress, amount) }
func (s *Stats) ReduceStress(amount int) { s.stress = sub(s.stress, amount) }

func (s *Stats) SetKnowledge(v int)   { s.knowledge = clamp(v) }
func (s *Stats) SetPatientCare(v int) { s.patientCare = clamp(v) }
func (s *Stats) SetEfficiency(v int)  { s.efficiency = clamp(v) }
func (s *Stats) SetStress(v int)      { s.stress = clamp(v) }
func (s *Stats) SetReputation(v int)  { s.reputation = clamp(v) }
func (s *Stats) SetEnergy(v int)      { s.energy = clamp(v) }

// Normalize re-clamps every field. It is idempotent.
func (s *Stats) Normalize() {
	s.knowledge = clamp(s.knowledge)
	s.patientCare = clamp(s.patientCare)
	s.efficiency = clamp(s.efficiency)
	s.stress = clamp(s.stress)
	s.reputation = clamp(s.reputation)
	s.energy = clamp(s.energy)
}

func (s *Stats) Knowledge() int   { return s.knowledge }
func (s *Stats) PatientCare() int { return s.patientCare }
func (s *Stats) Efficiency() int  { return s.efficiency }
func (s *Stats) Stress() int      { return s.stress }
func (s *Stats) Reputation() int  { return s.reputation }
func (s *Stats) Energy() int      { return s.energy }

func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Knowledge:   s.knowledge,
		PatientCare: s.patientCare,
		Efficiency:  s.efficiency,
		Stress:      s.stress,
		Reputation:  s.reputation,
		Energy:      s.energy,
	}
}

func (s *Stats) String() string {
	return s.Snapshot().String()
}

// Snapshot is a point-in-time copy of Stats.
type Snapshot struct {
	Knowledge   int `json:"knowledge"`
	PatientCare int `json:"patient_care"`
	Efficiency  int `json:"efficiency"`
	Stress      int `json:"stress"`
	Reputation  int `json:"reputation"`
	Energy      int `json:"energy"`
}

func (s Snapshot) String() string {
	return fmt.Sprintf("Knowledge: %d%%, Patient Care: %d%%, Efficiency: %d%%, Energy: %d%%, Reputation: %d%%, Stress: %d%%",
		s.Knowledge, s.PatientCare, s.Efficiency, s.Energy, s.Reputation, s.Stress)
}
