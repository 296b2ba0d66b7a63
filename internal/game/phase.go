package game

import "github.com/malikacodes/nursing-game/internal/nurse"

// Phase is the quarter-day a shift falls in. Phases cycle
// DayFirst, DaySecond, NightFirst, NightSecond.
type Phase int

const (
	DayFirst Phase = iota
	DaySecond
	NightFirst
	NightSecond
)

var phaseNames = [...]string{"DAY_FIRST", "DAY_SECOND", "NIGHT_FIRST", "NIGHT_SECOND"}

var phaseDescriptions = [...]string{
	"Day Shift (7AM-1PM)",
	"Day Shift (1PM-7PM)",
	"Night Shift (7PM-1AM)",
	"Night Shift (1AM-7AM)",
}

func (p Phase) valid() bool { return p >= DayFirst && p <= NightSecond }

func (p Phase) String() string {
	if !p.valid() {
		return "UNKNOWN"
	}
	return phaseNames[p]
}

func (p Phase) Description() string {
	if !p.valid() {
		return "Unknown Shift"
	}
	return phaseDescriptions[p]
}

func (p Phase) IsNight() bool { return p == NightFirst || p == NightSecond }

func (p Phase) Next() Phase { return (p + 1) % 4 }

// StartPhase is the first phase for a shift preference.
func StartPhase(pref nurse.ShiftPreference) Phase {
	if pref.Night() {
		return NightFirst
	}
	return DayFirst
}
