package telemetry

import (
	"time"

	"github.com/goccy/go-json"
)

type Stats struct {
	Since             time.Time         `json:"since"`
	EventCounts       map[EventType]int `json:"event_counts"`
	Shifts            int               `json:"shifts"`
	NightShifts       int               `json:"night_shifts"`
	Scenarios         int               `json:"scenarios"`
	FollowUps         int               `json:"follow_ups"`
	Unavailable       int               `json:"unavailable"`
	Mistakes          int               `json:"mistakes"`
	EarlyDepartures   int               `json:"early_departures"`
	Overtimes         int               `json:"overtimes"`
	Breaks            int               `json:"breaks"`
	MistakeRate       float64           `json:"mistake_rate"`
	ScenariosPerShift float64           `json:"scenarios_per_shift"`
	ScenarioCounts    map[string]int    `json:"scenario_counts"`
}

// CalculateStats summarizes a game from its events.
func CalculateStats(events []Event, since time.Time) (Stats, error) {
	stats := Stats{
		Since:          since,
		EventCounts:    make(map[EventType]int),
		ScenarioCounts: make(map[string]int),
	}

	for _, event := range events {
		stats.EventCounts[event.Type]++

		var metadata EventMetadata
		if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
			continue
		}

		switch event.Type {
		case EventShiftStarted:
			stats.Shifts++
			if night, ok := metadata["night"].(bool); ok && night {
				stats.NightShifts++
			}
		case EventScenarioPresented:
			stats.Scenarios++
			if title, ok := metadata["title"].(string); ok {
				stats.ScenarioCounts[title]++
			}
		case EventFollowUpPresented:
			stats.FollowUps++
		case EventScenarioUnavailable:
			stats.Unavailable++
		case EventMistakeMade:
			stats.Mistakes++
		case EventLeftEarly:
			stats.EarlyDepartures++
		case EventOvertimeWorked:
			stats.Overtimes++
		case EventBreakTaken:
			stats.Breaks++
		}
	}

	if stats.Scenarios > 0 {
		stats.MistakeRate = float64(stats.Mistakes) / float64(stats.Scenarios)
	}
	if stats.Shifts > 0 {
		stats.ScenariosPerShift = float64(stats.Scenarios) / float64(stats.Shifts)
	}

	return stats, nil
}
