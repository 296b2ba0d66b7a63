package telemetry

import "time"

type EventType string

const (
	EventShiftStarted        EventType = "shift_started"
	EventScenarioPresented   EventType = "scenario_presented"
	EventScenarioUnavailable EventType = "scenario_unavailable"
	EventOptionChosen        EventType = "option_chosen"
	EventFollowUpPresented   EventType = "follow_up_presented"
	EventMistakeMade         EventType = "mistake_made"
	EventNightPayReceived    EventType = "night_pay_received"
	EventLeftEarly           EventType = "left_early"
	EventOvertimeWorked      EventType = "overtime_worked"
	EventBreakTaken          EventType = "break_taken"
	EventGameEnded           EventType = "game_ended"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
