package game

import (
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/malikacodes/nursing-game/internal/finance"
	"github.com/malikacodes/nursing-game/internal/stats"
	"github.com/malikacodes/nursing-game/internal/telemetry"
)

// Summary is the end-of-game report.
type Summary struct {
	SessionID       uuid.UUID        `json:"session_id"`
	Nurse           string           `json:"nurse"`
	Specialization  string           `json:"specialization"`
	Tier            string           `json:"tier,omitempty"`
	ShiftsCompleted int              `json:"shifts_completed"`
	Stats           stats.Snapshot   `json:"stats"`
	Finances        finance.Snapshot `json:"finances"`
	Telemetry       telemetry.Stats  `json:"telemetry"`
	StartedAt       time.Time        `json:"started_at"`
	EndedAt         time.Time        `json:"ended_at"`
}

// Summarize reports on sess as it stands. Telemetry is limited to events
// recorded since the session started.
func (e Engine) Summarize(sess *Session) (Summary, error) {
	n := sess.Nurse
	s := Summary{
		SessionID:       sess.ID,
		Nurse:           n.Name,
		Specialization:  n.Specialization().DisplayName(),
		ShiftsCompleted: sess.Completed,
		Stats:           n.Stats().Snapshot(),
		Finances:        n.Finances().Snapshot(),
		StartedAt:       sess.StartedAt,
		EndedAt:         e.now(),
	}
	if n.Tier() != "" {
		s.Tier = n.Tier().DisplayName()
	}

	if e.Events == nil {
		return s, nil
	}
	events, err := e.Events.Events(telemetry.Filter{Since: sess.StartedAt})
	if err != nil {
		return Summary{}, fmt.Errorf("summary events: %w", err)
	}
	s.Telemetry, err = telemetry.CalculateStats(events, sess.StartedAt)
	if err != nil {
		return Summary{}, fmt.Errorf("summary stats: %w", err)
	}
	return s, nil
}

// WriteJSON writes the summary as indented JSON.
func (s Summary) WriteJSON(w io.Writer) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
