package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tickClock struct {
	t time.Time
}

func (c *tickClock) now() time.Time {
	c.t = c.t.Add(time.Minute)
	return c.t
}

func TestMemoryRepository_RecordAndFilter(t *testing.T) {
	clock := &tickClock{t: time.Date(2026, 1, 5, 7, 0, 0, 0, time.UTC)}
	repo := NewMemoryRepository(clock.now)

	require.NoError(t, repo.RecordEvent(EventShiftStarted, EventMetadata{"shift": 1, "night": false}))
	require.NoError(t, repo.RecordEvent(EventScenarioPresented, EventMetadata{"title": "Family Conference"}))
	require.NoError(t, repo.RecordEvent(EventMistakeMade, EventMetadata{"efficiency": 25}))

	all, err := repo.Events(Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 1, all[0].ID)
	assert.Equal(t, 3, all[2].ID)
	assert.JSONEq(t, `{"title":"Family Conference"}`, all[1].Metadata)

	mistakes, err := repo.Events(Filter{Types: []EventType{EventMistakeMade}})
	require.NoError(t, err)
	assert.Len(t, mistakes, 1)

	later, err := repo.Events(Filter{Since: all[1].Timestamp})
	require.NoError(t, err)
	assert.Len(t, later, 2)

	require.NoError(t, repo.Clear())
	all, err = repo.Events(Filter{})
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, repo.RecordEvent(EventGameEnded, nil))
	all, _ = repo.Events(Filter{})
	assert.Equal(t, 1, all[0].ID)
}

func TestCalculateStats(t *testing.T) {
	repo := NewMemoryRepository(nil)
	record := func(et EventType, md EventMetadata) {
		require.NoError(t, repo.RecordEvent(et, md))
	}

	record(EventShiftStarted, EventMetadata{"night": false})
	record(EventScenarioPresented, EventMetadata{"title": "Triage Assessment"})
	record(EventMistakeMade, EventMetadata{})
	record(EventScenarioPresented, EventMetadata{"title": "Simple Trauma"})
	record(EventLeftEarly, EventMetadata{})
	record(EventShiftStarted, EventMetadata{"night": true})
	record(EventScenarioPresented, EventMetadata{"title": "Triage Assessment"})
	record(EventFollowUpPresented, EventMetadata{"title": "Triage Assessment"})
	record(EventScenarioUnavailable, EventMetadata{})
	record(EventOvertimeWorked, EventMetadata{})
	record(EventBreakTaken, EventMetadata{})

	events, err := repo.Events(Filter{})
	require.NoError(t, err)

	stats, err := CalculateStats(events, time.Time{})
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Shifts)
	assert.Equal(t, 1, stats.NightShifts)
	assert.Equal(t, 3, stats.Scenarios)
	assert.Equal(t, 1, stats.FollowUps)
	assert.Equal(t, 1, stats.Unavailable)
	assert.Equal(t, 1, stats.Mistakes)
	assert.Equal(t, 1, stats.EarlyDepartures)
	assert.Equal(t, 1, stats.Overtimes)
	assert.Equal(t, 1, stats.Breaks)
	assert.InDelta(t, 1.0/3.0, stats.MistakeRate, 1e-9)
	assert.InDelta(t, 1.5, stats.ScenariosPerShift, 1e-9)
	assert.Equal(t, 2, stats.ScenarioCounts["Triage Assessment"])
	assert.Equal(t, 2, stats.EventCounts[EventShiftStarted])
}

func TestCalculateStats_Empty(t *testing.T) {
	stats, err := CalculateStats(nil, time.Time{})
	require.NoError(t, err)
	assert.Zero(t, stats.Shifts)
	assert.Zero(t, stats.MistakeRate)
}
