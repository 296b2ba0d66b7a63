package scenario

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malikacodes/nursing-game/internal/nurse"
)

const sampleCatalog = `
version: 1
scenarios:
  - id: code-blue
    title: Code Blue
    description: Your patient is unresponsive.
    difficulty: 3
    shift: night
    tier: experienced
    specializations: [icu, er]
    options:
      - label: Start compressions
        outcome:
          description: ROSC after two rounds.
          knowledge: 5
          stress: 10
        follow_up:
          id: code-debrief
          title: Debrief
          description: The team gathers afterwards.
          difficulty: 1
          options:
            - label: Lead the debrief
              outcome:
                description: The team appreciates it.
                stress: -5
      - label: Wait for the team
        outcome:
          description: Precious time lost.
          patient_care: -10
          financial: -12.50
  - id: break-room
    title: Break Room
    description: Someone brought donuts.
    difficulty: 1
    shift: day
    options:
      - label: Take one
        outcome:
          description: Delicious.
          financial: "3"
`

func TestLoad(t *testing.T) {
	defs, err := Load(strings.NewReader(sampleCatalog))
	require.NoError(t, err)
	require.Len(t, defs, 2)

	code := defs[0]
	assert.Equal(t, "code-blue", code.ID)
	assert.Equal(t, Night, code.Shift)
	assert.Equal(t, nurse.Experienced, code.Tier)
	assert.Equal(t, []nurse.Specialization{nurse.ICU, nurse.ER}, code.Specializations)
	require.Len(t, code.Options, 2)
	require.NotNil(t, code.Options[0].FollowUp)
	assert.Equal(t, "Debrief", code.Options[0].FollowUp.Title)
	assert.Equal(t, -5, code.Options[0].FollowUp.Options[0].Outcome.Stress)
	assert.True(t, decimal.RequireFromString("-12.5").Equal(code.Options[1].Outcome.Financial.Decimal))
	assert.True(t, decimal.NewFromInt(3).Equal(defs[1].Options[0].Outcome.Financial.Decimal))

	c, err := NewCatalog(nurse.Experienced, defs)
	require.NoError(t, err)
	assert.Len(t, c.Eligible(true, nurse.ER, nil), 1)
	assert.Empty(t, c.Eligible(true, nurse.MedSurg, nil))
}

func TestLoad_SchemaErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty document", ``},
		{"missing scenarios", `version: 1`},
		{"unknown top-level key", "scenarios: []\nextra: true"},
		{"missing shift", `
scenarios:
  - title: T
    description: D
    difficulty: 1
    options: [{label: A, outcome: {description: x}}]`},
		{"bad specialization", `
scenarios:
  - title: T
    description: D
    difficulty: 1
    shift: day
    specializations: [oncology]
    options: [{label: A, outcome: {description: x}}]`},
		{"difficulty out of range", `
scenarios:
  - title: T
    description: D
    difficulty: 9
    shift: day
    options: [{label: A, outcome: {description: x}}]`},
		{"delta out of range", `
scenarios:
  - title: T
    description: D
    difficulty: 1
    shift: day
    options: [{label: A, outcome: {description: x, stress: 150}}]`},
		{"no options", `
scenarios:
  - title: T
    description: D
    difficulty: 1
    shift: day
    options: []`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, ErrSchema)
		})
	}
}

func TestLoad_DuplicateIDs(t *testing.T) {
	doc := `
scenarios:
  - id: same
    title: A
    description: D
    difficulty: 1
    shift: day
    options: [{label: A, outcome: {description: x}}]
  - id: same
    title: B
    description: D
    difficulty: 1
    shift: night
    options: [{label: A, outcome: {description: x}}]
`
	_, err := Load(strings.NewReader(doc))
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := Load(strings.NewReader("scenarios: [unterminated"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSchema)
}

func TestExport_RoundTripsSeed(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, Seed()))
	assert.True(t, strings.HasPrefix(buf.String(), "version: 1\n"))
	assert.NotContains(t, buf.String(), "financial:")

	defs, err := Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, Seed(), defs)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o644))

	defs, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, defs, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
