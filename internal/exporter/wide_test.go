package exporter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ssicli/pkg/contracts/domain"
)

func sampleWide() []domain.IncidentWide {
	return []domain.IncidentWide{
		{
			IncidentRow: domain.IncidentRow{
				IncidentID:    "A1",
				Date:          "2019-02-14",
				Year:          2019,
				Month:         2,
				Day:           14,
				DayOfWeek:     "Thursday",
				FirstShotTime: "14:21:00",
				Situation:     "Targeted",
				Preplanned:    "Yes",
			},
			Shooters: &domain.ShooterCounts{Survived: 1, Died: 1},
			Victims:  &domain.VictimCounts{Fatal: 1, Wounded: 2},
			Weapons:  nil, // no weapon rows at all for this incident
		},
		{
			IncidentRow: domain.IncidentRow{
				IncidentID:    "B2",
				Date:          "2019-06-03",
				Year:          2019,
				Month:         6,
				Day:           3,
				DayOfWeek:     "Monday",
				FirstShotTime: "N/A",
				Situation:     "Accidental",
				Preplanned:    "No",
			},
			Weapons: &domain.WeaponCounts{Handguns: 1, Total: 1},
		},
	}
}

func TestWideRecords(t *testing.T) {
	records := WideRecords(sampleWide())
	require.Len(t, records, 2)

	byName := func(record []string, column string) string {
		for i, name := range WideHeader {
			if name == column {
				return record[i]
			}
		}
		t.Fatalf("no column %q", column)
		return ""
	}

	a := records[0]
	require.Len(t, a, len(WideHeader))
	assert.Equal(t, "A1", byName(a, "incident_id"))
	assert.Equal(t, "Thursday", byName(a, "day_of_week"))
	// Zero-filled category in a present aggregate renders 0
	assert.Equal(t, "0", byName(a, "unknown_status"))
	assert.Equal(t, "1", byName(a, "survived"))
	assert.Equal(t, "2", byName(a, "wounded"))
	// Post-join null renders as an empty cell, not 0
	assert.Equal(t, "", byName(a, "handguns"))
	assert.Equal(t, "", byName(a, "total_weapons"))

	b := records[1]
	assert.Equal(t, "N/A", byName(b, "first_shot_time"), "missing time is the sentinel, not empty")
	assert.Equal(t, "", byName(b, "survived"))
	assert.Equal(t, "1", byName(b, "handguns"))
	assert.Equal(t, "0", byName(b, "rifles"))
}

func TestWriteWide(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "incidents_wide.csv")

	w := NewCSVWriter(nil, false)
	require.NoError(t, w.WriteWide(path, sampleWide()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, WideHeader, rows[0])
	assert.Equal(t, "A1", rows[1][0])
}

func TestWriteWide_BOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wide.csv")

	w := NewCSVWriter(nil, true)
	require.NoError(t, w.WriteWide(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))
}

func TestWriteWide_Deterministic(t *testing.T) {
	dir := t.TempDir()
	w := NewCSVWriter(nil, true)

	first := filepath.Join(dir, "a.csv")
	second := filepath.Join(dir, "b.csv")
	require.NoError(t, w.WriteWide(first, sampleWide()))
	require.NoError(t, w.WriteWide(second, sampleWide()))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same input produces byte-identical output")
}
