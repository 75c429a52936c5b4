package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "ssicli/internal/errors"
	"ssicli/pkg/contracts/domain"
)

func TestTransformIncidents_CalendarFields(t *testing.T) {
	p := New(nil, Options{})
	stats := NewStats()

	raw := []domain.RawIncident{
		{
			IncidentID: "19990420HSCO",
			Date:       "1999-04-20",
			FirstShot:  "11:19 AM",
			School:     "Columbine High School",
			City:       "Littleton",
			State:      "CO",
			Situation:  "Escalation of Dispute",
			Preplanned: "Yes",
			// Metadata columns present in the source but dropped downstream
			Sources:     "news;police report",
			Reliability: "5",
		},
	}

	rows, err := p.TransformIncidents(context.Background(), raw, stats)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "19990420HSCO", row.IncidentID)
	assert.Equal(t, "1999-04-20", row.Date)
	assert.Equal(t, 1999, row.Year)
	assert.Equal(t, 4, row.Month)
	assert.Equal(t, 20, row.Day)
	assert.Equal(t, "Tuesday", row.DayOfWeek)
	assert.Equal(t, "11:19:00", row.FirstShotTime)
	assert.Equal(t, "Escalation of Dispute", row.Situation)
	assert.Equal(t, 1, stats.IncidentRows)
	assert.Zero(t, stats.UnparseableTimes)
}

func TestTransformIncidents_DateLayouts(t *testing.T) {
	p := New(nil, Options{})

	tests := []struct {
		date string
		want string
	}{
		{"2018-05-18", "2018-05-18"},
		{"05/18/2018", "2018-05-18"},
		{"5/8/2018", "2018-05-08"},
		{"May 18, 2018", "2018-05-18"},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			rows, err := p.TransformIncidents(context.Background(), []domain.RawIncident{
				{IncidentID: "X", Date: tt.date},
			}, NewStats())
			require.NoError(t, err)
			assert.Equal(t, tt.want, rows[0].Date)
		})
	}
}

func TestTransformIncidents_FirstShotTime(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		want        string
		unparseable int
	}{
		{"already canonical", "13:45:00", "13:45:00", 0},
		{"24h without seconds", "13:45", "13:45:00", 0},
		{"12h clock", "1:45 PM", "13:45:00", 0},
		{"12h with seconds", "1:45:30 pm", "13:45:30", 0},
		{"morning", "8:05 AM", "08:05:00", 0},
		{"blank is missing, not an error", "", "N/A", 0},
		{"whitespace only", "   ", "N/A", 0},
		{"malformed text", "around lunchtime", "N/A", 1},
		{"garbage number", "25:99", "N/A", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(nil, Options{})
			stats := NewStats()
			rows, err := p.TransformIncidents(context.Background(), []domain.RawIncident{
				{IncidentID: "X", Date: "2020-01-01", FirstShot: tt.value},
			}, stats)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rows[0].FirstShotTime)
			assert.Equal(t, tt.unparseable, stats.UnparseableTimes)
		})
	}
}

func TestTransformIncidents_UnparseableDateFailsLoudly(t *testing.T) {
	p := New(nil, Options{})

	_, err := p.TransformIncidents(context.Background(), []domain.RawIncident{
		{IncidentID: "GOOD1", Date: "2020-01-01"},
		{IncidentID: "BAD1", Date: "sometime in spring"},
	}, NewStats())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "BAD1")

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrTypeParsing, appErr.Type)
}

func TestTransformIncidents_OneRowPerInput(t *testing.T) {
	p := New(nil, Options{})

	raw := []domain.RawIncident{
		{IncidentID: "A", Date: "2020-01-01"},
		{IncidentID: "B", Date: "2020-01-02"},
		{IncidentID: "C", Date: "2020-01-03"},
	}

	rows, err := p.TransformIncidents(context.Background(), raw, NewStats())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "A", rows[0].IncidentID)
	assert.Equal(t, "B", rows[1].IncidentID)
	assert.Equal(t, "C", rows[2].IncidentID)
}
