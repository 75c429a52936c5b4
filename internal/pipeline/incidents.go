package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	apperrors "ssicli/internal/errors"
	"ssicli/pkg/contracts/domain"
)

// TimeUnavailable is the sentinel written to the first_shot_time column when
// the source value is blank or cannot be parsed. Downstream display logic
// expects this exact literal, not an empty cell.
const TimeUnavailable = "N/A"

// dateLayouts are the date renderings observed across data pulls. Excel cell
// formatting is not stable between vintages, so several layouts are accepted.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"01-02-06",
	"Jan 2, 2006",
	"January 2, 2006",
}

// timeLayouts are the accepted first-shot time renderings.
var timeLayouts = []string{
	"15:04:05",
	"15:04",
	"3:04:05 PM",
	"3:04 PM",
	"3:04PM",
	"3 PM",
}

// TransformIncidents cleans the incident sheet: one output row per input
// row, calendar fields derived from the date, the first-shot time
// canonicalized, metadata columns dropped. An unparseable date is a
// row-level failure and aborts the transform; silently dropping the row
// would corrupt the join cardinality.
func (p *Pipeline) TransformIncidents(ctx context.Context, raw []domain.RawIncident, stats *Stats) ([]domain.IncidentRow, error) {
	rows := make([]domain.IncidentRow, 0, len(raw))

	for _, in := range raw {
		date, err := parseDate(in.Date)
		if err != nil {
			return nil, apperrors.NewParsingError(
				fmt.Sprintf("incident %s has unparseable date %q", in.IncidentID, in.Date), err).
				WithContext("incident_id", in.IncidentID)
		}

		firstShot, ok := canonicalTime(in.FirstShot)
		if !ok {
			stats.UnparseableTimes++
			p.logger.DebugContext(ctx, "unparseable first-shot time",
				slog.String("incident_id", in.IncidentID),
				slog.String("value", in.FirstShot))
		}

		rows = append(rows, domain.IncidentRow{
			IncidentID:    in.IncidentID,
			Date:          date.Format("2006-01-02"),
			Year:          date.Year(),
			Month:         int(date.Month()),
			Day:           date.Day(),
			DayOfWeek:     date.Weekday().String(),
			FirstShotTime: firstShot,
			School:        strings.TrimSpace(in.School),
			City:          strings.TrimSpace(in.City),
			State:         strings.TrimSpace(in.State),
			Situation:     strings.TrimSpace(in.Situation),
			Targets:       strings.TrimSpace(in.Targets),
			Preplanned:    strings.TrimSpace(in.Preplanned),
		})
	}

	stats.IncidentRows = len(rows)
	return rows, nil
}

// parseDate tries the known date layouts in order.
func parseDate(s string) (time.Time, error) {
	value := strings.TrimSpace(s)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, value); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("no known date layout matches %q", value)
}

// canonicalTime renders a free-text first-shot time as HH:MM:SS 24-hour.
// Blank or malformed input yields the TimeUnavailable sentinel; the second
// return value is false only for malformed non-blank input, which the caller
// counts as a value error.
func canonicalTime(s string) (string, bool) {
	value := strings.TrimSpace(s)
	if value == "" {
		return TimeUnavailable, true
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, strings.ToUpper(value)); err == nil {
			return t.Format("15:04:05"), true
		}
	}
	return TimeUnavailable, false
}
