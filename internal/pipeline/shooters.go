package pipeline

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"ssicli/pkg/contracts/domain"
)

// AgeGroup buckets a shooter's age for exploratory analysis. The group is an
// intermediate value: it informs the debug log but is not retained in the
// final aggregate.
type AgeGroup string

const (
	AgeChild   AgeGroup = "Child" // under 13
	AgeTeen    AgeGroup = "Teen"  // 13 through 17
	AgeAdult   AgeGroup = "Adult" // 18 and over
	AgeUnknown AgeGroup = "Unknown"
)

// ClassifyAge buckets an age into its group. A nil age (missing or
// non-numeric in the source) is Unknown.
func ClassifyAge(age *int) AgeGroup {
	switch {
	case age == nil:
		return AgeUnknown
	case *age < 13:
		return AgeChild
	case *age <= 17:
		return AgeTeen
	default:
		return AgeAdult
	}
}

// AggregateShooters reduces the shooter sheet to one ShooterCounts per
// incident: counts by survival outcome, absent outcomes zero-filled. Blank
// status is missing and counts as unknown_status; a non-blank variant
// missing from the outcome table also counts as unknown_status but is
// recorded in stats so it is never coalesced silently.
func (p *Pipeline) AggregateShooters(ctx context.Context, raw []domain.RawShooter, stats *Stats) map[string]*domain.ShooterCounts {
	counts := make(map[string]*domain.ShooterCounts)
	ageGroups := make(map[AgeGroup]int)

	for _, in := range raw {
		age := coerceAge(in.Age, stats)
		ageGroups[ClassifyAge(age)]++

		c := counts[in.IncidentID]
		if c == nil {
			c = &domain.ShooterCounts{}
			counts[in.IncidentID] = c
		}

		norm := NormalizeLabel(in.Outcome)
		outcome := OutcomeUnknown
		if norm != "" {
			mapped, ok := p.outcomes[norm]
			if ok {
				outcome = mapped
			} else {
				stats.UnmappedOutcomes[norm]++
			}
		}

		switch outcome {
		case OutcomeSurvived:
			c.Survived++
		case OutcomeDied:
			c.Died++
		default:
			c.UnknownStatus++
		}
	}

	stats.ShooterRows = len(raw)
	p.logger.DebugContext(ctx, "shooter age distribution",
		slog.Int("child", ageGroups[AgeChild]),
		slog.Int("teen", ageGroups[AgeTeen]),
		slog.Int("adult", ageGroups[AgeAdult]),
		slog.Int("unknown", ageGroups[AgeUnknown]))

	return counts
}

// coerceAge parses the raw age cell. Missing or non-numeric values yield nil
// and, when non-blank, count as a value error.
func coerceAge(s string, stats *Stats) *int {
	value := strings.TrimSpace(s)
	if value == "" {
		return nil
	}
	age, err := strconv.Atoi(value)
	if err != nil {
		stats.UnparseableAges++
		return nil
	}
	return &age
}
