package pipeline

import (
	"context"

	"ssicli/pkg/contracts/domain"
)

// Join left-joins the cleaned incident rows with the three aggregates on
// incident_id. The incident sheet drives: every incident appears exactly
// once, in input order, even with no matching aggregate rows. An aggregate
// the incident has no rows in stays nil (post-join null); inside a present
// aggregate, zero-filled categories stay zero. Aggregate values are copied
// so the result does not alias the aggregation maps.
func (p *Pipeline) Join(
	ctx context.Context,
	incidents []domain.IncidentRow,
	shooters map[string]*domain.ShooterCounts,
	victims map[string]*domain.VictimCounts,
	weapons map[string]*domain.WeaponCounts,
) []domain.IncidentWide {
	wide := make([]domain.IncidentWide, 0, len(incidents))

	for _, row := range incidents {
		out := domain.IncidentWide{IncidentRow: row}

		if c, ok := shooters[row.IncidentID]; ok {
			cc := *c
			out.Shooters = &cc
		}
		if c, ok := victims[row.IncidentID]; ok {
			cc := *c
			out.Victims = &cc
		}
		if c, ok := weapons[row.IncidentID]; ok {
			cc := *c
			out.Weapons = &cc
		}

		wide = append(wide, out)
	}

	return wide
}
