package pipeline

import (
	"context"

	"ssicli/pkg/contracts/domain"
)

// AggregateVictims reduces the victim sheet to one VictimCounts per
// incident: counts by injury severity, absent severities zero-filled. Blank
// severity is missing and counts as unknown; an unmapped variant counts as
// unknown and is recorded in stats.
func (p *Pipeline) AggregateVictims(ctx context.Context, raw []domain.RawVictim, stats *Stats) map[string]*domain.VictimCounts {
	counts := make(map[string]*domain.VictimCounts)

	for _, in := range raw {
		c := counts[in.IncidentID]
		if c == nil {
			c = &domain.VictimCounts{}
			counts[in.IncidentID] = c
		}

		norm := NormalizeLabel(in.Injury)
		severity := SeverityUnknown
		if norm != "" {
			mapped, ok := p.severities[norm]
			if ok {
				severity = mapped
			} else {
				stats.UnmappedSeverities[norm]++
			}
		}

		switch severity {
		case SeverityFatal:
			c.Fatal++
		case SeverityWounded:
			c.Wounded++
		case SeverityMinor:
			c.MinorInjuries++
		case SeverityNone:
			c.None++
		default:
			c.Unknown++
		}
	}

	stats.VictimRows = len(raw)
	return counts
}
