package pipeline

import (
	"context"

	"ssicli/pkg/contracts/domain"
)

// AggregateWeapons reduces the weapon sheet to one WeaponCounts per
// incident. Raw labels are first counted per (incident, normalized label),
// then the per-label counts collapse through the variant→bucket table into
// the three canonical buckets; total_weapons is the bucket sum. A blank or
// unmapped label collapses into the other bucket, the unmapped ones recorded
// in stats so a new spelling variant in a future data pull surfaces instead
// of disappearing.
func (p *Pipeline) AggregateWeapons(ctx context.Context, raw []domain.RawWeapon, stats *Stats) map[string]*domain.WeaponCounts {
	// Pass 1: count per (incident_id, normalized label)
	perLabel := make(map[string]map[string]int)
	for _, in := range raw {
		labels := perLabel[in.IncidentID]
		if labels == nil {
			labels = make(map[string]int)
			perLabel[in.IncidentID] = labels
		}
		labels[NormalizeLabel(in.WeaponType)]++
	}

	// Pass 2: collapse label counts into canonical buckets
	counts := make(map[string]*domain.WeaponCounts, len(perLabel))
	for incidentID, labels := range perLabel {
		c := &domain.WeaponCounts{}
		for label, n := range labels {
			bucket := WeaponOther
			if label != "" {
				mapped, ok := p.weaponBuckets[label]
				if ok {
					bucket = mapped
				} else {
					stats.UnmappedWeaponTypes[label] += n
				}
			}

			switch bucket {
			case WeaponHandguns:
				c.Handguns += n
			case WeaponRifles:
				c.Rifles += n
			default:
				c.Other += n
			}
		}
		c.Total = c.Handguns + c.Rifles + c.Other
		counts[incidentID] = c
	}

	stats.WeaponRows = len(raw)
	return counts
}
