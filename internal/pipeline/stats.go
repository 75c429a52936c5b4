package pipeline

import (
	"sort"

	apperrors "ssicli/internal/errors"
)

// Stats accumulates non-fatal data-quality findings for one pipeline run:
// counts of values that failed coercion and the distinct category variants
// missing from the configured mapping tables. Value errors never abort the
// run; they are substituted with sentinels and reported here.
type Stats struct {
	IncidentRows int
	ShooterRows  int
	VictimRows   int
	WeaponRows   int

	UnparseableTimes int
	UnparseableAges  int

	// normalized variant → number of rows carrying it
	UnmappedWeaponTypes map[string]int
	UnmappedOutcomes    map[string]int
	UnmappedSeverities  map[string]int
}

// NewStats returns an empty Stats ready for accumulation.
func NewStats() *Stats {
	return &Stats{
		UnmappedWeaponTypes: make(map[string]int),
		UnmappedOutcomes:    make(map[string]int),
		UnmappedSeverities:  make(map[string]int),
	}
}

// Warnings materializes one category error per distinct unmapped variant,
// sorted by dimension and variant for stable reporting.
func (s *Stats) Warnings() []*apperrors.AppError {
	var warnings []*apperrors.AppError

	dims := []struct {
		name     string
		variants map[string]int
	}{
		{"weapon type", s.UnmappedWeaponTypes},
		{"shooter outcome", s.UnmappedOutcomes},
		{"injury severity", s.UnmappedSeverities},
	}

	for _, dim := range dims {
		variants := make([]string, 0, len(dim.variants))
		for v := range dim.variants {
			variants = append(variants, v)
		}
		sort.Strings(variants)
		for _, v := range variants {
			warnings = append(warnings,
				apperrors.NewCategoryError(dim.name, v).WithContext("rows", dim.variants[v]))
		}
	}

	return warnings
}
