package pipeline

import (
	"strings"
)

// NormalizeLabel canonicalizes a raw category label: trimmed, lower-cased,
// spaces replaced with underscores. All mapping tables are keyed by
// normalized labels.
func NormalizeLabel(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}

// WeaponBucket is one of the three canonical weapon categories that absorb
// the raw label variants.
type WeaponBucket string

const (
	WeaponHandguns WeaponBucket = "handguns"
	WeaponRifles   WeaponBucket = "rifles"
	WeaponOther    WeaponBucket = "other"
)

// DefaultWeaponBuckets returns the variant→bucket table for the weapon-type
// vocabulary known to occur in the source data. The misspelled
// "mulitiple_handguns" is a data-entry artifact that coexists with the
// correctly spelled variant; both belong to the same bucket.
func DefaultWeaponBuckets() map[string]WeaponBucket {
	return map[string]WeaponBucket{
		"handgun":            WeaponHandguns,
		"handguns":           WeaponHandguns,
		"multiple_handguns":  WeaponHandguns,
		"mulitiple_handguns": WeaponHandguns,
		"rifle":              WeaponRifles,
		"rifles":             WeaponRifles,
		"multiple_rifles":    WeaponRifles,
		"no_data":            WeaponOther,
		"unknown":            WeaponOther,
		"multiple_unknown":   WeaponOther,
		"other":              WeaponOther,
	}
}

// Outcome is a shooter survival-status category.
type Outcome string

const (
	OutcomeSurvived Outcome = "survived"
	OutcomeDied     Outcome = "died"
	OutcomeUnknown  Outcome = "unknown_status"
)

// DefaultShooterOutcomes returns the variant→outcome table for the shooter
// survival-status vocabulary. A blank status is treated as missing and
// counted under unknown_status without a table lookup.
func DefaultShooterOutcomes() map[string]Outcome {
	return map[string]Outcome{
		"survived": OutcomeSurvived,
		"deceased": OutcomeDied,
		"died":     OutcomeDied,
		"unknown":  OutcomeUnknown,
	}
}

// Severity is a victim injury-severity category.
type Severity string

const (
	SeverityFatal   Severity = "fatal"
	SeverityWounded Severity = "wounded"
	SeverityMinor   Severity = "minor_injuries"
	SeverityNone    Severity = "none"
	SeverityUnknown Severity = "unknown"
)

// DefaultInjurySeverities returns the variant→severity table for the victim
// injury vocabulary.
func DefaultInjurySeverities() map[string]Severity {
	return map[string]Severity{
		"fatal":          SeverityFatal,
		"wounded":        SeverityWounded,
		"minor_injuries": SeverityMinor,
		"none":           SeverityNone,
		"unknown":        SeverityUnknown,
	}
}
