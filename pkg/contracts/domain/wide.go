package domain

// RawTables holds the four sheets of the source workbook after the initial
// read, before any cleaning. This is the contract between the workbook
// loader and the pipeline.
type RawTables struct {
	Incidents []RawIncident `json:"incidents"`
	Shooters  []RawShooter  `json:"shooters"`
	Victims   []RawVictim   `json:"victims"`
	Weapons   []RawWeapon   `json:"weapons"`
}

// IncidentWide is one row of the final denormalized analysis table: the
// cleaned incident fields joined with the three per-incident aggregates.
//
// The aggregate fields are pointers so that "the incident has no records at
// all in that sub-table" (nil, post-join null) stays distinct from "the
// aggregate exists and some categories are zero" (zero-fill inside a present
// aggregate). Every incident from the incident sheet appears exactly once.
type IncidentWide struct {
	IncidentRow

	Shooters *ShooterCounts `json:"shooters,omitempty"`
	Victims  *VictimCounts  `json:"victims,omitempty"`
	Weapons  *WeaponCounts  `json:"weapons,omitempty"`
}
