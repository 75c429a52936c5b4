package domain

// RawVictim is one row of the victim sheet. Injury is the severity category
// as entered in the source data (Fatal, Wounded, Minor Injuries, None, or
// blank).
type RawVictim struct {
	IncidentID string `json:"incident_id"`
	Age        string `json:"age,omitempty"`
	Gender     string `json:"gender,omitempty"`
	Injury     string `json:"injury"`
}

// VictimCounts is the per-incident victim aggregate, one count per injury
// severity category. Absent categories are zero-filled.
type VictimCounts struct {
	Fatal         int `json:"fatal"`
	Wounded       int `json:"wounded"`
	MinorInjuries int `json:"minor_injuries"`
	None          int `json:"none"`
	Unknown       int `json:"unknown"`
}

// Total is the number of victim records the counts were aggregated from.
func (c VictimCounts) Total() int {
	return c.Fatal + c.Wounded + c.MinorInjuries + c.None + c.Unknown
}
