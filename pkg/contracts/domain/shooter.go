package domain

// RawShooter is one row of the shooter sheet. An incident may have zero or
// more shooters. Age is kept as the raw cell value; coercion to a number is
// a pipeline concern. CriminalHistory and Verdict are read for completeness
// but dropped by the aggregate.
type RawShooter struct {
	IncidentID      string `json:"incident_id"`
	Age             string `json:"age"`
	Gender          string `json:"gender,omitempty"`
	Outcome         string `json:"shooter_outcome"` // survived / deceased / unknown / blank
	CriminalHistory string `json:"criminal_history,omitempty"`
	Verdict         string `json:"verdict,omitempty"`
}

// ShooterCounts is the per-incident shooter outcome aggregate. The three
// columns are always present; a category with no shooters is zero, not
// absent. The unknown column is named distinctly from the victim aggregate's
// unknown severity column.
type ShooterCounts struct {
	Survived      int `json:"survived"`
	Died          int `json:"died"`
	UnknownStatus int `json:"unknown_status"`
}

// Total is the number of shooter records the counts were aggregated from.
func (c ShooterCounts) Total() int {
	return c.Survived + c.Died + c.UnknownStatus
}
