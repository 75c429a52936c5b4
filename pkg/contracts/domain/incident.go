package domain

// RawIncident is one row of the incident sheet, exactly as read from the
// workbook. Cell values are kept as strings; parsing and coercion happen in
// the pipeline so that row-level failures can be reported with full context.
type RawIncident struct {
	IncidentID     string `json:"incident_id"`
	Date           string `json:"date"`
	FirstShot      string `json:"first_shot"` // free-text first-shot time
	School         string `json:"school"`
	City           string `json:"city"`
	State          string `json:"state"`
	Situation      string `json:"situation"`
	Targets        string `json:"targets"`
	Preplanned     string `json:"preplanned"`
	Sources        string `json:"sources,omitempty"`
	NewsMentions   string `json:"news_mentions,omitempty"`
	DateOriginal   string `json:"date_original,omitempty"`
	Quarter        string `json:"quarter,omitempty"`
	MediaAttention string `json:"media_attention,omitempty"`
	Reliability    string `json:"reliability,omitempty"`
}

// IncidentRow is the cleaned per-incident row produced by the incident
// transform: calendar fields derived from the date, the first-shot time
// canonicalized to HH:MM:SS (or the "N/A" sentinel), and the metadata
// columns (sources, news mentions, original date, quarter, media attention,
// reliability) dropped.
type IncidentRow struct {
	IncidentID    string `json:"incident_id"`
	Date          string `json:"date"` // canonical YYYY-MM-DD
	Year          int    `json:"year"`
	Month         int    `json:"month"`
	Day           int    `json:"day"`
	DayOfWeek     string `json:"day_of_week"` // full weekday name
	FirstShotTime string `json:"first_shot_time"`
	School        string `json:"school"`
	City          string `json:"city"`
	State         string `json:"state"`
	Situation     string `json:"situation"`
	Targets       string `json:"targets"`
	Preplanned    string `json:"preplanned"`
}
