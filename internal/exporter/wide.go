package exporter

import (
	"strconv"

	"ssicli/pkg/contracts/domain"
)

// WideHeader is the column order of the exported analysis table. Column
// names are lower-cased; the shooter aggregate's unknown column is named
// distinctly from the victim aggregate's.
var WideHeader = []string{
	"incident_id",
	"date",
	"year",
	"month",
	"day",
	"day_of_week",
	"first_shot_time",
	"school",
	"city",
	"state",
	"situation",
	"targets",
	"preplanned",
	"survived",
	"died",
	"unknown_status",
	"fatal",
	"wounded",
	"minor_injuries",
	"none",
	"unknown",
	"handguns",
	"rifles",
	"other",
	"total_weapons",
}

// WriteWide writes the wide incident table to path.
func (w *CSVWriter) WriteWide(path string, rows []domain.IncidentWide) error {
	return w.Write(path, WideHeader, WideRecords(rows))
}

// WideRecords renders the wide table as CSV records in WideHeader order.
// Counts from a present aggregate render as numbers (zero included); a nil
// aggregate renders as empty cells.
func WideRecords(rows []domain.IncidentWide) [][]string {
	records := make([][]string, 0, len(rows))

	for _, row := range rows {
		record := []string{
			row.IncidentID,
			row.Date,
			strconv.Itoa(row.Year),
			strconv.Itoa(row.Month),
			strconv.Itoa(row.Day),
			row.DayOfWeek,
			row.FirstShotTime,
			row.School,
			row.City,
			row.State,
			row.Situation,
			row.Targets,
			row.Preplanned,
		}

		if c := row.Shooters; c != nil {
			record = append(record,
				strconv.Itoa(c.Survived), strconv.Itoa(c.Died), strconv.Itoa(c.UnknownStatus))
		} else {
			record = append(record, "", "", "")
		}

		if c := row.Victims; c != nil {
			record = append(record,
				strconv.Itoa(c.Fatal), strconv.Itoa(c.Wounded), strconv.Itoa(c.MinorInjuries),
				strconv.Itoa(c.None), strconv.Itoa(c.Unknown))
		} else {
			record = append(record, "", "", "", "", "")
		}

		if c := row.Weapons; c != nil {
			record = append(record,
				strconv.Itoa(c.Handguns), strconv.Itoa(c.Rifles), strconv.Itoa(c.Other),
				strconv.Itoa(c.Total))
		} else {
			record = append(record, "", "", "", "")
		}

		records = append(records, record)
	}

	return records
}
