// Package workbook reads the source spreadsheet into the four raw tables
// the pipeline consumes.
//
// The workbook carries exactly four sheets in a fixed order: incidents,
// shooters, victims, weapons. Each sheet has a header row; header names are
// matched case-insensitively with spaces and underscores interchangeable, so
// "Incident_ID", "incident id" and "INCIDENT_ID" all resolve to the same
// column. A required column absent from a sheet is a fatal schema error
// naming both the sheet and the column. Cell values are returned verbatim as
// strings; all coercion happens in the pipeline.
package workbook
