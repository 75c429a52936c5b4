// Package exporter writes the final analysis table to CSV.
//
// CSVWriter is the core writing primitive: header row, optional UTF-8 BOM
// for Excel compatibility, directory creation. WriteWide renders the wide
// incident table with the null-versus-zero distinction intact: a zero-filled
// count renders "0", a post-join null (the incident has no rows at all in
// that sub-table) renders an empty cell, and a missing first-shot time
// renders the literal "N/A" sentinel.
package exporter
