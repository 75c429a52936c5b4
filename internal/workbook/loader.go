package workbook

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "ssicli/internal/errors"
	"ssicli/pkg/contracts/domain"
)

// sheetCount is the fixed number of sheets the workbook must carry, in
// order: incidents, shooters, victims, weapons.
const sheetCount = 4

// Loader reads incident workbooks.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a workbook loader. A nil logger falls back to
// slog.Default().
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load opens the workbook at path and reads its four sheets into raw
// tables. The whole workbook is read once, up front; there is no streaming.
func (l *Loader) Load(ctx context.Context, path string) (*domain.RawTables, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewStorageError(fmt.Sprintf("failed to open workbook %s", path), err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) < sheetCount {
		return nil, apperrors.NewSchemaError(
			fmt.Sprintf("workbook has %d sheets, expected %d (incidents, shooters, victims, weapons)",
				len(sheets), sheetCount), nil)
	}

	tables := &domain.RawTables{}

	incidents, err := l.readSheet(f, sheets[0], "incident_id", "date", "first_shot", "situation", "preplanned")
	if err != nil {
		return nil, err
	}
	for _, row := range incidents.rows {
		tables.Incidents = append(tables.Incidents, domain.RawIncident{
			IncidentID:     incidents.cell(row, "incident_id"),
			Date:           incidents.cell(row, "date"),
			FirstShot:      incidents.cell(row, "first_shot"),
			School:         incidents.cell(row, "school"),
			City:           incidents.cell(row, "city"),
			State:          incidents.cell(row, "state"),
			Situation:      incidents.cell(row, "situation"),
			Targets:        incidents.cell(row, "targets"),
			Preplanned:     incidents.cell(row, "preplanned"),
			Sources:        incidents.cell(row, "sources"),
			NewsMentions:   incidents.cell(row, "news_mentions"),
			DateOriginal:   incidents.cell(row, "date_original"),
			Quarter:        incidents.cell(row, "quarter"),
			MediaAttention: incidents.cell(row, "media_attention"),
			Reliability:    incidents.cell(row, "reliability"),
		})
	}

	shooters, err := l.readSheet(f, sheets[1], "incident_id", "age", "shooter_outcome")
	if err != nil {
		return nil, err
	}
	for _, row := range shooters.rows {
		tables.Shooters = append(tables.Shooters, domain.RawShooter{
			IncidentID:      shooters.cell(row, "incident_id"),
			Age:             shooters.cell(row, "age"),
			Gender:          shooters.cell(row, "gender"),
			Outcome:         shooters.cell(row, "shooter_outcome"),
			CriminalHistory: shooters.cell(row, "criminal_history"),
			Verdict:         shooters.cell(row, "verdict"),
		})
	}

	victims, err := l.readSheet(f, sheets[2], "incident_id", "injury")
	if err != nil {
		return nil, err
	}
	for _, row := range victims.rows {
		tables.Victims = append(tables.Victims, domain.RawVictim{
			IncidentID: victims.cell(row, "incident_id"),
			Age:        victims.cell(row, "age"),
			Gender:     victims.cell(row, "gender"),
			Injury:     victims.cell(row, "injury"),
		})
	}

	weapons, err := l.readSheet(f, sheets[3], "incident_id", "weapon_type")
	if err != nil {
		return nil, err
	}
	for _, row := range weapons.rows {
		tables.Weapons = append(tables.Weapons, domain.RawWeapon{
			IncidentID:   weapons.cell(row, "incident_id"),
			WeaponType:   weapons.cell(row, "weapon_type"),
			WeaponDetail: weapons.cell(row, "weapon_detail"),
		})
	}

	l.logger.InfoContext(ctx, "workbook loaded",
		slog.String("path", path),
		slog.Int("incidents", len(tables.Incidents)),
		slog.Int("shooters", len(tables.Shooters)),
		slog.Int("victims", len(tables.Victims)),
		slog.Int("weapons", len(tables.Weapons)))

	return tables, nil
}

// sheetData is one sheet after header indexing: the data rows plus the
// normalized header name → column position map.
type sheetData struct {
	name    string
	columns map[string]int
	rows    [][]string
}

// readSheet reads one sheet, indexes its header row, verifies the required
// columns, and returns the non-empty data rows.
func (l *Loader) readSheet(f *excelize.File, name string, required ...string) (*sheetData, error) {
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, apperrors.NewStorageError(fmt.Sprintf("failed to read sheet %q", name), err)
	}
	if len(rows) == 0 {
		return nil, apperrors.NewSchemaError(fmt.Sprintf("sheet %q has no header row", name), nil)
	}

	sheet := &sheetData{
		name:    name,
		columns: make(map[string]int, len(rows[0])),
	}
	for i, header := range rows[0] {
		key := normalizeHeader(header)
		if key == "" {
			continue
		}
		if _, seen := sheet.columns[key]; !seen {
			sheet.columns[key] = i
		}
	}

	for _, col := range required {
		if _, ok := sheet.columns[col]; !ok {
			return nil, apperrors.NewMissingColumnError(name, col)
		}
	}

	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		sheet.rows = append(sheet.rows, row)
	}

	return sheet, nil
}

// cell returns the trimmed value of a named column in a data row, or ""
// when the row is too short or the column is absent from the sheet.
func (s *sheetData) cell(row []string, column string) string {
	idx, ok := s.columns[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// normalizeHeader lower-cases a header name and folds spaces into
// underscores so matching is case-insensitive.
func normalizeHeader(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
