package charts

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	apperrors "ssicli/internal/errors"
	"ssicli/pkg/contracts/domain"
)

// Output file names inside the charts directory.
const (
	PerYearFile   = "incidents_per_year.html"
	SituationFile = "incidents_by_situation.html"
)

// Renderer renders the summary charts.
type Renderer struct {
	logger *slog.Logger
	theme  string
}

// NewRenderer creates a chart renderer. A nil logger falls back to
// slog.Default(); theme is an echarts theme name ("white", "dark", ...).
func NewRenderer(logger *slog.Logger, theme string) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	if theme == "" {
		theme = "white"
	}
	return &Renderer{logger: logger, theme: theme}
}

// RenderAll writes both charts into dir, creating it if needed.
func (r *Renderer) RenderAll(dir string, rows []domain.IncidentWide) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return apperrors.NewStorageError("failed to create charts directory", err)
	}

	if err := r.renderTo(filepath.Join(dir, PerYearFile), r.perYearChart(rows)); err != nil {
		return err
	}
	if err := r.renderTo(filepath.Join(dir, SituationFile), r.situationChart(rows)); err != nil {
		return err
	}

	r.logger.Info("charts rendered",
		slog.String("dir", dir),
		slog.Int("incidents", len(rows)))
	return nil
}

func (r *Renderer) renderTo(path string, chart *charts.Bar) error {
	f, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to create chart file %s", path), err)
	}
	defer f.Close()

	if err := chart.Render(f); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to render chart %s", path), err)
	}
	return nil
}

// perYearChart builds a bar chart of incident counts per calendar year.
func (r *Renderer) perYearChart(rows []domain.IncidentWide) *charts.Bar {
	years, counts := CountPerYear(rows)

	labels := make([]string, len(years))
	data := make([]opts.BarData, len(years))
	for i, year := range years {
		labels[i] = strconv.Itoa(year)
		data[i] = opts.BarData{Value: counts[i]}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Incidents per Year", Theme: r.theme}),
		charts.WithTitleOpts(opts.Title{Title: "School-shooting incidents per year"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).AddSeries("incidents", data)
	return bar
}

// situationChart builds a stacked bar chart of incident counts per
// situation category, split by the preplanned flag.
func (r *Renderer) situationChart(rows []domain.IncidentWide) *charts.Bar {
	situations, planned, unplanned := CountPerSituation(rows)

	plannedData := make([]opts.BarData, len(situations))
	unplannedData := make([]opts.BarData, len(situations))
	for i := range situations {
		plannedData[i] = opts.BarData{Value: planned[i]}
		unplannedData[i] = opts.BarData{Value: unplanned[i]}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Incidents by Situation", Theme: r.theme}),
		charts.WithTitleOpts(opts.Title{Title: "Incidents by situation", Subtitle: "split by preplanned flag"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(situations).
		AddSeries("preplanned", plannedData, charts.WithBarChartOpts(opts.BarChart{Stack: "total"})).
		AddSeries("not preplanned", unplannedData, charts.WithBarChartOpts(opts.BarChart{Stack: "total"}))
	return bar
}

// CountPerYear returns incident counts keyed by year, years ascending.
func CountPerYear(rows []domain.IncidentWide) ([]int, []int) {
	byYear := make(map[int]int)
	for _, row := range rows {
		byYear[row.Year]++
	}

	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Ints(years)

	counts := make([]int, len(years))
	for i, year := range years {
		counts[i] = byYear[year]
	}
	return years, counts
}

// CountPerSituation returns, per situation label sorted alphabetically, the
// incident counts with the preplanned flag set and unset. A blank situation
// is grouped under "Unknown"; any preplanned value other than "yes"
// (case-insensitive) counts as not preplanned.
func CountPerSituation(rows []domain.IncidentWide) ([]string, []int, []int) {
	type split struct{ planned, unplanned int }
	bySituation := make(map[string]*split)

	for _, row := range rows {
		situation := row.Situation
		if situation == "" {
			situation = "Unknown"
		}
		s := bySituation[situation]
		if s == nil {
			s = &split{}
			bySituation[situation] = s
		}
		if strings.EqualFold(strings.TrimSpace(row.Preplanned), "yes") {
			s.planned++
		} else {
			s.unplanned++
		}
	}

	situations := make([]string, 0, len(bySituation))
	for situation := range bySituation {
		situations = append(situations, situation)
	}
	sort.Strings(situations)

	planned := make([]int, len(situations))
	unplanned := make([]int, len(situations))
	for i, situation := range situations {
		planned[i] = bySituation[situation].planned
		unplanned[i] = bySituation[situation].unplanned
	}
	return situations, planned, unplanned
}
