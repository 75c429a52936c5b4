package pipeline

import (
	"context"
	"log/slog"

	"ssicli/pkg/contracts/domain"
)

// Pipeline holds the category mapping tables and the logger for one run
// configuration. It is stateless across runs: Run allocates fresh stats and
// never mutates its input, so running twice on the same tables produces
// identical output.
type Pipeline struct {
	logger        *slog.Logger
	weaponBuckets map[string]WeaponBucket
	outcomes      map[string]Outcome
	severities    map[string]Severity
}

// Options overrides the default category mapping tables. A nil map keeps the
// default table for that dimension.
type Options struct {
	WeaponBuckets    map[string]WeaponBucket
	ShooterOutcomes  map[string]Outcome
	InjurySeverities map[string]Severity
}

// New creates a pipeline. A nil logger falls back to slog.Default().
func New(logger *slog.Logger, opts Options) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.WeaponBuckets == nil {
		opts.WeaponBuckets = DefaultWeaponBuckets()
	}
	if opts.ShooterOutcomes == nil {
		opts.ShooterOutcomes = DefaultShooterOutcomes()
	}
	if opts.InjurySeverities == nil {
		opts.InjurySeverities = DefaultInjurySeverities()
	}

	return &Pipeline{
		logger:        logger,
		weaponBuckets: opts.WeaponBuckets,
		outcomes:      opts.ShooterOutcomes,
		severities:    opts.InjurySeverities,
	}
}

// Run executes the full pipeline over the four raw tables and returns the
// final wide table, one row per incident in sheet order, together with the
// data-quality stats for the run.
func (p *Pipeline) Run(ctx context.Context, tables *domain.RawTables) ([]domain.IncidentWide, *Stats, error) {
	stats := NewStats()

	incidents, err := p.TransformIncidents(ctx, tables.Incidents, stats)
	if err != nil {
		return nil, nil, err
	}

	shooters := p.AggregateShooters(ctx, tables.Shooters, stats)
	victims := p.AggregateVictims(ctx, tables.Victims, stats)
	weapons := p.AggregateWeapons(ctx, tables.Weapons, stats)

	wide := p.Join(ctx, incidents, shooters, victims, weapons)

	p.logger.InfoContext(ctx, "pipeline run complete",
		slog.Int("incidents", stats.IncidentRows),
		slog.Int("shooter_rows", stats.ShooterRows),
		slog.Int("victim_rows", stats.VictimRows),
		slog.Int("weapon_rows", stats.WeaponRows),
		slog.Int("unparseable_times", stats.UnparseableTimes),
		slog.Int("unparseable_ages", stats.UnparseableAges))

	for _, warning := range stats.Warnings() {
		p.logger.WarnContext(ctx, "unrecognized category variant",
			slog.String("dimension", warning.Context["dimension"].(string)),
			slog.String("variant", warning.Context["variant"].(string)),
			slog.Int("rows", warning.Context["rows"].(int)))
	}

	return wide, stats, nil
}
