package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ssicli/pkg/contracts/domain"
)

func fixtureTables() *domain.RawTables {
	return &domain.RawTables{
		Incidents: []domain.RawIncident{
			{IncidentID: "A", Date: "2019-02-14", FirstShot: "2:21 PM", Situation: "Targeted", Preplanned: "Yes"},
			{IncidentID: "B", Date: "2019-06-03", FirstShot: "", Situation: "Accidental", Preplanned: "No"},
			{IncidentID: "C", Date: "2019-09-30", FirstShot: "bad value", Situation: "Dispute", Preplanned: "No"},
		},
		Shooters: []domain.RawShooter{
			{IncidentID: "A", Age: "19", Outcome: "Survived"},
			{IncidentID: "A", Age: "17", Outcome: "Deceased"},
			{IncidentID: "B", Age: "", Outcome: ""},
		},
		Victims: []domain.RawVictim{
			{IncidentID: "A", Injury: "Fatal"},
			{IncidentID: "A", Injury: "Wounded"},
		},
		Weapons: []domain.RawWeapon{
			{IncidentID: "B", WeaponType: "Handgun"},
		},
	}
}

func TestPipeline_Run(t *testing.T) {
	p := New(nil, Options{})

	wide, stats, err := p.Run(context.Background(), fixtureTables())
	require.NoError(t, err)

	// Left-join cardinality: every incident exactly once, in sheet order
	require.Len(t, wide, 3)
	assert.Equal(t, "A", wide[0].IncidentID)
	assert.Equal(t, "B", wide[1].IncidentID)
	assert.Equal(t, "C", wide[2].IncidentID)

	// Incident A: 2 shooter rows (one survived, one died), 2 victims,
	// 0 weapon rows. The shooter aggregate zero-fills unknown_status; the
	// weapon aggregate has no row at all, so post-join it is nil.
	a := wide[0]
	require.NotNil(t, a.Shooters)
	assert.Equal(t, domain.ShooterCounts{Survived: 1, Died: 1, UnknownStatus: 0}, *a.Shooters)
	require.NotNil(t, a.Victims)
	assert.Equal(t, domain.VictimCounts{Fatal: 1, Wounded: 1}, *a.Victims)
	assert.Nil(t, a.Weapons, "no weapon rows at all means post-join null, not zero")

	// Incident B: one shooter with missing status, one handgun, no victims
	b := wide[1]
	require.NotNil(t, b.Shooters)
	assert.Equal(t, domain.ShooterCounts{UnknownStatus: 1}, *b.Shooters)
	assert.Nil(t, b.Victims)
	require.NotNil(t, b.Weapons)
	assert.Equal(t, domain.WeaponCounts{Handguns: 1, Total: 1}, *b.Weapons)
	assert.Equal(t, "N/A", b.FirstShotTime)

	// Incident C: no child rows anywhere
	c := wide[2]
	assert.Nil(t, c.Shooters)
	assert.Nil(t, c.Victims)
	assert.Nil(t, c.Weapons)
	assert.Equal(t, "N/A", c.FirstShotTime)

	assert.Equal(t, 3, stats.IncidentRows)
	assert.Equal(t, 1, stats.UnparseableTimes)
}

func TestPipeline_RunIsIdempotent(t *testing.T) {
	p := New(nil, Options{})
	tables := fixtureTables()

	first, firstStats, err := p.Run(context.Background(), tables)
	require.NoError(t, err)
	second, secondStats, err := p.Run(context.Background(), tables)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstStats, secondStats)
}

func TestPipeline_RunDoesNotAliasAggregates(t *testing.T) {
	p := New(nil, Options{})

	wide, _, err := p.Run(context.Background(), fixtureTables())
	require.NoError(t, err)

	// Mutating one run's output must not leak into a fresh run.
	wide[0].Shooters.Survived = 99

	again, _, err := p.Run(context.Background(), fixtureTables())
	require.NoError(t, err)
	assert.Equal(t, 1, again[0].Shooters.Survived)
}

func TestPipeline_RunFailsOnBadDate(t *testing.T) {
	p := New(nil, Options{})

	tables := fixtureTables()
	tables.Incidents[1].Date = "not a date"

	_, _, err := p.Run(context.Background(), tables)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "B")
}

func TestStats_WarningsStableOrder(t *testing.T) {
	stats := NewStats()
	stats.UnmappedWeaponTypes["zip_gun"] = 1
	stats.UnmappedWeaponTypes["air_rifle"] = 2
	stats.UnmappedOutcomes["escaped"] = 1

	warnings := stats.Warnings()
	require.Len(t, warnings, 3)
	assert.Contains(t, warnings[0].Error(), "air_rifle")
	assert.Contains(t, warnings[1].Error(), "zip_gun")
	assert.Contains(t, warnings[2].Error(), "escaped")
}
