// Package pipeline cleans and reshapes the four sheets of the school-shooting
// incident workbook into one denormalized row-per-incident table.
//
// # Architecture
//
// Four independent per-sheet transforms feed one join stage:
//
//	1. Incident transform: derives calendar fields, canonicalizes the
//	   first-shot time, drops metadata columns (1:1, no aggregation)
//	2. Shooter aggregate: per-incident counts by survival outcome
//	3. Victim aggregate: per-incident counts by injury severity
//	4. Weapon aggregate: per-incident counts collapsed into three
//	   canonical buckets plus a total
//	5. Join: left-join of the incident rows with the three aggregates
//	   on incident_id
//
// # Category mappings
//
// The raw vocabulary of the source data is not controlled and contains
// duplicate concepts under different spellings. Each categorical dimension
// (weapon type, shooter outcome, injury severity) therefore maps through an
// adjustable variant table; adding a new spelling is a data change, not a
// code change. Variants missing from a table are coalesced into the
// dimension's fallback category and reported through Stats so data-quality
// regressions stay visible.
//
// # Zero-fill vs post-join null
//
// Inside each aggregate every category column is always present, zero when
// the category did not occur. An incident with no child rows at all in a
// sub-table gets no aggregate row, and the join leaves that aggregate nil.
// The two cases are deliberately distinct.
//
// # Usage
//
//	p := pipeline.New(logger, pipeline.Options{})
//	wide, stats, err := p.Run(ctx, tables)
package pipeline
