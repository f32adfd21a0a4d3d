// Package roster models the player-attributes feed: one record per player
// as published by the roster provider, keyed by an opaque player id.
package roster

// Feed column names referenced by the pipeline.
const (
	ColumnPlayerID      = "player_id"
	ColumnFullName      = "full_name"
	ColumnFullNameClean = "full_name_clean"
	ColumnPosition      = "position"
	ColumnTeam          = "team"
	ColumnYearsExp      = "years_exp"
	ColumnTeamChangedAt = "team_changed_at"
)

const positionTeamDefense = "DEF"

// CanonicalColumns is the preferred column order for the cleaned roster
// table. Feed columns not listed here are appended after, so new provider
// fields pass through without code changes.
var CanonicalColumns = []string{
	ColumnPlayerID,
	ColumnFullName,
	"first_name",
	"last_name",
	ColumnPosition,
	ColumnTeam,
	"team_abbr",
	"fantasy_positions",
	"active",
	"status",
	"age",
	"height",
	"weight",
	"college",
	ColumnYearsExp,
	"injury_status",
	"injury_notes",
	"injury_body_part",
	"practice_description",
	"practice_participation",
	"birth_city",
	"birth_state",
	"birth_country",
	"birth_date",
	ColumnTeamChangedAt,
}
