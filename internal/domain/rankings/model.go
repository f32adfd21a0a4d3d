// Package rankings models the draft-rankings export and the transforms
// that turn it into the merged draft board: the fuzzy roster join, the
// curated tag columns, and the secondary-rankings delta.
package rankings

// Rankings export column names. Extra export columns pass through untouched.
const (
	ColumnRank       = "RK"
	ColumnTiers      = "TIERS"
	ColumnPlayerName = "PLAYER NAME"
	ColumnTeam       = "TEAM"
	ColumnPosition   = "POS"
	ColumnByeWeek    = "BYE WEEK"
	ColumnSOS        = "SOS SEASON"
	ColumnECRvsADP   = "ECR VS. ADP"
)

// Columns derived by the pipeline.
const (
	ColumnPlayerNameClean = "PLAYER NAME_CLEAN"
	ColumnMatchedName     = "Matched Name"
	ColumnIsRookie        = "is_rookie"
	ColumnIsLotteryTicket = "is_lottery_ticket"
	ColumnHandcuff        = "handcuff"
	ColumnIsSleeper       = "is_fantasypros_sleeper"
	ColumnRankDelta       = "RK_DIFF"
)

// Secondary rankings source column names.
const (
	SecondaryColumnPlayer = "player"
	SecondaryColumnRank   = "num"
)

// NFLTeamNames lists the franchise display names the rankings export uses
// for team-defense rows.
var NFLTeamNames = []string{
	"Arizona Cardinals", "Atlanta Falcons", "Baltimore Ravens", "Buffalo Bills", "Carolina Panthers",
	"Chicago Bears", "Cincinnati Bengals", "Cleveland Browns", "Dallas Cowboys", "Denver Broncos",
	"Detroit Lions", "Green Bay Packers", "Houston Texans", "Indianapolis Colts", "Jacksonville Jaguars",
	"Kansas City Chiefs", "Las Vegas Raiders", "Los Angeles Chargers", "Los Angeles Rams", "Miami Dolphins",
	"Minnesota Vikings", "New England Patriots", "New Orleans Saints", "New York Giants", "New York Jets",
	"Philadelphia Eagles", "Pittsburgh Steelers", "San Francisco 49ers", "Seattle Seahawks", "Tampa Bay Buccaneers",
	"Tennessee Titans", "Washington Commanders",
}
