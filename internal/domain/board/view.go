package board

import (
	"fmt"

	"github.com/riskibarqy/draftboard/internal/domain/rankings"
	"github.com/riskibarqy/draftboard/internal/platform/tabular"
)

// Board display columns, in order. Tag columns get short headers so the
// table stays narrow during a live draft.
var displayColumns = []string{
	rankings.ColumnRank,
	rankings.ColumnTiers,
	rankings.ColumnPlayerName,
	rankings.ColumnTeam,
	rankings.ColumnPosition,
	rankings.ColumnByeWeek,
	rankings.ColumnSOS,
	rankings.ColumnECRvsADP,
	rankings.ColumnHandcuff,
	rankings.ColumnIsRookie,
	rankings.ColumnIsLotteryTicket,
	rankings.ColumnIsSleeper,
}

var displayRenames = map[string]string{
	rankings.ColumnIsRookie:        "R",
	rankings.ColumnIsLotteryTicket: "LT",
	rankings.ColumnIsSleeper:       "SLPR",
}

// FromTable narrows the merged pipeline output to the board view and
// builds a fresh session over it. A merged table missing any derived
// column is a schema error, not a silent default.
func FromTable(merged *tabular.Table) (*Session, error) {
	view, err := merged.Select(displayColumns)
	if err != nil {
		return nil, fmt.Errorf("board: merged table is missing a board column: %w", err)
	}
	for from, to := range displayRenames {
		if err := view.RenameColumn(from, to); err != nil {
			return nil, err
		}
	}

	rows := make([]Row, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		rows = append(rows, Row{Index: i, Cells: view.Row(i)})
	}

	return NewSession(view.Columns(), rankings.ColumnPlayerName, rows)
}
