package roster

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/draftboard/internal/platform/namematch"
	"github.com/riskibarqy/draftboard/internal/platform/tabular"
)

// CleanOptions controls the roster clean transform.
type CleanOptions struct {
	// IncludeDefenses keeps team-defense pseudo-players in the table.
	IncludeDefenses bool
}

// CleanResult carries the cleaned table plus counts for diagnostics.
// DuplicateNames counts every row whose full name is shared with another
// row before deduplication, not just the rows dropped by it.
type CleanResult struct {
	Table          *tabular.Table
	InputRows      int
	DroppedRows    int
	DuplicateNames int
}

// Clean reorders the feed into the canonical schema, optionally drops
// team defenses, normalizes the team-changed timestamp, deduplicates by
// full name keeping the most recently moved record, and derives the clean
// comparison name. The input is not modified.
func Clean(feed *tabular.Table, opts CleanOptions) (CleanResult, error) {
	if feed == nil {
		return CleanResult{}, fmt.Errorf("roster: feed table is required")
	}
	if !feed.HasColumn(ColumnFullName) {
		return CleanResult{}, fmt.Errorf("roster: column %q not found in feed", ColumnFullName)
	}

	table := feed.Reorder(CanonicalColumns)

	if !opts.IncludeDefenses {
		table = table.Filter(func(row int) bool {
			position, _ := table.Cell(row, ColumnPosition)
			return position != positionTeamDefense
		})
	}

	// Rewrite epoch-seconds move timestamps as RFC3339; unparseable values
	// become missing and therefore sort last in the dedupe ordering.
	for i := 0; i < table.Len(); i++ {
		raw, _ := table.Cell(i, ColumnTeamChangedAt)
		ts, ok := ParseTeamChangedAt(raw)
		formatted := ""
		if ok {
			formatted = ts.UTC().Format(time.RFC3339)
		}
		if err := table.SetCell(i, ColumnTeamChangedAt, formatted); err != nil {
			return CleanResult{}, err
		}
	}

	table.SortStable(func(i, j int) bool {
		nameI, _ := table.Cell(i, ColumnFullName)
		nameJ, _ := table.Cell(j, ColumnFullName)
		if nameI != nameJ {
			return nameI < nameJ
		}

		rawI, _ := table.Cell(i, ColumnTeamChangedAt)
		rawJ, _ := table.Cell(j, ColumnTeamChangedAt)
		tsI, okI := ParseTeamChangedAt(rawI)
		tsJ, okJ := ParseTeamChangedAt(rawJ)
		if okI != okJ {
			return okI // present timestamps before missing ones
		}
		if !okI {
			return false
		}
		return tsI.After(tsJ) // most recent move first
	})

	nameCounts := make(map[string]int, table.Len())
	for i := 0; i < table.Len(); i++ {
		name, _ := table.Cell(i, ColumnFullName)
		nameCounts[name]++
	}
	duplicates := 0
	for _, count := range nameCounts {
		if count > 1 {
			duplicates += count
		}
	}

	seen := make(map[string]struct{}, len(nameCounts))
	unique := table.Filter(func(row int) bool {
		name, _ := table.Cell(row, ColumnFullName)
		if _, ok := seen[name]; ok {
			return false
		}
		seen[name] = struct{}{}
		return true
	})

	if err := unique.AddColumn(ColumnFullNameClean); err != nil {
		return CleanResult{}, err
	}
	for i := 0; i < unique.Len(); i++ {
		name, _ := unique.Cell(i, ColumnFullName)
		if err := unique.SetCell(i, ColumnFullNameClean, namematch.Clean(name)); err != nil {
			return CleanResult{}, err
		}
	}

	return CleanResult{
		Table:          unique,
		InputRows:      feed.Len(),
		DroppedRows:    feed.Len() - unique.Len(),
		DuplicateNames: duplicates,
	}, nil
}

// ParseTeamChangedAt accepts either the provider's epoch-seconds form or
// the RFC3339 form written by Clean (cached snapshots round-trip through
// the latter).
func ParseTeamChangedAt(raw string) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false
	}
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts, true
	}
	if epoch, err := strconv.ParseFloat(value, 64); err == nil && epoch > 0 {
		return time.Unix(int64(epoch), 0), true
	}
	return time.Time{}, false
}
