package rankings

import (
	"fmt"

	"github.com/riskibarqy/draftboard/internal/domain/roster"
	"github.com/riskibarqy/draftboard/internal/platform/namematch"
	"github.com/riskibarqy/draftboard/internal/platform/tabular"
)

// JoinResult is the merged table plus match-rate diagnostics.
type JoinResult struct {
	Table   *tabular.Table
	Matched int
	Total   int
}

// FilterTeamDefenses drops rankings rows whose display name is an NFL
// franchise name (the export's encoding of team-defense entries).
func FilterTeamDefenses(table *tabular.Table) *tabular.Table {
	franchise := make(map[string]struct{}, len(NFLTeamNames))
	for _, name := range NFLTeamNames {
		franchise[name] = struct{}{}
	}
	return table.Filter(func(row int) bool {
		name, _ := table.Cell(row, ColumnPlayerName)
		_, isDefense := franchise[name]
		return !isDefense
	})
}

// FuzzyJoin left-joins every rankings row against the cleaned roster table
// via the approximate matcher: the rankings display name is cleaned, its
// best roster match above minScore recorded in the Matched Name column, and
// the matched roster attributes copied in. Unmatched rows keep every roster
// cell empty. Row order and count of the rankings input are preserved.
func FuzzyJoin(left, right *tabular.Table, minScore int) (JoinResult, error) {
	if !left.HasColumn(ColumnPlayerName) {
		return JoinResult{}, fmt.Errorf("rankings: column %q not found in rankings table", ColumnPlayerName)
	}
	if !right.HasColumn(roster.ColumnFullNameClean) {
		return JoinResult{}, fmt.Errorf("rankings: column %q not found in roster table; run the roster clean step first", roster.ColumnFullNameClean)
	}

	candidates := make([]string, 0, right.Len())
	rowByClean := make(map[string]int, right.Len())
	for i := 0; i < right.Len(); i++ {
		clean, _ := right.Cell(i, roster.ColumnFullNameClean)
		candidates = append(candidates, clean)
		if _, exists := rowByClean[clean]; !exists {
			rowByClean[clean] = i
		}
	}

	merged := left.Clone()
	for _, column := range []string{ColumnPlayerNameClean, ColumnMatchedName} {
		if !merged.HasColumn(column) {
			if err := merged.AddColumn(column); err != nil {
				return JoinResult{}, err
			}
		}
	}

	rightColumns := right.Columns()
	mergedNames := make([]string, len(rightColumns))
	for i, column := range rightColumns {
		name := column
		if merged.HasColumn(name) {
			name = name + "_roster"
		}
		mergedNames[i] = name
		if err := merged.AddColumn(name); err != nil {
			return JoinResult{}, err
		}
	}

	matched := 0
	for i := 0; i < merged.Len(); i++ {
		display, _ := merged.Cell(i, ColumnPlayerName)
		clean := namematch.Clean(display)
		if err := merged.SetCell(i, ColumnPlayerNameClean, clean); err != nil {
			return JoinResult{}, err
		}

		match, _, ok := namematch.BestMatch(clean, candidates, minScore)
		if !ok {
			continue
		}
		matched++
		if err := merged.SetCell(i, ColumnMatchedName, match); err != nil {
			return JoinResult{}, err
		}

		rightRow := right.Row(rowByClean[match])
		for j, name := range mergedNames {
			if err := merged.SetCell(i, name, rightRow[j]); err != nil {
				return JoinResult{}, err
			}
		}
	}

	return JoinResult{Table: merged, Matched: matched, Total: merged.Len()}, nil
}

// UnmatchedNames reports which rankings display names failed to resolve
// against the roster. In fuzzy mode it reads the Matched Name column the
// join produced; in exact mode it compares cleaned names directly. Purely
// diagnostic; the merged output is unaffected.
func UnmatchedNames(merged, right *tabular.Table, useFuzzy bool) ([]string, error) {
	if useFuzzy {
		if !merged.HasColumn(ColumnMatchedName) {
			return nil, fmt.Errorf("rankings: column %q not found; run FuzzyJoin first", ColumnMatchedName)
		}
		out := make([]string, 0)
		for i := 0; i < merged.Len(); i++ {
			match, _ := merged.Cell(i, ColumnMatchedName)
			if match != "" {
				continue
			}
			display, _ := merged.Cell(i, ColumnPlayerName)
			out = append(out, display)
		}
		return out, nil
	}

	if !right.HasColumn(roster.ColumnFullNameClean) {
		return nil, fmt.Errorf("rankings: column %q not found in roster table", roster.ColumnFullNameClean)
	}
	known := make(map[string]struct{}, right.Len())
	for i := 0; i < right.Len(); i++ {
		clean, _ := right.Cell(i, roster.ColumnFullNameClean)
		known[clean] = struct{}{}
	}

	out := make([]string, 0)
	for i := 0; i < merged.Len(); i++ {
		display, _ := merged.Cell(i, ColumnPlayerName)
		if _, ok := known[namematch.Clean(display)]; !ok {
			out = append(out, display)
		}
	}
	return out, nil
}
