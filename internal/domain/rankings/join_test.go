package rankings

import (
	"strconv"
	"testing"

	"github.com/riskibarqy/draftboard/internal/domain/roster"
	"github.com/riskibarqy/draftboard/internal/platform/tabular"
)

func rankingsTable(names ...string) *tabular.Table {
	t := tabular.New([]string{ColumnRank, ColumnPlayerName, ColumnTeam})
	for i, name := range names {
		t.AppendRow([]string{strconv.Itoa(i + 1), name, "FA"})
	}
	return t
}

func rosterTable(t *testing.T, names ...string) *tabular.Table {
	t.Helper()
	feed := tabular.New([]string{roster.ColumnPlayerID, roster.ColumnFullName, roster.ColumnPosition, roster.ColumnTeam, roster.ColumnTeamChangedAt})
	for i, name := range names {
		feed.AppendRow([]string{strconv.Itoa(i + 1), name, "RB", "JAX", ""})
	}
	result, err := roster.Clean(feed, roster.CleanOptions{})
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	return result.Table
}

func TestFilterTeamDefenses(t *testing.T) {
	t.Parallel()

	table := rankingsTable("Patrick Mahomes", "San Francisco 49ers", "Kansas City Chiefs")
	out := FilterTeamDefenses(table)

	if out.Len() != 1 {
		t.Fatalf("rows = %d, want 1", out.Len())
	}
	if name, _ := out.Cell(0, ColumnPlayerName); name != "Patrick Mahomes" {
		t.Fatalf("kept row = %q", name)
	}
}

func TestFuzzyJoin(t *testing.T) {
	t.Parallel()

	left := rankingsTable("Travis Etienne Jr.", "Patrick Mahomes", "Unknown Player")
	right := rosterTable(t, "Travis Etienne", "Patrick Mahomes")

	result, err := FuzzyJoin(left, right, 80)
	if err != nil {
		t.Fatalf("FuzzyJoin: %v", err)
	}

	if result.Total != 3 {
		t.Fatalf("total = %d, want 3", result.Total)
	}
	if result.Matched != 2 {
		t.Fatalf("matched = %d, want 2", result.Matched)
	}

	// Left row order and count preserved.
	if result.Table.Len() != left.Len() {
		t.Fatalf("merged rows = %d, want %d", result.Table.Len(), left.Len())
	}
	if name, _ := result.Table.Cell(0, ColumnPlayerName); name != "Travis Etienne Jr." {
		t.Fatalf("row order changed: %q", name)
	}

	if match, _ := result.Table.Cell(0, ColumnMatchedName); match != "travis etienne" {
		t.Fatalf("matched name = %q", match)
	}
	if pos, _ := result.Table.Cell(0, roster.ColumnPosition); pos != "RB" {
		t.Fatalf("joined position = %q", pos)
	}

	// Unmatched rows keep the roster cells empty.
	if match, _ := result.Table.Cell(2, ColumnMatchedName); match != "" {
		t.Fatalf("unmatched row has matched name %q", match)
	}
	if pos, _ := result.Table.Cell(2, roster.ColumnPosition); pos != "" {
		t.Fatalf("unmatched row has roster cell %q", pos)
	}
}

func TestFuzzyJoinColumnCollision(t *testing.T) {
	t.Parallel()

	// Both sides carry a "team" column only when the rankings export uses
	// the lowercase header too.
	left := tabular.New([]string{ColumnPlayerName, "team"})
	left.AppendRow([]string{"Patrick Mahomes", "ranked-team"})
	right := rosterTable(t, "Patrick Mahomes")

	result, err := FuzzyJoin(left, right, 80)
	if err != nil {
		t.Fatalf("FuzzyJoin: %v", err)
	}

	if v, _ := result.Table.Cell(0, "team"); v != "ranked-team" {
		t.Fatalf("left team column overwritten: %q", v)
	}
	if v, ok := result.Table.Cell(0, "team_roster"); !ok || v != "JAX" {
		t.Fatalf("roster team column = %q ok=%v", v, ok)
	}
}

func TestFuzzyJoinSchemaErrors(t *testing.T) {
	t.Parallel()

	right := rosterTable(t, "Patrick Mahomes")
	if _, err := FuzzyJoin(tabular.New([]string{"other"}), right, 80); err == nil {
		t.Fatal("expected error for missing rankings name column")
	}

	left := rankingsTable("Patrick Mahomes")
	if _, err := FuzzyJoin(left, tabular.New([]string{"other"}), 80); err == nil {
		t.Fatal("expected error for missing roster clean-name column")
	}
}

func TestUnmatchedNames(t *testing.T) {
	t.Parallel()

	left := rankingsTable("Travis Etienne Jr.", "Unknown Player")
	right := rosterTable(t, "Travis Etienne")

	result, err := FuzzyJoin(left, right, 80)
	if err != nil {
		t.Fatalf("FuzzyJoin: %v", err)
	}

	fuzzyMisses, err := UnmatchedNames(result.Table, right, true)
	if err != nil {
		t.Fatalf("UnmatchedNames fuzzy: %v", err)
	}
	if len(fuzzyMisses) != 1 || fuzzyMisses[0] != "Unknown Player" {
		t.Fatalf("fuzzy misses = %v", fuzzyMisses)
	}

	// Exact mode flags the suffix variant too because only the clean forms
	// are compared.
	exactMisses, err := UnmatchedNames(left, right, false)
	if err != nil {
		t.Fatalf("UnmatchedNames exact: %v", err)
	}
	if len(exactMisses) != 1 || exactMisses[0] != "Unknown Player" {
		t.Fatalf("exact misses = %v", exactMisses)
	}
}
