package tabular

import (
	"bytes"
	"strings"
	"testing"
)

func sampleTable() *Table {
	t := New([]string{"b", "a", "c"})
	t.AppendRow([]string{"b1", "a1", "c1"})
	t.AppendRow([]string{"b2", "a2", "c2"})
	return t
}

func TestAppendRowPadsAndTruncates(t *testing.T) {
	t.Parallel()

	table := New([]string{"x", "y"})
	table.AppendRow([]string{"1"})
	table.AppendRow([]string{"1", "2", "3"})

	if got, _ := table.Cell(0, "y"); got != "" {
		t.Fatalf("short row should pad, got %q", got)
	}
	if got := table.Row(1); len(got) != 2 {
		t.Fatalf("long row should truncate, got %v", got)
	}
}

func TestReorder(t *testing.T) {
	t.Parallel()

	table := sampleTable()
	out := table.Reorder([]string{"a", "missing"})

	want := []string{"a", "missing", "b", "c"}
	got := out.Columns()
	if len(got) != len(want) {
		t.Fatalf("columns = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("columns = %v, want %v", got, want)
		}
	}

	if v, _ := out.Cell(0, "missing"); v != "" {
		t.Fatalf("created column should be empty, got %q", v)
	}
	if v, _ := out.Cell(1, "a"); v != "a2" {
		t.Fatalf("cell moved incorrectly, got %q", v)
	}

	// Source table untouched.
	if table.Columns()[0] != "b" {
		t.Fatalf("reorder mutated the source table")
	}
}

func TestSelect(t *testing.T) {
	t.Parallel()

	table := sampleTable()
	out, err := table.Select([]string{"c", "a"})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if cols := out.Columns(); cols[0] != "c" || cols[1] != "a" {
		t.Fatalf("columns = %v", cols)
	}
	if v, _ := out.Cell(0, "c"); v != "c1" {
		t.Fatalf("cell = %q", v)
	}

	if _, err := table.Select([]string{"nope"}); err == nil {
		t.Fatal("expected error for missing column")
	}
}

func TestRenameColumn(t *testing.T) {
	t.Parallel()

	table := sampleTable()
	if err := table.RenameColumn("a", "renamed"); err != nil {
		t.Fatalf("RenameColumn: %v", err)
	}
	if v, ok := table.Cell(0, "renamed"); !ok || v != "a1" {
		t.Fatalf("renamed cell = %q ok=%v", v, ok)
	}
	if table.HasColumn("a") {
		t.Fatal("old name still present")
	}
	if err := table.RenameColumn("renamed", "b"); err == nil {
		t.Fatal("expected collision error")
	}
}

func TestFilterAndSort(t *testing.T) {
	t.Parallel()

	table := sampleTable()
	out := table.Filter(func(row int) bool {
		v, _ := table.Cell(row, "a")
		return v == "a2"
	})
	if out.Len() != 1 {
		t.Fatalf("filtered len = %d", out.Len())
	}

	table.SortStable(func(i, j int) bool {
		vi, _ := table.Cell(i, "a")
		vj, _ := table.Cell(j, "a")
		return vi > vj
	})
	if v, _ := table.Cell(0, "a"); v != "a2" {
		t.Fatalf("sort did not apply, first = %q", v)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	t.Parallel()

	table := New([]string{"name", "note"})
	table.AppendRow([]string{"D'Andre Swift", "has, comma"})
	table.AppendRow([]string{"", `quote "here"`})

	var buf bytes.Buffer
	if err := table.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	back, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if back.Len() != 2 {
		t.Fatalf("rows = %d", back.Len())
	}
	if v, _ := back.Cell(0, "note"); v != "has, comma" {
		t.Fatalf("comma cell = %q", v)
	}
	if v, _ := back.Cell(1, "note"); v != `quote "here"` {
		t.Fatalf("quote cell = %q", v)
	}
}

func TestReadCSVRaggedRows(t *testing.T) {
	t.Parallel()

	in := "a,b,c\n1,2\n1,2,3,4\n"
	table, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("rows = %d", table.Len())
	}
	if v, _ := table.Cell(0, "c"); v != "" {
		t.Fatalf("short row cell = %q", v)
	}
}

func TestReadCSVEmpty(t *testing.T) {
	t.Parallel()

	if _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty input")
	}
}
