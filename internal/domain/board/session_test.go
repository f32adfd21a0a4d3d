package board

import (
	"testing"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	session, err := NewSession(
		[]string{"RK", "PLAYER NAME"},
		"PLAYER NAME",
		[]Row{
			{Index: 0, Cells: []string{"1", "Ja'Marr Chase"}},
			{Index: 1, Cells: []string{"2", "Bijan Robinson"}},
			{Index: 2, Cells: []string{"3", "Travis Etienne Jr."}},
			{Index: 3, Cells: []string{"4", "Saquon Barkley"}},
		},
	)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return session
}

func names(rows []Row) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = row.Cells[1]
	}
	return out
}

func TestNewSessionRequiresNameColumn(t *testing.T) {
	t.Parallel()

	if _, err := NewSession([]string{"RK"}, "PLAYER NAME", nil); err == nil {
		t.Fatal("expected error for missing name column")
	}
}

func TestRemoveBatch(t *testing.T) {
	t.Parallel()
	session := newTestSession(t)

	// Display names with suffixes still hit their row; matching is on the
	// normalized form.
	removed := session.Remove([]string{"travis etienne", "Bijan Robinson"})
	if len(removed) != 2 {
		t.Fatalf("removed %d rows, want 2", len(removed))
	}
	if got := names(session.Rows()); len(got) != 2 || got[0] != "Ja'Marr Chase" || got[1] != "Saquon Barkley" {
		t.Fatalf("board after removal: %v", got)
	}
	if session.UndoDepth() != 1 {
		t.Fatalf("undo depth = %d, want 1", session.UndoDepth())
	}
}

func TestRemoveNoMatchLeavesStateUntouched(t *testing.T) {
	t.Parallel()
	session := newTestSession(t)

	if removed := session.Remove([]string{"Nobody Here"}); len(removed) != 0 {
		t.Fatalf("removed %d rows, want 0", len(removed))
	}
	if session.UndoDepth() != 0 {
		t.Fatalf("no-match removal pushed an undo batch")
	}
	if len(session.Rows()) != 4 {
		t.Fatalf("no-match removal dropped rows")
	}

	if removed := session.Remove(nil); len(removed) != 0 {
		t.Fatalf("empty removal removed %d rows", len(removed))
	}
	if removed := session.Remove([]string{" ", ""}); len(removed) != 0 {
		t.Fatalf("blank removal removed %d rows", len(removed))
	}
}

func TestUndoRestoresExactOrder(t *testing.T) {
	t.Parallel()
	session := newTestSession(t)

	session.Remove([]string{"Bijan Robinson", "Saquon Barkley"})
	session.Remove([]string{"Ja'Marr Chase"})

	if !session.Undo() {
		t.Fatal("undo should succeed")
	}
	if got := names(session.Rows()); got[0] != "Ja'Marr Chase" || got[1] != "Travis Etienne Jr." {
		t.Fatalf("board after first undo: %v", got)
	}

	if !session.Undo() {
		t.Fatal("second undo should succeed")
	}
	want := []string{"Ja'Marr Chase", "Bijan Robinson", "Travis Etienne Jr.", "Saquon Barkley"}
	got := names(session.Rows())
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("board after full undo: %v, want %v", got, want)
		}
	}

	if session.Undo() {
		t.Fatal("undo past the bottom of the stack should report false")
	}
}

func TestRemoveUndoRoundTrip(t *testing.T) {
	t.Parallel()
	session := newTestSession(t)
	before := names(session.Rows())

	session.Remove([]string{"Travis Etienne Jr."})
	session.Undo()

	after := names(session.Rows())
	if len(after) != len(before) {
		t.Fatalf("row count changed: %v vs %v", before, after)
	}
	for i := range before {
		if after[i] != before[i] {
			t.Fatalf("order changed: %v vs %v", before, after)
		}
	}
}

func TestSlashParser(t *testing.T) {
	t.Parallel()

	text := "Travis Etienne Jr. / JAX / RB\n" +
		"  Bijan Robinson/ATL/RB  \n" +
		"no slash line\n" +
		"\n" +
		"   / JAX / RB\n" +
		"Saquon Barkley / PHI\n"

	got := SlashParser{}.Names(text)
	want := []string{"Travis Etienne Jr.", "Bijan Robinson", "Saquon Barkley"}
	if len(got) != len(want) {
		t.Fatalf("names = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("names = %v, want %v", got, want)
		}
	}
}
