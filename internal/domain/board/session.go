// Package board holds the live-draft session: the working board table,
// the batch undo stack, and the paste parsers that feed removals.
package board

import (
	"fmt"
	"sort"

	"github.com/riskibarqy/draftboard/internal/platform/namematch"
)

// Row is one board entry. Index is the row's position in the original
// merged board and never changes, so undo can restore exact order.
type Row struct {
	Index int
	Cells []string
}

// Session owns the current board and the stack of removed batches. It is
// exclusively owned by one caller; the HTTP layer serializes access.
//
// Invariant: every original row lives in exactly one place, either the
// current table or one batch on the stack.
type Session struct {
	columns   []string
	nameIndex int
	rows      []Row
	removed   [][]Row
}

// NewSession builds a session over the given columns and rows. nameColumn
// is the display-name column removals match against.
func NewSession(columns []string, nameColumn string, rows []Row) (*Session, error) {
	nameIndex := -1
	for i, column := range columns {
		if column == nameColumn {
			nameIndex = i
			break
		}
	}
	if nameIndex < 0 {
		return nil, fmt.Errorf("board: column %q not found", nameColumn)
	}

	return &Session{
		columns:   append([]string(nil), columns...),
		nameIndex: nameIndex,
		rows:      append([]Row(nil), rows...),
	}, nil
}

func (s *Session) Columns() []string {
	return append([]string(nil), s.columns...)
}

// Rows returns the current board in order.
func (s *Session) Rows() []Row {
	return append([]Row(nil), s.rows...)
}

// UndoDepth is the number of removal batches that can be undone.
func (s *Session) UndoDepth() int {
	return len(s.removed)
}

// Remove drops every current row whose clean display name is in names and
// pushes the dropped rows onto the undo stack as one batch. The returned
// slice lists the removed rows in board order. When nothing matches, state
// is untouched and the result is empty.
func (s *Session) Remove(names []string) []Row {
	if len(names) == 0 {
		return nil
	}

	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		clean := namematch.Clean(name)
		if clean == "" {
			continue
		}
		wanted[clean] = struct{}{}
	}
	if len(wanted) == 0 {
		return nil
	}

	kept := make([]Row, 0, len(s.rows))
	batch := make([]Row, 0, len(wanted))
	for _, row := range s.rows {
		if _, ok := wanted[namematch.Clean(row.Cells[s.nameIndex])]; ok {
			batch = append(batch, row)
			continue
		}
		kept = append(kept, row)
	}

	if len(batch) == 0 {
		return nil
	}

	s.rows = kept
	s.removed = append(s.removed, batch)
	return append([]Row(nil), batch...)
}

// Undo pops the most recent batch back into the board, restoring original
// relative order. Reports false when there is nothing to undo.
func (s *Session) Undo() bool {
	if len(s.removed) == 0 {
		return false
	}

	batch := s.removed[len(s.removed)-1]
	s.removed = s.removed[:len(s.removed)-1]

	s.rows = append(s.rows, batch...)
	sort.SliceStable(s.rows, func(i, j int) bool {
		return s.rows[i].Index < s.rows[j].Index
	})
	return true
}
