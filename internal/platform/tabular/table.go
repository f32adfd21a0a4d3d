// Package tabular holds a small ordered-column string table used by the
// merge pipeline. Both input feeds carry columns we do not know up front
// (extra rankings columns pass through untouched, the roster feed is
// free-form key/value), so rows are positional cells addressed through a
// header index rather than struct fields.
package tabular

import (
	"fmt"
	"sort"
)

type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

func New(columns []string) *Table {
	t := &Table{
		columns: append([]string(nil), columns...),
		index:   make(map[string]int, len(columns)),
	}
	for i, name := range t.columns {
		t.index[name] = i
	}
	return t
}

func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

func (t *Table) Len() int {
	return len(t.rows)
}

// AppendRow pads or truncates cells to the column count.
func (t *Table) AppendRow(cells []string) {
	row := make([]string, len(t.columns))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

func (t *Table) Row(i int) []string {
	return append([]string(nil), t.rows[i]...)
}

// Cell returns the value at (row, column); the boolean reports whether the
// column exists. A missing value is the empty string either way.
func (t *Table) Cell(row int, column string) (string, bool) {
	idx, ok := t.index[column]
	if !ok {
		return "", false
	}
	return t.rows[row][idx], true
}

func (t *Table) SetCell(row int, column, value string) error {
	idx, ok := t.index[column]
	if !ok {
		return fmt.Errorf("tabular: column %q not found", column)
	}
	t.rows[row][idx] = value
	return nil
}

// AddColumn appends an empty column; no-op error if it already exists.
func (t *Table) AddColumn(name string) error {
	if _, ok := t.index[name]; ok {
		return fmt.Errorf("tabular: column %q already exists", name)
	}
	t.index[name] = len(t.columns)
	t.columns = append(t.columns, name)
	for i := range t.rows {
		t.rows[i] = append(t.rows[i], "")
	}
	return nil
}

// Reorder returns a copy whose columns follow wanted order first, with any
// remaining columns appended in sorted order. Wanted columns absent from the
// table are created empty.
func (t *Table) Reorder(wanted []string) *Table {
	seen := make(map[string]struct{}, len(wanted))
	columns := make([]string, 0, len(t.columns))
	for _, name := range wanted {
		columns = append(columns, name)
		seen[name] = struct{}{}
	}

	extras := make([]string, 0, len(t.columns))
	for _, name := range t.columns {
		if _, ok := seen[name]; ok {
			continue
		}
		extras = append(extras, name)
	}
	sort.Strings(extras)
	columns = append(columns, extras...)

	out := New(columns)
	for i := range t.rows {
		row := make([]string, len(columns))
		for j, name := range columns {
			if src, ok := t.index[name]; ok {
				row[j] = t.rows[i][src]
			}
		}
		out.rows = append(out.rows, row)
	}
	return out
}

// Select returns a copy restricted to the given columns, in the given order.
// Errors if any column is absent.
func (t *Table) Select(columns []string) (*Table, error) {
	indices := make([]int, len(columns))
	for i, name := range columns {
		idx, ok := t.index[name]
		if !ok {
			return nil, fmt.Errorf("tabular: column %q not found", name)
		}
		indices[i] = idx
	}

	out := New(columns)
	for _, row := range t.rows {
		cells := make([]string, len(indices))
		for i, idx := range indices {
			cells[i] = row[idx]
		}
		out.rows = append(out.rows, cells)
	}
	return out, nil
}

// RenameColumn keeps position, changes the header.
func (t *Table) RenameColumn(from, to string) error {
	idx, ok := t.index[from]
	if !ok {
		return fmt.Errorf("tabular: column %q not found", from)
	}
	if _, exists := t.index[to]; exists && from != to {
		return fmt.Errorf("tabular: column %q already exists", to)
	}
	delete(t.index, from)
	t.columns[idx] = to
	t.index[to] = idx
	return nil
}

// Filter returns a copy holding only rows for which keep returns true.
func (t *Table) Filter(keep func(row int) bool) *Table {
	out := New(t.columns)
	for i := range t.rows {
		if !keep(i) {
			continue
		}
		out.rows = append(out.rows, append([]string(nil), t.rows[i]...))
	}
	return out
}

// SortStable reorders rows in place using the provided comparison.
func (t *Table) SortStable(less func(i, j int) bool) {
	sort.SliceStable(t.rows, func(i, j int) bool { return less(i, j) })
}

func (t *Table) Clone() *Table {
	out := New(t.columns)
	for _, row := range t.rows {
		out.rows = append(out.rows, append([]string(nil), row...))
	}
	return out
}
