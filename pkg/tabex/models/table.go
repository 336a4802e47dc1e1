// Package models defines data structures shared by the extraction,
// conversion and merge layers.
package models

import "fmt"

// Table is an extracted table: a header plus string-typed records. Cell
// values stay strings end to end; typing and number formatting are left to
// downstream consumers.
type Table struct {
	// Columns is the header row.
	Columns []string
	// Records holds the data rows, one slice per row, aligned to Columns.
	Records [][]string
}

// Empty reports whether the table has neither a header nor records.
func (t Table) Empty() bool {
	return len(t.Columns) == 0 && len(t.Records) == 0
}

// NumRecords returns the number of data rows.
func (t Table) NumRecords() int {
	return len(t.Records)
}

// InsertConstColumn returns a copy of the table with a column named name
// inserted at index i, holding value in every record.
func (t Table) InsertConstColumn(i int, name, value string) Table {
	cols := make([]string, 0, len(t.Columns)+1)
	cols = append(cols, t.Columns[:i]...)
	cols = append(cols, name)
	cols = append(cols, t.Columns[i:]...)

	recs := make([][]string, len(t.Records))
	for ri, rec := range t.Records {
		row := make([]string, 0, len(rec)+1)
		row = append(row, rec[:i]...)
		row = append(row, value)
		row = append(row, rec[i:]...)
		recs[ri] = row
	}
	return Table{Columns: cols, Records: recs}
}

// HeaderMismatchError reports a table whose header is incompatible with
// the canonical header fixed by an earlier table.
type HeaderMismatchError struct {
	Want []string
	Got  []string
}

func (e *HeaderMismatchError) Error() string {
	if len(e.Got) != len(e.Want) {
		return fmt.Sprintf("header has %d columns, want %d", len(e.Got), len(e.Want))
	}
	return fmt.Sprintf("header %v does not match %v", e.Got, e.Want)
}

// SameColumns reports whether two headers are identical in order and name.
func SameColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Concat merges tables sharing an identical header into one. Empty tables
// are skipped; the first non-empty table fixes the canonical header, and a
// later table with a different header yields a HeaderMismatchError. No
// tables at all is a normal outcome: an empty Table and no error.
func Concat(tables []Table) (Table, error) {
	var merged Table
	for _, t := range tables {
		if t.Empty() {
			continue
		}
		if merged.Columns == nil {
			merged.Columns = t.Columns
		} else if !SameColumns(merged.Columns, t.Columns) {
			return Table{}, &HeaderMismatchError{Want: merged.Columns, Got: t.Columns}
		}
		merged.Records = append(merged.Records, t.Records...)
	}
	return merged, nil
}
