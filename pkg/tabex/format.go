// Package tabex extracts rectangular tables from Excel workbooks.
package tabex

import (
	"fmt"
	"strings"
)

// TableFormat describes which workbooks and sheets to read and what shape
// an extracted table must have. Only tables meeting the format are
// extracted.
type TableFormat struct {
	// MinRows is the minimum number of rows a table must have.
	MinRows int
	// MinCols is the minimum number of columns a table must have.
	MinCols int
	// HeaderRowOffset is the row offset of the header inside a found
	// table. 0 means the first row of the table is the header.
	HeaderRowOffset int
	// SheetPrefix restricts extraction to sheets whose name starts with it.
	// Empty accepts every sheet.
	SheetPrefix string
	// FilePrefix restricts extraction to workbook files whose name starts
	// with it. Empty accepts every file.
	FilePrefix string
}

// Validate checks that the format constraints are satisfiable.
func (f TableFormat) Validate() error {
	if f.MinRows < 1 || f.MinCols < 1 {
		return fmt.Errorf("%w: minimum size %dx%d must be at least 1x1",
			ErrInvalidFormat, f.MinRows, f.MinCols)
	}
	if f.HeaderRowOffset < 0 || f.HeaderRowOffset >= f.MinRows {
		return fmt.Errorf("%w: header row offset %d outside the minimum %d rows",
			ErrInvalidFormat, f.HeaderRowOffset, f.MinRows)
	}
	return nil
}

// AcceptableSheetName reports whether a sheet should be read.
func (f TableFormat) AcceptableSheetName(name string) bool {
	return strings.HasPrefix(name, f.SheetPrefix)
}

// AcceptableWorkbookFilename reports whether a file is a workbook this
// format applies to.
func (f TableFormat) AcceptableWorkbookFilename(name string) bool {
	return strings.HasPrefix(name, f.FilePrefix) && strings.HasSuffix(name, ".xlsx")
}

// AcceptableCSVFilename reports whether a file is a CSV produced under
// this format.
func (f TableFormat) AcceptableCSVFilename(name string) bool {
	return strings.HasPrefix(name, f.FilePrefix) && strings.HasSuffix(name, ".csv")
}
