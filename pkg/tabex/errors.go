package tabex

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat indicates a table format whose constraints are not
// satisfiable.
var ErrInvalidFormat = errors.New("invalid table format")

// ExtractionError wraps an error raised while extracting tables from a
// workbook sheet.
type ExtractionError struct {
	Book  string
	Sheet string
	Err   error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract workbook %q sheet %q: %v", e.Book, e.Sheet, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
