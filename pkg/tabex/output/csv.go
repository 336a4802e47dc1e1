// Package output serializes extracted tables to delimited text and
// spreadsheet files.
package output

import (
	"encoding/csv"
	"io"

	"github.com/exdata/tabex/pkg/tabex/models"
)

// WriteCSV writes the table as CSV: the header row first, then the
// records. An empty table produces no output.
func WriteCSV(w io.Writer, t models.Table) error {
	cw := csv.NewWriter(w)
	if len(t.Columns) > 0 {
		if err := cw.Write(t.Columns); err != nil {
			return err
		}
	}
	if err := cw.WriteAll(t.Records); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses CSV into a table: the first row becomes the header, the
// remaining rows the records. Rows may have varying field counts; header
// compatibility is the caller's concern. An empty input yields an empty
// table.
func ReadCSV(r io.Reader) (models.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return models.Table{}, err
	}
	if len(rows) == 0 {
		return models.Table{}, nil
	}
	return models.Table{Columns: rows[0], Records: rows[1:]}, nil
}
