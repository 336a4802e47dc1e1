package tabex

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/exdata/tabex/pkg/tabex/models"
	"github.com/exdata/tabex/pkg/tabex/tablefind"
)

// ExtractWorkbook extracts every table from the acceptable sheets of the
// workbook at path and concatenates them into a single table. Sheets are
// visited in workbook order. A workbook with no acceptable sheets, or no
// tables meeting the format, yields an empty table and no error.
func ExtractWorkbook(path string, format TableFormat, transform TransformFunc) (models.Table, error) {
	if err := format.Validate(); err != nil {
		return models.Table{}, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return models.Table{}, err
	}
	defer f.Close()

	book := filepath.Base(path)
	var tables []models.Table
	for _, sheetName := range f.GetSheetList() {
		if !format.AcceptableSheetName(sheetName) {
			continue
		}
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return models.Table{}, &ExtractionError{Book: book, Sheet: sheetName, Err: err}
		}
		table, err := ExtractSheet(tablefind.NewSliceGrid(rows), format, transform)
		if err != nil {
			return models.Table{}, &ExtractionError{Book: book, Sheet: sheetName, Err: err}
		}
		tables = append(tables, table)
	}
	return models.Concat(tables)
}

// ExtractSheet extracts every table from one sheet grid and concatenates
// them. For each range found, the row at HeaderRowOffset becomes the
// header and the rows after it the records; the transform hook then runs
// with the full grid and range in scope.
func ExtractSheet(g tablefind.ValueGrid, format TableFormat, transform TransformFunc) (models.Table, error) {
	if transform == nil {
		transform = IdentityTransform
	}

	var tables []models.Table
	for _, r := range tablefind.FindAllRanges(g, format.MinRows, format.MinCols) {
		cells, err := r.Materialize(g)
		if err != nil {
			return models.Table{}, err
		}
		if format.HeaderRowOffset+1 > len(cells) {
			return models.Table{}, fmt.Errorf("%w: header row offset %d outside table %s",
				ErrInvalidFormat, format.HeaderRowOffset, r)
		}
		table := models.Table{
			Columns: cells[format.HeaderRowOffset],
			Records: cells[format.HeaderRowOffset+1:],
		}
		table, err = transform(g, r, table)
		if err != nil {
			return models.Table{}, err
		}
		tables = append(tables, table)
	}
	return models.Concat(tables)
}
