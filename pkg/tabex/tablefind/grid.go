package tablefind

// Grid is a read-only 2D view over sheet data. Implementations report the
// grid extent and whether a given cell holds no value.
type Grid interface {
	// Dims returns the number of rows and columns in the grid.
	Dims() (rows, cols int)
	// IsMissing reports whether the cell at (row, col) holds no value.
	IsMissing(row, col int) bool
}

// ValueGrid is a Grid whose cell contents can be read back.
type ValueGrid interface {
	Grid
	// Value returns the cell content at (row, col). Missing cells yield "".
	Value(row, col int) string
}

// SliceGrid adapts a row-major [][]string, as returned by excelize GetRows,
// to the ValueGrid interface. Rows may be ragged: the grid width is that of
// the longest row, and a cell is missing when it falls past the end of its
// row or holds an empty string.
type SliceGrid struct {
	rows [][]string
	cols int
}

// NewSliceGrid wraps rows without copying them.
func NewSliceGrid(rows [][]string) *SliceGrid {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return &SliceGrid{rows: rows, cols: cols}
}

// Dims returns the grid extent.
func (g *SliceGrid) Dims() (rows, cols int) {
	return len(g.rows), g.cols
}

// IsMissing reports whether the cell at (row, col) is empty.
func (g *SliceGrid) IsMissing(row, col int) bool {
	return g.Value(row, col) == ""
}

// Value returns the cell content at (row, col), or "" for cells outside
// the stored row data.
func (g *SliceGrid) Value(row, col int) string {
	if row < 0 || row >= len(g.rows) || col < 0 || col >= g.cols {
		return ""
	}
	r := g.rows[row]
	if col >= len(r) {
		return ""
	}
	return r[col]
}
