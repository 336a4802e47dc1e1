package tablefind

// PresenceMatrix marks which cells of a grid hold a value. It is the
// finder's working scratch: accepted ranges are cleared from it so that
// later anchors cannot rediscover their cells. A matrix is owned by a
// single finder invocation; it is allocated per call and discarded after.
type PresenceMatrix struct {
	rows, cols int
	cells      [][]bool
}

// NewPresenceMatrix derives a presence matrix from g, true wherever the
// grid holds a value.
func NewPresenceMatrix(g Grid) *PresenceMatrix {
	rows, cols := g.Dims()
	cells := make([][]bool, rows)
	for r := range cells {
		cells[r] = make([]bool, cols)
		for c := 0; c < cols; c++ {
			cells[r][c] = !g.IsMissing(r, c)
		}
	}
	return &PresenceMatrix{rows: rows, cols: cols, cells: cells}
}

// Dims returns the matrix extent.
func (m *PresenceMatrix) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// At reports the presence flag at (row, col). Indexing outside the matrix
// is a programming error and panics.
func (m *PresenceMatrix) At(row, col int) bool {
	return m.cells[row][col]
}

// Set assigns the presence flag at (row, col).
func (m *PresenceMatrix) Set(row, col int, present bool) {
	m.cells[row][col] = present
}

// spanEmpty reports whether every cell of row in [startCol, stopCol) is
// absent. An empty span is vacuously empty.
func (m *PresenceMatrix) spanEmpty(row, startCol, stopCol int) bool {
	for c := startCol; c < stopCol; c++ {
		if m.cells[row][c] {
			return false
		}
	}
	return true
}
