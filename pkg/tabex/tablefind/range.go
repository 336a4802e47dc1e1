package tablefind

import "fmt"

// Pos addresses a single grid cell.
type Pos struct {
	Row, Col int
}

// Range describes a rectangular table region
// [StartRow,StopRow) x [StartCol,StopCol). Stop bounds are exclusive: the
// row and column at the stop indices are not part of the region. A Range
// owns no data; it is a window onto a grid or a presence
// matrix. A degenerate range (stop == start on an axis) is valid and is
// rejected by the minimum-size check downstream.
type Range struct {
	StartRow, StartCol int
	StopRow, StopCol   int
}

// NewRange builds a range from start and stop positions. Returns
// ErrInvalidRange when a stop bound lies before its start bound.
func NewRange(start, stop Pos) (Range, error) {
	if stop.Row < start.Row || stop.Col < start.Col {
		return Range{}, fmt.Errorf("%w: start (%d,%d), stop (%d,%d)",
			ErrInvalidRange, start.Row, start.Col, stop.Row, stop.Col)
	}
	return Range{
		StartRow: start.Row,
		StartCol: start.Col,
		StopRow:  stop.Row,
		StopCol:  stop.Col,
	}, nil
}

// NumRows returns the row extent of the range.
func (r Range) NumRows() int { return r.StopRow - r.StartRow }

// NumCols returns the column extent of the range.
func (r Range) NumCols() int { return r.StopCol - r.StartCol }

// HasMinSize reports whether both dimensions independently meet their
// minimum. A wide but short region fails, as does a tall but narrow one.
func (r Range) HasMinSize(minRows, minCols int) bool {
	if r.NumRows() < minRows {
		return false
	}
	if r.NumCols() < minCols {
		return false
	}
	return true
}

// Fill assigns present to every cell of m inside the range. The write is
// clamped to the matrix extent; cells outside the rectangle are untouched.
func (r Range) Fill(m *PresenceMatrix, present bool) {
	rows, cols := m.Dims()
	for row := max(r.StartRow, 0); row < min(r.StopRow, rows); row++ {
		for col := max(r.StartCol, 0); col < min(r.StopCol, cols); col++ {
			m.Set(row, col, present)
		}
	}
}

// Materialize returns the grid contents inside the range. Requesting a
// range past the grid extent returns ErrOutOfBounds; no clamping is
// applied.
func (r Range) Materialize(g ValueGrid) ([][]string, error) {
	rows, cols := g.Dims()
	if r.StartRow < 0 || r.StartCol < 0 || r.StopRow > rows || r.StopCol > cols {
		return nil, fmt.Errorf("%w: range %s on %dx%d grid", ErrOutOfBounds, r, rows, cols)
	}
	out := make([][]string, 0, r.NumRows())
	for row := r.StartRow; row < r.StopRow; row++ {
		line := make([]string, 0, r.NumCols())
		for col := r.StartCol; col < r.StopCol; col++ {
			line = append(line, g.Value(row, col))
		}
		out = append(out, line)
	}
	return out, nil
}

// String renders the range as "(startRow,startCol)-(stopRow,stopCol)".
func (r Range) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.StartRow, r.StartCol, r.StopRow, r.StopCol)
}
