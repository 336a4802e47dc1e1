package tablefind

// FindAllRanges scans g in row-major order (row 0 first, then column 0
// first within each row) and returns every disjoint rectangular table
// region meeting the minimum size, in discovery order.
//
// The anchor row of each region is treated as a header row and must be
// fully present across the region's column span; rows below it remain part
// of the region as long as at least one cell in the span is present.
//
// Each accepted region is erased from the working presence matrix, so the
// returned ranges never overlap. Candidates failing the size check are not
// erased: a later anchor may claim some of the same cells into a
// different, larger rectangle. The sweep is greedy and order-sensitive;
// changing the scan order changes the result.
//
// An empty grid (zero rows or zero columns) yields no ranges.
func FindAllRanges(g Grid, minRows, minCols int) []Range {
	presence := NewPresenceMatrix(g)
	rows, cols := presence.Dims()

	var found []Range
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if !presence.At(row, col) {
				continue
			}
			r := growFrom(row, col, presence)
			if !r.HasMinSize(minRows, minCols) {
				continue
			}
			found = append(found, r)
			r.Fill(presence, false)
		}
	}
	return found
}

// growFrom grows a rectangle anchored at (startRow, startCol), which must
// lie inside the matrix. The column span extends along the anchor row
// while cells are present (a header cannot contain gaps); the row span
// then extends while the row keeps at least one present cell inside the
// fixed column span. If the anchor cell itself is absent the result is
// degenerate (stop == start).
func growFrom(startRow, startCol int, p *PresenceMatrix) Range {
	rows, cols := p.Dims()

	stopCol := startCol
	for col := startCol; col < cols; col++ {
		if !p.At(startRow, col) {
			break
		}
		stopCol = col + 1
	}

	stopRow := startRow
	for row := startRow; row < rows; row++ {
		if p.spanEmpty(row, startCol, stopCol) {
			break
		}
		stopRow = row + 1
	}

	return Range{StartRow: startRow, StartCol: startCol, StopRow: stopRow, StopCol: stopCol}
}
