// Package tablefind locates rectangular tables embedded in a loosely
// structured 2D grid of cells, such as a spreadsheet sheet.
//
// A table is a rectangular region whose first (header) row is fully
// populated and whose remaining rows each hold at least one value. The
// finder sweeps the grid in row-major order, growing a candidate rectangle
// from every present cell not yet consumed by an earlier table, and
// returns the accepted regions as Range values with exclusive stop bounds.
package tablefind
