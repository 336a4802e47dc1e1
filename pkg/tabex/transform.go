package tabex

import (
	"fmt"

	"github.com/exdata/tabex/pkg/tabex/models"
	"github.com/exdata/tabex/pkg/tabex/tablefind"
)

// TransformFunc post-processes an extracted table. It receives the full
// sheet grid and the range the table was found at, so metadata stored in
// cells adjacent to the table can be attached. A transform must return the
// (possibly replaced) table; it must not assume it may mutate the grid.
type TransformFunc func(g tablefind.ValueGrid, r tablefind.Range, t models.Table) (models.Table, error)

// IdentityTransform returns the table unchanged.
func IdentityTransform(_ tablefind.ValueGrid, _ tablefind.Range, t models.Table) (models.Table, error) {
	return t, nil
}

// AddNameColumns reads the two cells directly above the table's first
// column (a long name two rows up, a short name one row up) and prepends
// them as constant "longname" and "shortname" columns. A table starting
// above row 2 has no label rows and is an error.
func AddNameColumns(g tablefind.ValueGrid, r tablefind.Range, t models.Table) (models.Table, error) {
	const (
		longnameRowOffset  = -2
		shortnameRowOffset = -1
	)
	if r.StartRow+longnameRowOffset < 0 {
		return models.Table{}, fmt.Errorf("table at %s has no name label rows above it", r)
	}
	longname := g.Value(r.StartRow+longnameRowOffset, r.StartCol)
	shortname := g.Value(r.StartRow+shortnameRowOffset, r.StartCol)

	t = t.InsertConstColumn(0, "longname", longname)
	t = t.InsertConstColumn(1, "shortname", shortname)
	return t, nil
}
