package tabex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exdata/tabex/pkg/tabex/models"
	"github.com/exdata/tabex/pkg/tabex/tablefind"
)

func TestIdentityTransform(t *testing.T) {
	table := models.Table{Columns: []string{"a"}, Records: [][]string{{"1"}}}
	got, err := IdentityTransform(nil, tablefind.Range{}, table)
	require.NoError(t, err)
	assert.Equal(t, table, got)
}

func TestAddNameColumns(t *testing.T) {
	g := tablefind.NewSliceGrid([][]string{
		{"sample one", ""},
		{"s1", ""},
		{"temp", "rho"},
		{"25", "8.1"},
	})
	r := tablefind.Range{StartRow: 2, StartCol: 0, StopRow: 4, StopCol: 2}
	table := models.Table{Columns: []string{"temp", "rho"}, Records: [][]string{{"25", "8.1"}}}

	got, err := AddNameColumns(g, r, table)
	require.NoError(t, err)
	assert.Equal(t, []string{"longname", "shortname", "temp", "rho"}, got.Columns)
	assert.Equal(t, [][]string{{"sample one", "s1", "25", "8.1"}}, got.Records)
}

func TestAddNameColumns_NoLabelRows(t *testing.T) {
	g := tablefind.NewSliceGrid([][]string{
		{"temp", "rho"},
		{"25", "8.1"},
	})
	r := tablefind.Range{StartRow: 0, StartCol: 0, StopRow: 2, StopCol: 2}
	table := models.Table{Columns: []string{"temp", "rho"}, Records: [][]string{{"25", "8.1"}}}

	_, err := AddNameColumns(g, r, table)
	assert.Error(t, err)
}
