package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Empty(t *testing.T) {
	assert.True(t, Table{}.Empty())
	assert.False(t, Table{Columns: []string{"a"}}.Empty())
	assert.False(t, Table{Records: [][]string{{"1"}}}.Empty())
}

func TestTable_InsertConstColumn(t *testing.T) {
	src := Table{
		Columns: []string{"temp", "rho"},
		Records: [][]string{{"25", "8.1"}, {"50", "8.8"}},
	}

	got := src.InsertConstColumn(0, "longname", "sample-1")
	got = got.InsertConstColumn(1, "shortname", "s1")

	assert.Equal(t, []string{"longname", "shortname", "temp", "rho"}, got.Columns)
	assert.Equal(t, [][]string{
		{"sample-1", "s1", "25", "8.1"},
		{"sample-1", "s1", "50", "8.8"},
	}, got.Records)

	// The source table is untouched.
	assert.Equal(t, []string{"temp", "rho"}, src.Columns)
	assert.Equal(t, [][]string{{"25", "8.1"}, {"50", "8.8"}}, src.Records)
}

func TestConcat(t *testing.T) {
	a := Table{Columns: []string{"c1", "c2"}, Records: [][]string{{"1", "2"}}}
	b := Table{Columns: []string{"c1", "c2"}, Records: [][]string{{"3", "4"}, {"5", "6"}}}

	merged, err := Concat([]Table{a, Table{}, b})
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c2"}, merged.Columns)
	assert.Equal(t, [][]string{{"1", "2"}, {"3", "4"}, {"5", "6"}}, merged.Records)
}

func TestConcat_NoTables(t *testing.T) {
	merged, err := Concat(nil)
	require.NoError(t, err)
	assert.True(t, merged.Empty())
}

func TestConcat_HeaderMismatch(t *testing.T) {
	a := Table{Columns: []string{"c1", "c2"}, Records: [][]string{{"1", "2"}}}
	b := Table{Columns: []string{"c1", "cX"}, Records: [][]string{{"3", "4"}}}

	_, err := Concat([]Table{a, b})
	var mismatch *HeaderMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, []string{"c1", "c2"}, mismatch.Want)
	assert.Equal(t, []string{"c1", "cX"}, mismatch.Got)
}
