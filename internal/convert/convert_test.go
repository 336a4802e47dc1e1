package convert

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/exdata/tabex/internal/logging"
	"github.com/exdata/tabex/pkg/tabex"
)

var testFormat = tabex.TableFormat{
	MinRows:    2,
	MinCols:    2,
	FilePrefix: "zz_",
}

func writeWorkbook(t *testing.T, path string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	header := []interface{}{"a", "b"}
	record := []interface{}{"1", "2"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &record))

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, f.SaveAs(path))
}

func newTestConverter() *Converter {
	return &Converter{
		Format: testFormat,
		Logger: logging.NewNullLogger(),
	}
}

func TestConvertAll(t *testing.T) {
	source := t.TempDir()
	target := t.TempDir()
	writeWorkbook(t, filepath.Join(source, "zz_data.xlsx"))
	writeWorkbook(t, filepath.Join(source, "sub", "zz_nested.xlsx"))
	writeWorkbook(t, filepath.Join(source, "ignored.xlsx"))

	c := newTestConverter()
	opts := Options{BackupSource: true, CSVTail: "_out"}
	require.NoError(t, c.ConvertAll(source, target, opts))

	data, err := os.ReadFile(filepath.Join(target, "zz_data_out.csv"))
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(data))

	// The subtree is mirrored and the workbook backed up beside the CSV.
	assert.FileExists(t, filepath.Join(target, "sub", "zz_nested_out.csv"))
	assert.FileExists(t, filepath.Join(target, "sub", "zz_nested.xlsx"))

	// Files without the prefix are not converted.
	assert.NoFileExists(t, filepath.Join(target, "ignored_out.csv"))
}

func TestConvertAll_SkipConverted(t *testing.T) {
	source := t.TempDir()
	target := t.TempDir()
	bookPath := filepath.Join(source, "zz_data.xlsx")
	csvTarget := filepath.Join(target, "zz_data_out.csv")
	writeWorkbook(t, bookPath)

	// Make the source clearly older than anything written from here on.
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(bookPath, past, past))

	c := newTestConverter()
	require.NoError(t, c.ConvertAll(source, target, Options{CSVTail: "_out"}))

	// Mark the converted file; a skipped rerun must leave it alone.
	require.NoError(t, os.WriteFile(csvTarget, []byte("sentinel"), 0644))
	require.NoError(t, c.ConvertAll(source, target, Options{SkipConverted: true, CSVTail: "_out"}))
	data, err := os.ReadFile(csvTarget)
	require.NoError(t, err)
	assert.Equal(t, "sentinel", string(data))

	// Without the option the workbook is converted again.
	require.NoError(t, c.ConvertAll(source, target, Options{CSVTail: "_out"}))
	data, err = os.ReadFile(csvTarget)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(data))
}

func TestConvertFile_CreatesTargetDirs(t *testing.T) {
	source := t.TempDir()
	target := t.TempDir()
	bookPath := filepath.Join(source, "zz_data.xlsx")
	writeWorkbook(t, bookPath)

	c := newTestConverter()
	csvTarget := filepath.Join(target, "deep", "tree", "zz_data.csv")
	require.NoError(t, c.ConvertFile(bookPath, csvTarget))
	assert.FileExists(t, csvTarget)
}

func TestCSVPath(t *testing.T) {
	assert.Equal(t, filepath.Join("a", "b", "data_out.csv"),
		csvPath(filepath.Join("a", "b", "data.xlsx"), "_out"))
	assert.Equal(t, "data.csv", csvPath("data.xlsx", ""))
}

func TestAlreadyConverted(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "source.xlsx")
	target := filepath.Join(dir, "target.csv")
	require.NoError(t, os.WriteFile(source, []byte("s"), 0644))

	// Missing target: not converted.
	done, err := alreadyConverted(source, target)
	require.NoError(t, err)
	assert.False(t, done)

	// Target newer than source: converted.
	require.NoError(t, os.WriteFile(target, []byte("t"), 0644))
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(source, past, past))
	done, err = alreadyConverted(source, target)
	require.NoError(t, err)
	assert.True(t, done)

	// Source newer than target: stale.
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(source, future, future))
	done, err = alreadyConverted(source, target)
	require.NoError(t, err)
	assert.False(t, done)
}
