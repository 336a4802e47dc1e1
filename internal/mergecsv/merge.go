// Package mergecsv merges converted CSV files from a directory tree back
// into a single table.
package mergecsv

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/exdata/tabex/pkg/tabex"
	"github.com/exdata/tabex/pkg/tabex/models"
	"github.com/exdata/tabex/pkg/tabex/output"
)

// Merge reads every CSV under root matching the format's file prefix and
// the tail, and concatenates their records. The first file fixes the
// canonical header; files with an incompatible header are reported as
// alerts and skipped, and deleted when deleteErrorFiles is set. Files are
// visited in lexical walk order. No matching files is a normal outcome:
// an empty table and no error.
func Merge(root string, format tabex.TableFormat, tail string, deleteErrorFiles bool, logger tabex.Logger) (models.Table, error) {
	var merged models.Table
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !acceptableCSVFilename(d.Name(), format, tail) {
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		table, err := output.ReadCSV(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("read %q: %w", path, err)
		}
		if table.Empty() {
			return nil
		}

		if merged.Columns == nil {
			merged.Columns = table.Columns
		} else if problem := headerProblem(merged.Columns, table.Columns); problem != "" {
			logger.Alert(" !Error: %s in %q", problem, path)
			if deleteErrorFiles {
				if err := os.Remove(path); err != nil {
					return err
				}
				logger.Info(" +-CSV file deleted: %q", path)
			}
			return nil
		}
		merged.Records = append(merged.Records, table.Records...)
		return nil
	})
	if err != nil {
		return models.Table{}, err
	}
	return merged, nil
}

// WriteCSVFile writes the merged table as a CSV file and logs its path.
func WriteCSVFile(t models.Table, path string, logger tabex.Logger) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := output.WriteCSV(f, t); err != nil {
		return err
	}
	logger.Info("CSV file created: %q", path)
	return nil
}

// WriteXLSXFile writes the merged table as a workbook and logs its path.
func WriteXLSXFile(t models.Table, path string, logger tabex.Logger) error {
	if err := output.WriteXLSX(path, t); err != nil {
		return err
	}
	logger.Info("Excel file created: %q", path)
	return nil
}

// headerProblem describes how got deviates from the canonical header, or
// "" when the headers match.
func headerProblem(want, got []string) string {
	switch {
	case len(got) > len(want):
		return fmt.Sprintf("too many columns; delete %d column(s)", len(got)-len(want))
	case len(got) < len(want):
		return fmt.Sprintf("too few columns; add %d column(s)", len(want)-len(got))
	case !models.SameColumns(want, got):
		var from, to []string
		for i := range want {
			if want[i] != got[i] {
				from = append(from, got[i])
				to = append(to, want[i])
			}
		}
		return fmt.Sprintf("table header not match; change columns %v into %v", from, to)
	}
	return ""
}

func acceptableCSVFilename(name string, format tabex.TableFormat, tail string) bool {
	return format.AcceptableCSVFilename(name) && strings.HasSuffix(name, tail+".csv")
}
