// Package convert walks a directory tree of Excel workbooks and writes
// the tables extracted from each as CSV files in a mirrored target tree.
package convert

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/exdata/tabex/pkg/tabex"
	"github.com/exdata/tabex/pkg/tabex/output"
)

// Options controls directory conversion.
type Options struct {
	// SkipConverted skips a workbook when its target CSV already exists
	// and is at least as new as the workbook. A skipped conversion also
	// skips the backup.
	SkipConverted bool
	// BackupSource copies each converted workbook into the target tree
	// beside its CSV.
	BackupSource bool
	// CSVTail is appended to the workbook base name when building the CSV
	// filename: with tail "_TEP", "book.xlsx" becomes "book_TEP.csv".
	CSVTail string
}

// Converter extracts tables from workbooks under one format and writes
// them out as CSV.
type Converter struct {
	Format    tabex.TableFormat
	Transform tabex.TransformFunc
	Logger    tabex.Logger
}

// ConvertAll converts every acceptable workbook under sourceRoot, writing
// CSVs (and optional workbook backups) into the mirrored tree under
// targetRoot. The tables of one workbook are merged into one CSV.
func (c *Converter) ConvertAll(sourceRoot, targetRoot string, opts Options) error {
	return filepath.WalkDir(sourceRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !c.Format.AcceptableWorkbookFilename(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(sourceRoot, path)
		if err != nil {
			return err
		}
		targetBook := filepath.Join(targetRoot, rel)
		targetCSV := csvPath(targetBook, opts.CSVTail)

		if opts.SkipConverted {
			converted, err := alreadyConverted(path, targetCSV)
			if err != nil {
				return err
			}
			if converted {
				c.Logger.Verbose("Skipped %q: already converted", path)
				return nil
			}
		}
		if err := c.ConvertFile(path, targetCSV); err != nil {
			return err
		}
		if opts.BackupSource {
			if err := c.backupWorkbook(path, targetBook); err != nil {
				return err
			}
		}
		return nil
	})
}

// ConvertFile extracts all tables from the workbook at sourcePath and
// writes them as a single CSV at targetCSVPath, creating target
// directories as needed.
func (c *Converter) ConvertFile(sourcePath, targetCSVPath string) error {
	if err := c.createDirIfMissing(filepath.Dir(targetCSVPath)); err != nil {
		return err
	}

	table, err := tabex.ExtractWorkbook(sourcePath, c.Format, c.Transform)
	if err != nil {
		return err
	}

	f, err := os.Create(targetCSVPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := output.WriteCSV(f, table); err != nil {
		return err
	}

	c.Logger.Info("File created: %q", targetCSVPath)
	return nil
}

func (c *Converter) backupWorkbook(sourcePath, targetPath string) error {
	if err := c.createDirIfMissing(filepath.Dir(targetPath)); err != nil {
		return err
	}
	if err := copyFile(sourcePath, targetPath); err != nil {
		return err
	}
	c.Logger.Info("File copied: %q", targetPath)
	return nil
}

func (c *Converter) createDirIfMissing(dir string) error {
	if _, err := os.Stat(dir); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	c.Logger.Info("Directory created: %q", dir)
	return nil
}

// alreadyConverted reports whether target exists and is at least as new
// as source.
func alreadyConverted(source, target string) (bool, error) {
	targetInfo, err := os.Stat(target)
	if os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	sourceInfo, err := os.Stat(source)
	if err != nil {
		return false, err
	}
	return !sourceInfo.ModTime().After(targetInfo.ModTime()), nil
}

// csvPath swaps the extension for ".csv", appending tail to the base
// name: ("dir/book.xlsx", "_TEP") -> "dir/book_TEP.csv".
func csvPath(path, tail string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + tail + ".csv"
}

func copyFile(sourcePath, targetPath string) error {
	src, err := os.Open(sourcePath)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(targetPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return err
	}
	return dst.Close()
}
