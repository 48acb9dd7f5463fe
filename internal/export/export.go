// Package export writes tabular data to spreadsheet files and addresses to
// QR code images.
package export

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gabapcia/aiowallet/internal/pkg/types"

	"github.com/xuri/excelize/v2"
)

const (
	// DefaultFileName is used when ExportRows receives an empty file name.
	DefaultFileName = "aiowallet.xlsx"

	// SheetName is the single sheet of every exported workbook.
	SheetName = "Sheet1"
)

// ErrNoColumns is returned when there is nothing to put in the header row.
var ErrNoColumns = errors.New("no columns to export")

// Row is one spreadsheet row keyed by column name.
type Row = map[string]any

type config struct {
	columns []string
}

// Option configures an export.
type Option func(*config)

// WithColumns fixes the header row. Keys missing from this list are not exported.
func WithColumns(columns ...string) Option {
	return func(c *config) {
		c.columns = types.Dedupe(columns)
	}
}

// Columns returns the union of the keys of rows in ascending order.
func Columns(rows []Row) []string {
	set := types.NewSet[string]()
	for _, row := range rows {
		for key := range row {
			set.Add(key)
		}
	}
	return types.Sorted(set)
}

func newWorkbook(rows []Row, opts []Option) (*excelize.File, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	columns := cfg.columns
	if len(columns) == 0 {
		columns = Columns(rows)
	}
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}

	f := excelize.NewFile()

	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, errors.Join(err, f.Close())
	}

	for i, row := range rows {
		for j, c := range columns {
			v, ok := row[c]
			if !ok || v == nil {
				continue
			}

			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, errors.Join(err, f.Close())
			}

			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return nil, errors.Join(err, f.Close())
			}
		}
	}

	return f, nil
}

// WriteRows writes rows as an xlsx workbook to w.
func WriteRows(w io.Writer, rows []Row, opts ...Option) error {
	f, err := newWorkbook(rows, opts)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// ExportRows writes rows as an xlsx workbook to filename, or DefaultFileName
// when filename is empty. The .xlsx extension is added when missing.
func ExportRows(rows []Row, filename string, opts ...Option) (string, error) {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		filename = DefaultFileName
	}
	if !strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		filename += ".xlsx"
	}

	f, err := newWorkbook(rows, opts)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := f.SaveAs(filename); err != nil {
		return "", fmt.Errorf("save workbook %s: %w", filename, err)
	}
	return filename, nil
}
