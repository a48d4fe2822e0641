// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package proposed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dacolabs/gcschema/internal/model"
	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// Format reads the raw rows of one sheet of a proposed schema table.
type Format struct {
	read func(path, sheet string) ([][]string, error)
}

var (
	// XLSX reads Office Open XML workbooks.
	XLSX = Format{readXLSX}
	// XLS reads legacy BIFF workbooks.
	XLS = Format{readXLS}
	// CSV reads a comma separated export of the sheet. The sheet name is ignored.
	CSV = Format{readCSV}
)

// FormatFor picks the Format matching the extension of path.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return XLSX, nil
	case ".xls":
		return XLS, nil
	case ".csv":
		return CSV, nil
	default:
		return Format{}, fmt.Errorf("%w: unsupported table format %q", model.ErrMalformedInput, filepath.Ext(path))
	}
}

// Rows returns the cells of every row of sheet, in row order.
func (f Format) Rows(path, sheet string) ([][]string, error) {
	rows, err := f.read(path, sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", model.ErrMalformedInput, path, err)
	}
	return rows, nil
}

func readXLSX(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	return f.GetRows(sheet)
}

func readXLS(path, sheet string) ([][]string, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	wb, err := xls.OpenReader(f, "utf-8")
	if err != nil {
		return nil, err
	}
	if wb == nil {
		return nil, errors.New("no workbook stream")
	}

	for i := 0; i < wb.NumSheets(); i++ {
		ws := wb.GetSheet(i)
		if ws == nil || ws.Name != sheet {
			continue
		}
		rows := make([][]string, 0, int(ws.MaxRow)+1)
		for r := 0; r <= int(ws.MaxRow); r++ {
			row := sheetRow(ws, r)
			if row == nil {
				rows = append(rows, nil)
				continue
			}
			cells := make([]string, row.LastCol())
			for c := range cells {
				cells[c] = row.Col(c)
			}
			rows = append(rows, cells)
		}
		return rows, nil
	}
	return nil, fmt.Errorf("sheet %q not found", sheet)
}

// sheetRow returns row r of ws, or nil when the row holds no cells.
// WorkSheet.Row panics on such rows.
func sheetRow(ws *xls.WorkSheet, r int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return ws.Row(r)
}

func readCSV(path, _ string) ([][]string, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}
