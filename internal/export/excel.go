// internal/export/excel.go

// Package export writes evaluation reports as xlsx workbooks: one
// comprehensive sheet plus one sheet per rule, first row frozen.
package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"prip-core/report"
)

// ComprehensiveSheet holds the full pair table with one marker column per rule.
const ComprehensiveSheet = "Comprehensive"

// maxSheetName is the xlsx limit on worksheet name length.
const maxSheetName = 31

// Workbook renders a finished report as an in-memory workbook. Rule names
// are sanitized and de-duplicated to satisfy worksheet naming rules; table
// content keeps the original names.
func Workbook(rep *report.Report) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", ComprehensiveSheet); err != nil {
		return nil, err
	}

	header := make([]any, 0, len(rep.Columns))
	for _, c := range rep.Columns {
		header = append(header, c)
	}
	if err := writeRow(f, ComprehensiveSheet, 1, header); err != nil {
		return nil, err
	}
	for i, row := range rep.Rows {
		cells := []any{row.Residue1, idCell(row.ID1), row.Residue2, idCell(row.ID2), row.Distance}
		for _, m := range row.Markers {
			cells = append(cells, m)
		}
		if err := writeRow(f, ComprehensiveSheet, i+2, cells); err != nil {
			return nil, err
		}
	}

	names := sheetNames(rep.PerRule)
	for t, tab := range rep.PerRule {
		sheet := names[t]
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheet, err)
		}
		header := make([]any, 0, len(report.BaseColumns))
		for _, c := range report.BaseColumns {
			header = append(header, c)
		}
		if err := writeRow(f, sheet, 1, header); err != nil {
			return nil, err
		}
		for i, row := range tab.Rows {
			cells := []any{row.Residue1, idCell(row.ID1), row.Residue2, idCell(row.ID2), row.Distance}
			if err := writeRow(f, sheet, i+2, cells); err != nil {
				return nil, err
			}
		}
	}

	for _, sheet := range f.GetSheetList() {
		if err := f.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// WriteFile renders rep and saves it at path.
func WriteFile(path string, rep *report.Report) error {
	f, err := Workbook(rep)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []any) error {
	for col, v := range cells {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

// idCell writes numeric residue ids as numbers so spreadsheets sort them
// naturally; ids with insertion codes stay text.
func idCell(id string) any {
	if n, err := strconv.Atoi(id); err == nil {
		return n
	}
	return id
}

// sheetNames maps rule names onto legal, unique worksheet names.
func sheetNames(tables []report.RuleTable) []string {
	used := map[string]bool{ComprehensiveSheet: true}
	out := make([]string, len(tables))
	for i, tab := range tables {
		base := sanitizeSheetName(tab.Name)
		name := base
		for n := 2; used[name]; n++ {
			suffix := fmt.Sprintf("~%d", n)
			name = clip(base, maxSheetName-len(suffix)) + suffix
		}
		used[name] = true
		out[i] = name
	}
	return out
}

var sheetNameSanitizer = strings.NewReplacer(
	":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_",
)

func sanitizeSheetName(name string) string {
	s := clip(sheetNameSanitizer.Replace(name), maxSheetName)
	if strings.TrimSpace(s) == "" {
		return "Rule"
	}
	return s
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
