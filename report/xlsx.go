package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX saves g as a single-sheet workbook. Numbers are stored as
// numbers so the sheet can be recalculated.
func WriteXLSX(path string, g Grid) error {
	fx := excelize.NewFile()
	defer fx.Close()

	sheet := g.Title
	if sheet == "" {
		sheet = "Report"
	}
	if err := fx.SetSheetName(fx.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	styles, err := newStyles(fx)
	if err != nil {
		return fmt.Errorf("create styles: %w", err)
	}

	for i, h := range g.Header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := fx.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
		if err := fx.SetCellStyle(sheet, cell, cell, styles.header); err != nil {
			return err
		}
	}

	rowNum := 2
	for _, rows := range [][][]Cell{g.Rows, g.Footer} {
		for _, r := range rows {
			for i, c := range r {
				cell, _ := excelize.CoordinatesToCellName(i+1, rowNum)
				if err := setCell(fx, sheet, cell, c, styles); err != nil {
					return err
				}
			}
			rowNum++
		}
	}

	if err := fx.SetColWidth(sheet, "A", "A", 22); err != nil {
		return err
	}
	if len(g.Header) > 1 {
		last, _ := excelize.ColumnNumberToName(len(g.Header))
		if err := fx.SetColWidth(sheet, "B", last, 16); err != nil {
			return err
		}
	}

	return fx.SaveAs(path)
}

type xlsxStyles struct {
	header, money, number int
}

func newStyles(fx *excelize.File) (xlsxStyles, error) {
	var s xlsxStyles
	var err error

	s.header, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"2F4F4F"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
		},
	})
	if err != nil {
		return s, err
	}

	// 7: $#,##0.00_);($#,##0.00)
	s.money, err = fx.NewStyle(&excelize.Style{NumFmt: 7})
	if err != nil {
		return s, err
	}

	// 2: 0.00
	s.number, err = fx.NewStyle(&excelize.Style{NumFmt: 2})
	return s, err
}

func setCell(fx *excelize.File, sheet, cell string, c Cell, s xlsxStyles) error {
	if c.Kind == Text {
		return fx.SetCellValue(sheet, cell, c.Text)
	}
	if err := fx.SetCellValue(sheet, cell, c.Value.InexactFloat64()); err != nil {
		return err
	}
	style := s.number
	if c.Kind == Money {
		style = s.money
	}
	return fx.SetCellStyle(sheet, cell, cell, style)
}
