package view

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet pairs a pivot grid with the worksheet name it should be written under.
type Sheet struct {
	Name  string
	Table Timetable
}

// WriteWorkbook renders one worksheet per sheet into a styled .xlsx file,
// days as rows and declared times as columns.
func WriteWorkbook(path string, sheets []Sheet) error {
	workbook := excelize.NewFile()
	defer workbook.Close()

	headerStyle, err := workbook.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	cellStyle, err := workbook.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
	})
	if err != nil {
		return err
	}

	for i, sheet := range sheets {
		name := sheetName(sheet.Name)
		if i == 0 {
			if err := workbook.SetSheetName("Sheet1", name); err != nil {
				return err
			}
		} else if _, err := workbook.NewSheet(name); err != nil {
			return err
		}

		if err := workbook.SetColWidth(name, "A", "A", 10); err != nil {
			return err
		}
		lastColumn, err := excelize.ColumnNumberToName(1 + len(sheet.Table.Times))
		if err != nil {
			return err
		}
		if len(sheet.Table.Times) > 0 {
			if err := workbook.SetColWidth(name, "B", lastColumn, 28); err != nil {
				return err
			}
		}

		header := append([]any{"Day"}, toAny(sheet.Table.Times)...)
		if err := workbook.SetSheetRow(name, "A1", &header); err != nil {
			return err
		}
		if err := workbook.SetCellStyle(name, "A1", fmt.Sprintf("%v1", lastColumn), headerStyle); err != nil {
			return err
		}

		for rowIndex, day := range sheet.Table.Days {
			record := []any{day}
			for _, time := range sheet.Table.Times {
				if cell := sheet.Table.Cells[day][time]; cell != nil {
					record = append(record, renderCell(cell))
				} else {
					record = append(record, "")
				}
			}
			anchor, err := excelize.CoordinatesToCellName(1, rowIndex+2)
			if err != nil {
				return err
			}
			if err := workbook.SetSheetRow(name, anchor, &record); err != nil {
				return err
			}
			last, err := excelize.CoordinatesToCellName(1+len(sheet.Table.Times), rowIndex+2)
			if err != nil {
				return err
			}
			if err := workbook.SetCellStyle(name, anchor, last, cellStyle); err != nil {
				return err
			}
		}
	}

	return workbook.SaveAs(path)
}

func renderCell(cell *Cell) string {
	lines := []string{cell.Subject, cell.Teacher, cell.Room}
	if cell.Group != "" {
		lines = append(lines, cell.Group)
	}
	return strings.Join(lines, "\n")
}

// sheetName strips the characters worksheet names cannot carry and trims to
// the 31-rune limit.
func sheetName(name string) string {
	replacer := strings.NewReplacer(":", "", "\\", "", "/", "", "?", "", "*", "", "[", "", "]", "")
	cleaned := replacer.Replace(name)
	runes := []rune(cleaned)
	if len(runes) > 31 {
		cleaned = string(runes[:31])
	}
	if cleaned == "" {
		cleaned = "Sheet"
	}
	return cleaned
}

func toAny(values []string) []any {
	result := make([]any, len(values))
	for i, value := range values {
		result[i] = value
	}
	return result
}
