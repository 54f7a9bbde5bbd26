package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/shanehull/bsetracker/internal/types"
)

const (
	announcementsSheet = "Announcements"
	summarySheet       = "Summary"
)

// Headers is the fixed column order for both the workbook and the Google
// Sheets push.
var Headers = []string{
	"Company", "Scrip Code", "Category", "Subject", "Date", "Time",
	"Key Highlights", "Investment Implication", "PDF Link",
}

var columnWidths = []float64{30, 12, 18, 50, 12, 10, 40, 20, 50}

// Row flattens an announcement into the fixed column order.
func Row(a types.Announcement) []any {
	return []any{
		a.Company, a.ScripCode, a.Category, a.Subject, a.DateDisplay,
		a.TimeDisplay, a.Highlights, a.Implication, a.PDFURL,
	}
}

// WriteExcel renders the announcements into a styled workbook at path: a
// leading summary sheet, then the data sheet with color-coded implications.
func WriteExcel(anns []types.Announcement, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("failed to rename summary sheet: %w", err)
	}
	if _, err := f.NewSheet(announcementsSheet); err != nil {
		return fmt.Errorf("failed to create announcements sheet: %w", err)
	}

	if err := writeAnnouncementsSheet(f, anns); err != nil {
		return err
	}
	if err := writeSummarySheet(f, Summarize(anns)); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

func writeAnnouncementsSheet(f *excelize.File, anns []types.Announcement) error {
	styles, err := newSheetStyles(f)
	if err != nil {
		return err
	}

	for col, header := range Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to resolve header cell: %w", err)
		}
		if err := f.SetCellValue(announcementsSheet, cell, header); err != nil {
			return fmt.Errorf("failed to write header %s: %w", header, err)
		}
		if err := f.SetCellStyle(announcementsSheet, cell, cell, styles.header); err != nil {
			return fmt.Errorf("failed to style header %s: %w", header, err)
		}
	}

	for rowIdx, a := range anns {
		rowNum := rowIdx + 2
		for col, value := range Row(a) {
			cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				return fmt.Errorf("failed to resolve cell: %w", err)
			}
			if err := f.SetCellValue(announcementsSheet, cell, value); err != nil {
				return fmt.Errorf("failed to write row %d: %w", rowNum, err)
			}
			if err := f.SetCellStyle(announcementsSheet, cell, cell, styles.cell); err != nil {
				return fmt.Errorf("failed to style row %d: %w", rowNum, err)
			}
		}

		if fill := implicationStyle(styles, a.Implication); fill != 0 {
			cell, err := excelize.CoordinatesToCellName(8, rowNum)
			if err != nil {
				return fmt.Errorf("failed to resolve implication cell: %w", err)
			}
			if err := f.SetCellStyle(announcementsSheet, cell, cell, fill); err != nil {
				return fmt.Errorf("failed to color implication row %d: %w", rowNum, err)
			}
		}
	}

	for col, width := range columnWidths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return fmt.Errorf("failed to resolve column name: %w", err)
		}
		if err := f.SetColWidth(announcementsSheet, name, name, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	if err := f.SetRowHeight(announcementsSheet, 1, 25); err != nil {
		return fmt.Errorf("failed to set header row height: %w", err)
	}

	if err := f.SetPanes(announcementsSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header row: %w", err)
	}

	filterRange := fmt.Sprintf("A1:I%d", len(anns)+1)
	if err := f.AutoFilter(announcementsSheet, filterRange, nil); err != nil {
		return fmt.Errorf("failed to set autofilter: %w", err)
	}

	return nil
}

func writeSummarySheet(f *excelize.File, s Summary) error {
	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}})
	if err != nil {
		return fmt.Errorf("failed to create summary title style: %w", err)
	}

	row := 1
	writeSection := func(title string, items []CountItem) error {
		cell := fmt.Sprintf("A%d", row)
		if err := f.SetCellValue(summarySheet, cell, title); err != nil {
			return fmt.Errorf("failed to write summary section %s: %w", title, err)
		}
		if err := f.SetCellStyle(summarySheet, cell, cell, titleStyle); err != nil {
			return fmt.Errorf("failed to style summary section %s: %w", title, err)
		}
		row++
		for _, item := range items {
			if err := f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), item.Label); err != nil {
				return fmt.Errorf("failed to write summary label: %w", err)
			}
			if err := f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), item.Count); err != nil {
				return fmt.Errorf("failed to write summary count: %w", err)
			}
			row++
		}
		row++
		return nil
	}

	if err := f.SetCellValue(summarySheet, "A1", fmt.Sprintf("Total Announcements: %d", s.Total)); err != nil {
		return fmt.Errorf("failed to write summary total: %w", err)
	}
	if err := f.SetCellStyle(summarySheet, "A1", "A1", titleStyle); err != nil {
		return fmt.Errorf("failed to style summary total: %w", err)
	}
	row = 3

	if err := writeSection("By Category", s.Categories); err != nil {
		return err
	}
	if err := writeSection("By Investment Implication", s.Implications); err != nil {
		return err
	}
	if err := writeSection("Top 10 Companies", s.TopCompanies); err != nil {
		return err
	}

	if err := f.SetColWidth(summarySheet, "A", "A", 35); err != nil {
		return fmt.Errorf("failed to set summary column width: %w", err)
	}

	return nil
}

type sheetStyles struct {
	header   int
	cell     int
	positive int
	moderate int
	cautious int
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	thinBorder := []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"1F4E79"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorder,
	})
	if err != nil {
		return sheetStyles{}, fmt.Errorf("failed to create header style: %w", err)
	}

	cell, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
		Border:    thinBorder,
	})
	if err != nil {
		return sheetStyles{}, fmt.Errorf("failed to create cell style: %w", err)
	}

	fillStyle := func(color string) (int, error) {
		return f.NewStyle(&excelize.Style{
			Fill:      excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
			Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
			Border:    thinBorder,
		})
	}

	positive, err := fillStyle("C6EFCE")
	if err != nil {
		return sheetStyles{}, fmt.Errorf("failed to create positive fill style: %w", err)
	}
	moderate, err := fillStyle("FFEB9C")
	if err != nil {
		return sheetStyles{}, fmt.Errorf("failed to create moderate fill style: %w", err)
	}
	cautious, err := fillStyle("FFC7CE")
	if err != nil {
		return sheetStyles{}, fmt.Errorf("failed to create cautious fill style: %w", err)
	}

	return sheetStyles{
		header:   header,
		cell:     cell,
		positive: positive,
		moderate: moderate,
		cautious: cautious,
	}, nil
}

// implicationStyle picks the fill for an implication cell by substring.
// Order matters: "★★★" contains "★★", so the three-star check comes first.
func implicationStyle(styles sheetStyles, implication string) int {
	switch {
	case strings.Contains(implication, "★★★"):
		return styles.positive
	case strings.Contains(implication, "CAUTIOUS"):
		return styles.cautious
	case strings.Contains(implication, "★★"):
		return styles.moderate
	default:
		return 0
	}
}
