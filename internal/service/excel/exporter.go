package excel

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/0jiuxian0/clock-in-out-statistics/internal/model"
)

const (
	sheetOverview = "概况统计与打卡明细"
	sheetDetail   = "打卡详情"
)

// Exporter 打卡记录导出器
type Exporter struct{}

// NewExporter 创建导出器
func NewExporter() *Exporter {
	return &Exporter{}
}

// BuildWorkbook 将下班打卡记录导出为两个 sheet 的工作簿
// 概况 sheet 记录导出时间与条数，详情 sheet 为 日期/打卡类型/实际打卡时间，
// 详情 sheet 可被本解析器重新提取（格式1）
func (e *Exporter) BuildWorkbook(records []model.ClockEvent, exportedAt time.Time) (*excelize.File, error) {
	f := excelize.NewFile()

	offWork := make([]model.ClockEvent, 0, len(records))
	for _, r := range records {
		if strings.Contains(r.Type, offWorkMarker) {
			offWork = append(offWork, r)
		}
	}

	f.SetSheetName("Sheet1", sheetOverview)
	overviewData := [][]interface{}{
		{"概况统计"},
		{"导出时间", exportedAt.Format("2006-01-02 15:04:05")},
		{"记录总数", len(records)},
		{"下班记录数", len(offWork)},
	}
	for i, row := range overviewData {
		for j, val := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			f.SetCellValue(sheetOverview, cell, val)
		}
	}

	if _, err := f.NewSheet(sheetDetail); err != nil {
		return nil, err
	}

	headers := []string{"日期", "打卡类型", "实际打卡时间"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetDetail, cell, h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	f.SetRowStyle(sheetDetail, 1, 1, headerStyle)

	for i, r := range offWork {
		row := i + 2
		typ := r.Type
		if typ == "" {
			typ = offWorkMarker
		}
		f.SetCellValue(sheetDetail, fmt.Sprintf("A%d", row), r.Date)
		f.SetCellValue(sheetDetail, fmt.Sprintf("B%d", row), typ)
		f.SetCellValue(sheetDetail, fmt.Sprintf("C%d", row), r.Time)
	}

	f.SetColWidth(sheetOverview, "A", "A", 15)
	f.SetColWidth(sheetOverview, "B", "B", 30)
	f.SetColWidth(sheetDetail, "A", "A", 20)
	f.SetColWidth(sheetDetail, "B", "B", 15)
	f.SetColWidth(sheetDetail, "C", "C", 20)

	return f, nil
}

// ExportFilename 生成导出文件名，形如 打卡记录_20250829.xlsx
func ExportFilename(base string, t time.Time) string {
	if strings.TrimSpace(base) == "" {
		base = "打卡记录"
	}
	return fmt.Sprintf("%s_%s.xlsx", base, t.Format("20060102"))
}
