package excel

import (
	"strings"

	"github.com/0jiuxian0/clock-in-out-statistics/internal/model"
)

// 格式2（打卡系统源文件）的标志性段落标题
const (
	markerDetail   = "打卡详情"
	markerOverview = "概况统计"
)

// detectScanRows 格式探测最多检查的行数
const detectScanRows = 10

// fallbackHeaderRow 格式2找不到表头时的兜底位置（第3行）
// 来自真实导出文件的经验值，遇到新模板可能悄悄解析错位，谨慎调整
const fallbackHeaderRow = 2

// DetectLayout 探测打卡表格式
// 前 10 行拼接文本中出现"打卡详情"或"概况统计"即判定为格式2，
// 并在这些行里找同时含"日期"和"打卡类型"（或"类型"）的表头行；
// 否则判定为格式1：首行表头，第二行起为数据
func DetectLayout(rows [][]string) model.LayoutInfo {
	if len(rows) == 0 {
		return model.LayoutInfo{Layout: model.LayoutSmartSheet, HeaderRow: 0, DataStartRow: 1}
	}

	limit := detectScanRows
	if limit > len(rows) {
		limit = len(rows)
	}

	isRawExport := false
	for i := 0; i < limit; i++ {
		text := concatRow(rows[i])
		if strings.Contains(text, markerDetail) || strings.Contains(text, markerOverview) {
			isRawExport = true
			break
		}
	}

	if !isRawExport {
		return model.LayoutInfo{Layout: model.LayoutSmartSheet, HeaderRow: 0, DataStartRow: 1}
	}

	headerRow := -1
	for i := 0; i < limit; i++ {
		text := concatRow(rows[i])
		if text == "" {
			continue
		}
		if strings.Contains(text, "日期") &&
			(strings.Contains(text, "打卡类型") || strings.Contains(text, "类型")) {
			headerRow = i
			break
		}
	}
	if headerRow == -1 {
		headerRow = fallbackHeaderRow
	}

	// 详情区表头后常跟一个空行，数据从表头+2开始；下一行非空则从表头+1开始
	dataStartRow := headerRow + 2
	if headerRow+1 < len(rows) && !isBlankRow(rows[headerRow+1]) {
		dataStartRow = headerRow + 1
	}

	return model.LayoutInfo{Layout: model.LayoutRawExport, HeaderRow: headerRow, DataStartRow: dataStartRow}
}

func concatRow(row []string) string {
	var b strings.Builder
	for _, cell := range row {
		b.WriteString(cell)
	}
	return b.String()
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
