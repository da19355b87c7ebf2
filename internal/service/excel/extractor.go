package excel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/0jiuxian0/clock-in-out-statistics/internal/model"
)

// ErrMissingColumns 表头中缺少必要的列，按致命错误处理，不产出部分结果
var ErrMissingColumns = errors.New("缺少必要的列")

// 下班记录的类型标记
const offWorkMarker = "下班"

// ExtractStats 提取过程统计
type ExtractStats struct {
	Layout    model.LayoutInfo `json:"layout"`
	Processed int              `json:"processed"` // 提取出的下班记录数
	Skipped   int              `json:"skipped"`   // 跳过的行数（非下班/缺日期）
}

// ExtractClockEvents 从打卡详情表中提取下班打卡记录
// 行数不足 2 行视为"无可处理内容"，返回空结果而非错误；
// 只保留下班记录，时间为空的记录照常保留（缺卡），日期为空的记录丢弃
func ExtractClockEvents(rows [][]string) ([]model.ClockEvent, ExtractStats, error) {
	stats := ExtractStats{}
	if len(rows) < 2 {
		return []model.ClockEvent{}, stats, nil
	}

	info := DetectLayout(rows)
	stats.Layout = info

	if info.HeaderRow >= len(rows) {
		return nil, stats, fmt.Errorf("表头行 %d 越界: %w", info.HeaderRow, ErrMissingColumns)
	}
	headers := rows[info.HeaderRow]
	if isBlankRow(headers) {
		return nil, stats, fmt.Errorf("表头行为空: %w", ErrMissingColumns)
	}

	dateIdx := findDateCol(headers)
	typeIdx := findTypeCol(headers)
	timeIdx := findClockTimeCol(headers)
	if dateIdx == -1 || typeIdx == -1 || timeIdx == -1 {
		return nil, stats, fmt.Errorf("日期列=%d 类型列=%d 时间列=%d: %w",
			dateIdx, typeIdx, timeIdx, ErrMissingColumns)
	}

	// 兜底表头位置可能指到表尾之外，容量按 0 处理
	capHint := len(rows) - info.DataStartRow
	if capHint < 0 {
		capHint = 0
	}
	events := make([]model.ClockEvent, 0, capHint)
	for i := info.DataStartRow; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 || isBlankRow(row) {
			continue
		}

		typ := getCell(row, typeIdx)
		if !strings.Contains(typ, offWorkMarker) {
			stats.Skipped++
			continue
		}

		date := getCell(row, dateIdx)
		if date == "" {
			stats.Skipped++
			continue
		}

		events = append(events, model.ClockEvent{
			Date: date,
			Type: typ,
			Time: getCell(row, timeIdx), // 缺卡时为空
		})
		stats.Processed++
	}

	return events, stats, nil
}

func findDateCol(headers []string) int {
	for i, h := range headers {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if strings.Contains(h, "日期") || h == "时间" {
			return i
		}
	}
	return -1
}

func findTypeCol(headers []string) int {
	for i, h := range headers {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if strings.Contains(h, "打卡类型") || strings.Contains(h, "类型") {
			return i
		}
	}
	return -1
}

// findClockTimeCol 定位实际打卡时间列
// 表里通常同时有"应打卡时间"（排班时间，恒为 18:30 之类）和"实际打卡时间"，
// 必须取实际列：先精确匹配，再包含匹配，最后兜底取含"打卡时间"但
// 不含"应打卡时间"的列
func findClockTimeCol(headers []string) int {
	for i, h := range headers {
		if strings.TrimSpace(h) == "实际打卡时间" {
			return i
		}
	}
	for i, h := range headers {
		if strings.Contains(strings.TrimSpace(h), "实际打卡时间") {
			return i
		}
	}
	for i, h := range headers {
		h = strings.TrimSpace(h)
		if strings.Contains(h, "打卡时间") && !strings.Contains(h, "应打卡时间") {
			return i
		}
	}
	return -1
}

func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
