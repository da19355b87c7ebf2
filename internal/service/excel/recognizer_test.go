package excel_test

import (
	"testing"

	"github.com/0jiuxian0/clock-in-out-statistics/internal/model"
	"github.com/0jiuxian0/clock-in-out-statistics/internal/service/excel"
)

func TestDetectLayoutSmartSheet(t *testing.T) {
	rows := [][]string{
		{"日期", "打卡类型", "实际打卡时间"},
		{"2025年10月9日 星期四", "下班打卡", "20:30"},
	}

	info := excel.DetectLayout(rows)
	if info.Layout != model.LayoutSmartSheet {
		t.Fatalf("Layout=%v, want %v", info.Layout, model.LayoutSmartSheet)
	}
	if info.HeaderRow != 0 || info.DataStartRow != 1 {
		t.Fatalf("HeaderRow=%d DataStartRow=%d, want 0/1", info.HeaderRow, info.DataStartRow)
	}
}

func TestDetectLayoutRawExport(t *testing.T) {
	rows := [][]string{
		{"打卡详情"},
		{""},
		{"日期", "打卡类型", "应打卡时间", "实际打卡时间"},
		{""},
		{"2025年10月9日 星期四", "下班打卡", "18:30", "20:30"},
	}

	info := excel.DetectLayout(rows)
	if info.Layout != model.LayoutRawExport {
		t.Fatalf("Layout=%v, want %v", info.Layout, model.LayoutRawExport)
	}
	if info.HeaderRow != 2 {
		t.Fatalf("HeaderRow=%d, want 2", info.HeaderRow)
	}
	// 表头后跟空行，数据从表头+2开始
	if info.DataStartRow != 4 {
		t.Fatalf("DataStartRow=%d, want 4", info.DataStartRow)
	}
}

func TestDetectLayoutRawExportNoBlankSeparator(t *testing.T) {
	rows := [][]string{
		{"概况统计"},
		{"日期", "打卡类型", "实际打卡时间"},
		{"2025年10月9日 星期四", "下班打卡", "20:30"},
	}

	info := excel.DetectLayout(rows)
	if info.Layout != model.LayoutRawExport {
		t.Fatalf("Layout=%v, want %v", info.Layout, model.LayoutRawExport)
	}
	if info.HeaderRow != 1 || info.DataStartRow != 2 {
		t.Fatalf("HeaderRow=%d DataStartRow=%d, want 1/2", info.HeaderRow, info.DataStartRow)
	}
}

func TestDetectLayoutRawExportFallbackHeader(t *testing.T) {
	// 标志行存在但前10行里找不到表头，退到默认第3行
	rows := [][]string{
		{"概况统计"},
		{"统计周期", "2025-10-01 至 2025-10-31"},
		{"姓名", "部门", "出勤天数"},
		{"张三", "研发部", "22"},
	}

	info := excel.DetectLayout(rows)
	if info.Layout != model.LayoutRawExport {
		t.Fatalf("Layout=%v, want %v", info.Layout, model.LayoutRawExport)
	}
	if info.HeaderRow != 2 {
		t.Fatalf("HeaderRow=%d, want fallback 2", info.HeaderRow)
	}
	if info.DataStartRow != 3 {
		t.Fatalf("DataStartRow=%d, want 3", info.DataStartRow)
	}
}

func TestDetectLayoutMarkerBeyondFirstRow(t *testing.T) {
	// 标志性标题不在首行也要能识别为格式2
	rows := [][]string{
		{"某某公司考勤导出"},
		{"打卡详情"},
		{"日期", "类型", "实际打卡时间"},
		{"2025年10月9日", "下班打卡", "20:30"},
	}

	info := excel.DetectLayout(rows)
	if info.Layout != model.LayoutRawExport {
		t.Fatalf("Layout=%v, want %v", info.Layout, model.LayoutRawExport)
	}
	if info.HeaderRow != 2 || info.DataStartRow != 3 {
		t.Fatalf("HeaderRow=%d DataStartRow=%d, want 2/3", info.HeaderRow, info.DataStartRow)
	}
}

func TestDetectLayoutEmpty(t *testing.T) {
	info := excel.DetectLayout(nil)
	if info.Layout != model.LayoutSmartSheet || info.HeaderRow != 0 || info.DataStartRow != 1 {
		t.Fatalf("unexpected layout for empty input: %+v", info)
	}
}
