package excel_test

import (
	"errors"
	"testing"

	"github.com/0jiuxian0/clock-in-out-statistics/internal/service/excel"
)

func TestExtractClockEventsSmartSheet(t *testing.T) {
	rows := [][]string{
		{"日期", "打卡类型", "实际打卡时间"},
		{"2025年10月9日 星期四", "下班打卡", "20:30"},
		{"2025年10月9日 星期四", "上班打卡", "08:55"},
		{"2025年10月10日 星期五", "下班打卡", ""},
		{"", "", ""},
		{"2025年10月13日 星期一", "下班", "21:05"},
	}

	events, stats, err := excel.ExtractClockEvents(rows)
	if err != nil {
		t.Fatalf("ExtractClockEvents failed: %v", err)
	}
	if got, want := len(events), 3; got != want {
		t.Fatalf("len(events)=%d, want %d", got, want)
	}
	if stats.Processed != 3 || stats.Skipped != 1 {
		t.Fatalf("stats=%+v, want Processed=3 Skipped=1", stats)
	}

	if events[0].Date != "2025年10月9日 星期四" || events[0].Time != "20:30" {
		t.Fatalf("events[0]=%+v", events[0])
	}
	// 缺卡记录保留，时间为空
	if events[1].Date != "2025年10月10日 星期五" || events[1].Time != "" {
		t.Fatalf("events[1]=%+v", events[1])
	}
	if events[2].Type != "下班" {
		t.Fatalf("events[2]=%+v", events[2])
	}
}

func TestExtractClockEventsRawExport(t *testing.T) {
	rows := [][]string{
		{"打卡详情"},
		{""},
		{"日期", "打卡类型", "应打卡时间", "实际打卡时间"},
		{""},
		{"2025年10月9日 星期四", "下班打卡", "18:30", "20:30"},
		{"2025年10月10日 星期五", "下班打卡", "18:30", "19:45"},
	}

	events, _, err := excel.ExtractClockEvents(rows)
	if err != nil {
		t.Fatalf("ExtractClockEvents failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len(events)=%d, want 2", len(events))
	}
	// 必须取实际打卡时间列，而不是应打卡时间
	if events[0].Time != "20:30" || events[1].Time != "19:45" {
		t.Fatalf("events=%+v, 取错了时间列", events)
	}
}

func TestExtractClockEventsTimeColumnFallback(t *testing.T) {
	// 没有"实际打卡时间"时，兜底取含"打卡时间"但不含"应打卡时间"的列
	rows := [][]string{
		{"日期", "打卡类型", "应打卡时间", "下班打卡时间"},
		{"2025年10月9日", "下班打卡", "18:30", "20:00"},
	}

	events, _, err := excel.ExtractClockEvents(rows)
	if err != nil {
		t.Fatalf("ExtractClockEvents failed: %v", err)
	}
	if events[0].Time != "20:00" {
		t.Fatalf("Time=%q, want 20:00", events[0].Time)
	}
}

func TestExtractClockEventsDateColumnFallback(t *testing.T) {
	// 日期列允许列名为"时间"
	rows := [][]string{
		{"时间", "类型", "实际打卡时间"},
		{"2025-10-09", "下班打卡", "20:00"},
	}

	events, _, err := excel.ExtractClockEvents(rows)
	if err != nil {
		t.Fatalf("ExtractClockEvents failed: %v", err)
	}
	if events[0].Date != "2025-10-09" {
		t.Fatalf("Date=%q", events[0].Date)
	}
}

func TestExtractClockEventsMissingColumns(t *testing.T) {
	rows := [][]string{
		{"姓名", "部门", "出勤"},
		{"张三", "研发部", "正常"},
	}

	_, _, err := excel.ExtractClockEvents(rows)
	if err == nil {
		t.Fatalf("expected error for missing columns")
	}
	if !errors.Is(err, excel.ErrMissingColumns) {
		t.Fatalf("err=%v, want ErrMissingColumns", err)
	}
}

func TestExtractClockEventsEmptyDateDropped(t *testing.T) {
	rows := [][]string{
		{"日期", "打卡类型", "实际打卡时间"},
		{"", "下班打卡", "20:30"},
		{"2025年10月9日", "下班打卡", "20:30"},
	}

	events, stats, err := excel.ExtractClockEvents(rows)
	if err != nil {
		t.Fatalf("ExtractClockEvents failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("len(events)=%d, want 1", len(events))
	}
	if stats.Skipped != 1 {
		t.Fatalf("Skipped=%d, want 1", stats.Skipped)
	}
}

func TestExtractClockEventsShortInput(t *testing.T) {
	for _, rows := range [][][]string{
		nil,
		{},
		{{"日期", "打卡类型", "实际打卡时间"}},
	} {
		events, _, err := excel.ExtractClockEvents(rows)
		if err != nil {
			t.Fatalf("short input should not error: %v", err)
		}
		if len(events) != 0 {
			t.Fatalf("len(events)=%d, want 0", len(events))
		}
	}
}
