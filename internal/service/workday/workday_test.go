package workday_test

import (
	"testing"
	"time"

	"github.com/0jiuxian0/clock-in-out-statistics/internal/model"
	"github.com/0jiuxian0/clock-in-out-statistics/internal/service/workday"
)

func TestWorkdaysInMonthExcludesHolidaysAndWeekends(t *testing.T) {
	// 2025年10月：1-8日为国庆/中秋假期，周末为 4/5/11/12/18/19/25/26
	days := workday.WorkdaysInMonth(2025, 10, nil)

	if got, want := len(days), 17; got != want {
		t.Fatalf("len(days)=%d, want %d: %v", got, want, days)
	}
	if days[0] != "2025-10-09" {
		t.Fatalf("first workday=%q, want 2025-10-09", days[0])
	}
	if days[len(days)-1] != "2025-10-31" {
		t.Fatalf("last workday=%q, want 2025-10-31", days[len(days)-1])
	}
	for _, d := range days {
		if d >= "2025-10-01" && d <= "2025-10-08" {
			t.Fatalf("holiday %s should be excluded", d)
		}
	}
}

func TestWorkdaysInMonthCustomWorkdayOnSaturday(t *testing.T) {
	cfg := &model.UserConfig{
		CustomWorkdays: []string{"2025-10-11"}, // 周六调休补班
	}
	days := workday.WorkdaysInMonth(2025, 10, cfg)

	found := false
	for _, d := range days {
		if d == "2025-10-11" {
			found = true
		}
	}
	if !found {
		t.Fatalf("custom workday 2025-10-11 should be included: %v", days)
	}
	if got, want := len(days), 18; got != want {
		t.Fatalf("len(days)=%d, want %d", got, want)
	}
}

func TestWorkdaysInMonthCustomWorkdayOverridesHoliday(t *testing.T) {
	cfg := &model.UserConfig{
		CustomWorkdays: []string{"2025-10-08"}, // 强制计入，越过节假日判断
	}
	days := workday.WorkdaysInMonth(2025, 10, cfg)

	if days[0] != "2025-10-08" {
		t.Fatalf("first workday=%q, want 2025-10-08", days[0])
	}
}

func TestWorkdaysInMonthExcludedWorkday(t *testing.T) {
	cfg := &model.UserConfig{
		ExcludedWorkdays: []string{"2025-10-09"},
	}
	days := workday.WorkdaysInMonth(2025, 10, cfg)

	for _, d := range days {
		if d == "2025-10-09" {
			t.Fatalf("excluded workday 2025-10-09 should not appear")
		}
	}
	if got, want := len(days), 16; got != want {
		t.Fatalf("len(days)=%d, want %d", got, want)
	}
}

func TestWorkedDays(t *testing.T) {
	events := []model.ClockEvent{
		{Date: "2025年10月9日 星期四", Type: "下班打卡", Time: "19:30"},
		{Date: "2025年10月9日 星期四", Type: "下班打卡", Time: "20:30"}, // 同一天
		{Date: "2025年10月10日 星期五", Type: "下班打卡", Time: ""},
		{Date: "2025年9月30日 星期二", Type: "下班打卡", Time: "19:00"}, // 其他月份
		{Date: "不是日期", Type: "下班打卡", Time: "19:00"},
	}

	if got, want := workday.WorkedDays(events, 2025, 10), 2; got != want {
		t.Fatalf("WorkedDays=%d, want %d", got, want)
	}
	if got, want := workday.WorkedDays(events, 2025, 9), 1; got != want {
		t.Fatalf("WorkedDays(9月)=%d, want %d", got, want)
	}
}

func TestRemainingWorkdaysFrom(t *testing.T) {
	today := time.Date(2025, 10, 20, 12, 0, 0, 0, time.Local)

	// 10月20日（周一）起：20-24、27-31 共 10 个工作日，含当天
	if got, want := workday.RemainingWorkdaysFrom(2025, 10, nil, today), 10; got != want {
		t.Fatalf("RemainingWorkdaysFrom=%d, want %d", got, want)
	}
}

func TestTotalWorkdaysInMonth(t *testing.T) {
	if got, want := workday.TotalWorkdaysInMonth(2025, 10, nil), 17; got != want {
		t.Fatalf("TotalWorkdaysInMonth=%d, want %d", got, want)
	}
}
