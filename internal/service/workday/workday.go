package workday

import (
	"time"

	"github.com/0jiuxian0/clock-in-out-statistics/internal/calendar"
	"github.com/0jiuxian0/clock-in-out-statistics/internal/model"
)

// WorkdaysInMonth 枚举指定月份的全部工作日（规范日期，升序）
// 自定义工作日（调休补班）强制计入，不再检查周末/节假日/排除规则；
// 其余日期要求非周末、非节假日且不在用户排除的工作日列表中
func WorkdaysInMonth(year, month int, cfg *model.UserConfig) []string {
	var excluded []string
	if cfg != nil {
		excluded = cfg.ExcludedWorkdays
	}

	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.Local)

	workdays := make([]string, 0, lastDay.Day())
	for day := 1; day <= lastDay.Day(); day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
		dateStr := calendar.FormatDate(date)

		if cfg.HasCustomWorkday(dateStr) {
			workdays = append(workdays, dateStr)
			continue
		}

		weekday := date.Weekday()
		if weekday == time.Saturday || weekday == time.Sunday {
			continue
		}
		if calendar.IsHoliday(date, excluded) {
			continue
		}
		workdays = append(workdays, dateStr)
	}

	return workdays
}

// WorkedDays 统计打卡记录中落在指定月份的不同日期数
func WorkedDays(events []model.ClockEvent, year, month int) int {
	workedDates := make(map[string]struct{})

	for _, ev := range events {
		if ev.Date == "" {
			continue
		}
		date, ok := calendar.ParseDate(ev.Date)
		if !ok {
			continue
		}
		if date.Year() == year && int(date.Month()) == month {
			workedDates[calendar.FormatDate(date)] = struct{}{}
		}
	}

	return len(workedDates)
}

// RemainingWorkdays 统计当月剩余工作日数（含今天）
func RemainingWorkdays(year, month int, cfg *model.UserConfig) int {
	return RemainingWorkdaysFrom(year, month, cfg, time.Now())
}

// RemainingWorkdaysFrom 以指定日期为"今天"统计剩余工作日数
func RemainingWorkdaysFrom(year, month int, cfg *model.UserConfig, today time.Time) int {
	todayStr := calendar.FormatDate(today)

	count := 0
	for _, dateStr := range WorkdaysInMonth(year, month, cfg) {
		if dateStr >= todayStr {
			count++
		}
	}
	return count
}

// TotalWorkdaysInMonth 统计当月工作日总数
func TotalWorkdaysInMonth(year, month int, cfg *model.UserConfig) int {
	return len(WorkdaysInMonth(year, month, cfg))
}
