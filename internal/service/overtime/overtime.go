package overtime

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/0jiuxian0/clock-in-out-statistics/internal/calendar"
	"github.com/0jiuxian0/clock-in-out-statistics/internal/model"
)

// overtimeStart 加班起算时间，19:00
const overtimeStart = 19.0

// ParseClockTime 解析 "HH:MM" 或 "HH:MM:SS" 为小时数（24小时制，秒忽略）
func ParseClockTime(timeStr string) (float64, bool) {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return 0, false
	}

	parts := strings.Split(timeStr, ":")
	if len(parts) < 2 {
		return 0, false
	}

	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}

	return float64(hours) + float64(minutes)/60, true
}

// OvertimeHours 由下班打卡时间计算当日加班时长
// 19:00 起算，以半小时为单位向下取整：
// 20:05 -> 1.0，20:30 -> 1.5，20:35 -> 1.5，21:00 -> 2.0
// 时间为空或无法解析时返回 0
func OvertimeHours(clockTime string) float64 {
	t, ok := ParseClockTime(clockTime)
	if !ok {
		return 0
	}
	if t < overtimeStart {
		return 0
	}
	return math.Floor((t-overtimeStart)*2) / 2
}

// MergeStats 归并过程统计
type MergeStats struct {
	Processed int `json:"processed"` // 生成的按天记录数
	Skipped   int `json:"skipped"`   // 跳过的原始记录数（日期解析失败/被剔除/被自定义覆盖）
}

// ProcessClockRecords 将提取出的打卡记录按天归并为加班记录
// 归并规则：
//  1. 先写入用户自定义记录，自定义记录无条件优先；
//  2. 原始记录按行序处理：日期解析失败跳过，被剔除的日期跳过，
//     已有自定义记录的日期跳过；
//  3. 同一天多条原始记录取最晚的下班时间，时间变化时重算加班时长，
//     不会回退到更早或无法解析的时间
func ProcessClockRecords(events []model.ClockEvent, cfg *model.UserConfig) (map[string]*model.DailyOvertimeRecord, MergeStats) {
	dateMap := make(map[string]*model.DailyOvertimeRecord)
	stats := MergeStats{}

	if cfg != nil {
		for _, custom := range cfg.CustomClockRecords {
			dateStr := strings.TrimSpace(custom.Date)
			if dateStr == "" {
				continue
			}
			// 自定义日期也统一为规范形式，避免用户手输 "2025-1-5" 之类写法
			if date, ok := calendar.ParseDate(dateStr); ok {
				dateStr = calendar.FormatDate(date)
			}
			hours := 0.0
			if custom.Time != "" {
				hours = OvertimeHours(custom.Time)
			}
			dateMap[dateStr] = &model.DailyOvertimeRecord{
				Date:           dateStr,
				OriginalDate:   dateStr,
				ClockTime:      custom.Time,
				OvertimeHours:  hours,
				HasClockRecord: true,
				IsCustom:       true,
			}
			stats.Processed++
		}
	}

	for _, ev := range events {
		date, ok := calendar.ParseDate(ev.Date)
		if !ok {
			stats.Skipped++
			continue
		}
		dateStr := calendar.FormatDate(date)

		if cfg.HasExcludedDate(dateStr) {
			stats.Skipped++
			continue
		}

		existing, exists := dateMap[dateStr]
		if exists && existing.IsCustom {
			stats.Skipped++
			continue
		}

		if !exists {
			hours := 0.0
			if ev.Time != "" {
				hours = OvertimeHours(ev.Time)
			}
			dateMap[dateStr] = &model.DailyOvertimeRecord{
				Date:           dateStr,
				OriginalDate:   ev.Date,
				ClockTime:      ev.Time,
				OvertimeHours:  hours,
				HasClockRecord: true,
			}
			stats.Processed++
			continue
		}

		// 同一天重复记录，保留更晚的下班时间
		existingTime, existingOK := ParseClockTime(existing.ClockTime)
		currentTime, currentOK := ParseClockTime(ev.Time)
		if currentOK && existingOK && currentTime > existingTime {
			existing.ClockTime = ev.Time
			existing.OvertimeHours = OvertimeHours(ev.Time)
		} else if currentOK && !existingOK {
			existing.ClockTime = ev.Time
			existing.OvertimeHours = OvertimeHours(ev.Time)
		}
	}

	return dateMap, stats
}

// SortedRecords 按规范日期升序导出归并结果
func SortedRecords(records map[string]*model.DailyOvertimeRecord) []*model.DailyOvertimeRecord {
	out := make([]*model.DailyOvertimeRecord, 0, len(records))
	for _, r := range records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

// TotalOvertime 统计指定年月的总加班时长
// 按数值年月匹配而非字符串前缀，避免单双位月份写法差异
func TotalOvertime(records map[string]*model.DailyOvertimeRecord, year, month int) float64 {
	total := 0.0
	for _, r := range records {
		date, err := time.ParseInLocation("2006-01-02", r.Date, time.Local)
		if err != nil {
			continue
		}
		if date.Year() == year && int(date.Month()) == month {
			total += r.OvertimeHours
		}
	}
	return total
}

// DetectMonths 从打卡记录中识别包含的月份，升序
// 当前月份不在记录中时也会附加，保证界面始终可选本月
func DetectMonths(events []model.ClockEvent) []model.Month {
	return DetectMonthsFrom(events, time.Now())
}

// DetectMonthsFrom 以指定日期为"今天"识别月份列表
func DetectMonthsFrom(events []model.ClockEvent, today time.Time) []model.Month {
	seen := make(map[model.Month]struct{})
	for _, ev := range events {
		if ev.Date == "" {
			continue
		}
		date, ok := calendar.ParseDate(ev.Date)
		if !ok {
			continue
		}
		seen[model.Month{Year: date.Year(), Month: int(date.Month())}] = struct{}{}
	}

	months := make([]model.Month, 0, len(seen)+1)
	for m := range seen {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool {
		if months[i].Year != months[j].Year {
			return months[i].Year < months[j].Year
		}
		return months[i].Month < months[j].Month
	})

	current := model.Month{Year: today.Year(), Month: int(today.Month())}
	if _, ok := seen[current]; !ok {
		months = append(months, current)
	}

	return months
}
