package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// holidays2025 2025年中国法定节假日
var holidays2025 = []string{
	// 元旦
	"2025-01-01",
	// 春节
	"2025-01-28", "2025-01-29", "2025-01-30", "2025-01-31",
	"2025-02-01", "2025-02-02", "2025-02-03",
	// 清明节
	"2025-04-04", "2025-04-05", "2025-04-06",
	// 劳动节
	"2025-05-01", "2025-05-02", "2025-05-03", "2025-05-04", "2025-05-05",
	// 端午节
	"2025-05-31", "2025-06-01", "2025-06-02",
	// 国庆节
	"2025-10-01", "2025-10-02", "2025-10-03", "2025-10-04", "2025-10-05",
	// 中秋节
	"2025-10-06", "2025-10-07", "2025-10-08",
}

// holidayTable 按年份索引的节假日表
// 新年份通过 Register 注入（config.toml 的 [calendar.holidays] 段），无需改代码
var holidayTable = map[int]map[string]struct{}{
	2025: toSet(holidays2025),
}

func toSet(dates []string) map[string]struct{} {
	set := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return set
}

// Register 注册某一年的节假日列表，重复注册时合并
func Register(year int, dates []string) {
	set, ok := holidayTable[year]
	if !ok {
		set = make(map[string]struct{}, len(dates))
		holidayTable[year] = set
	}
	for _, d := range dates {
		if d = strings.TrimSpace(d); d != "" {
			set[d] = struct{}{}
		}
	}
}

// IsHoliday 判断日期是否为节假日或用户排除日期
func IsHoliday(date time.Time, extraExcluded []string) bool {
	dateStr := FormatDate(date)
	if set, ok := holidayTable[date.Year()]; ok {
		if _, hit := set[dateStr]; hit {
			return true
		}
	}
	for _, d := range extraExcluded {
		if d == dateStr {
			return true
		}
	}
	return false
}

// FormatDate 格式化日期为 YYYY-MM-DD，全系统唯一的日期比较/排序键
func FormatDate(date time.Time) string {
	return date.Format("2006-01-02")
}

// FormatMonthName 格式化月份显示名称，如 "2025年8月"
func FormatMonthName(year, month int) string {
	return fmt.Sprintf("%d年%d月", year, month)
}

var cnDateRe = regexp.MustCompile(`(\d{4})年(\d{1,2})月(\d{1,2})日`)

// 打卡表中常见的其他日期写法
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006-1-2",
	"2006/1/2",
	"2006.01.02",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05",
}

// ParseDate 解析日期文本
// 支持 "2025年9月30日 星期二" 这类带星期后缀的写法，以及常见标准格式；
// 解析失败返回 false，调用方按"跳过该记录"处理，不是错误
func ParseDate(dateStr string) (time.Time, bool) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, false
	}

	if m := cnDateRe.FindStringSubmatch(dateStr); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return time.Time{}, false
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), true
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, dateStr, time.Local); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
