package model

// ClockEvent 从打卡详情表中提取出的单条下班打卡记录
// Date 为表格原文（未解析），由聚合阶段统一解析为规范日期
type ClockEvent struct {
	Date string `json:"date"` // 原始日期文本，如 "2025年9月30日 星期二"
	Type string `json:"type"` // 打卡类型，如 "下班打卡"
	Time string `json:"time"` // 实际打卡时间，缺卡时为空
}

// DailyOvertimeRecord 按天归并后的加班记录
// 以规范日期 "YYYY-MM-DD" 作为唯一键，同一天最多一条
type DailyOvertimeRecord struct {
	Date           string  `json:"date"`           // 规范日期 YYYY-MM-DD
	OriginalDate   string  `json:"originalDate"`   // 表格中的原始日期文本
	ClockTime      string  `json:"clockTime"`      // 下班打卡时间，可为空
	OvertimeHours  float64 `json:"overtimeHours"`  // 加班时长，0.5 小时步进
	HasClockRecord bool    `json:"hasClockRecord"` // 是否有打卡记录（时间为空也算有记录）
	IsCustom       bool    `json:"isCustom"`       // 是否为用户自定义记录
}

// Month 年月组合
type Month struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// MonthlyTotal 月度加班汇总
type MonthlyTotal struct {
	Year       int     `json:"year"`
	Month      int     `json:"month"`
	TotalHours float64 `json:"totalHours"`
}

// CustomClockRecord 用户自定义打卡记录，优先于表格提取结果
type CustomClockRecord struct {
	Date string `json:"date"` // 规范日期 YYYY-MM-DD
	Time string `json:"time"` // 下班时间 HH:MM，可为空
}

// UserConfig 用户自定义配置，核心只读
type UserConfig struct {
	ExcludedDates      []string            `json:"excludedDates"`      // 剔除的打卡日期
	CustomWorkdays     []string            `json:"customWorkdays"`     // 强制计为工作日的日期（如调休补班）
	ExcludedWorkdays   []string            `json:"excludedWorkdays"`   // 强制不计为工作日的日期
	CustomClockRecords []CustomClockRecord `json:"customClockRecords"` // 自定义打卡记录
}

// HasExcludedDate 判断日期是否被用户剔除
func (c *UserConfig) HasExcludedDate(dateStr string) bool {
	if c == nil {
		return false
	}
	for _, d := range c.ExcludedDates {
		if d == dateStr {
			return true
		}
	}
	return false
}

// HasCustomWorkday 判断日期是否被强制计为工作日
func (c *UserConfig) HasCustomWorkday(dateStr string) bool {
	if c == nil {
		return false
	}
	for _, d := range c.CustomWorkdays {
		if d == dateStr {
			return true
		}
	}
	return false
}
