package model

import (
	"encoding/json"
	"math"
)

// SubsidyResult 补贴计算结果，仅由总加班时长决定
type SubsidyResult struct {
	Eligible      bool    `json:"eligible"`      // 是否达到补贴门槛
	TotalHours    float64 `json:"totalHours"`    // 总加班时长
	SubsidyAmount float64 `json:"subsidyAmount"` // 补贴金额（元），最高档封顶
	Rate          float64 `json:"rate"`          // 补贴标准（元/小时）
	Message       string  `json:"message"`
}

// SubsidyTier 补贴档位，用于前端展示
type SubsidyTier struct {
	Min   float64 `json:"min"`   // 含
	Max   float64 `json:"max"`   // 不含，最高档为 +Inf
	Rate  float64 `json:"rate"`  // 元/小时
	Label string  `json:"label"`
}

// MarshalJSON 最高档上界为 +Inf，JSON 里输出 null
func (t SubsidyTier) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{
		"min":   t.Min,
		"rate":  t.Rate,
		"label": t.Label,
	}
	if math.IsInf(t.Max, 1) {
		out["max"] = nil
	} else {
		out["max"] = t.Max
	}
	return json.Marshal(out)
}
