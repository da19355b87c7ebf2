package subsidy

import (
	"fmt"
	"math"

	"github.com/0jiuxian0/clock-in-out-statistics/internal/model"
)

const (
	// threshold 补贴门槛，总加班不足 22 小时不予补贴
	threshold = 22.0
	// capAmount 最高档封顶金额（元）
	capAmount = 2500.0
)

// Calculate 按总加班时长计算补贴
// 档位左闭右开，按 时长×标准 计算，不做档内折算；最高档封顶 2500 元
func Calculate(totalHours float64) model.SubsidyResult {
	if totalHours < threshold {
		return model.SubsidyResult{
			Eligible:      false,
			TotalHours:    totalHours,
			SubsidyAmount: 0,
			Rate:          0,
			Message:       "未达到22小时补贴门槛",
		}
	}

	var rate float64
	switch {
	case totalHours < 44:
		rate = 15
	case totalHours < 66:
		rate = 20
	case totalHours < 90:
		rate = 23
	default:
		rate = 25
	}

	amount := totalHours * rate
	if rate == 25 && amount > capAmount {
		amount = capAmount
	}

	return model.SubsidyResult{
		Eligible:      true,
		TotalHours:    totalHours,
		SubsidyAmount: amount,
		Rate:          rate,
		Message:       fmt.Sprintf("当前补贴标准: %.0f元/小时", rate),
	}
}

// Tiers 补贴档位表，仅用于展示
func Tiers() []model.SubsidyTier {
	return []model.SubsidyTier{
		{Min: 0, Max: 22, Rate: 0, Label: "未达到补贴门槛"},
		{Min: 22, Max: 44, Rate: 15, Label: "15元/小时"},
		{Min: 44, Max: 66, Rate: 20, Label: "20元/小时"},
		{Min: 66, Max: 90, Rate: 23, Label: "23元/小时"},
		{Min: 90, Max: math.Inf(1), Rate: 25, Label: "25元/小时（封顶2500元）"},
	}
}
