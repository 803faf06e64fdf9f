package scoring

import (
	"math"
	"time"
)

// 交期评分：逾期天数 = 实际日期 - 计划日期（按天取整，负数为提前）。
// 固定分档表以准时为唯一峰值，迟交的惩罚斜率大于早交。

// fixedDeliveryTable 固定交期分档表
type fixedDeliveryTable struct{}

func (fixedDeliveryTable) Score(variance float64) (float64, string) {
	days := variance
	switch {
	case days <= -60:
		return 5, "extremely early"
	case days <= -30:
		return 20, "very early"
	case days <= -10:
		return 40, "early"
	case days < 0:
		return 65, "slightly early"
	case days == 0:
		return 100, "on time"
	case days <= 10:
		return 80, "slightly late"
	case days <= 20:
		return 60, "late"
	case days <= 30:
		return 40, "very late"
	case days <= 40:
		return 20, "severely late"
	default:
		return 5, "critically late"
	}
}

// parametricDelivery 可配置交期公式
type parametricDelivery struct {
	p DeliveryParams
}

func (pd parametricDelivery) Score(variance float64) (float64, string) {
	p := pd.p
	if variance <= 0 {
		return p.OnTimeScore, "on time"
	}
	score := p.OnTimeScore - variance*p.PenaltyPerDay
	if score < p.MinimumScore {
		score = p.MinimumScore
	}
	return score, scoreBand(score)
}

// FixedDeliveryPolicy 固定分档表策略
func FixedDeliveryPolicy() Policy {
	return fixedDeliveryTable{}
}

// ParametricDeliveryPolicy 参数公式策略
func ParametricDeliveryPolicy(p DeliveryParams) Policy {
	return parametricDelivery{p: p}
}

// OverdueDays 逾期天数（向下取整，任意两个有效日期都可接受）
func OverdueDays(scheduled, actual time.Time) int {
	return int(math.Floor(actual.Sub(scheduled).Hours() / 24))
}

// ScoreDelivery 固定分档表交期评分
func ScoreDelivery(scheduled, actual time.Time) Result {
	days := OverdueDays(scheduled, actual)
	score, band := FixedDeliveryPolicy().Score(float64(days))
	return Result{Score: score, Variance: float64(days), Band: band}
}

// ScoreDeliveryWithConfig 按配置参数的交期评分
func ScoreDeliveryWithConfig(scheduled, actual time.Time, p DeliveryParams) Result {
	days := OverdueDays(scheduled, actual)
	score, band := ParametricDeliveryPolicy(p).Score(float64(days))
	return Result{Score: score, Variance: float64(days), Band: band}
}
