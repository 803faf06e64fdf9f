package scoring

// 数量评分：量差% = (实收 - 订购) / 订购 * 100，多交不罚、少交扣分（与价格方向相反）。

// fixedQuantityTable 固定8档数量分档表
type fixedQuantityTable struct{}

func (fixedQuantityTable) Score(variance float64) (float64, string) {
	switch {
	case variance >= 20:
		return 100, "large overdelivery"
	case variance >= 10:
		return 95, "overdelivery"
	case variance >= 5:
		return 90, "slight overdelivery"
	case variance >= 0:
		return 80, "on quantity"
	case variance >= -5:
		return 60, "slight shortfall"
	case variance >= -10:
		return 40, "shortfall"
	case variance >= -20:
		return 20, "major shortfall"
	default:
		return 10, "severe shortfall"
	}
}

// parametricQuantity 可配置数量公式
type parametricQuantity struct {
	p QuantityParams
}

func (pq parametricQuantity) Score(variance float64) (float64, string) {
	p := pq.p
	var score float64
	switch {
	case variance == 0:
		score = p.PerfectDeliveryScore
	case variance < 0:
		score = p.PerfectDeliveryScore - (-variance)*p.ShortfallPenaltyRate
	default:
		score = p.PerfectDeliveryScore - variance*p.OverdeliveryPenaltyRate
	}
	if score < p.MinimumScore {
		score = p.MinimumScore
	}
	return score, scoreBand(score)
}

// FixedQuantityPolicy 固定分档表策略
func FixedQuantityPolicy() Policy {
	return fixedQuantityTable{}
}

// ParametricQuantityPolicy 参数公式策略
func ParametricQuantityPolicy(p QuantityParams) Policy {
	return parametricQuantity{p: p}
}

// QuantityVariance 计算量差与量差百分比
func QuantityVariance(ordered, received float64) (amount, percent float64, err error) {
	if ordered <= 0 {
		return 0, 0, &ValidationError{Field: "ordered_qty", Reason: "must be greater than zero"}
	}
	if received < 0 {
		return 0, 0, &ValidationError{Field: "received_qty", Reason: "must not be negative"}
	}
	amount = received - ordered
	percent = amount / ordered * 100
	return amount, percent, nil
}

// ScoreQuantity 固定分档表数量评分
func ScoreQuantity(ordered, received float64) (Result, error) {
	return scoreQuantity(ordered, received, FixedQuantityPolicy())
}

// ScoreQuantityWithConfig 按配置参数的数量评分
func ScoreQuantityWithConfig(ordered, received float64, p QuantityParams) (Result, error) {
	return scoreQuantity(ordered, received, ParametricQuantityPolicy(p))
}

func scoreQuantity(ordered, received float64, policy Policy) (Result, error) {
	_, percent, err := QuantityVariance(ordered, received)
	if err != nil {
		return Result{}, err
	}
	score, band := policy.Score(percent)
	return Result{Score: score, Variance: percent, Band: band}, nil
}
