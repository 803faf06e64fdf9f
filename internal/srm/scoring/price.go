package scoring

// 价格评分：价差% = (发票价 - 订单价) / 订单价 * 100，价差越低（省钱）得分越高。

// fixedPriceTable 固定8档价格分档表
type fixedPriceTable struct{}

func (fixedPriceTable) Score(variance float64) (float64, string) {
	switch {
	case variance >= 20:
		return 5, "severe overrun"
	case variance >= 10:
		return 10, "major overrun"
	case variance >= 5:
		return 20, "moderate overrun"
	case variance >= 0:
		return 40, "minor overrun"
	case variance >= -5:
		return 60, "slight saving"
	case variance >= -10:
		return 80, "good saving"
	case variance >= -20:
		return 90, "strong saving"
	default:
		return 95, "exceptional saving"
	}
}

// parametricPrice 可配置价格公式
type parametricPrice struct {
	p PriceParams
}

func (pp parametricPrice) Score(variance float64) (float64, string) {
	p := pp.p
	switch {
	case variance <= p.ExcellentThreshold:
		return 100, "excellent"
	case variance <= p.GoodThreshold:
		return 80, "good"
	case variance <= p.AcceptableThreshold:
		return 70, "acceptable"
	}
	score := 70 - (variance-p.AcceptableThreshold)*p.PenaltyRate
	if score < p.MinimumScore {
		score = p.MinimumScore
	}
	return score, scoreBand(score)
}

// FixedPricePolicy 固定分档表策略（无配置时的默认路径）
func FixedPricePolicy() Policy {
	return fixedPriceTable{}
}

// ParametricPricePolicy 参数公式策略
func ParametricPricePolicy(p PriceParams) Policy {
	return parametricPrice{p: p}
}

// PriceVariance 计算价差金额与价差百分比
func PriceVariance(poPrice, invoicePrice float64) (amount, percent float64, err error) {
	if poPrice <= 0 {
		return 0, 0, &ValidationError{Field: "po_price", Reason: "must be greater than zero"}
	}
	if invoicePrice <= 0 {
		return 0, 0, &ValidationError{Field: "invoice_price", Reason: "must be greater than zero"}
	}
	amount = invoicePrice - poPrice
	percent = amount / poPrice * 100
	return amount, percent, nil
}

// ScorePrice 固定分档表价格评分
func ScorePrice(poPrice, invoicePrice float64) (Result, error) {
	return scorePrice(poPrice, invoicePrice, FixedPricePolicy())
}

// ScorePriceWithConfig 按配置参数的价格评分
func ScorePriceWithConfig(poPrice, invoicePrice float64, p PriceParams) (Result, error) {
	return scorePrice(poPrice, invoicePrice, ParametricPricePolicy(p))
}

func scorePrice(poPrice, invoicePrice float64, policy Policy) (Result, error) {
	_, percent, err := PriceVariance(poPrice, invoicePrice)
	if err != nil {
		return Result{}, err
	}
	score, band := policy.Score(percent)
	return Result{Score: score, Variance: percent, Band: band}, nil
}
