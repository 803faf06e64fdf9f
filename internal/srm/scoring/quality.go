package scoring

// 质量评分：固定路径 = 质量通知单子分与检验结论子分的算术平均；
// 参数路径 = 基础分线性扣减模型，不取均值。两套策略并存，不合并。

const (
	inspectionOK    = "OK"
	inspectionNotOK = "NOT_OK"
)

// QualityPolicy 质量评分策略
type QualityPolicy interface {
	Score(notifications int, inspection string) (score float64, band string)
}

// NotificationScore 质量通知单子分（固定分档）
func NotificationScore(notifications int) float64 {
	switch {
	case notifications == 0:
		return 100
	case notifications <= 5:
		return 80
	case notifications <= 10:
		return 60
	case notifications <= 20:
		return 40
	case notifications <= 50:
		return 20
	default:
		return 5
	}
}

// InspectionScore 检验结论子分
func InspectionScore(inspection string) float64 {
	if inspection == inspectionOK {
		return 100
	}
	return 1
}

// fixedQualityTable 固定两项均值模型
type fixedQualityTable struct{}

func (fixedQualityTable) Score(notifications int, inspection string) (float64, string) {
	score := (NotificationScore(notifications) + InspectionScore(inspection)) / 2
	return score, notificationBand(notifications)
}

// parametricQuality 可配置线性模型
type parametricQuality struct {
	p QualityParams
}

func (pq parametricQuality) Score(notifications int, inspection string) (float64, string) {
	p := pq.p
	score := p.BaseScore - float64(notifications)*p.NotificationPenalty
	if inspection == inspectionOK {
		score += p.InspectionOKBonus
	} else {
		score -= p.InspectionNotOKPenalty
	}
	if score < p.MinimumScore {
		score = p.MinimumScore
	}
	return score, scoreBand(score)
}

// FixedQualityPolicy 固定均值模型策略
func FixedQualityPolicy() QualityPolicy {
	return fixedQualityTable{}
}

// ParametricQualityPolicy 参数线性模型策略
func ParametricQualityPolicy(p QualityParams) QualityPolicy {
	return parametricQuality{p: p}
}

func notificationBand(notifications int) string {
	switch {
	case notifications == 0:
		return "no notifications"
	case notifications <= 5:
		return "few notifications"
	case notifications <= 10:
		return "some notifications"
	case notifications <= 20:
		return "many notifications"
	case notifications <= 50:
		return "excessive notifications"
	default:
		return "critical notifications"
	}
}

func validateQualityInput(notifications int, inspection string) error {
	if notifications < 0 {
		return &ValidationError{Field: "notifications", Reason: "must not be negative"}
	}
	if inspection != inspectionOK && inspection != inspectionNotOK {
		return &ValidationError{Field: "inspection", Reason: "must be OK or NOT_OK"}
	}
	return nil
}

// ScoreQuality 固定均值模型质量评分
func ScoreQuality(notifications int, inspection string) (Result, error) {
	if err := validateQualityInput(notifications, inspection); err != nil {
		return Result{}, err
	}
	score, band := FixedQualityPolicy().Score(notifications, inspection)
	return Result{Score: score, Variance: float64(notifications), Band: band}, nil
}

// ScoreQualityWithConfig 按配置参数的质量评分
func ScoreQualityWithConfig(notifications int, inspection string, p QualityParams) (Result, error) {
	if err := validateQualityInput(notifications, inspection); err != nil {
		return Result{}, err
	}
	score, band := ParametricQualityPolicy(p).Score(notifications, inspection)
	return Result{Score: score, Variance: float64(notifications), Band: band}, nil
}
