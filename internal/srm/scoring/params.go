package scoring

import "encoding/json"

// PriceParams 价格评分参数
type PriceParams struct {
	ExcellentThreshold  float64 `json:"excellent_threshold"` // <=0，达到即满分
	GoodThreshold       float64 `json:"good_threshold"`
	AcceptableThreshold float64 `json:"acceptable_threshold"`
	PenaltyRate         float64 `json:"penalty_rate"` // 超出可接受阈值后每个百分点扣分
	MinimumScore        float64 `json:"minimum_score"`
}

// QuantityParams 数量评分参数
type QuantityParams struct {
	PerfectDeliveryScore    float64 `json:"perfect_delivery_score"`
	ShortfallPenaltyRate    float64 `json:"shortfall_penalty_rate"`
	OverdeliveryPenaltyRate float64 `json:"overdelivery_penalty_rate"`
	MinimumScore            float64 `json:"minimum_score"`
}

// DeliveryParams 交期评分参数
type DeliveryParams struct {
	OnTimeScore   float64 `json:"on_time_score"`
	PenaltyPerDay float64 `json:"penalty_per_day"`
	MinimumScore  float64 `json:"minimum_score"`
}

// QualityParams 质量评分参数（线性模型，不取均值）
type QualityParams struct {
	BaseScore              float64 `json:"base_score"`
	NotificationPenalty    float64 `json:"notification_penalty"`
	InspectionOKBonus      float64 `json:"inspection_ok_bonus"`
	InspectionNotOKPenalty float64 `json:"inspection_not_ok_penalty"`
	MinimumScore           float64 `json:"minimum_score"`
}

// DefectRateParams 不良率分级参数
type DefectRateParams struct {
	ExcellentPPM   int64  `json:"excellent_ppm"` // 低于此值为excellent档
	GoodPPM        int64  `json:"good_ppm"`      // 低于此值为good档
	ZeroLabel      string `json:"zero_label"`
	ExcellentLabel string `json:"excellent_label"`
	GoodLabel      string `json:"good_label"`
	PoorLabel      string `json:"poor_label"`
}

// DefaultPriceParams 默认价格参数
func DefaultPriceParams() PriceParams {
	return PriceParams{
		ExcellentThreshold:  -5,
		GoodThreshold:       0,
		AcceptableThreshold: 2,
		PenaltyRate:         5,
		MinimumScore:        10,
	}
}

// DefaultQuantityParams 默认数量参数
func DefaultQuantityParams() QuantityParams {
	return QuantityParams{
		PerfectDeliveryScore:    100,
		ShortfallPenaltyRate:    2,
		OverdeliveryPenaltyRate: 1,
		MinimumScore:            10,
	}
}

// DefaultDeliveryParams 默认交期参数
func DefaultDeliveryParams() DeliveryParams {
	return DeliveryParams{
		OnTimeScore:   100,
		PenaltyPerDay: 2,
		MinimumScore:  5,
	}
}

// DefaultQualityParams 默认质量参数
func DefaultQualityParams() QualityParams {
	return QualityParams{
		BaseScore:              100,
		NotificationPenalty:    2,
		InspectionOKBonus:      0,
		InspectionNotOKPenalty: 50,
		MinimumScore:           1,
	}
}

// DefaultDefectRateParams 默认不良率参数（与固定分级一致）
func DefaultDefectRateParams() DefectRateParams {
	return DefectRateParams{
		ExcellentPPM:   1000,
		GoodPPM:        10000,
		ZeroLabel:      "Zero Defects",
		ExcellentLabel: "Excellent",
		GoodLabel:      "Good",
		PoorLabel:      "Needs Improvement",
	}
}

// DecodeParams 从配置JSONB解出类别对应的参数结构体
func DecodeParams(raw map[string]interface{}, out interface{}) error {
	bytes, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(bytes, out)
}

// DefaultParamsFor 类别对应的默认参数（用于新建配置的初始值）
func DefaultParamsFor(category string) interface{} {
	switch category {
	case "price":
		return DefaultPriceParams()
	case "quantity":
		return DefaultQuantityParams()
	case "delivery":
		return DefaultDeliveryParams()
	case "quality":
		return DefaultQualityParams()
	case "defect_rate":
		return DefaultDefectRateParams()
	}
	return nil
}
