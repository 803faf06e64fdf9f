// Package scoring 供应商绩效评分核心：五个类别的纯评分函数与KPI聚合。
// 每个类别都有固定分档表和可配置参数公式两套策略，互不合并。
package scoring

import "fmt"

// Result 评分结果
type Result struct {
	Score    float64 `json:"score"`
	Variance float64 `json:"variance"` // 价差%/量差%/逾期天数
	Band     string  `json:"band"`
}

// PPMResult 不良率分级结果（不参与综合KPI，无分数）
type PPMResult struct {
	PPM    int64  `json:"ppm"`
	Rating string `json:"rating"`
	Label  string `json:"label"`
}

// ValidationError 输入校验错误
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Policy 差异值到分数/档位的映射策略（固定表或参数公式）
type Policy interface {
	Score(variance float64) (score float64, band string)
}

// scoreBand 参数公式结果的档位
func scoreBand(score float64) string {
	switch {
	case score >= 90:
		return "excellent"
	case score >= 75:
		return "good"
	case score >= 60:
		return "acceptable"
	default:
		return "poor"
	}
}
