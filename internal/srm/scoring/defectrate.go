package scoring

import (
	"fmt"
	"math"
)

// 不良率（PPM）分级：ppm = round(不良数 / 实收总数 * 1,000,000)。
// 只做分级展示，不产生分数，也不参与综合KPI。

// DefectRateClassifier PPM分级策略
type DefectRateClassifier interface {
	Classify(ppm int64) (rating, label string)
}

// fixedDefectRateTable 固定分级（0 / <1000 / <10000 / 其余）
type fixedDefectRateTable struct{}

func (fixedDefectRateTable) Classify(ppm int64) (string, string) {
	switch {
	case ppm == 0:
		return "Zero Defects", "Excellent (0 PPM)"
	case ppm < 1000:
		return "Excellent", "Good (<1K PPM)"
	case ppm < 10000:
		return "Good", "Average (1K-10K PPM)"
	default:
		return "Needs Improvement", "Poor (>10K PPM)"
	}
}

// parametricDefectRate 可配置分级（替换阈值与四个档位名）
type parametricDefectRate struct {
	p DefectRateParams
}

func (pd parametricDefectRate) Classify(ppm int64) (string, string) {
	p := pd.p
	switch {
	case ppm == 0:
		return p.ZeroLabel, "Excellent (0 PPM)"
	case ppm < p.ExcellentPPM:
		return p.ExcellentLabel, fmt.Sprintf("Good (<%s PPM)", humanizePPM(p.ExcellentPPM))
	case ppm < p.GoodPPM:
		return p.GoodLabel, fmt.Sprintf("Average (%s-%s PPM)", humanizePPM(p.ExcellentPPM), humanizePPM(p.GoodPPM))
	default:
		return p.PoorLabel, fmt.Sprintf("Poor (>%s PPM)", humanizePPM(p.GoodPPM))
	}
}

// FixedDefectRatePolicy 固定分级策略
func FixedDefectRatePolicy() DefectRateClassifier {
	return fixedDefectRateTable{}
}

// ParametricDefectRatePolicy 参数分级策略
func ParametricDefectRatePolicy(p DefectRateParams) DefectRateClassifier {
	return parametricDefectRate{p: p}
}

// PPMValue 计算PPM值
func PPMValue(rejected, totalReceived float64) (int64, error) {
	if totalReceived < 1 {
		return 0, &ValidationError{Field: "total_received", Reason: "must be at least one"}
	}
	if rejected < 0 {
		return 0, &ValidationError{Field: "rejected_qty", Reason: "must not be negative"}
	}
	return int64(math.Round(rejected / totalReceived * 1000000)), nil
}

// ClassifyDefectRate 固定分级
func ClassifyDefectRate(rejected, totalReceived float64) (PPMResult, error) {
	return classifyDefectRate(rejected, totalReceived, FixedDefectRatePolicy())
}

// ClassifyDefectRateWithConfig 按配置参数分级
func ClassifyDefectRateWithConfig(rejected, totalReceived float64, p DefectRateParams) (PPMResult, error) {
	return classifyDefectRate(rejected, totalReceived, ParametricDefectRatePolicy(p))
}

func classifyDefectRate(rejected, totalReceived float64, classifier DefectRateClassifier) (PPMResult, error) {
	ppm, err := PPMValue(rejected, totalReceived)
	if err != nil {
		return PPMResult{}, err
	}
	rating, label := classifier.Classify(ppm)
	return PPMResult{PPM: ppm, Rating: rating, Label: label}, nil
}

func humanizePPM(v int64) string {
	if v >= 1000 && v%1000 == 0 {
		return fmt.Sprintf("%dK", v/1000)
	}
	return fmt.Sprintf("%d", v)
}
