package scoring

import (
	"time"

	"github.com/drnayak/Supplier-KPI-Scorecard/internal/srm/entity"
)

// ComputeKpi 全量重算供应商KPI快照。
// 四个计分类别各取算术平均（无评估记零，且仍计入综合均值），
// 综合KPI为四个类别均值的平均，不良率评估不参与。
func ComputeKpi(supplierID string, evals []entity.PerformanceEvaluation) *entity.SupplierKpi {
	sums := map[string]float64{}
	counts := map[string]int{}
	total := 0

	for _, e := range evals {
		if e.SupplierID != supplierID || e.Score == nil {
			continue
		}
		if !entity.IsKpiCategory(e.Category) {
			continue
		}
		sums[e.Category] += *e.Score
		counts[e.Category]++
		total++
	}

	mean := func(category string) float64 {
		if counts[category] == 0 {
			return 0
		}
		return sums[category] / float64(counts[category])
	}

	kpi := &entity.SupplierKpi{
		SupplierID:      supplierID,
		PriceScore:      mean(entity.CategoryPrice),
		QuantityScore:   mean(entity.CategoryQuantity),
		DeliveryScore:   mean(entity.CategoryDelivery),
		QualityScore:    mean(entity.CategoryQuality),
		EvaluationCount: total,
		UpdatedAt:       time.Now(),
	}
	kpi.OverallKpi = (kpi.PriceScore + kpi.QuantityScore + kpi.DeliveryScore + kpi.QualityScore) / 4

	return kpi
}
