package entity

import "time"

// SupplierKpi 供应商KPI快照（每次新增评估后全量重算）
type SupplierKpi struct {
	SupplierID string `json:"supplier_id" gorm:"primaryKey;size:32"`

	PriceScore    float64 `json:"price_score" gorm:"type:decimal(5,2);default:0"`
	QuantityScore float64 `json:"quantity_score" gorm:"type:decimal(5,2);default:0"`
	DeliveryScore float64 `json:"delivery_score" gorm:"type:decimal(5,2);default:0"`
	QualityScore  float64 `json:"quality_score" gorm:"type:decimal(5,2);default:0"`
	OverallKpi    float64 `json:"overall_kpi" gorm:"type:decimal(5,2);default:0"`

	EvaluationCount int       `json:"evaluation_count" gorm:"default:0"`
	UpdatedAt       time.Time `json:"updated_at"`

	// 关联
	Supplier *Supplier `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
}

func (SupplierKpi) TableName() string {
	return "srm_supplier_kpis"
}

// CalcGrade KPI等级
func CalcGrade(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 75:
		return "B"
	case score >= 60:
		return "C"
	default:
		return "D"
	}
}
