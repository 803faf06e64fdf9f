package entity

import "time"

// 评估类别
const (
	CategoryPrice      = "price"
	CategoryQuantity   = "quantity"
	CategoryDelivery   = "delivery"
	CategoryQuality    = "quality"
	CategoryDefectRate = "defect_rate"
)

// KpiCategories 参与综合KPI的四个类别（PPM不参与）
var KpiCategories = []string{CategoryPrice, CategoryQuantity, CategoryDelivery, CategoryQuality}

// 检验结论
const (
	InspectionOK    = "OK"
	InspectionNotOK = "NOT_OK"
)

// PerformanceEvaluation 绩效评估记录（一次性写入，不可变更）
type PerformanceEvaluation struct {
	ID         string `json:"id" gorm:"primaryKey;size:32"`
	SupplierID string `json:"supplier_id" gorm:"size:32;not null;index"`
	Category   string `json:"category" gorm:"size:20;not null;index"`

	// 原始输入（按类别填写对应字段）
	POPrice        *float64   `json:"po_price,omitempty" gorm:"type:decimal(12,4)"`
	InvoicePrice   *float64   `json:"invoice_price,omitempty" gorm:"type:decimal(12,4)"`
	OrderedQty     *float64   `json:"ordered_qty,omitempty" gorm:"type:decimal(12,2)"`
	ReceivedQty    *float64   `json:"received_qty,omitempty" gorm:"type:decimal(12,2)"`
	ScheduledDate  *time.Time `json:"scheduled_date,omitempty"`
	ActualDate     *time.Time `json:"actual_date,omitempty"`
	Notifications  *int       `json:"notifications,omitempty"`
	Inspection     string     `json:"inspection,omitempty" gorm:"size:10"` // OK/NOT_OK
	RejectedQty    *float64   `json:"rejected_qty,omitempty" gorm:"type:decimal(12,2)"`
	TotalReceived  *float64   `json:"total_received,omitempty" gorm:"type:decimal(12,2)"`

	// 派生值
	VarianceAmount  *float64 `json:"variance_amount,omitempty" gorm:"type:decimal(12,4)"`
	VariancePercent *float64 `json:"variance_percent,omitempty" gorm:"type:decimal(8,2)"`
	OverdueDays     *int     `json:"overdue_days,omitempty"`
	PPM             *int64   `json:"ppm,omitempty"`

	// 评分结果（defect_rate无分数，只有分级）
	Score     *float64 `json:"score,omitempty" gorm:"type:decimal(5,2)"`
	Band      string   `json:"band" gorm:"size:50"`
	BandLabel string   `json:"band_label" gorm:"size:100"`

	// 附件（检验报告、质量通知单等）
	Attachments StringArray `json:"attachments,omitempty" gorm:"type:jsonb"`

	Remarks   string    `json:"remarks" gorm:"type:text"`
	CreatedBy string    `json:"created_by" gorm:"size:32"`
	CreatedAt time.Time `json:"created_at"`

	// 关联
	Supplier *Supplier `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
}

func (PerformanceEvaluation) TableName() string {
	return "srm_performance_evaluations"
}

// IsKpiCategory 是否参与综合KPI
func IsKpiCategory(category string) bool {
	for _, c := range KpiCategories {
		if c == category {
			return true
		}
	}
	return false
}
