package entity

import "time"

// Supplier 供应商
type Supplier struct {
	ID        string `json:"id" gorm:"primaryKey;size:32"`
	Code      string `json:"code" gorm:"size:32;uniqueIndex;not null"`
	Name      string `json:"name" gorm:"size:200;not null"`
	ShortName string `json:"short_name" gorm:"size:50"`
	Category  string `json:"category" gorm:"size:50;not null"` // structural/electronic/optical/packaging/other
	Status    string `json:"status" gorm:"size:20;default:active"`

	// 基本信息
	Country      string `json:"country" gorm:"size:50"`
	City         string `json:"city" gorm:"size:50"`
	Address      string `json:"address" gorm:"size:500"`
	ContactName  string `json:"contact_name" gorm:"size:100"`
	ContactPhone string `json:"contact_phone" gorm:"size:50"`
	ContactEmail string `json:"contact_email" gorm:"size:200"`

	// 绩效快照（KPI重算后同步）
	PriceScore    *float64 `json:"price_score" gorm:"type:decimal(5,2)"`
	QuantityScore *float64 `json:"quantity_score" gorm:"type:decimal(5,2)"`
	DeliveryScore *float64 `json:"delivery_score" gorm:"type:decimal(5,2)"`
	QualityScore  *float64 `json:"quality_score" gorm:"type:decimal(5,2)"`
	OverallScore  *float64 `json:"overall_score" gorm:"type:decimal(5,2)"`

	// 管理信息
	CreatedBy string    `json:"created_by" gorm:"size:32"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Notes     string    `json:"notes" gorm:"type:text"`
}

func (Supplier) TableName() string {
	return "srm_suppliers"
}

// 供应商分类
const (
	SupplierCategoryStructural = "structural"
	SupplierCategoryElectronic = "electronic"
	SupplierCategoryOptical    = "optical"
	SupplierCategoryPackaging  = "packaging"
	SupplierCategoryOther      = "other"
)

// 供应商状态
const (
	SupplierStatusActive      = "active"
	SupplierStatusSuspended   = "suspended"
	SupplierStatusBlacklisted = "blacklisted"
)
