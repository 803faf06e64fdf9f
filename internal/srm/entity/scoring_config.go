package entity

import "time"

// ScoringConfig 评分配置（每类别同一时间只允许一条激活）
type ScoringConfig struct {
	ID       string `json:"id" gorm:"primaryKey;size:32"`
	Category string `json:"category" gorm:"size:20;not null;index"`
	Name     string `json:"name" gorm:"size:100;not null"`
	Version  int    `json:"version" gorm:"default:1"`
	IsActive bool   `json:"is_active" gorm:"default:false;index"`

	// 类别相关参数（阈值、罚率、标签），由scoring包的参数结构体序列化
	Params JSONB `json:"params" gorm:"type:jsonb;not null"`

	Remarks   string    `json:"remarks" gorm:"type:text"`
	CreatedBy string    `json:"created_by" gorm:"size:32"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ScoringConfig) TableName() string {
	return "srm_scoring_configs"
}

// ValidCategory 校验评估类别
func ValidCategory(category string) bool {
	switch category {
	case CategoryPrice, CategoryQuantity, CategoryDelivery, CategoryQuality, CategoryDefectRate:
		return true
	}
	return false
}
