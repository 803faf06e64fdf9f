package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Repositories SRM仓库集合
type Repositories struct {
	Supplier      *SupplierRepository
	Evaluation    *EvaluationRepository
	ScoringConfig *ScoringConfigRepository
	Kpi           *KpiRepository
}

// NewRepositories 创建SRM仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Supplier:      NewSupplierRepository(db),
		Evaluation:    NewEvaluationRepository(db),
		ScoringConfig: NewScoringConfigRepository(db),
		Kpi:           NewKpiRepository(db),
	}
}
