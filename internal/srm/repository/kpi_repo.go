package repository

import (
	"context"
	"errors"

	"github.com/drnayak/Supplier-KPI-Scorecard/internal/srm/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KpiRepository 供应商KPI快照仓库
type KpiRepository struct {
	db *gorm.DB
}

func NewKpiRepository(db *gorm.DB) *KpiRepository {
	return &KpiRepository{db: db}
}

// FindBySupplier 查询供应商KPI快照
func (r *KpiRepository) FindBySupplier(ctx context.Context, supplierID string) (*entity.SupplierKpi, error) {
	var kpi entity.SupplierKpi
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Where("supplier_id = ?", supplierID).
		First(&kpi).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &kpi, nil
}

// FindAll 按综合KPI降序的排名列表
func (r *KpiRepository) FindAll(ctx context.Context, limit int) ([]entity.SupplierKpi, error) {
	var items []entity.SupplierKpi
	query := r.db.WithContext(ctx).
		Preload("Supplier").
		Order("overall_kpi DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&items).Error
	return items, err
}

// Upsert 整体替换KPI快照
func (r *KpiRepository) Upsert(ctx context.Context, kpi *entity.SupplierKpi) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "supplier_id"}},
			UpdateAll: true,
		}).
		Create(kpi).Error
}
