package repository

import (
	"context"
	"errors"

	"github.com/drnayak/Supplier-KPI-Scorecard/internal/srm/entity"
	"gorm.io/gorm"
)

// ScoringConfigRepository 评分配置仓库
type ScoringConfigRepository struct {
	db *gorm.DB
}

func NewScoringConfigRepository(db *gorm.DB) *ScoringConfigRepository {
	return &ScoringConfigRepository{db: db}
}

// FindAll 查询配置列表
func (r *ScoringConfigRepository) FindAll(ctx context.Context, category string) ([]entity.ScoringConfig, error) {
	var items []entity.ScoringConfig
	query := r.db.WithContext(ctx).Model(&entity.ScoringConfig{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Order("category, created_at DESC").Find(&items).Error
	return items, err
}

// FindByID 根据ID查找配置
func (r *ScoringConfigRepository) FindByID(ctx context.Context, id string) (*entity.ScoringConfig, error) {
	var cfg entity.ScoringConfig
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cfg, nil
}

// FindActive 查找类别当前激活的配置，无则返回ErrNotFound（调用方回退固定分档表）
func (r *ScoringConfigRepository) FindActive(ctx context.Context, category string) (*entity.ScoringConfig, error) {
	var cfg entity.ScoringConfig
	err := r.db.WithContext(ctx).
		Where("category = ? AND is_active = ?", category, true).
		First(&cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cfg, nil
}

// Create 创建配置
func (r *ScoringConfigRepository) Create(ctx context.Context, cfg *entity.ScoringConfig) error {
	return r.db.WithContext(ctx).Create(cfg).Error
}

// Update 更新配置
func (r *ScoringConfigRepository) Update(ctx context.Context, cfg *entity.ScoringConfig) error {
	return r.db.WithContext(ctx).Save(cfg).Error
}

// Activate 激活配置并取消同类别其他配置（同一事务内保证每类别只有一条激活）
func (r *ScoringConfigRepository) Activate(ctx context.Context, id, category string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.ScoringConfig{}).
			Where("category = ? AND is_active = ?", category, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&entity.ScoringConfig{}).
			Where("id = ?", id).
			Update("is_active", true).Error
	})
}
