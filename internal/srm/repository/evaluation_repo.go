package repository

import (
	"context"
	"errors"

	"github.com/drnayak/Supplier-KPI-Scorecard/internal/srm/entity"
	"gorm.io/gorm"
)

// EvaluationRepository 绩效评估仓库
type EvaluationRepository struct {
	db *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) *EvaluationRepository {
	return &EvaluationRepository{db: db}
}

// FindAll 查询评估列表
func (r *EvaluationRepository) FindAll(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.PerformanceEvaluation, int64, error) {
	var items []entity.PerformanceEvaluation
	var total int64

	query := r.evaluationQuery(ctx, filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Preload("Supplier").
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

// FindAllForExport 导出用：不分页的过滤查询
func (r *EvaluationRepository) FindAllForExport(ctx context.Context, filters map[string]string) ([]entity.PerformanceEvaluation, error) {
	var items []entity.PerformanceEvaluation
	err := r.evaluationQuery(ctx, filters).
		Preload("Supplier").
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *EvaluationRepository) evaluationQuery(ctx context.Context, filters map[string]string) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&entity.PerformanceEvaluation{})

	if supplierID := filters["supplier_id"]; supplierID != "" {
		query = query.Where("supplier_id = ?", supplierID)
	}
	if category := filters["category"]; category != "" {
		query = query.Where("category = ?", category)
	}
	if band := filters["band"]; band != "" {
		query = query.Where("band = ?", band)
	}
	return query
}

// FindByID 根据ID查找评估
func (r *EvaluationRepository) FindByID(ctx context.Context, id string) (*entity.PerformanceEvaluation, error) {
	var eval entity.PerformanceEvaluation
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Where("id = ?", id).
		First(&eval).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &eval, nil
}

// Create 创建评估（评估记录一次性写入，之后只追加附件）
func (r *EvaluationRepository) Create(ctx context.Context, eval *entity.PerformanceEvaluation) error {
	return r.db.WithContext(ctx).Create(eval).Error
}

// FindBySupplier 查询某供应商的全部评估（KPI重算用，不分页）
func (r *EvaluationRepository) FindBySupplier(ctx context.Context, supplierID string) ([]entity.PerformanceEvaluation, error) {
	var items []entity.PerformanceEvaluation
	err := r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// UpdateAttachments 追加附件URL（唯一允许的事后修改）
func (r *EvaluationRepository) UpdateAttachments(ctx context.Context, id string, attachments entity.StringArray) error {
	return r.db.WithContext(ctx).
		Model(&entity.PerformanceEvaluation{}).
		Where("id = ?", id).
		Update("attachments", attachments).Error
}
