package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/drnayak/Supplier-KPI-Scorecard/internal/srm/entity"
	"github.com/drnayak/Supplier-KPI-Scorecard/internal/srm/repository"
	"github.com/drnayak/Supplier-KPI-Scorecard/internal/srm/scoring"
	"github.com/google/uuid"
)

// ScoringConfigService 评分配置服务
type ScoringConfigService struct {
	repo *repository.ScoringConfigRepository
}

func NewScoringConfigService(repo *repository.ScoringConfigRepository) *ScoringConfigService {
	return &ScoringConfigService{repo: repo}
}

// CreateConfigRequest 创建配置请求
type CreateConfigRequest struct {
	Category string                 `json:"category" binding:"required"`
	Name     string                 `json:"name" binding:"required"`
	Params   map[string]interface{} `json:"params"` // 省略时取类别默认参数
	Remarks  string                 `json:"remarks"`
}

// UpdateConfigRequest 更新配置请求
type UpdateConfigRequest struct {
	Name    *string                `json:"name"`
	Params  map[string]interface{} `json:"params"`
	Remarks *string                `json:"remarks"`
}

// PreviewRequest 配置试算请求：用显式参数对样例输入评分，不落库
type PreviewRequest struct {
	Category string                 `json:"category" binding:"required"`
	Params   map[string]interface{} `json:"params" binding:"required"`

	// 样例输入（按类别填写）
	POPrice       float64  `json:"po_price"`
	InvoicePrice  float64  `json:"invoice_price"`
	OrderedQty    float64  `json:"ordered_qty"`
	ReceivedQty   *float64 `json:"received_qty"`
	ScheduledDate string   `json:"scheduled_date"`
	ActualDate    string   `json:"actual_date"`
	Notifications *int     `json:"notifications"`
	Inspection    string   `json:"inspection"`
	RejectedQty   *float64 `json:"rejected_qty"`
	TotalReceived float64  `json:"total_received"`
}

// List 获取配置列表
func (s *ScoringConfigService) List(ctx context.Context, category string) ([]entity.ScoringConfig, error) {
	return s.repo.FindAll(ctx, category)
}

// Get 获取配置详情
func (s *ScoringConfigService) Get(ctx context.Context, id string) (*entity.ScoringConfig, error) {
	return s.repo.FindByID(ctx, id)
}

// Create 创建配置（默认不激活）
func (s *ScoringConfigService) Create(ctx context.Context, userID string, req *CreateConfigRequest) (*entity.ScoringConfig, error) {
	if !entity.ValidCategory(req.Category) {
		return nil, &scoring.ValidationError{Field: "category", Reason: "unknown category " + req.Category}
	}

	params := req.Params
	if params == nil {
		params = toParamsMap(scoring.DefaultParamsFor(req.Category))
	}
	if err := validateParams(req.Category, params); err != nil {
		return nil, err
	}

	cfg := &entity.ScoringConfig{
		ID:        uuid.New().String()[:32],
		Category:  req.Category,
		Name:      req.Name,
		Version:   1,
		IsActive:  false,
		Params:    params,
		Remarks:   req.Remarks,
		CreatedBy: userID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Update 更新配置（整体替换参数并递增版本；历史评估已存有当时分数，不受影响）
func (s *ScoringConfigService) Update(ctx context.Context, id string, req *UpdateConfigRequest) (*entity.ScoringConfig, error) {
	cfg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		cfg.Name = *req.Name
	}
	if req.Params != nil {
		if err := validateParams(cfg.Category, req.Params); err != nil {
			return nil, err
		}
		cfg.Params = req.Params
		cfg.Version++
	}
	if req.Remarks != nil {
		cfg.Remarks = *req.Remarks
	}
	cfg.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Activate 激活配置（同类别其他配置自动取消激活）
func (s *ScoringConfigService) Activate(ctx context.Context, id string) (*entity.ScoringConfig, error) {
	cfg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Activate(ctx, cfg.ID, cfg.Category); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// Preview 用请求中的参数对样例输入试算（参数公式路径）
func (s *ScoringConfigService) Preview(ctx context.Context, req *PreviewRequest) (interface{}, error) {
	switch req.Category {
	case entity.CategoryPrice:
		var p scoring.PriceParams
		if err := scoring.DecodeParams(req.Params, &p); err != nil {
			return nil, err
		}
		return scoring.ScorePriceWithConfig(req.POPrice, req.InvoicePrice, p)

	case entity.CategoryQuantity:
		var p scoring.QuantityParams
		if err := scoring.DecodeParams(req.Params, &p); err != nil {
			return nil, err
		}
		if req.ReceivedQty == nil {
			return nil, &scoring.ValidationError{Field: "received_qty", Reason: "required"}
		}
		return scoring.ScoreQuantityWithConfig(req.OrderedQty, *req.ReceivedQty, p)

	case entity.CategoryDelivery:
		var p scoring.DeliveryParams
		if err := scoring.DecodeParams(req.Params, &p); err != nil {
			return nil, err
		}
		scheduled, err := parseDate(req.ScheduledDate)
		if err != nil {
			return nil, &scoring.ValidationError{Field: "scheduled_date", Reason: "must be a date in 2006-01-02 form"}
		}
		actual, err := parseDate(req.ActualDate)
		if err != nil {
			return nil, &scoring.ValidationError{Field: "actual_date", Reason: "must be a date in 2006-01-02 form"}
		}
		return scoring.ScoreDeliveryWithConfig(scheduled, actual, p), nil

	case entity.CategoryQuality:
		var p scoring.QualityParams
		if err := scoring.DecodeParams(req.Params, &p); err != nil {
			return nil, err
		}
		if req.Notifications == nil {
			return nil, &scoring.ValidationError{Field: "notifications", Reason: "required"}
		}
		return scoring.ScoreQualityWithConfig(*req.Notifications, req.Inspection, p)

	case entity.CategoryDefectRate:
		var p scoring.DefectRateParams
		if err := scoring.DecodeParams(req.Params, &p); err != nil {
			return nil, err
		}
		if req.RejectedQty == nil {
			return nil, &scoring.ValidationError{Field: "rejected_qty", Reason: "required"}
		}
		return scoring.ClassifyDefectRateWithConfig(*req.RejectedQty, req.TotalReceived, p)
	}

	return nil, &scoring.ValidationError{Field: "category", Reason: "unknown category " + req.Category}
}

// validateParams 确认参数能解析成类别对应的结构
func validateParams(category string, params map[string]interface{}) error {
	switch category {
	case entity.CategoryPrice:
		var p scoring.PriceParams
		return scoring.DecodeParams(params, &p)
	case entity.CategoryQuantity:
		var p scoring.QuantityParams
		return scoring.DecodeParams(params, &p)
	case entity.CategoryDelivery:
		var p scoring.DeliveryParams
		return scoring.DecodeParams(params, &p)
	case entity.CategoryQuality:
		var p scoring.QualityParams
		return scoring.DecodeParams(params, &p)
	case entity.CategoryDefectRate:
		var p scoring.DefectRateParams
		return scoring.DecodeParams(params, &p)
	}
	return &scoring.ValidationError{Field: "category", Reason: "unknown category " + category}
}

func toParamsMap(params interface{}) map[string]interface{} {
	out := map[string]interface{}{}
	bytes, err := json.Marshal(params)
	if err != nil {
		return out
	}
	json.Unmarshal(bytes, &out)
	return out
}
