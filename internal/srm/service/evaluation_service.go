package service

import (
	"context"
	"fmt"
	"time"

	"github.com/drnayak/Supplier-KPI-Scorecard/internal/srm/entity"
	"github.com/drnayak/Supplier-KPI-Scorecard/internal/srm/repository"
	"github.com/drnayak/Supplier-KPI-Scorecard/internal/srm/scoring"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// EvaluationService 绩效评估服务。
// 创建流程：校验输入 → 解析类别激活配置（无则走固定分档表）→ 评分 →
// 落库 → 同步全量重算供应商KPI。
type EvaluationService struct {
	repo         *repository.EvaluationRepository
	configRepo   *repository.ScoringConfigRepository
	supplierRepo *repository.SupplierRepository
	kpiSvc       *KpiService
}

func NewEvaluationService(repo *repository.EvaluationRepository, configRepo *repository.ScoringConfigRepository, supplierRepo *repository.SupplierRepository, kpiSvc *KpiService) *EvaluationService {
	return &EvaluationService{
		repo:         repo,
		configRepo:   configRepo,
		supplierRepo: supplierRepo,
		kpiSvc:       kpiSvc,
	}
}

// CreatePriceEvaluationRequest 创建价格评估请求
type CreatePriceEvaluationRequest struct {
	SupplierID   string  `json:"supplier_id" binding:"required"`
	POPrice      float64 `json:"po_price" binding:"required"`
	InvoicePrice float64 `json:"invoice_price" binding:"required"`
	Remarks      string  `json:"remarks"`
}

// CreateQuantityEvaluationRequest 创建数量评估请求
type CreateQuantityEvaluationRequest struct {
	SupplierID  string   `json:"supplier_id" binding:"required"`
	OrderedQty  float64  `json:"ordered_qty" binding:"required"`
	ReceivedQty *float64 `json:"received_qty" binding:"required"` // 指针以允许0
	Remarks     string   `json:"remarks"`
}

// CreateDeliveryEvaluationRequest 创建交期评估请求（日期格式 2006-01-02）
type CreateDeliveryEvaluationRequest struct {
	SupplierID    string `json:"supplier_id" binding:"required"`
	ScheduledDate string `json:"scheduled_date" binding:"required"`
	ActualDate    string `json:"actual_date" binding:"required"`
	Remarks       string `json:"remarks"`
}

// CreateQualityEvaluationRequest 创建质量评估请求
type CreateQualityEvaluationRequest struct {
	SupplierID    string `json:"supplier_id" binding:"required"`
	Notifications *int   `json:"notifications" binding:"required"` // 指针以允许0
	Inspection    string `json:"inspection" binding:"required"`    // OK/NOT_OK
	Remarks       string `json:"remarks"`
}

// CreateDefectRateEvaluationRequest 创建不良率评估请求
type CreateDefectRateEvaluationRequest struct {
	SupplierID    string   `json:"supplier_id" binding:"required"`
	RejectedQty   *float64 `json:"rejected_qty" binding:"required"` // 指针以允许0
	TotalReceived float64  `json:"total_received" binding:"required"`
	Remarks       string   `json:"remarks"`
}

// List 获取评估列表
func (s *EvaluationService) List(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.PerformanceEvaluation, int64, error) {
	return s.repo.FindAll(ctx, page, pageSize, filters)
}

// Get 获取评估详情
func (s *EvaluationService) Get(ctx context.Context, id string) (*entity.PerformanceEvaluation, error) {
	return s.repo.FindByID(ctx, id)
}

// GetSupplierHistory 获取供应商评估历史
func (s *EvaluationService) GetSupplierHistory(ctx context.Context, supplierID string) ([]entity.PerformanceEvaluation, error) {
	return s.repo.FindBySupplier(ctx, supplierID)
}

// CreatePrice 创建价格评估
func (s *EvaluationService) CreatePrice(ctx context.Context, userID string, req *CreatePriceEvaluationRequest) (*entity.PerformanceEvaluation, error) {
	var result scoring.Result
	var err error

	var params scoring.PriceParams
	if s.resolveParams(ctx, entity.CategoryPrice, &params) {
		result, err = scoring.ScorePriceWithConfig(req.POPrice, req.InvoicePrice, params)
	} else {
		result, err = scoring.ScorePrice(req.POPrice, req.InvoicePrice)
	}
	if err != nil {
		return nil, err
	}

	amount := req.InvoicePrice - req.POPrice
	eval := s.newEvaluation(userID, req.SupplierID, entity.CategoryPrice, req.Remarks)
	eval.POPrice = &req.POPrice
	eval.InvoicePrice = &req.InvoicePrice
	eval.VarianceAmount = &amount
	eval.VariancePercent = &result.Variance
	eval.Score = &result.Score
	eval.Band = result.Band

	return s.persist(ctx, eval)
}

// CreateQuantity 创建数量评估
func (s *EvaluationService) CreateQuantity(ctx context.Context, userID string, req *CreateQuantityEvaluationRequest) (*entity.PerformanceEvaluation, error) {
	received := *req.ReceivedQty

	var result scoring.Result
	var err error

	var params scoring.QuantityParams
	if s.resolveParams(ctx, entity.CategoryQuantity, &params) {
		result, err = scoring.ScoreQuantityWithConfig(req.OrderedQty, received, params)
	} else {
		result, err = scoring.ScoreQuantity(req.OrderedQty, received)
	}
	if err != nil {
		return nil, err
	}

	amount := received - req.OrderedQty
	eval := s.newEvaluation(userID, req.SupplierID, entity.CategoryQuantity, req.Remarks)
	eval.OrderedQty = &req.OrderedQty
	eval.ReceivedQty = &received
	eval.VarianceAmount = &amount
	eval.VariancePercent = &result.Variance
	eval.Score = &result.Score
	eval.Band = result.Band

	return s.persist(ctx, eval)
}

// CreateDelivery 创建交期评估
func (s *EvaluationService) CreateDelivery(ctx context.Context, userID string, req *CreateDeliveryEvaluationRequest) (*entity.PerformanceEvaluation, error) {
	scheduled, err := parseDate(req.ScheduledDate)
	if err != nil {
		return nil, &scoring.ValidationError{Field: "scheduled_date", Reason: "must be a date in 2006-01-02 form"}
	}
	actual, err := parseDate(req.ActualDate)
	if err != nil {
		return nil, &scoring.ValidationError{Field: "actual_date", Reason: "must be a date in 2006-01-02 form"}
	}

	var result scoring.Result
	var params scoring.DeliveryParams
	if s.resolveParams(ctx, entity.CategoryDelivery, &params) {
		result = scoring.ScoreDeliveryWithConfig(scheduled, actual, params)
	} else {
		result = scoring.ScoreDelivery(scheduled, actual)
	}

	days := int(result.Variance)
	eval := s.newEvaluation(userID, req.SupplierID, entity.CategoryDelivery, req.Remarks)
	eval.ScheduledDate = &scheduled
	eval.ActualDate = &actual
	eval.OverdueDays = &days
	eval.Score = &result.Score
	eval.Band = result.Band

	return s.persist(ctx, eval)
}

// CreateQuality 创建质量评估
func (s *EvaluationService) CreateQuality(ctx context.Context, userID string, req *CreateQualityEvaluationRequest) (*entity.PerformanceEvaluation, error) {
	notifications := *req.Notifications

	var result scoring.Result
	var err error

	var params scoring.QualityParams
	if s.resolveParams(ctx, entity.CategoryQuality, &params) {
		result, err = scoring.ScoreQualityWithConfig(notifications, req.Inspection, params)
	} else {
		result, err = scoring.ScoreQuality(notifications, req.Inspection)
	}
	if err != nil {
		return nil, err
	}

	eval := s.newEvaluation(userID, req.SupplierID, entity.CategoryQuality, req.Remarks)
	eval.Notifications = &notifications
	eval.Inspection = req.Inspection
	eval.Score = &result.Score
	eval.Band = result.Band

	return s.persist(ctx, eval)
}

// CreateDefectRate 创建不良率评估（只分级，不评分，不参与KPI）
func (s *EvaluationService) CreateDefectRate(ctx context.Context, userID string, req *CreateDefectRateEvaluationRequest) (*entity.PerformanceEvaluation, error) {
	rejected := *req.RejectedQty

	var result scoring.PPMResult
	var err error

	var params scoring.DefectRateParams
	if s.resolveParams(ctx, entity.CategoryDefectRate, &params) {
		result, err = scoring.ClassifyDefectRateWithConfig(rejected, req.TotalReceived, params)
	} else {
		result, err = scoring.ClassifyDefectRate(rejected, req.TotalReceived)
	}
	if err != nil {
		return nil, err
	}

	eval := s.newEvaluation(userID, req.SupplierID, entity.CategoryDefectRate, req.Remarks)
	eval.RejectedQty = &rejected
	eval.TotalReceived = &req.TotalReceived
	eval.PPM = &result.PPM
	eval.Band = result.Rating
	eval.BandLabel = result.Label

	return s.persist(ctx, eval)
}

// Export 导出评估列表为xlsx
func (s *EvaluationService) Export(ctx context.Context, filters map[string]string) (*excelize.File, string, error) {
	items, err := s.repo.FindAllForExport(ctx, filters)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	sheet := "Evaluations"
	f.SetSheetName("Sheet1", sheet)

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	headers := []string{"评估ID", "供应商", "类别", "差异", "分数", "档位", "档位说明", "创建时间"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetRowStyle(sheet, 1, 1, boldStyle)

	for row, item := range items {
		supplierName := item.SupplierID
		if item.Supplier != nil {
			supplierName = item.Supplier.Name
		}

		values := []interface{}{
			item.ID,
			supplierName,
			item.Category,
			formatVariance(&item),
			formatScore(item.Score),
			item.Band,
			item.BandLabel,
			item.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	filename := fmt.Sprintf("evaluations_%s.xlsx", time.Now().Format("20060102_150405"))
	return f, filename, nil
}

// resolveParams 解析类别激活配置；无激活配置或参数损坏时返回false，调用方回退固定分档表
func (s *EvaluationService) resolveParams(ctx context.Context, category string, out interface{}) bool {
	cfg, err := s.configRepo.FindActive(ctx, category)
	if err != nil {
		return false
	}
	if err := scoring.DecodeParams(cfg.Params, out); err != nil {
		return false
	}
	return true
}

func (s *EvaluationService) newEvaluation(userID, supplierID, category, remarks string) *entity.PerformanceEvaluation {
	return &entity.PerformanceEvaluation{
		ID:         uuid.New().String()[:32],
		SupplierID: supplierID,
		Category:   category,
		Remarks:    remarks,
		CreatedBy:  userID,
		CreatedAt:  time.Now(),
	}
}

// persist 落库并同步重算供应商KPI
func (s *EvaluationService) persist(ctx context.Context, eval *entity.PerformanceEvaluation) (*entity.PerformanceEvaluation, error) {
	if _, err := s.supplierRepo.FindByID(ctx, eval.SupplierID); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, eval); err != nil {
		return nil, err
	}

	if _, err := s.kpiSvc.Recompute(ctx, eval.SupplierID); err != nil {
		return nil, fmt.Errorf("recompute kpi: %w", err)
	}

	return s.repo.FindByID(ctx, eval.ID)
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func formatScore(score *float64) interface{} {
	if score == nil {
		return ""
	}
	return *score
}

func formatVariance(e *entity.PerformanceEvaluation) string {
	switch {
	case e.VariancePercent != nil:
		return fmt.Sprintf("%.2f%%", *e.VariancePercent)
	case e.OverdueDays != nil:
		return fmt.Sprintf("%d天", *e.OverdueDays)
	case e.PPM != nil:
		return fmt.Sprintf("%d PPM", *e.PPM)
	}
	return ""
}
