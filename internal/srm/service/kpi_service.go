package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/drnayak/Supplier-KPI-Scorecard/internal/srm/entity"
	"github.com/drnayak/Supplier-KPI-Scorecard/internal/srm/repository"
	"github.com/drnayak/Supplier-KPI-Scorecard/internal/srm/scoring"
	"github.com/redis/go-redis/v9"
)

const (
	kpiCachePrefix = "srm:kpi:"
	kpiCacheTTL    = 10 * time.Minute
)

// KpiService 供应商KPI服务
type KpiService struct {
	kpiRepo      *repository.KpiRepository
	evalRepo     *repository.EvaluationRepository
	supplierRepo *repository.SupplierRepository
	rdb          *redis.Client
}

func NewKpiService(kpiRepo *repository.KpiRepository, evalRepo *repository.EvaluationRepository, supplierRepo *repository.SupplierRepository, rdb *redis.Client) *KpiService {
	return &KpiService{
		kpiRepo:      kpiRepo,
		evalRepo:     evalRepo,
		supplierRepo: supplierRepo,
		rdb:          rdb,
	}
}

// Get 获取KPI快照（优先读Redis缓存）
func (s *KpiService) Get(ctx context.Context, supplierID string) (*entity.SupplierKpi, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, kpiCachePrefix+supplierID).Result()
		if err == nil && cached != "" {
			var kpi entity.SupplierKpi
			if json.Unmarshal([]byte(cached), &kpi) == nil {
				return &kpi, nil
			}
		}
	}

	kpi, err := s.kpiRepo.FindBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	s.cache(ctx, kpi)
	return kpi, nil
}

// Ranking 按综合KPI降序排名
func (s *KpiService) Ranking(ctx context.Context, limit int) ([]entity.SupplierKpi, error) {
	return s.kpiRepo.FindAll(ctx, limit)
}

// Recompute 全量重算供应商KPI并落库。
// 每次新增评估后同步触发；也可通过接口手工触发。
func (s *KpiService) Recompute(ctx context.Context, supplierID string) (*entity.SupplierKpi, error) {
	if _, err := s.supplierRepo.FindByID(ctx, supplierID); err != nil {
		return nil, err
	}

	evals, err := s.evalRepo.FindBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	kpi := scoring.ComputeKpi(supplierID, evals)

	if err := s.kpiRepo.Upsert(ctx, kpi); err != nil {
		return nil, err
	}
	if err := s.supplierRepo.UpdateScores(ctx, supplierID, kpi); err != nil {
		return nil, err
	}

	s.cache(ctx, kpi)
	return kpi, nil
}

func (s *KpiService) cache(ctx context.Context, kpi *entity.SupplierKpi) {
	if s.rdb == nil {
		return
	}
	// 缓存失败不影响主流程
	if bytes, err := json.Marshal(kpi); err == nil {
		s.rdb.Set(ctx, kpiCachePrefix+kpi.SupplierID, bytes, kpiCacheTTL)
	}
}
