package handler

import (
	"strconv"

	"github.com/drnayak/Supplier-KPI-Scorecard/internal/srm/service"
	"github.com/gin-gonic/gin"
)

// KpiHandler 供应商KPI处理器
type KpiHandler struct {
	svc *service.KpiService
}

func NewKpiHandler(svc *service.KpiService) *KpiHandler {
	return &KpiHandler{svc: svc}
}

// ListKpis KPI排名列表
func (h *KpiHandler) ListKpis(c *gin.Context) {
	limit := 0
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			limit = v
		}
	}

	items, err := h.svc.Ranking(c.Request.Context(), limit)
	if err != nil {
		InternalError(c, "获取KPI排名失败: "+err.Error())
		return
	}
	Success(c, items)
}

// GetKpi 供应商KPI快照
func (h *KpiHandler) GetKpi(c *gin.Context) {
	kpi, err := h.svc.Get(c.Request.Context(), c.Param("supplierId"))
	if err != nil {
		NotFound(c, "KPI快照不存在")
		return
	}
	Success(c, kpi)
}

// RecomputeKpi 手工触发KPI重算
func (h *KpiHandler) RecomputeKpi(c *gin.Context) {
	kpi, err := h.svc.Recompute(c.Request.Context(), c.Param("supplierId"))
	if err != nil {
		RespondError(c, err, "KPI重算失败")
		return
	}
	Success(c, kpi)
}
