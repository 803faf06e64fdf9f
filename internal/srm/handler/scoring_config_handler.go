package handler

import (
	"github.com/drnayak/Supplier-KPI-Scorecard/internal/srm/service"
	"github.com/gin-gonic/gin"
)

// ScoringConfigHandler 评分配置处理器
type ScoringConfigHandler struct {
	svc *service.ScoringConfigService
}

func NewScoringConfigHandler(svc *service.ScoringConfigService) *ScoringConfigHandler {
	return &ScoringConfigHandler{svc: svc}
}

// ListConfigs 配置列表
func (h *ScoringConfigHandler) ListConfigs(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		InternalError(c, "获取配置列表失败: "+err.Error())
		return
	}
	Success(c, items)
}

// CreateConfig 创建配置
func (h *ScoringConfigHandler) CreateConfig(c *gin.Context) {
	var req service.CreateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	cfg, err := h.svc.Create(c.Request.Context(), GetUserID(c), &req)
	if err != nil {
		RespondError(c, err, "创建配置失败")
		return
	}
	Created(c, cfg)
}

// GetConfig 配置详情
func (h *ScoringConfigHandler) GetConfig(c *gin.Context) {
	cfg, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		NotFound(c, "配置不存在")
		return
	}
	Success(c, cfg)
}

// UpdateConfig 更新配置
func (h *ScoringConfigHandler) UpdateConfig(c *gin.Context) {
	var req service.UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	cfg, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		RespondError(c, err, "更新配置失败")
		return
	}
	Success(c, cfg)
}

// ActivateConfig 激活配置
func (h *ScoringConfigHandler) ActivateConfig(c *gin.Context) {
	cfg, err := h.svc.Activate(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err, "激活配置失败")
		return
	}
	Success(c, cfg)
}

// PreviewConfig 配置试算
func (h *ScoringConfigHandler) PreviewConfig(c *gin.Context) {
	var req service.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	result, err := h.svc.Preview(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, err, "配置试算失败")
		return
	}
	Success(c, result)
}
