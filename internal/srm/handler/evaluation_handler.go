package handler

import (
	"fmt"
	"net/http"

	"github.com/drnayak/Supplier-KPI-Scorecard/internal/srm/service"
	"github.com/gin-gonic/gin"
)

// EvaluationHandler 绩效评估处理器
type EvaluationHandler struct {
	svc           *service.EvaluationService
	attachmentSvc *service.AttachmentService
}

func NewEvaluationHandler(svc *service.EvaluationService, attachmentSvc *service.AttachmentService) *EvaluationHandler {
	return &EvaluationHandler{svc: svc, attachmentSvc: attachmentSvc}
}

// ListEvaluations 评估列表
func (h *EvaluationHandler) ListEvaluations(c *gin.Context) {
	page, pageSize := GetPagination(c)
	filters := map[string]string{
		"supplier_id": c.Query("supplier_id"),
		"category":    c.Query("category"),
		"band":        c.Query("band"),
	}

	items, total, err := h.svc.List(c.Request.Context(), page, pageSize, filters)
	if err != nil {
		InternalError(c, "获取评估列表失败: "+err.Error())
		return
	}

	paginate(c, items, total, page, pageSize)
}

// CreatePriceEvaluation 创建价格评估
func (h *EvaluationHandler) CreatePriceEvaluation(c *gin.Context) {
	var req service.CreatePriceEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	eval, err := h.svc.CreatePrice(c.Request.Context(), GetUserID(c), &req)
	if err != nil {
		RespondError(c, err, "创建价格评估失败")
		return
	}
	Created(c, eval)
}

// CreateQuantityEvaluation 创建数量评估
func (h *EvaluationHandler) CreateQuantityEvaluation(c *gin.Context) {
	var req service.CreateQuantityEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	eval, err := h.svc.CreateQuantity(c.Request.Context(), GetUserID(c), &req)
	if err != nil {
		RespondError(c, err, "创建数量评估失败")
		return
	}
	Created(c, eval)
}

// CreateDeliveryEvaluation 创建交期评估
func (h *EvaluationHandler) CreateDeliveryEvaluation(c *gin.Context) {
	var req service.CreateDeliveryEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	eval, err := h.svc.CreateDelivery(c.Request.Context(), GetUserID(c), &req)
	if err != nil {
		RespondError(c, err, "创建交期评估失败")
		return
	}
	Created(c, eval)
}

// CreateQualityEvaluation 创建质量评估
func (h *EvaluationHandler) CreateQualityEvaluation(c *gin.Context) {
	var req service.CreateQualityEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	eval, err := h.svc.CreateQuality(c.Request.Context(), GetUserID(c), &req)
	if err != nil {
		RespondError(c, err, "创建质量评估失败")
		return
	}
	Created(c, eval)
}

// CreateDefectRateEvaluation 创建不良率评估
func (h *EvaluationHandler) CreateDefectRateEvaluation(c *gin.Context) {
	var req service.CreateDefectRateEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	eval, err := h.svc.CreateDefectRate(c.Request.Context(), GetUserID(c), &req)
	if err != nil {
		RespondError(c, err, "创建不良率评估失败")
		return
	}
	Created(c, eval)
}

// GetSupplierHistory 供应商评估历史
func (h *EvaluationHandler) GetSupplierHistory(c *gin.Context) {
	supplierID := c.Param("supplierId")
	items, err := h.svc.GetSupplierHistory(c.Request.Context(), supplierID)
	if err != nil {
		InternalError(c, "获取评估历史失败: "+err.Error())
		return
	}
	Success(c, items)
}

// GetEvaluation 评估详情
func (h *EvaluationHandler) GetEvaluation(c *gin.Context) {
	id := c.Param("id")
	eval, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		NotFound(c, "评估不存在")
		return
	}
	Success(c, eval)
}

// ExportEvaluations 导出评估为xlsx
func (h *EvaluationHandler) ExportEvaluations(c *gin.Context) {
	filters := map[string]string{
		"supplier_id": c.Query("supplier_id"),
		"category":    c.Query("category"),
		"band":        c.Query("band"),
	}

	f, filename, err := h.svc.Export(c.Request.Context(), filters)
	if err != nil {
		InternalError(c, "导出评估失败: "+err.Error())
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	if err := f.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}

// UploadAttachment 上传评估附件
func (h *EvaluationHandler) UploadAttachment(c *gin.Context) {
	id := c.Param("id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "没有上传文件: "+err.Error())
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		InternalError(c, "读取上传文件失败: "+err.Error())
		return
	}
	defer src.Close()

	objectName, err := h.attachmentSvc.Upload(
		c.Request.Context(), id,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"),
		src, fileHeader.Size,
	)
	if err != nil {
		RespondError(c, err, "上传附件失败")
		return
	}

	Created(c, gin.H{"object_name": objectName})
}
