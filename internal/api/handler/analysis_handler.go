package handler

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"resume-insight-go/internal/analyzer"
	"resume-insight-go/internal/config"
	"resume-insight-go/internal/logger"
	"resume-insight-go/internal/processor"
	"resume-insight-go/internal/types"

	"github.com/cloudwego/hertz/pkg/app"
	hzutils "github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/google/uuid"
)

// AnalysisHandler 简历分析相关的HTTP处理器
type AnalysisHandler struct {
	cfg     *config.Config
	service *processor.AnalysisService
}

// NewAnalysisHandler 创建分析处理器
func NewAnalysisHandler(cfg *config.Config, service *processor.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		cfg:     cfg,
		service: service,
	}
}

// AnalyzeRequest 分析请求体
// 字段名与前端契约保持一致
type AnalyzeRequest struct {
	Text      string   `json:"text"`
	JobTitle  string   `json:"jobTitle"`
	JobSkills []string `json:"jobSkills"`
}

// HandleAnalyze 处理 POST /api/v1/analyze
// 空文本在此拒绝（400），流水线本身不做请求级校验
func (h *AnalysisHandler) HandleAnalyze(c context.Context, ctx *app.RequestContext) {
	requestID := uuid.NewString()
	ctx.Header("X-Request-ID", requestID)

	var req AnalyzeRequest
	if err := json.Unmarshal(ctx.Request.Body(), &req); err != nil {
		ctx.JSON(consts.StatusBadRequest, hzutils.H{"message": "请求体不是合法的JSON"})
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		ctx.JSON(consts.StatusBadRequest, hzutils.H{"message": "缺少必填字段: text"})
		return
	}

	result, err := h.service.AnalyzeText(c, req.Text, types.AnalyzeOptions{
		JobTitle:  req.JobTitle,
		JobSkills: req.JobSkills,
	})
	if err != nil {
		if errors.Is(err, processor.ErrEmptyText) {
			ctx.JSON(consts.StatusBadRequest, hzutils.H{"message": "缺少必填字段: text"})
			return
		}
		logger.Error().Err(err).Str("request_id", requestID).Msg("简历分析失败")
		ctx.JSON(consts.StatusInternalServerError, hzutils.H{"message": "简历分析失败", "error": err.Error()})
		return
	}

	ctx.JSON(consts.StatusOK, result)
}

// HandleHighlights 处理 GET /api/v1/highlights?text=...
// 轻量端点，直接调用提取函数返回关键词
func (h *AnalysisHandler) HandleHighlights(c context.Context, ctx *app.RequestContext) {
	text := ctx.Query("text")
	if text == "" {
		ctx.JSON(consts.StatusBadRequest, hzutils.H{"message": "查询参数 text 不能为空"})
		return
	}

	keywords := analyzer.ExtractKeywords(text)
	ctx.JSON(consts.StatusOK, hzutils.H{"keywords": keywords})
}

// HandleSummary 处理 GET /api/v1/summary?text=...
// 不传技能和项目，只基于文本生成摘要
func (h *AnalysisHandler) HandleSummary(c context.Context, ctx *app.RequestContext) {
	text := ctx.Query("text")
	if text == "" {
		ctx.JSON(consts.StatusBadRequest, hzutils.H{"message": "查询参数 text 不能为空"})
		return
	}

	summary := analyzer.GenerateSummary(text, nil, nil)
	ctx.JSON(consts.StatusOK, hzutils.H{"summary": summary})
}
