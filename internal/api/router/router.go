package router

import (
	"context"

	"resume-insight-go/internal/api/handler"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// RegisterRoutes 注册 API 路由
func RegisterRoutes(h *server.Hertz, analysisHandler *handler.AnalysisHandler) {
	// 根路径返回服务索引，方便人工探测
	h.GET("/", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{
			"status":  "ok",
			"message": "Resume Insight API",
			"endpoints": utils.H{
				"analyze":    "POST /api/v1/analyze",
				"upload":     "POST /api/v1/resume/upload (multipart/form-data, field: file)",
				"highlights": "GET /api/v1/highlights?text=...",
				"summary":    "GET /api/v1/summary?text=...",
				"health":     "GET /api/v1/health",
			},
		})
	})

	api := h.Group("/api/v1")

	api.POST("/analyze", analysisHandler.HandleAnalyze)
	api.POST("/resume/upload", analysisHandler.HandleUpload)
	api.GET("/highlights", analysisHandler.HandleHighlights)
	api.GET("/summary", analysisHandler.HandleSummary)

	// 健康检查
	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})
}
