package handler

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"resume-insight-go/internal/logger"
	"resume-insight-go/internal/processor"
	"resume-insight-go/internal/types"
	"resume-insight-go/pkg/utils"

	"github.com/cloudwego/hertz/pkg/app"
	hzutils "github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// UploadAnalyzeResponse 上传分析响应：分析ID加内嵌的完整分析结果
type UploadAnalyzeResponse struct {
	AnalysisID string `json:"analysisId"`
	types.AnalysisResult
}

// HandleUpload 处理 POST /api/v1/resume/upload
// multipart字段 file 为PDF文件；jobTitle/jobSkills 从查询参数或表单读取，
// jobSkills 为逗号分隔的技能列表
// 文件缺失、超限、类型不允许、提取不到文本都映射为400
func (h *AnalysisHandler) HandleUpload(c context.Context, ctx *app.RequestContext) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(consts.StatusBadRequest, hzutils.H{"message": "未找到上传文件"})
		return
	}

	maxBytes := int64(h.cfg.Upload.MaxFileSizeMB) * 1024 * 1024
	if maxBytes > 0 && fileHeader.Size > maxBytes {
		ctx.JSON(consts.StatusBadRequest, hzutils.H{"message": "上传文件超过大小限制"})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !h.extensionAllowed(ext) {
		ctx.JSON(consts.StatusBadRequest, hzutils.H{"message": "不支持的文件类型: " + ext})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(consts.StatusInternalServerError, hzutils.H{"message": "打开上传文件失败"})
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		ctx.JSON(consts.StatusInternalServerError, hzutils.H{"message": "读取上传文件失败"})
		return
	}

	options := types.AnalyzeOptions{
		JobTitle:  h.formOrQuery(ctx, "jobTitle"),
		JobSkills: utils.SplitCommaList(h.formOrQuery(ctx, "jobSkills")),
	}

	result, analysisID, err := h.service.AnalyzeUpload(c, fileBytes, fileHeader.Filename, options)
	if err != nil {
		if errors.Is(err, processor.ErrEmptyText) {
			ctx.JSON(consts.StatusBadRequest, hzutils.H{"message": "无法从PDF中提取文本"})
			return
		}
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("处理上传简历失败")
		ctx.JSON(consts.StatusInternalServerError, hzutils.H{"message": "处理上传文件失败", "error": err.Error()})
		return
	}

	ctx.JSON(consts.StatusOK, UploadAnalyzeResponse{
		AnalysisID:     analysisID,
		AnalysisResult: *result,
	})
}

// formOrQuery 先查URL参数，再查表单字段
func (h *AnalysisHandler) formOrQuery(ctx *app.RequestContext, key string) string {
	if v := ctx.Query(key); v != "" {
		return v
	}
	return ctx.PostForm(key)
}

// extensionAllowed 检查扩展名是否在允许列表中
func (h *AnalysisHandler) extensionAllowed(ext string) bool {
	for _, allowed := range h.cfg.Upload.AllowedExtensions {
		if strings.EqualFold(allowed, ext) {
			return true
		}
	}
	return false
}
