// Package processor 提供简历分析的服务层门面
// 组合文本提取、启发式分析流水线和可选的结果缓存
package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"resume-insight-go/internal/analyzer"
	"resume-insight-go/internal/config"
	"resume-insight-go/internal/constants"
	"resume-insight-go/internal/parser"
	"resume-insight-go/internal/storage"
	"resume-insight-go/internal/tracing"
	"resume-insight-go/internal/types"
	"resume-insight-go/pkg/utils"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// 服务层公共错误
var (
	// ErrEmptyText 提取或传入的文本去除空白后为空
	ErrEmptyText = errors.New("简历文本为空")
	// ErrExtractorNotInit 提取器未初始化
	ErrExtractorNotInit = errors.New("文本提取器未初始化")
)

// 定义tracer
var tracer = otel.Tracer("processor")

// AnalysisService 简历分析服务
type AnalysisService struct {
	cfg       *config.Config
	storage   *storage.Storage
	extractor parser.TextExtractor
	logger    *zerolog.Logger
}

// NewAnalysisService 创建分析服务实例
func NewAnalysisService(cfg *config.Config, storageManager *storage.Storage, extractor parser.TextExtractor, logger *zerolog.Logger) *AnalysisService {
	if logger == nil {
		defaultLogger := zerolog.Nop()
		logger = &defaultLogger
	}
	return &AnalysisService{
		cfg:       cfg,
		storage:   storageManager,
		extractor: extractor,
		logger:    logger,
	}
}

// AnalyzeText 对已提取的简历文本执行分析
// 配置了Redis时先查结果缓存；缓存不可用或未命中则直接计算并回填
// 缓存故障只记录日志并降级为纯计算，不向调用方冒泡
func (s *AnalysisService) AnalyzeText(ctx context.Context, text string, options types.AnalyzeOptions) (*types.AnalysisResult, error) {
	ctx, span := tracer.Start(ctx, "AnalysisService.AnalyzeText")
	defer span.End()

	if strings.TrimSpace(text) == "" {
		tracing.RecordError(span, ErrEmptyText, tracing.ErrorTypeValidation)
		return nil, ErrEmptyText
	}

	textMD5 := utils.CalculateMD5([]byte(text))
	jobMD5 := utils.CalculateMD5([]byte(jobCacheKey(options)))
	span.SetAttributes(
		attribute.Int("resume.text_length", len(text)),
		attribute.String("resume.text_md5", textMD5),
		attribute.String("analyzer.version", s.cfg.ActiveAnalyzerVersion),
		tracing.SafeStringAttribute("resume.job_title", options.JobTitle),
	)

	if cached := s.lookupCache(ctx, textMD5, jobMD5); cached != nil {
		span.SetAttributes(
			attribute.Bool("cache.hit", true),
			attribute.String("analysis.status", constants.StatusCacheHit),
		)
		return cached, nil
	}
	span.SetAttributes(
		attribute.Bool("cache.hit", false),
		attribute.String("analysis.status", constants.StatusAnalyzed),
	)

	result := analyzer.Analyze(text, options)
	s.fillCache(ctx, textMD5, jobMD5, result)

	s.logger.Debug().
		Int("rating", result.Rating).
		Int("skills", len(result.Highlights.Skills)).
		Int("suggestions", len(result.Suggestions)).
		Msg("简历分析完成")
	return result, nil
}

// AnalyzeUpload 对上传的简历文件执行提取加分析
// 返回分析结果和本次分析的UUIDv7标识
// 提取不到有效文本时返回 ErrEmptyText，由HTTP层映射为400
func (s *AnalysisService) AnalyzeUpload(ctx context.Context, fileBytes []byte, filename string, options types.AnalyzeOptions) (*types.AnalysisResult, string, error) {
	ctx, span := tracer.Start(ctx, "AnalysisService.AnalyzeUpload")
	defer span.End()

	if s.extractor == nil {
		tracing.RecordError(span, ErrExtractorNotInit, tracing.ErrorTypeInternal)
		return nil, "", ErrExtractorNotInit
	}

	uuidV7, err := uuid.NewV7()
	if err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeInternal)
		return nil, "", fmt.Errorf("生成分析ID失败: %w", err)
	}
	analysisID := uuidV7.String()
	span.SetAttributes(
		attribute.String("analysis.id", analysisID),
		attribute.String("upload.filename", filename),
		attribute.Int("upload.size_bytes", len(fileBytes)),
	)

	text, _, err := s.extractor.ExtractTextFromBytes(ctx, fileBytes, filename, nil)
	if err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeExternal)
		return nil, "", fmt.Errorf("提取PDF文本失败: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		tracing.RecordError(span, ErrEmptyText, tracing.ErrorTypeValidation)
		return nil, "", ErrEmptyText
	}

	result, err := s.AnalyzeText(ctx, text, options)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().
		Str("analysis_id", analysisID).
		Str("filename", filename).
		Int("rating", result.Rating).
		Msg("上传简历分析完成")
	return result, analysisID, nil
}

// lookupCache 查询结果缓存，未配置、未命中或反序列化失败都返回nil
func (s *AnalysisService) lookupCache(ctx context.Context, textMD5 string, jobMD5 string) *types.AnalysisResult {
	if s.storage == nil || s.storage.Redis == nil {
		return nil
	}

	payload, err := s.storage.Redis.GetAnalysisResult(ctx, textMD5, jobMD5)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn().Err(err).Str("text_md5", textMD5).Msg("查询分析结果缓存失败，降级为直接计算")
		}
		return nil
	}

	var result types.AnalysisResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		s.logger.Warn().Err(err).Str("text_md5", textMD5).Msg("缓存的分析结果反序列化失败，忽略该条目")
		return nil
	}

	s.logger.Debug().Str("text_md5", textMD5).Msg("命中分析结果缓存")
	return &result
}

// fillCache 回填结果缓存，失败只记录日志
func (s *AnalysisService) fillCache(ctx context.Context, textMD5 string, jobMD5 string, result *types.AnalysisResult) {
	if s.storage == nil || s.storage.Redis == nil {
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		s.logger.Warn().Err(err).Msg("序列化分析结果失败，跳过缓存回填")
		return
	}
	if err := s.storage.Redis.SetAnalysisResult(ctx, textMD5, jobMD5, string(payload)); err != nil {
		s.logger.Warn().Err(err).Str("text_md5", textMD5).Msg("回填分析结果缓存失败")
	}
}

// jobCacheKey 将岗位选项规整为缓存键素材
// 岗位标题或技能列表不同的请求不能共享同一份缓存结果
func jobCacheKey(options types.AnalyzeOptions) string {
	return options.JobTitle + "|" + strings.Join(options.JobSkills, ",")
}
