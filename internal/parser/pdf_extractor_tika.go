package parser

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

// TikaTextExtractor 通过远程Tika服务器提取PDF文本
// 适用于需要统一解析各类文档格式的部署环境
type TikaTextExtractor struct {
	serverURL  string
	httpClient *http.Client
	logger     *log.Logger
}

// TikaOption Tika提取器的配置选项
type TikaOption func(*TikaTextExtractor)

// WithTikaLogger 配置自定义日志记录器
func WithTikaLogger(logger *log.Logger) TikaOption {
	return func(t *TikaTextExtractor) {
		t.logger = logger
	}
}

// WithTimeout 配置HTTP请求超时
func WithTimeout(timeout time.Duration) TikaOption {
	return func(t *TikaTextExtractor) {
		t.httpClient.Timeout = timeout
	}
}

// NewTikaTextExtractor 创建Tika文本提取器
func NewTikaTextExtractor(serverURL string, options ...TikaOption) *TikaTextExtractor {
	extractor := &TikaTextExtractor{
		serverURL: serverURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: log.New(os.Stderr, "[Tika解析器] ", log.LstdFlags),
	}
	for _, option := range options {
		option(extractor)
	}
	return extractor
}

// ExtractFromFile 实现TextExtractor接口，从PDF文件提取文本
func (t *TikaTextExtractor) ExtractFromFile(ctx context.Context, filePath string) (string, map[string]interface{}, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", nil, fmt.Errorf("读取PDF文件 %s 失败: %w", filePath, err)
	}
	return t.ExtractTextFromBytes(ctx, data, filePath, nil)
}

// ExtractTextFromReader 从 io.Reader 中提取文本
func (t *TikaTextExtractor) ExtractTextFromReader(ctx context.Context, reader io.Reader, uri string, options interface{}) (string, map[string]interface{}, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", nil, fmt.Errorf("读取输入流失败: %w", err)
	}
	return t.ExtractTextFromBytes(ctx, data, uri, options)
}

// ExtractTextFromBytes 将字节内容PUT到Tika的 /tika 端点，取回纯文本
func (t *TikaTextExtractor) ExtractTextFromBytes(ctx context.Context, data []byte, uri string, options interface{}) (string, map[string]interface{}, error) {
	startTime := time.Now()
	t.logger.Printf("开始通过Tika提取文本 (URI: %s, %d 字节)", uri, len(data))

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, t.serverURL+"/tika", bytes.NewReader(data))
	if err != nil {
		return "", nil, fmt.Errorf("构造Tika请求失败: %w", err)
	}
	req.Header.Set("Accept", "text/plain")
	req.Header.Set("Content-Type", "application/pdf")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("请求Tika服务器失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", nil, fmt.Errorf("Tika服务器返回异常状态 %d: %s", resp.StatusCode, string(body))
	}

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, fmt.Errorf("读取Tika响应失败: %w", err)
	}

	duration := time.Since(startTime)
	metadata := asMetaMap(options)
	metadata["processing_duration_ms"] = duration.Milliseconds()
	metadata["text_length"] = len(text)
	metadata["extractor"] = "tika"

	t.logger.Printf("Tika提取完成: 提取了 %d 个字符 (用时 %.2f秒)", len(text), duration.Seconds())
	return string(text), metadata, nil
}
