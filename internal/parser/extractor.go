// Package parser 提供PDF到纯文本的提取能力
// 提取器是分析流水线的外部协作者：流水线只接收纯文本，从不接触PDF二进制结构
package parser

import (
	"context"
	"io"
)

// TextExtractor 文本提取器接口
// 两个实现：内置的Eino PDF解析器（默认）和远程Tika服务器
type TextExtractor interface {
	// ExtractFromFile 从文件路径提取文本
	ExtractFromFile(ctx context.Context, filePath string) (string, map[string]interface{}, error)

	// ExtractTextFromReader 从Reader提取文本，uri仅用于日志与元数据
	ExtractTextFromReader(ctx context.Context, reader io.Reader, uri string, options interface{}) (string, map[string]interface{}, error)

	// ExtractTextFromBytes 从字节切片提取文本
	ExtractTextFromBytes(ctx context.Context, data []byte, uri string, options interface{}) (string, map[string]interface{}, error)
}
