// Package storage 聚合对外部存储系统的访问
// 本服务只有一个可选的存储依赖：Redis分析结果缓存
package storage

import (
	"context"
	"fmt"

	"resume-insight-go/internal/config"
	"resume-insight-go/internal/logger"
)

// Storage 存储管理器
type Storage struct {
	// 键值缓存，未配置时为nil，调用方需判空
	Redis *Redis
}

// NewStorage 创建存储管理器
// Redis地址未配置时跳过初始化，服务在无缓存模式下正常工作
func NewStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	if cfg == nil {
		return nil, fmt.Errorf("配置不能为空")
	}

	storage := &Storage{}

	if cfg.Redis.Address != "" {
		redisAdapter, err := NewRedisAdapter(&cfg.Redis)
		if err != nil {
			// 缓存是可选依赖：初始化失败降级为无缓存运行，不阻塞服务启动
			logger.Warn().Err(err).Str("address", cfg.Redis.Address).Msg("初始化Redis失败，分析结果缓存已禁用")
		} else {
			storage.Redis = redisAdapter
			logger.Info().Str("address", cfg.Redis.Address).Msg("Redis客户端初始化成功")
		}
	} else {
		logger.Info().Msg("未配置Redis地址，分析结果缓存已禁用")
	}

	return storage, nil
}

// Close 关闭所有已初始化的存储连接
func (s *Storage) Close() error {
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			return fmt.Errorf("关闭Redis连接失败: %w", err)
		}
	}
	return nil
}
