package storage

import (
	"context"
	"fmt"
	"time"

	"resume-insight-go/internal/config"
	"resume-insight-go/internal/constants"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
)

// ErrNotFound 键不存在时返回，包装底层的 redis.Nil 以便上层抽象
var ErrNotFound = redis.Nil

// Redis 分析结果缓存适配器
// 只缓存派生出的分析结果JSON（带TTL），从不写入简历原文或文件内容
type Redis struct {
	Client *redis.Client
	cfg    *config.RedisConfig
}

// NewRedisAdapter 创建Redis适配器并验证连通性
func NewRedisAdapter(cfg *config.RedisConfig) (*Redis, error) {
	if cfg == nil || cfg.Address == "" {
		return nil, fmt.Errorf("redis配置为空或未指定地址")
	}

	options := &redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	// 连接池与超时设置，零值时沿用客户端默认
	if cfg.PoolSize > 0 {
		options.PoolSize = cfg.PoolSize
	}
	if cfg.MinIdleConns > 0 {
		options.MinIdleConns = cfg.MinIdleConns
	}
	if cfg.DialTimeoutSeconds > 0 {
		options.DialTimeout = time.Duration(cfg.DialTimeoutSeconds) * time.Second
	}
	if cfg.ReadTimeoutSeconds > 0 {
		options.ReadTimeout = time.Duration(cfg.ReadTimeoutSeconds) * time.Second
	}
	if cfg.WriteTimeoutSeconds > 0 {
		options.WriteTimeout = time.Duration(cfg.WriteTimeoutSeconds) * time.Second
	}
	if cfg.MaxRetries > 0 {
		options.MaxRetries = cfg.MaxRetries
	}
	if cfg.MinRetryBackoffMS > 0 {
		options.MinRetryBackoff = time.Duration(cfg.MinRetryBackoffMS) * time.Millisecond
	}
	if cfg.MaxRetryBackoffMS > 0 {
		options.MaxRetryBackoff = time.Duration(cfg.MaxRetryBackoffMS) * time.Millisecond
	}
	if cfg.ConnMaxLifetimeMinutes > 0 {
		options.ConnMaxLifetime = time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute
	}
	if cfg.ConnMaxIdleTimeMinutes > 0 {
		options.ConnMaxIdleTime = time.Duration(cfg.ConnMaxIdleTimeMinutes) * time.Minute
	}

	client := redis.NewClient(options)

	// 挂载OpenTelemetry追踪钩子
	if err := redisotel.InstrumentTracing(client); err != nil {
		return nil, fmt.Errorf("安装Redis追踪钩子失败: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis连接检查失败: %w", err)
	}

	return &Redis{Client: client, cfg: cfg}, nil
}

// Close 关闭底层连接
func (r *Redis) Close() error {
	if r.Client != nil {
		return r.Client.Close()
	}
	return nil
}

// Ping 检查连通性
func (r *Redis) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx).Err()
}

// resultCacheDuration 分析结果缓存的有效期
func (r *Redis) resultCacheDuration() time.Duration {
	if r.cfg.ResultCacheExpireHours > 0 {
		return time.Duration(r.cfg.ResultCacheExpireHours) * time.Hour
	}
	return constants.AnalysisCacheDuration
}

// analysisResultKey 组装分析结果缓存键
func analysisResultKey(textMD5 string, jobMD5 string) string {
	return fmt.Sprintf(constants.KeyAnalysisResult, textMD5, jobMD5)
}

// GetAnalysisResult 读取缓存的分析结果JSON
// 未命中返回 ErrNotFound
func (r *Redis) GetAnalysisResult(ctx context.Context, textMD5 string, jobMD5 string) (string, error) {
	payload, err := r.Client.Get(ctx, analysisResultKey(textMD5, jobMD5)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("读取分析结果缓存失败: %w", err)
	}
	return payload, nil
}

// SetAnalysisResult 写入分析结果JSON，带TTL
func (r *Redis) SetAnalysisResult(ctx context.Context, textMD5 string, jobMD5 string, payload string) error {
	err := r.Client.Set(ctx, analysisResultKey(textMD5, jobMD5), payload, r.resultCacheDuration()).Err()
	if err != nil {
		return fmt.Errorf("写入分析结果缓存失败: %w", err)
	}
	return nil
}
