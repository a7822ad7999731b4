package constants

import "time"

const (
	// DefaultAnalyzerVersion 当前启发式分析流水线的版本标识
	DefaultAnalyzerVersion = "heuristic-v1"

	// AnalysisCacheDuration 分析结果缓存的默认有效期
	AnalysisCacheDuration = 24 * time.Hour

	// StatusAnalyzed 分析完成状态
	StatusAnalyzed = "ANALYZED"
	// StatusCacheHit 命中缓存状态
	StatusCacheHit = "CACHE_HIT"
)
