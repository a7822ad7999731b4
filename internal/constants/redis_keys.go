package constants

// Redis Key 前缀和格式常量
// 统一命名规范: app:{module}:{entity}:{unique_id}
const (
	// AppPrefix 所有Redis Key的统一应用前缀
	AppPrefix = "app"

	// AnalysisModulePrefix 分析模块
	AnalysisModulePrefix = "analysis"

	// EntityResult 分析结果实体
	EntityResult = "result"

	// KeyAnalysisResult 分析结果缓存 (STRING, JSON负载)
	// 格式: app:analysis:result:{textMD5}:{jobMD5}
	// 只缓存派生出的分析结果，带TTL；不落任何简历原文或文件
	KeyAnalysisResult = AppPrefix + ":" + AnalysisModulePrefix + ":" + EntityResult + ":%s:%s"
)
