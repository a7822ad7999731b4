package types

// Highlights 从简历文本中提取出的亮点集合
type Highlights struct {
	// 识别出的技能，规范大小写，按字典序排列
	Skills []string `json:"skills"`
	// 项目条目，按出现顺序排列，最多5条
	Projects []string `json:"projects"`
	// 高频关键词，按词频降序排列，最多50个
	Keywords []string `json:"keywords"`
}

// Suggestion 单条改进建议
// ID 在一次分析结果内唯一，从1开始按生成顺序递增
type Suggestion struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// JobTarget 目标岗位信息，由调用方提供
type JobTarget struct {
	Title          string   `json:"title"`
	RequiredSkills []string `json:"requiredSkills"`
}

// AnalyzeOptions 分析选项
// JobTitle 或 JobSkills 非空时才会计算技能差距
type AnalyzeOptions struct {
	JobTitle  string
	JobSkills []string
}

// AnalysisResult 一次简历分析的完整结果
// 每次分析调用构造一次，构造后不再修改
// JSON字段名与前端消费的契约保持一致，不使用下划线风格
type AnalysisResult struct {
	Highlights  Highlights   `json:"highlights"`
	Rating      int          `json:"rating"`
	Summary     string       `json:"summary"`
	Suggestions []Suggestion `json:"suggestions"`
	SkillsGap   []string     `json:"skillsGap"`
	JobTitle    string       `json:"jobTitle,omitempty"`
}
