// Package analyzer 实现简历文本的启发式分析流水线：
// 关键词/技能/项目提取、质量评分、摘要生成、改进建议和岗位技能差距对比。
// 所有函数都是无共享状态的纯计算，并发调用互不干扰。
package analyzer

import "resume-insight-go/internal/types"

// Analyze 对简历文本执行完整的分析流程，组装并返回分析结果
// 流程：提取关键词/技能/项目 → 评分 → 生成摘要 → 生成建议 →
// （提供了岗位信息时）计算技能差距
// 对任何合法字符串输入都不会失败；空文本会产生零技能、零分、全量建议的结果，
// 拒绝空文本是HTTP边界的职责，不在这里校验
func Analyze(text string, options types.AnalyzeOptions) *types.AnalysisResult {
	keywords := ExtractKeywords(text)
	skills := ExtractSkills(text)
	projects := ExtractProjects(text)

	rating := ScoreResume(text)
	summary := GenerateSummary(text, skills, projects)
	suggestions := BuildSuggestions(text, skills, projects, rating)

	skillsGap := make([]string, 0)
	if options.JobTitle != "" || len(options.JobSkills) > 0 {
		skillsGap = CompareResumeToJob(skills, options.JobSkills)
	}

	return &types.AnalysisResult{
		Highlights: types.Highlights{
			Skills:   skills,
			Projects: projects,
			Keywords: keywords,
		},
		Rating:      rating,
		Summary:     summary,
		Suggestions: suggestions,
		SkillsGap:   skillsGap,
		JobTitle:    options.JobTitle,
	}
}
