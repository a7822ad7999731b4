package analyzer

import (
	"regexp"

	"resume-insight-go/internal/types"
)

const (
	// minSkillCount 技能数量低于该值时建议补充
	minSkillCount = 5
	// ratingThreshold 评分低于该值时建议润色措辞
	ratingThreshold = 7
)

var (
	// summaryWordPattern 是否已有专业摘要
	summaryWordPattern = regexp.MustCompile(`(?i)\bsummary\b`)
	// experiencePattern 是否已有工作经历章节
	experiencePattern = regexp.MustCompile(`(?i)\bexperience|work experience\b`)
)

// BuildSuggestions 按固定顺序评估五个相互独立的条件，为每个成立的条件生成一条建议
// ID 从1开始按评估顺序递增；条件互不排斥，可能零条到五条全部触发
// 每次调用都是无状态的全量重算
func BuildSuggestions(text string, skills []string, projects []string, rating int) []types.Suggestion {
	suggestions := make([]types.Suggestion, 0, 5)
	nextID := 1
	add := func(text string) {
		suggestions = append(suggestions, types.Suggestion{ID: nextID, Text: text})
		nextID++
	}

	if !summaryWordPattern.MatchString(text) {
		add("Add a brief professional summary at the top (2 lines).")
	}
	if len(skills) < minSkillCount {
		add("List at least 5-8 key skills relevant to your target role.")
	}
	if len(projects) == 0 {
		add("Add 1-2 impact-focused projects with metrics and tech stack.")
	}
	if !experiencePattern.MatchString(text) {
		add("Include a Work Experience section with action verbs and results.")
	}
	if rating < ratingThreshold {
		add("Tighten wording: use active voice and quantify outcomes (e.g., increased X%...).")
	}

	return suggestions
}
