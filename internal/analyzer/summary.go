package analyzer

import (
	"regexp"
	"strings"
)

const (
	// maxSummaryLength 摘要硬截断长度（按字符计）
	maxSummaryLength = 300
	// maxSummarySkills 摘要中列出的技能数量上限
	maxSummarySkills = 5
	// maxSummaryProjects 摘要中列出的项目数量上限
	maxSummaryProjects = 2

	// defaultRole 未命中任何角色规则时的兜底称谓
	defaultRole = "Results-driven professional"
	// fallbackStrengths 无技能可列时的固定替代语
	fallbackStrengths = "core problem-solving and collaboration"
)

// rolePatterns 角色推断规则，按优先级排列
// 只取第一条命中的规则（短路），顺序即语义，不是独立检查
var rolePatterns = []struct {
	pattern *regexp.Regexp
	role    string
}{
	{regexp.MustCompile(`(?i)\b(data scientist|machine learning engineer)\b`), "Data-focused professional"},
	{regexp.MustCompile(`(?i)\b(frontend|react|ui)\b`), "Frontend engineer"},
	{regexp.MustCompile(`(?i)\b(backend|node|api|microservices)\b`), "Backend engineer"},
	{regexp.MustCompile(`(?i)\b(full[- ]?stack)\b`), "Full-stack engineer"},
	{regexp.MustCompile(`(?i)\b(devops|cloud|sre)\b`), "DevOps/Cloud engineer"},
}

// inferRole 根据文本推断候选人的角色称谓
func inferRole(text string) string {
	for _, rp := range rolePatterns {
		if rp.pattern.MatchString(text) {
			return rp.role
		}
	}
	return defaultRole
}

// GenerateSummary 生成不超过300字符的自然语言摘要
// 首句为角色称谓加前5项技能；有项目时追加一句列出最多2个项目
// 超长时硬截断，允许截断在单词中间（既有行为，不做词边界处理）
func GenerateSummary(text string, skills []string, projects []string) string {
	role := inferRole(text)

	topSkills := skills
	if len(topSkills) > maxSummarySkills {
		topSkills = topSkills[:maxSummarySkills]
	}
	topProjects := projects
	if len(topProjects) > maxSummaryProjects {
		topProjects = topProjects[:maxSummaryProjects]
	}

	strengths := fallbackStrengths
	if len(topSkills) > 0 {
		strengths = strings.Join(topSkills, ", ")
	}

	parts := []string{role + " with strengths in " + strengths + "."}
	if len(topProjects) > 0 {
		parts = append(parts, "Built "+strings.Join(topProjects, "; ")+" leveraging impact and measurable outcomes.")
	}

	return truncateRunes(strings.Join(parts, " "), maxSummaryLength)
}
