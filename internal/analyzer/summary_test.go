package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// 验证角色规则按优先级短路
func TestInferRole_Priority(t *testing.T) {
	testCases := []struct {
		name string
		text string
		role string
	}{
		{"数据方向优先于前端", "data scientist working with react", "Data-focused professional"},
		{"前端优先于后端", "react and node developer", "Frontend engineer"},
		{"后端", "built microservices and api gateways", "Backend engineer"},
		{"全栈带连字符", "full-stack developer", "Full-stack engineer"},
		{"全栈带空格", "full stack developer", "Full-stack engineer"},
		{"全栈连写", "fullstack developer", "Full-stack engineer"},
		{"运维云方向", "cloud infrastructure and terraform", "DevOps/Cloud engineer"},
		{"大小写不敏感", "Senior DevOps lead", "DevOps/Cloud engineer"},
		{"无命中走兜底", "passionate problem solver", "Results-driven professional"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.role, inferRole(tc.text))
		})
	}
}

// 无技能无项目时使用固定替代语
func TestGenerateSummary_Fallback(t *testing.T) {
	summary := GenerateSummary("plain text", nil, nil)
	assert.Equal(t, "Results-driven professional with strengths in core problem-solving and collaboration.", summary)
}

// 技能取前5项，项目取前2项
func TestGenerateSummary_Limits(t *testing.T) {
	skills := []string{"Go", "React", "AWS", "Docker", "Redis", "Kafka"}
	projects := []string{"Chat App", "Billing Service", "Search Index"}

	summary := GenerateSummary("plain text", skills, projects)
	assert.Equal(t,
		"Results-driven professional with strengths in Go, React, AWS, Docker, Redis. "+
			"Built Chat App; Billing Service leveraging impact and measurable outcomes.",
		summary)
	assert.NotContains(t, summary, "Kafka")
	assert.NotContains(t, summary, "Search Index")
}

// 无项目时不生成项目句
func TestGenerateSummary_NoProjects(t *testing.T) {
	summary := GenerateSummary("plain text", []string{"Go"}, nil)
	assert.Equal(t, "Results-driven professional with strengths in Go.", summary)
}

// 超过300字符时硬截断（按字符计，允许截断在词中间）
func TestGenerateSummary_Truncation(t *testing.T) {
	longSkill := strings.Repeat("x", 400)
	summary := GenerateSummary("plain text", []string{longSkill}, nil)
	assert.Len(t, []rune(summary), 300)
}

// 截断按字符而非字节，不会切碎多字节字符
func TestTruncateRunes_MultiByte(t *testing.T) {
	s := strings.Repeat("简", 10)
	truncated := truncateRunes(s, 4)
	assert.Equal(t, "简简简简", truncated)
	assert.Equal(t, s, truncateRunes(s, 10))
	assert.Equal(t, s, truncateRunes(s, 100))
}
