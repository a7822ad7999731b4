package analyzer

import (
	"encoding/json"
	"testing"

	"resume-insight-go/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 典型简历样本走完整流程
func TestAnalyze(t *testing.T) {
	text := "Summary\nSkills: React, Node.js\nProjects: Chat App\nExperience: built APIs"
	result := Analyze(text, types.AnalyzeOptions{JobSkills: []string{"React", "GraphQL"}})
	require.NotNil(t, result)

	assert.Equal(t, []string{"Node.js", "React"}, result.Highlights.Skills)
	assert.Equal(t, []string{"GraphQL"}, result.SkillsGap)
	assert.Equal(t, "Frontend engineer with strengths in Node.js, React.", result.Summary)

	// 关键词按首次出现顺序（词频全部为1）
	assert.Equal(t, []string{
		"summary", "skills", "react", "node.js", "projects",
		"chat", "app", "experience", "built", "apis",
	}, result.Highlights.Keywords)

	// 大写节标题不满足评分线索（区分大小写的既有行为）
	assert.Equal(t, 0, result.Rating)

	// 技能不足、无项目、低评分三条建议，ID连续
	require.Len(t, result.Suggestions, 3)
	assert.Equal(t, 1, result.Suggestions[0].ID)
	assert.Equal(t, 3, result.Suggestions[2].ID)
}

// 小写节标题的样本拿满评分
func TestAnalyze_FullRating(t *testing.T) {
	text := "summary\nskills: react, node.js, aws, docker, kubernetes\nprojects\nChat Application\nexperience: built APIs"
	result := Analyze(text, types.AnalyzeOptions{})

	assert.Equal(t, 10, result.Rating)
	assert.Len(t, result.Highlights.Skills, 5)
	assert.Equal(t, []string{"Chat Application"}, result.Highlights.Projects)
	assert.Empty(t, result.Suggestions)
}

// 未提供岗位信息时不计算技能差距
func TestAnalyze_NoJobTarget(t *testing.T) {
	result := Analyze("react developer", types.AnalyzeOptions{})
	assert.NotNil(t, result.SkillsGap)
	assert.Empty(t, result.SkillsGap)
	assert.Empty(t, result.JobTitle)
}

// 仅提供岗位名称（无要求技能）也会触发差距计算，结果为空列表
func TestAnalyze_JobTitleOnly(t *testing.T) {
	result := Analyze("react developer", types.AnalyzeOptions{JobTitle: "Frontend Developer"})
	assert.NotNil(t, result.SkillsGap)
	assert.Empty(t, result.SkillsGap)
	assert.Equal(t, "Frontend Developer", result.JobTitle)
}

// 空文本不报错：零技能、零分、全量建议
func TestAnalyze_DegenerateInput(t *testing.T) {
	result := Analyze("x", types.AnalyzeOptions{})
	assert.Empty(t, result.Highlights.Skills)
	assert.Empty(t, result.Highlights.Projects)
	assert.Empty(t, result.Highlights.Keywords)
	assert.Equal(t, 0, result.Rating)
	assert.NotEmpty(t, result.Summary)
	assert.LessOrEqual(t, len([]rune(result.Summary)), 300)
	assert.Len(t, result.Suggestions, 5)
}

// JSON契约：字段为camelCase，空差距输出[]，空jobTitle省略
func TestAnalysisResult_JSONContract(t *testing.T) {
	result := Analyze("x", types.AnalyzeOptions{})
	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "highlights")
	assert.Contains(t, decoded, "rating")
	assert.Contains(t, decoded, "summary")
	assert.Contains(t, decoded, "suggestions")
	assert.Equal(t, []any{}, decoded["skillsGap"])
	assert.NotContains(t, decoded, "jobTitle")

	highlights, ok := decoded["highlights"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, highlights, "skills")
	assert.Contains(t, highlights, "projects")
	assert.Contains(t, highlights, "keywords")
}
