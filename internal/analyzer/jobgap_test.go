package analyzer

import (
	"testing"

	"resume-insight-go/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 差距按要求技能的给定顺序输出
func TestCompareResumeToJob(t *testing.T) {
	extracted := []string{"Node.js", "React"}
	required := []string{"React", "GraphQL", "AWS"}

	missing := CompareResumeToJob(extracted, required)
	require.Equal(t, []string{"GraphQL", "AWS"}, missing)
}

// 严格字符串匹配：大小写不一致视为缺失
func TestCompareResumeToJob_CaseSensitive(t *testing.T) {
	missing := CompareResumeToJob([]string{"react"}, []string{"React"})
	require.Equal(t, []string{"React"}, missing)
}

// 空的要求列表产生空差距（而非nil，保证JSON序列化为[]）
func TestCompareResumeToJob_Empty(t *testing.T) {
	missing := CompareResumeToJob([]string{"Go"}, nil)
	assert.NotNil(t, missing)
	assert.Empty(t, missing)

	missing = CompareResumeToJob(nil, []string{"Go"})
	require.Equal(t, []string{"Go"}, missing)
}

// 要求列表中的重复项会重复出现在差距里
func TestCompareResumeToJob_Duplicates(t *testing.T) {
	missing := CompareResumeToJob(nil, []string{"Go", "Go"})
	require.Equal(t, []string{"Go", "Go"}, missing)
}

func TestGenerateComparisonReport(t *testing.T) {
	job := types.JobTarget{Title: "Backend Engineer", RequiredSkills: []string{"Go", "Docker"}}

	report := GenerateComparisonReport([]string{"Go"}, job)
	assert.Equal(t, "Comparison Report for Backend Engineer:\nMissing Skills: Docker", report)

	report = GenerateComparisonReport([]string{"Go", "Docker"}, job)
	assert.Equal(t, "Comparison Report for Backend Engineer:\nMissing Skills: None", report)
}
