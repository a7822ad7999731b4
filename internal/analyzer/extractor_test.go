package analyzer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 验证关键词按词频降序排列，并列词频保持首次出现顺序
func TestExtractKeywords_FrequencyOrdering(t *testing.T) {
	keywords := ExtractKeywords("alpha alpha alpha beta beta gamma")
	require.Equal(t, []string{"alpha", "beta", "gamma"}, keywords)

	// delta和echo词频相同，delta先出现
	keywords = ExtractKeywords("delta echo delta echo foxtrot")
	require.Equal(t, []string{"delta", "echo", "foxtrot"}, keywords)
}

// 验证短于3个字符的词元被丢弃，+ . # 在词元中存活
func TestExtractKeywords_TokenRules(t *testing.T) {
	keywords := ExtractKeywords("go is ok c++ c# node.js node.js")
	assert.NotContains(t, keywords, "go")
	assert.NotContains(t, keywords, "is")
	assert.NotContains(t, keywords, "c#") // 2个字符，被丢弃
	assert.Contains(t, keywords, "c++")
	assert.Contains(t, keywords, "node.js")
}

// 验证关键词数量上限为50
func TestExtractKeywords_CapsAtFifty(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 60; i++ {
		fmt.Fprintf(&sb, "token%02d ", i)
	}
	keywords := ExtractKeywords(sb.String())
	require.Len(t, keywords, 50)
	// 词频全部相同，保持首次出现顺序
	assert.Equal(t, "token00", keywords[0])
	assert.Equal(t, "token49", keywords[49])
}

func TestExtractKeywords_EmptyText(t *testing.T) {
	assert.Empty(t, ExtractKeywords(""))
	assert.Empty(t, ExtractKeywords("x"))
}

// 验证边界匹配："java" 不会命中 "javascript" 内部
func TestExtractSkills_WordBoundary(t *testing.T) {
	skills := ExtractSkills("I know JavaScript well")
	assert.Contains(t, skills, "JavaScript")
	assert.NotContains(t, skills, "Java")

	skills = ExtractSkills("Java developer")
	assert.Contains(t, skills, "Java")
	assert.NotContains(t, skills, "JavaScript")
}

// 验证含正则元字符的条目被正确转义并区分
func TestExtractSkills_EscapedEntries(t *testing.T) {
	skills := ExtractSkills("Proficient in C++ and c# development")
	assert.Contains(t, skills, "C++")
	assert.Contains(t, skills, "C#")
}

// 验证大小写不敏感去重和规范大小写
func TestExtractSkills_CanonicalCasingAndDedup(t *testing.T) {
	skills := ExtractSkills("react REACT React")
	require.Equal(t, []string{"React"}, skills)
}

// 验证词典未显式映射的条目回退为逐词首字母大写
func TestExtractSkills_FallbackCasing(t *testing.T) {
	skills := ExtractSkills("We use scikit-learn and github actions daily")
	assert.Contains(t, skills, "Scikit-Learn")
	assert.Contains(t, skills, "Github Actions")
}

// 验证返回结果按字典序排列
func TestExtractSkills_Sorted(t *testing.T) {
	skills := ExtractSkills("react, docker, aws")
	require.Equal(t, []string{"AWS", "Docker", "React"}, skills)
}

func TestExtractSkills_NoMatches(t *testing.T) {
	assert.Empty(t, ExtractSkills("nothing relevant here"))
}

// 验证Projects节解析：标题行收集、末尾符号剥离、节退出
func TestExtractProjects_SectionStateMachine(t *testing.T) {
	text := strings.Join([]string{
		"Projects",
		"Chat Application",
		"My Project -",
		"- Built a REST API serving 1M requests",
		"Experience:",
		"Data Pipeline",
	}, "\n")

	projects := ExtractProjects(text)
	require.Equal(t, []string{
		"Chat Application",
		"My Project",
		"Built a REST API serving 1M requests",
	}, projects)
}

// 节标题本身不会作为条目输出，同一行上的内容也会被吞掉
func TestExtractProjects_HeaderLineSwallowed(t *testing.T) {
	projects := ExtractProjects("Projects: Chat App\nInventory System")
	require.Equal(t, []string{"Inventory System"}, projects)
}

// 列表条目在任何节内外都会被收集
func TestExtractProjects_BulletsOutsideSection(t *testing.T) {
	text := "• Migrated services to Kubernetes\n1. Optimized database queries\n2) Reduced latency by 40%"
	projects := ExtractProjects(text)
	require.Equal(t, []string{
		"Migrated services to Kubernetes",
		"Optimized database queries",
		"Reduced latency by 40%",
	}, projects)
}

// 验证去重和数量上限
func TestExtractProjects_DedupAndCap(t *testing.T) {
	var lines []string
	for i := 0; i < 4; i++ {
		lines = append(lines, "- Redis caching layer")
	}
	for i := 0; i < 6; i++ {
		lines = append(lines, fmt.Sprintf("- Achievement number %d", i))
	}
	projects := ExtractProjects(strings.Join(lines, "\n"))
	require.Len(t, projects, 5)
	assert.Equal(t, "Redis caching layer", projects[0])
	// 精确去重后保持首次出现顺序
	assert.Equal(t, "Achievement number 0", projects[1])
}

// 验证列表条目截断到120个字符
func TestExtractProjects_BulletTruncation(t *testing.T) {
	long := strings.Repeat("a", 200)
	projects := ExtractProjects("- " + long)
	require.Len(t, projects, 1)
	assert.Len(t, []rune(projects[0]), 120)
}

func TestExtractProjects_EmptyText(t *testing.T) {
	assert.Empty(t, ExtractProjects(""))
	assert.Empty(t, ExtractProjects("x"))
}
