package analyzer

import "strings"

// maxRating 评分上限
const maxRating = 10

// ScoreResume 对简历文本计算 [0,10] 区间的质量评分
// 粗粒度的"节存在性"启发：包含字面量 "skills" +3、"projects" +3、"experience" +4，
// 区分大小写，总和封顶为10
// 这是已知的简化（并非语义评分），为保持兼容性不做"修正"
func ScoreResume(text string) int {
	score := 0
	if strings.Contains(text, "skills") {
		score += 3
	}
	if strings.Contains(text, "projects") {
		score += 3
	}
	if strings.Contains(text, "experience") {
		score += 4
	}
	if score > maxRating {
		score = maxRating
	}
	return score
}

// clarityKeywords 表达清晰度的参考词
var clarityKeywords = []string{"clear", "concise", "organized"}

// EvaluateClarity 对文本的表达清晰度给出文字评价
// 与评分一样是占位式启发，按命中参考词的数量分档
func EvaluateClarity(text string) string {
	found := 0
	for _, keyword := range clarityKeywords {
		if strings.Contains(text, keyword) {
			found++
		}
	}

	switch {
	case found > 2:
		return "Excellent clarity"
	case found == 2:
		return "Good clarity"
	default:
		return "Needs improvement in clarity"
	}
}
