package analyzer

import "regexp"

// skillDictionary 已知技能词典，按类别排列
// 条目一律小写，匹配时大小写不敏感
var skillDictionary = []string{
	// 编程语言
	"javascript", "typescript", "python", "java", "c++", "c#", "ruby", "go", "rust", "php", "swift", "kotlin", "scala", "perl", "r",
	// Web
	"react", "angular", "vue", "svelte", "next.js", "node.js", "express", "nestjs", "graphql", "rest", "html", "css", "sass", "less", "tailwind",
	// 数据/ML
	"sql", "mysql", "postgresql", "mongodb", "redis", "dynamodb", "elasticsearch", "kafka", "spark", "hadoop", "pandas", "numpy", "tensorflow", "pytorch", "scikit-learn",
	// DevOps与云
	"docker", "kubernetes", "aws", "gcp", "azure", "terraform", "ansible", "jenkins", "circleci", "github actions",
	// 测试
	"jest", "mocha", "chai", "cypress", "playwright", "vitest",
	// 移动端
	"react native", "flutter", "android", "ios",
	// 工具
	"git", "jira", "confluence", "figma", "postman",
	// 软技能/通用
	"leadership", "communication", "collaboration", "agile", "scrum", "mentoring", "stakeholder management",
}

// canonicalCasing 技能的规范展示大小写
// 词典中未列出的条目回退为逐词首字母大写
var canonicalCasing = map[string]string{
	"javascript": "JavaScript",
	"typescript": "TypeScript",
	"python":     "Python",
	"java":       "Java",
	"c++":        "C++",
	"c#":         "C#",
	"react":      "React",
	"node.js":    "Node.js",
	"next.js":    "Next.js",
	"graphql":    "GraphQL",
	"html":       "HTML",
	"css":        "CSS",
	"aws":        "AWS",
	"gcp":        "GCP",
	"azure":      "Azure",
	"sql":        "SQL",
	"mongodb":    "MongoDB",
	"postgresql": "PostgreSQL",
	"docker":     "Docker",
	"kubernetes": "Kubernetes",
	"git":        "Git",
}

// skillPatterns 每个词典条目对应的边界敏感匹配模式
// 进程启动时构建一次，之后只读
// 条目两侧要求非字母或文本边界，避免 "java" 命中 "javascript" 内部
// QuoteMeta 保证 "c++"、"c#" 等含正则元字符的条目被原样匹配
var skillPatterns = func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(skillDictionary))
	for _, skill := range skillDictionary {
		patterns[skill] = regexp.MustCompile(`(?i)(^|[^a-zA-Z])` + regexp.QuoteMeta(skill) + `([^a-zA-Z]|$)`)
	}
	return patterns
}()

// canonicalSkill 返回技能的规范展示形式
func canonicalSkill(skill string) string {
	if canonical, ok := canonicalCasing[skill]; ok {
		return canonical
	}
	return capitalizeWords(skill)
}

// capitalizeWords 将每个单词边界处的小写字母转为大写
// 单词边界沿用 [A-Za-z0-9_] 的定义，因此 "scikit-learn" 变为 "Scikit-Learn"
func capitalizeWords(s string) string {
	b := []byte(s)
	prevIsWord := false
	for i, c := range b {
		if c >= 'a' && c <= 'z' && !prevIsWord {
			b[i] = c - 'a' + 'A'
		}
		prevIsWord = (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
	}
	return string(b)
}
