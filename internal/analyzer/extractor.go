package analyzer

import (
	"regexp"
	"sort"
	"strings"
)

const (
	// maxKeywords 关键词提取的数量上限
	maxKeywords = 50
	// maxProjects 项目条目的数量上限
	maxProjects = 5
	// maxBulletLength 列表条目截断长度（按字符计）
	maxBulletLength = 120
)

var (
	// tokenSplitPattern 分词：任何不属于 [a-z0-9+.#] 的字符串作为分隔
	// 保留 + . # 使 "c++"、"node.js"、"c#" 这类词元完整存活
	tokenSplitPattern = regexp.MustCompile(`[^a-zA-Z0-9+.#]+`)

	// lineSplitPattern 按行切分，兼容 \r\n
	lineSplitPattern = regexp.MustCompile(`\r?\n`)

	// projectsHeaderPattern "Projects" 节标题，行首锚定，冒号可选
	projectsHeaderPattern = regexp.MustCompile(`(?i)^projects?\b:?`)

	// projectTitlePattern 节内短标题行：首字母大写，其余为字母/数字/空格/下划线/连字符
	projectTitlePattern = regexp.MustCompile(`^\s*[A-Z][A-Za-z0-9 _\-]{2,}$`)

	// bulletPattern 列表条目前缀：•、- 或编号（1. / 1)）
	bulletPattern = regexp.MustCompile(`^(•|-|\d+[.)])\s+`)

	// sectionExitPattern 其他已知节的标题，出现时退出 Projects 节
	sectionExitPattern = regexp.MustCompile(`(?i)^\s*(experience|education|skills|certifications|summary)\b`)

	// trailingMarksPattern 标题行末尾要剥离的冒号/项目符号/连字符
	trailingMarksPattern = regexp.MustCompile(`[:•\-]+$`)
)

// ExtractKeywords 提取文本中的高频关键词
// 全文转小写后分词，丢弃短于3个字符的词元，按词频降序排列返回前50个
// 词频相同的词元保持首次出现的先后顺序（稳定排序）
func ExtractKeywords(text string) []string {
	lc := strings.ToLower(text)

	// 统计词频，firstSeen 记录插入顺序以保证并列词频时的稳定性
	counts := make(map[string]int)
	firstSeen := make([]string, 0)
	for _, token := range tokenSplitPattern.Split(lc, -1) {
		if len(token) < 3 {
			continue
		}
		if _, ok := counts[token]; !ok {
			firstSeen = append(firstSeen, token)
		}
		counts[token]++
	}

	sort.SliceStable(firstSeen, func(i, j int) bool {
		return counts[firstSeen[i]] > counts[firstSeen[j]]
	})

	if len(firstSeen) > maxKeywords {
		firstSeen = firstSeen[:maxKeywords]
	}
	return firstSeen
}

// ExtractSkills 对照技能词典识别文本中出现的技能
// 返回规范大小写、按字典序排列的技能列表，大小写不敏感去重
func ExtractSkills(text string) []string {
	found := make(map[string]struct{})
	for _, skill := range skillDictionary {
		if skillPatterns[skill].MatchString(text) {
			found[canonicalSkill(skill)] = struct{}{}
		}
	}

	skills := make([]string, 0, len(found))
	for skill := range found {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	return skills
}

// ExtractProjects 从文本中提取项目条目
// 朴素的行级状态机：进入 "Projects" 节后收集短标题行；
// 任何位置的列表条目（•、-、编号）也会被收集，截断到120字符；
// 出现其他已知节标题时退出 Projects 节
// 去重后最多返回前5条
func ExtractProjects(text string) []string {
	lines := lineSplitPattern.Split(text, -1)
	results := make([]string, 0)
	inProjects := false

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if projectsHeaderPattern.MatchString(line) {
			// 节标题本身不作为条目输出
			inProjects = true
			continue
		}

		if inProjects && projectTitlePattern.MatchString(line) {
			// 节内的短标题行视为项目标题
			title := strings.TrimSpace(trailingMarksPattern.ReplaceAllString(line, ""))
			results = append(results, title)
			continue
		}

		if marker := bulletPattern.FindString(line); marker != "" {
			// 列表条目可能是项目或成果，截取前120个字符
			snippet := strings.TrimSpace(line[len(marker):])
			if snippet != "" {
				results = append(results, truncateRunes(snippet, maxBulletLength))
			}
		}

		// 退出启发：同一行在列表检查之后仍参与节切换判断（与历史行为一致）
		if inProjects && sectionExitPattern.MatchString(line) {
			inProjects = false
		}
	}

	return dedupeHead(results, maxProjects)
}

// dedupeHead 按精确字符串去重，保留首次出现的顺序，截取前 limit 个
func dedupeHead(items []string, limit int) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// truncateRunes 按字符数硬截断，避免在多字节字符中间截断
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
