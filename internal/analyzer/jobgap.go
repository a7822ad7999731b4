package analyzer

import (
	"fmt"
	"strings"

	"resume-insight-go/internal/types"
)

// CompareResumeToJob 计算技能差距：目标岗位要求中未被简历覆盖的技能
// 按调用方给定的顺序逐项检查，采用严格的字符串成员判断
// 注意：不做大小写归一也不做模糊匹配，"React" 不会命中提取出的 "react"，
// 这是既有契约的已知精度缺口，调用方需要自行预归一大小写
func CompareResumeToJob(extractedSkills []string, requiredSkills []string) []string {
	missing := make([]string, 0)
	for _, skill := range requiredSkills {
		if !containsExact(extractedSkills, skill) {
			missing = append(missing, skill)
		}
	}
	return missing
}

// GenerateComparisonReport 生成简历与目标岗位的对比报告文本
func GenerateComparisonReport(extractedSkills []string, job types.JobTarget) string {
	missing := CompareResumeToJob(extractedSkills, job.RequiredSkills)
	missingText := "None"
	if len(missing) > 0 {
		missingText = strings.Join(missing, ", ")
	}
	return fmt.Sprintf("Comparison Report for %s:\nMissing Skills: %s", job.Title, missingText)
}

func containsExact(list []string, target string) bool {
	for _, item := range list {
		if item == target {
			return true
		}
	}
	return false
}
