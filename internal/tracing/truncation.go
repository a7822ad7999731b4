package tracing

import "go.opentelemetry.io/otel/attribute"

// MaxAttributeLength span字符串属性的长度上限，防止超大简历文本撑爆追踪后端
const MaxAttributeLength = 256

// TruncateString 截断超长字符串，末尾以省略号标记
func TruncateString(s string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = MaxAttributeLength
	}
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	return string(runes[:maxLength]) + "..."
}

// SafeStringAttribute 构造一个长度受限的字符串属性
func SafeStringAttribute(key string, value string) attribute.KeyValue {
	return attribute.String(key, TruncateString(value, MaxAttributeLength))
}
