package types

import "strings"

// LogLevel 日志级别类型
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
	FatalLevel LogLevel = "fatal"
)

// ParseLogLevel 解析日志级别字符串（大小写不敏感），未知值返回 false
func ParseLogLevel(s string) (LogLevel, bool) {
	switch l := LogLevel(strings.ToLower(strings.TrimSpace(s))); l {
	case DebugLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel:
		return l, true
	default:
		return "", false
	}
}
