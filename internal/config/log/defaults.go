package log

import (
	"go.uber.org/zap/zapcore"
)

// 日志配置默认值
const (
	// defaultLogLevel 默认日志级别
	defaultLogLevel = "info"

	// defaultToConsole 命令行工具默认输出到 stderr，不污染 stdout 上的结果
	defaultToConsole = true

	// defaultFilePath 默认不写日志文件
	defaultFilePath = ""

	// === 日志轮转配置 ===

	defaultMaxSize    = 100 // MB
	defaultMaxBackups = 10
	defaultMaxAge     = 30 // days
	defaultCompress   = true

	// === 调试配置 ===

	defaultEnableCaller = false

	// defaultEnableStacktrace 仅对 Error 级别生效
	defaultEnableStacktrace = false
)

// 默认的日志级别映射
var defaultLevelMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
	"panic": zapcore.PanicLevel,
	"fatal": zapcore.FatalLevel,
}
