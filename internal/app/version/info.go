// Package version provides version information for the application.
package version

import (
	"fmt"
	"runtime"
)

// 构建时注入的变量，通过ldflags设置
var (
	Version   = "v0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"

	GoVersion = runtime.Version()
	GoArch    = runtime.GOARCH
	GoOS      = runtime.GOOS
)

// BuildInfo 完整构建信息结构
type BuildInfo struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetBuildInfo 获取完整构建信息
func GetBuildInfo() *BuildInfo {
	return &BuildInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
		GoVersion: GoVersion,
		Platform:  fmt.Sprintf("%s/%s", GoOS, GoArch),
	}
}

// Header 表格输出的列名
func (b *BuildInfo) Header() []string {
	return []string{"Version", "Commit", "Built", "Go", "Platform"}
}

// Rows 表格输出的数据行
func (b *BuildInfo) Rows() [][]string {
	return [][]string{{b.Version, b.GitCommit, b.BuildTime, b.GoVersion, b.Platform}}
}

// String 纯文本输出
func (b *BuildInfo) String() string {
	return fmt.Sprintf("addrkit %s (commit %s, built %s, %s %s)", b.Version, b.GitCommit, b.BuildTime, b.GoVersion, b.Platform)
}
