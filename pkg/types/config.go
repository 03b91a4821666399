// Package types provides configuration type definitions.
package types

// AppConfig 应用程序根配置
// 只包含JSON配置文件解析所需的结构，不包含任何内部字段
// 默认值和完整配置结构在 internal/config/*/defaults.go 和 internal/config/*/config.go 中定义
type AppConfig struct {
	// 日志配置
	Log *UserLogConfig `json:"log,omitempty"`

	// 网络参数配置 - 对应配置文件中的 network 字段
	Network *UserNetworkConfig `json:"network,omitempty"`

	// 靓号搜索配置 - 对应配置文件中的 vanity 字段
	Vanity *UserVanityConfig `json:"vanity,omitempty"`
}

// UserLogConfig 用户日志配置
// 只包含JSON配置文件中实际出现的字段
type UserLogConfig struct {
	Level     *string `json:"level,omitempty"`      // 日志级别：debug, info, warn, error, fatal
	FilePath  *string `json:"file_path,omitempty"`  // 日志文件路径
	ToConsole *bool   `json:"to_console,omitempty"` // 是否输出到控制台
}

// UserNetworkConfig 用户网络参数配置
//
// 版本字节和 HRP 均由调用方提供，未出现的字段使用 chaincfg 中的默认值。
type UserNetworkConfig struct {
	MainnetP2PKHVersion *byte   `json:"mainnet_p2pkh_version,omitempty"`
	TestnetP2PKHVersion *byte   `json:"testnet_p2pkh_version,omitempty"`
	MainnetBech32HRP    *string `json:"mainnet_bech32_hrp,omitempty"`
	TestnetBech32HRP    *string `json:"testnet_bech32_hrp,omitempty"` // 自定义测试网可配置为 "tc"
}

// UserVanityConfig 用户靓号搜索配置
type UserVanityConfig struct {
	Workers          *int    `json:"workers,omitempty"`            // 并发worker数量，0表示使用CPU核数
	MaxAttempts      *uint64 `json:"max_attempts,omitempty"`       // 最大尝试次数，0表示不限制
	ProgressInterval *uint64 `json:"progress_interval,omitempty"`  // 每多少次尝试输出一次进度日志
	Format           *string `json:"format,omitempty"`             // p2pkh | bech32
}
