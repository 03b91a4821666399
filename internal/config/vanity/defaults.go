package vanity

import configtypes "github.com/weisyn/addrkit/pkg/types"

const (
	// defaultMaxAttempts 0 表示一直搜索直到命中或被取消
	defaultMaxAttempts = 0

	// defaultProgressInterval 每10万次尝试输出一次进度
	defaultProgressInterval = 100_000

	defaultFormat = configtypes.AddressFormatP2PKH
)
