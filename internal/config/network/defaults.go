package network

// 网络名称
const (
	NameMainnet = "mainnet"
	NameTestnet = "testnet"
)
