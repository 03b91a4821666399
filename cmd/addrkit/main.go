// addrkit 从 secp256k1 公钥推导 P2PKH / P2WPKH 地址的命令行工具
package main

func main() {
	Execute()
}
