package address

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/weisyn/addrkit/pkg/types"
)

const (
	// WitnessVersionP2WPKH P2WPKH 的见证版本
	WitnessVersionP2WPKH byte = 0

	// Bech32Charset 5位值到字符的映射
	Bech32Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

	// bech32Const Bech32（非 Bech32m）校验和常量，适用于见证版本 0
	bech32Const uint32 = 1

	bech32ChecksumLen = 6
	bech32MaxLen      = 90
	bech32MaxHRPLen   = 83

	// p2wpkhDataLen 见证版本(1) + 160位按5位重组(32)
	p2wpkhDataLen = 1 + (types.Hash160Size*8+4)/5
)

var bech32Generator = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

// bech32Polymod BCH 码校验多项式
func bech32Polymod(values []byte) uint32 {
	chk := uint32(1)
	for _, v := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (top>>uint(i))&1 == 1 {
				chk ^= bech32Generator[i]
			}
		}
	}
	return chk
}

// hrpExpand 高3位 ‖ 0 ‖ 低5位
func hrpExpand(hrp string) []byte {
	out := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]>>5)
	}
	out = append(out, 0)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]&31)
	}
	return out
}

// bech32Checksum 计算6个5位校验值
func bech32Checksum(hrp string, data []byte) [bech32ChecksumLen]byte {
	values := hrpExpand(hrp)
	values = append(values, data...)
	values = append(values, make([]byte, bech32ChecksumLen)...)
	mod := bech32Polymod(values) ^ bech32Const

	var checksum [bech32ChecksumLen]byte
	for i := 0; i < bech32ChecksumLen; i++ {
		checksum[i] = byte(mod>>uint(5*(bech32ChecksumLen-1-i))) & 31
	}
	return checksum
}

// validateHRP HRP 只允许 ASCII 33..126，且输出统一为小写
func validateHRP(hrp string) error {
	if len(hrp) == 0 || len(hrp) > bech32MaxHRPLen {
		return fmt.Errorf("%w: length %d", ErrInvalidHRP, len(hrp))
	}
	if len(hrp)+1+p2wpkhDataLen+bech32ChecksumLen > bech32MaxLen {
		return fmt.Errorf("%w: address would exceed %d characters", ErrInvalidHRP, bech32MaxLen)
	}
	for i := 0; i < len(hrp); i++ {
		c := hrp[i]
		if c < 33 || c > 126 {
			return fmt.Errorf("%w: character 0x%02x at %d", ErrInvalidHRP, c, i)
		}
		if c >= 'A' && c <= 'Z' {
			return fmt.Errorf("%w: uppercase character %q", ErrInvalidHRP, c)
		}
	}
	return nil
}

// SegwitAddressLen P2WPKH 地址的精确长度：hrp + '1' + 33个数据字符 + 6个校验字符
func SegwitAddressLen(hrp string) int {
	return len(hrp) + 1 + p2wpkhDataLen + bech32ChecksumLen
}

// EncodeP2WPKH 把见证版本0的 P2WPKH 地址写入 dst，返回写入的字节数
//
// HRP 与网络是否匹配不在这里检查。容量不足时返回 ErrBufferTooSmall，dst 保持不变。
func EncodeP2WPKH(dst []byte, hrp string, digest types.Hash160Digest) (int, error) {
	if err := validateHRP(hrp); err != nil {
		return 0, err
	}

	need := SegwitAddressLen(hrp)
	if len(dst) < need {
		return 0, bufferTooSmall(need, len(dst))
	}

	program, err := bech32.ConvertBits(digest[:], 8, 5, true)
	if err != nil {
		return 0, fmt.Errorf("regroup witness program: %w", err)
	}

	data := make([]byte, 0, p2wpkhDataLen+bech32ChecksumLen)
	data = append(data, WitnessVersionP2WPKH)
	data = append(data, program...)
	checksum := bech32Checksum(hrp, data)
	data = append(data, checksum[:]...)

	n := copy(dst, hrp)
	dst[n] = '1'
	n++
	for _, v := range data {
		dst[n] = Bech32Charset[v]
		n++
	}
	return n, nil
}

// SegwitHead P2WPKH 地址固定的开头：hrp + '1' + 见证版本0对应的字符
func SegwitHead(hrp string) string {
	return hrp + "1" + string(Bech32Charset[WitnessVersionP2WPKH])
}

// SegwitString 返回 P2WPKH 地址字符串
func SegwitString(hrp string, digest types.Hash160Digest) (string, error) {
	buf := make([]byte, SegwitAddressLen(hrp))
	n, err := EncodeP2WPKH(buf, hrp, digest)
	if err != nil {
		return "", err
	}
	return string(buf[:n]), nil
}
