package key

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/tyler-smith/go-bip39"
	"github.com/weisyn/addrkit/pkg/types"
)

// BIP43 用途编号
const (
	PurposeBIP44 uint32 = 44 // P2PKH
	PurposeBIP84 uint32 = 84 // P2WPKH

	coinTypeMainnet uint32 = 0
	coinTypeTestnet uint32 = 1
)

// Account HD 派生得到的单个账户密钥
type Account struct {
	Path       string
	PrivateKey *btcec.PrivateKey
	PublicKey  *btcec.PublicKey
}

// NewMnemonic 生成 BIP39 助记词，bits 取 128..256 且为32的倍数
func NewMnemonic(bits int) (string, error) {
	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", fmt.Errorf("生成熵失败: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("生成助记词失败: %w", err)
	}
	return mnemonic, nil
}

// HDDeriver 基于 BIP32 的分层确定性派生
type HDDeriver struct{}

// NewHDDeriver 创建HD派生器
func NewHDDeriver() *HDDeriver {
	return &HDDeriver{}
}

// AccountPath 返回格式对应的标准路径：P2PKH 用 BIP44，P2WPKH 用 BIP84
//
//	m / purpose' / coin' / 0' / 0 / index
func AccountPath(format types.AddressFormat, testnet bool, index uint32) (string, error) {
	var purpose uint32
	switch format {
	case types.AddressFormatP2PKH:
		purpose = PurposeBIP44
	case types.AddressFormatBech32:
		purpose = PurposeBIP84
	default:
		return "", fmt.Errorf("%w: unsupported format %q", ErrInvalidPath, format)
	}

	coin := coinTypeMainnet
	if testnet {
		coin = coinTypeTestnet
	}
	return fmt.Sprintf("m/%d'/%d'/0'/0/%d", purpose, coin, index), nil
}

// ParsePath 解析形如 m/84'/0'/0'/0/0 的派生路径
func ParsePath(path string) ([]uint32, error) {
	parts := strings.Split(strings.TrimSpace(path), "/")
	if len(parts) == 0 || parts[0] != "m" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}

	indexes := make([]uint32, 0, len(parts)-1)
	for _, part := range parts[1:] {
		hardened := strings.HasSuffix(part, "'") || strings.HasSuffix(part, "h")
		if hardened {
			part = part[:len(part)-1]
		}
		n, err := strconv.ParseUint(part, 10, 32)
		if err != nil || n >= hdkeychain.HardenedKeyStart {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
		}
		idx := uint32(n)
		if hardened {
			idx += hdkeychain.HardenedKeyStart
		}
		indexes = append(indexes, idx)
	}
	return indexes, nil
}

// DeriveAccount 从助记词派生指定格式、网络和序号的账户
func (h *HDDeriver) DeriveAccount(mnemonic, passphrase string, format types.AddressFormat, testnet bool, index uint32) (*Account, error) {
	path, err := AccountPath(format, testnet, index)
	if err != nil {
		return nil, err
	}
	return h.DerivePath(mnemonic, passphrase, path, testnet)
}

// DerivePath 按任意路径从助记词派生账户
func (h *HDDeriver) DerivePath(mnemonic, passphrase, path string, testnet bool) (*Account, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}

	indexes, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	params := &chaincfg.MainNetParams
	if testnet {
		params = &chaincfg.TestNet3Params
	}

	seed := bip39.NewSeed(mnemonic, passphrase)
	defer Wipe(seed)

	extKey, err := hdkeychain.NewMaster(seed, params)
	if err != nil {
		return nil, fmt.Errorf("创建主密钥失败: %w", err)
	}
	for _, idx := range indexes {
		extKey, err = extKey.Derive(idx)
		if err != nil {
			return nil, fmt.Errorf("派生子密钥失败 (%d): %w", idx, err)
		}
	}

	priv, err := extKey.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("提取私钥失败: %w", err)
	}

	return &Account{
		Path:       path,
		PrivateKey: priv,
		PublicKey:  priv.PubKey(),
	}, nil
}
