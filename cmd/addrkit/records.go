package main

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/weisyn/addrkit/internal/core/infrastructure/crypto/address"
	"github.com/weisyn/addrkit/pkg/types"
)

// AddressRecord 一条地址输出
type AddressRecord struct {
	Format     types.AddressFormat `json:"format"`
	Network    string              `json:"network"`
	Address    string              `json:"address"`
	PublicKey  string              `json:"public_key"`
	Path       string              `json:"path,omitempty"`
	PrivateKey string              `json:"private_key,omitempty"`
	WIF        string              `json:"wif,omitempty"`
	Attempts   uint64              `json:"attempts,omitempty"`
	Elapsed    string              `json:"elapsed,omitempty"`
}

type addressRecords []AddressRecord

// Header 只输出至少有一条记录非空的可选列
func (r addressRecords) Header() []string {
	header := []string{"Format", "Network", "Address", "PublicKey"}
	for _, col := range r.optionalColumns() {
		header = append(header, col.name)
	}
	return header
}

// Rows 与 Header 对齐的数据行
func (r addressRecords) Rows() [][]string {
	cols := r.optionalColumns()
	rows := make([][]string, 0, len(r))
	for _, rec := range r {
		row := []string{string(rec.Format), rec.Network, rec.Address, rec.PublicKey}
		for _, col := range cols {
			row = append(row, col.value(rec))
		}
		rows = append(rows, row)
	}
	return rows
}

type column struct {
	name  string
	value func(AddressRecord) string
}

func (r addressRecords) optionalColumns() []column {
	all := []column{
		{"Path", func(a AddressRecord) string { return a.Path }},
		{"PrivateKey", func(a AddressRecord) string { return a.PrivateKey }},
		{"WIF", func(a AddressRecord) string { return a.WIF }},
		{"Attempts", func(a AddressRecord) string {
			if a.Attempts == 0 {
				return ""
			}
			return fmt.Sprintf("%d", a.Attempts)
		}},
		{"Elapsed", func(a AddressRecord) string { return a.Elapsed }},
	}

	var used []column
	for _, col := range all {
		for _, rec := range r {
			if col.value(rec) != "" {
				used = append(used, col)
				break
			}
		}
	}
	return used
}

// parseFormats 解析 --format，all 表示两种格式
func parseFormats(s string) ([]types.AddressFormat, error) {
	switch strings.ToLower(s) {
	case "all", "":
		return []types.AddressFormat{types.AddressFormatP2PKH, types.AddressFormatBech32}, nil
	default:
		f := types.AddressFormat(strings.ToLower(s))
		if !f.Valid() {
			return nil, fmt.Errorf("unsupported address format %q (p2pkh|bech32|all)", s)
		}
		return []types.AddressFormat{f}, nil
	}
}

// deriveRecords 使用调用方缓冲区接口为一个公钥生成各格式地址
//
// version 为负数时使用网络配置中的版本字节。
func deriveRecords(s *services, pub *btcec.PublicKey, formats []types.AddressFormat, testnet bool, version int) (addressRecords, error) {
	selector := s.network.Selector(testnet)
	if version >= 0 {
		if version > 0xff {
			return nil, fmt.Errorf("version byte out of range: %d", version)
		}
		selector.P2PKHVersion = byte(version)
	}
	pubHex := hex.EncodeToString(s.curve.SerializeCompressed(pub))

	records := make(addressRecords, 0, len(formats))
	for _, format := range formats {
		var (
			n   int
			err error
			buf []byte
		)
		switch format {
		case types.AddressFormatP2PKH:
			buf = make([]byte, address.MaxBase58CheckLen)
			n, err = s.deriver.DeriveP2PKH(buf, pub, selector.P2PKHVersion)
		case types.AddressFormatBech32:
			buf = make([]byte, address.SegwitAddressLen(selector.Bech32HRP))
			n, err = s.deriver.DeriveBech32(buf, pub, testnet)
		default:
			return nil, fmt.Errorf("%w: %q", address.ErrUnsupportedFormat, format)
		}
		if err != nil {
			return nil, fmt.Errorf("推导 %s 地址失败: %w", format, err)
		}

		records = append(records, AddressRecord{
			Format:    format,
			Network:   selector.Name,
			Address:   string(buf[:n]),
			PublicKey: pubHex,
		})
	}
	return records, nil
}

// withPrivateKey 为记录附加私钥与 WIF
func withPrivateKey(records addressRecords, priv *btcec.PrivateKey, testnet bool) (addressRecords, error) {
	params := &chaincfg.MainNetParams
	if testnet {
		params = &chaincfg.TestNet3Params
	}
	wif, err := btcutil.NewWIF(priv, params, true)
	if err != nil {
		return nil, fmt.Errorf("编码 WIF 失败: %w", err)
	}

	privHex := hex.EncodeToString(priv.Serialize())
	for i := range records {
		records[i].PrivateKey = privHex
		records[i].WIF = wif.String()
	}
	return records, nil
}

func hexString(b []byte) string {
	return hex.EncodeToString(b)
}

func formatElapsed(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}
