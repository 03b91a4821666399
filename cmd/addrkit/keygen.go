package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/spf13/cobra"
	"github.com/weisyn/addrkit/internal/core/infrastructure/crypto/key"
	"github.com/weisyn/addrkit/pkg/types"
)

type keygenFlags struct {
	mnemonic      string
	mnemonicStdin bool
	newMnemonic   bool
	words         int
	passphrase    string
	start         uint32
	format        string
	testnet       bool
}

// keygenResult keygen 的输出，新生成的助记词一并返回
type keygenResult struct {
	Mnemonic string         `json:"mnemonic,omitempty"`
	Accounts addressRecords `json:"accounts"`
}

func (r *keygenResult) Header() []string { return r.Accounts.Header() }
func (r *keygenResult) Rows() [][]string { return r.Accounts.Rows() }

func newKeygenCmd(c *cli) *cobra.Command {
	var flags keygenFlags

	cmd := &cobra.Command{
		Use:   "keygen [count]",
		Short: "生成密钥并推导地址",
		Long: `生成随机私钥，或从 BIP39 助记词按 BIP44 (p2pkh) / BIP84 (bech32) 派生账户。

示例：
  addrkit keygen 3
  addrkit keygen --new-mnemonic --words 24 -f bech32
  addrkit keygen --mnemonic "abandon ... about" --start 5 2`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n <= 0 {
					return fmt.Errorf("无效的数量: %q", args[0])
				}
				count = n
			}

			formats, err := parseFormats(flags.format)
			if err != nil {
				return err
			}

			s, err := c.loadServices(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			mnemonic := flags.mnemonic
			switch {
			case flags.newMnemonic:
				if mnemonic != "" || flags.mnemonicStdin {
					return errors.New("--new-mnemonic 不能与 --mnemonic 同时使用")
				}
				bits := flags.words / 3 * 32
				if mnemonic, err = key.NewMnemonic(bits); err != nil {
					return err
				}
			case flags.mnemonicStdin:
				if mnemonic, err = readSecret(c.stdin, c.stderr, "助记词"); err != nil {
					return err
				}
			}

			result := &keygenResult{}
			if mnemonic == "" {
				for i := 0; i < count; i++ {
					raw, _, err := s.keys.GenerateKeyPair()
					if err != nil {
						return err
					}
					priv, pub := btcec.PrivKeyFromBytes(raw)
					key.Wipe(raw)

					records, err := deriveRecords(s, pub, formats, flags.testnet, -1)
					if err != nil {
						return err
					}
					if records, err = withPrivateKey(records, priv, flags.testnet); err != nil {
						return err
					}
					result.Accounts = append(result.Accounts, records...)
				}
			} else {
				for i := 0; i < count; i++ {
					index := flags.start + uint32(i)
					for _, format := range formats {
						acct, err := s.hd.DeriveAccount(mnemonic, flags.passphrase, format, flags.testnet, index)
						if err != nil {
							return err
						}
						records, err := deriveRecords(s, acct.PublicKey, []types.AddressFormat{format}, flags.testnet, -1)
						if err != nil {
							return err
						}
						if records, err = withPrivateKey(records, acct.PrivateKey, flags.testnet); err != nil {
							return err
						}
						records[0].Path = acct.Path
						result.Accounts = append(result.Accounts, records...)
					}
				}
			}

			if flags.newMnemonic {
				result.Mnemonic = mnemonic
				if c.flags.OutputFormat == "table" || c.flags.OutputFormat == "text" {
					c.formatter.PrintWarning("助记词: " + mnemonic)
				}
			}

			s.logger.Debugf("密钥生成完成: accounts=%d", len(result.Accounts))
			return c.formatter.Print(result)
		},
	}

	cmd.Flags().StringVar(&flags.mnemonic, "mnemonic", "", "BIP39 助记词")
	cmd.Flags().BoolVar(&flags.mnemonicStdin, "mnemonic-stdin", false, "从标准输入读取助记词")
	cmd.Flags().BoolVar(&flags.newMnemonic, "new-mnemonic", false, "生成新的助记词并派生账户")
	cmd.Flags().IntVar(&flags.words, "words", 12, "新助记词的单词数: 12|15|18|21|24")
	cmd.Flags().StringVar(&flags.passphrase, "passphrase", "", "BIP39 口令")
	cmd.Flags().Uint32Var(&flags.start, "start", 0, "HD 派生的起始索引")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "all", "地址格式: p2pkh|bech32|all")
	cmd.Flags().BoolVar(&flags.testnet, "testnet", false, "使用测试网参数")

	return cmd
}
