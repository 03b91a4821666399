package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/spf13/cobra"
	"github.com/weisyn/addrkit/internal/core/infrastructure/crypto/key"
	"golang.org/x/term"
)

type deriveFlags struct {
	privKey      string
	privKeyStdin bool
	format       string
	testnet      bool
	version      int
}

func newDeriveCmd(c *cli) *cobra.Command {
	var flags deriveFlags

	cmd := &cobra.Command{
		Use:   "derive [pubkey-hex...]",
		Short: "从公钥或私钥推导地址",
		Long: `从 33 字节压缩公钥（十六进制）推导地址。

也可以用 --privkey 或 --privkey-stdin 提供私钥，由私钥导出公钥后推导。

示例：
  addrkit derive 0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798
  addrkit derive --format bech32 --testnet <pubkey>
  addrkit derive --version 0x30 <pubkey>
  echo <privkey> | addrkit derive --privkey-stdin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && flags.privKey == "" && !flags.privKeyStdin {
				return errors.New("需要公钥参数，或 --privkey / --privkey-stdin")
			}
			if flags.privKey != "" && flags.privKeyStdin {
				return errors.New("--privkey 与 --privkey-stdin 不能同时使用")
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

			var pubs []*btcec.PublicKey
			for _, arg := range args {
				raw, err := hex.DecodeString(strings.TrimPrefix(arg, "0x"))
				if err != nil {
					return fmt.Errorf("公钥不是十六进制: %w", err)
				}
				pub, err := s.curve.ParsePublicKey(raw)
				if err != nil {
					return err
				}
				pubs = append(pubs, pub)
			}

			if flags.privKey != "" || flags.privKeyStdin {
				secret := flags.privKey
				if flags.privKeyStdin {
					if secret, err = readSecret(c.stdin, c.stderr, "私钥(hex)"); err != nil {
						return err
					}
				}
				priv, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(secret), "0x"))
				if err != nil {
					return fmt.Errorf("私钥不是十六进制: %w", err)
				}
				pub, err := s.keys.DerivePublicKey(priv)
				key.Wipe(priv)
				if err != nil {
					return err
				}
				pubs = append(pubs, pub)
			}

			var all addressRecords
			for _, pub := range pubs {
				records, err := deriveRecords(s, pub, formats, flags.testnet, flags.version)
				if err != nil {
					return err
				}
				all = append(all, records...)
			}

			s.logger.Debugf("推导完成: keys=%d addresses=%d", len(pubs), len(all))
			return c.formatter.Print(all)
		},
	}

	cmd.Flags().StringVar(&flags.privKey, "privkey", "", "32 字节私钥 (hex)，会留在 shell 历史中，建议改用 --privkey-stdin")
	cmd.Flags().BoolVar(&flags.privKeyStdin, "privkey-stdin", false, "从标准输入读取私钥 (终端下不回显)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "all", "地址格式: p2pkh|bech32|all")
	cmd.Flags().BoolVar(&flags.testnet, "testnet", false, "使用测试网参数")
	cmd.Flags().IntVar(&flags.version, "version", -1, "覆盖 P2PKH 版本字节 (0-255，默认取网络配置)")

	return cmd
}

// readSecret 终端下不回显读取，管道输入时读取第一行
func readSecret(in io.Reader, prompt io.Writer, label string) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprintf(prompt, "请输入%s: ", label)
		secret, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("读取%s失败: %w", label, err)
		}
		return string(secret), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("读取%s失败: %w", label, err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", fmt.Errorf("未读取到%s", label)
	}
	return line, nil
}
