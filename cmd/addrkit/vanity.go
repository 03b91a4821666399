package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/spf13/cobra"
	"github.com/weisyn/addrkit/internal/core/infrastructure/crypto/key"
	"github.com/weisyn/addrkit/internal/core/vanity"
	"github.com/weisyn/addrkit/pkg/types"
)

type vanityFlags struct {
	prefix      string
	format      string
	testnet     bool
	workers     int
	maxAttempts uint64
	timeout     time.Duration
}

func newVanityCmd(c *cli) *cobra.Command {
	var flags vanityFlags

	cmd := &cobra.Command{
		Use:   "vanity",
		Short: "搜索带指定前缀的地址",
		Long: `并发生成随机密钥，直到地址以指定前缀开头。

前缀每多一个字符，期望尝试次数约增加 58 倍 (p2pkh) 或 32 倍 (bech32)。
Ctrl+C 或 --timeout 到期时停止搜索。

示例：
  addrkit vanity --prefix 1Kid
  addrkit vanity --prefix bc1qkid -f bech32 --workers 8
  addrkit vanity --prefix tb1q00 -f bech32 --testnet --max-attempts 1000000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.prefix == "" {
				return errors.New("需要 --prefix")
			}

			s, err := c.loadServices(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			if flags.timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, flags.timeout)
				defer cancel()
			}

			match, err := s.searcher.Search(ctx, vanity.Request{
				Prefix:      flags.prefix,
				Format:      types.AddressFormat(flags.format),
				Testnet:     flags.testnet,
				Workers:     flags.workers,
				MaxAttempts: flags.maxAttempts,
			})
			s.logMetrics()
			if err != nil {
				return err
			}

			priv, _ := btcec.PrivKeyFromBytes(match.PrivateKey)
			key.Wipe(match.PrivateKey)

			records := addressRecords{{
				Format:    match.Format,
				Network:   match.Network,
				Address:   match.Address,
				PublicKey: hexString(match.PublicKey),
				Attempts:  match.Attempts,
				Elapsed:   formatElapsed(match.Elapsed),
			}}
			if records, err = withPrivateKey(records, priv, flags.testnet); err != nil {
				return err
			}

			c.formatter.PrintSuccess("找到匹配地址: " + match.Address)
			return c.formatter.Print(records)
		},
	}

	cmd.Flags().StringVarP(&flags.prefix, "prefix", "p", "", "地址前缀 (bech32 需包含 hrp，如 bc1q)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "地址格式: p2pkh|bech32 (默认取配置)")
	cmd.Flags().BoolVar(&flags.testnet, "testnet", false, "使用测试网参数")
	cmd.Flags().IntVarP(&flags.workers, "workers", "w", 0, "并发数 (默认取配置，通常为CPU核数)")
	cmd.Flags().Uint64Var(&flags.maxAttempts, "max-attempts", 0, "最大尝试次数，0表示不限制")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 0, "最长搜索时间，如 10m")

	return cmd
}
