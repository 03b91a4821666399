package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/weisyn/addrkit/internal/cli/output"
)

// GlobalFlags 全局标志
type GlobalFlags struct {
	ConfigFile   string // JSON 配置文件
	Preset       string // 内置预置配置
	OutputFormat string // 输出格式
	Silent       bool   // 静默模式
	Verbose      bool   // 详细模式
}

// cli 一次命令执行的共享状态
type cli struct {
	flags     GlobalFlags
	formatter *output.Formatter

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// newRootCmd 构建根命令及全部子命令
func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdin: stdin, stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:   "addrkit",
		Short: "secp256k1 地址推导工具",
		Long: `addrkit - 从 33 字节压缩公钥推导比特币风格地址

支持的地址格式:
  p2pkh   Base58Check(版本字节 ‖ Hash160 ‖ 校验和)
  bech32  见证版本 0 的 P2WPKH

子命令:
  derive  从公钥或私钥推导地址
  keygen  生成随机密钥或从助记词派生账户
  vanity  搜索带指定前缀的地址`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.ParseFormat(c.flags.OutputFormat)
			if err != nil {
				return err
			}
			c.formatter = output.NewFormatter(format, c.stdout)
			c.formatter.SetLogWriter(c.stderr)
			c.formatter.SetSilent(c.flags.Silent)
			return nil
		},
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().StringVarP(&c.flags.ConfigFile, "config", "c", "", "JSON 配置文件路径 (默认使用内置网络参数)")
	rootCmd.PersistentFlags().StringVar(&c.flags.Preset, "preset", "", "使用内置预置配置: default|regtest|tc")
	rootCmd.PersistentFlags().StringVarP(&c.flags.OutputFormat, "output", "o", "json", "输出格式: json|pretty|table|text")
	rootCmd.PersistentFlags().BoolVar(&c.flags.Silent, "silent", false, "静默模式 (只输出错误)")
	rootCmd.PersistentFlags().BoolVarP(&c.flags.Verbose, "verbose", "v", false, "详细输出")

	rootCmd.AddCommand(
		newDeriveCmd(c),
		newKeygenCmd(c),
		newVanityCmd(c),
		newVersionCmd(c),
	)
	return rootCmd
}

// Execute 执行根命令
func Execute() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}
