package main

import (
	"github.com/spf13/cobra"
	"github.com/weisyn/addrkit/internal/app/version"
)

func newVersionCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "显示版本信息",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.formatter.Print(version.GetBuildInfo())
		},
	}
}
