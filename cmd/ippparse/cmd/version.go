package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/ippcode/pkg/core/version"
)

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.Info(programName))
		},
	}
}
