package main

import (
	"fmt"

	"github.com/gogpu/cmdchain/recording"
	"github.com/spf13/cobra"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List the registered recording targets",
	Long:  `Lists every registered recording target. The target used when --target is omitted is marked with '*'.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		best := recording.DefaultName()
		for _, name := range recording.Targets() {
			mark := " "
			if name == best {
				mark = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", mark, name)
		}
	},
}

func init() {
	rootCmd.AddCommand(targetsCmd)
}
