package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vipcxj/rangeview/internal/slice"
)

func newPow2Cmd() *cobra.Command {
	pow2Cmd := &cobra.Command{
		Use:   "pow2 N...",
		Short: "Round each number up to the nearest power of two",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runPow2,
	}
	pow2Cmd.Flags().Bool("checked", false, "Fail instead of wrapping when the result does not fit in 64 bits")
	return pow2Cmd
}

func runPow2(cmd *cobra.Command, args []string) error {
	_, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	checked, err := cmd.Flags().GetBool("checked")
	if err != nil {
		return err
	}
	return slice.RunPow2(args, checked, cmd.OutOrStdout(), log)
}
