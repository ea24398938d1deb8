package cli

import (
	"fmt"

	"github.com/arthur-debert/texty/internal/commands"
	"github.com/arthur-debert/texty/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: commands.MsgVersionShort,
		Long:  commands.MsgVersionLong,
		Args:  cobra.NoArgs,
		// version needs no configuration
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, commands.MsgVersionFormat, version.Version)
			if version.Commit != "unknown" {
				fmt.Fprintf(out, commands.MsgCommitFormat, version.Commit)
			}
			if version.Date != "unknown" {
				fmt.Fprintf(out, commands.MsgBuiltFormat, version.Date)
			}
		},
	}
}
