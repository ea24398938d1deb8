package cli

import (
	"fmt"

	"github.com/arthur-debert/texty/internal/commands"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: commands.MsgConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, src := range a.cfg.Sources {
				fmt.Fprintf(out, "# source: %s\n", src)
			}
			enc := toml.NewEncoder(out)
			enc.SetIndentTables(true)
			return enc.Encode(a.cfg)
		},
	}
	return cmd
}
