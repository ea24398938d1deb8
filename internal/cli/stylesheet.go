package cli

import (
	"github.com/arthur-debert/texty/internal/commands"
	"github.com/arthur-debert/texty/pkg/stylesheet"
	"github.com/spf13/cobra"
)

func newStylesheetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stylesheet",
		Short: commands.MsgStylesheetShort,
	}
	cmd.AddCommand(newStylesheetShowCmd(a))
	return cmd
}

func newStylesheetShowCmd(a *app) *cobra.Command {
	var (
		format      string
		showDefault bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: commands.MsgSheetShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if showDefault {
				_, err := out.Write(stylesheet.DefaultSource())
				return err
			}

			f, err := stylesheet.ParseFormat(format)
			if err != nil {
				return err
			}
			sheet, err := a.loadSheet()
			if err != nil {
				return err
			}
			return sheet.Dump(out, f)
		},
	}

	cmd.Flags().StringVar(&format, "as", "yaml", commands.MsgFlagSheetFmt)
	cmd.Flags().BoolVar(&showDefault, "default", false, commands.MsgFlagDefault)

	return cmd
}
