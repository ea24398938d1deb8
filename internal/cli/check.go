package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/texty/internal/commands"
	"github.com/arthur-debert/texty/pkg/errors"
	"github.com/arthur-debert/texty/pkg/markup"
	"github.com/arthur-debert/texty/pkg/style"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:     "check [text...]",
		Short:   commands.MsgCheckShort,
		Long:    commands.MsgCheckLong,
		Example: commands.MsgCheckExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}
			return a.check(cmd.OutOrStdout(), text)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "i", "", commands.MsgFlagFile)

	return cmd
}

// check reports malformed markup first, then tags with no style.
func (a *app) check(w io.Writer, text string) error {
	color := writerIsTerminal(w)

	if _, err := markup.Extract(text); err != nil {
		printStatus(w, pterm.Error, color, fmt.Sprintf(commands.MsgCheckMalformed, err))
		return errors.Wrap(err, errors.GetErrorCode(err), commands.MsgErrCheckFailed)
	}

	root, err := a.styleTree()
	if err != nil {
		return err
	}
	// collect every unregistered tag rather than stopping at the first
	root.SetPolicy(style.PolicyReport)

	res, err := root.ResolveString(text)
	if err != nil {
		return err
	}
	if err := res.Err(); err != nil {
		printStatus(w, pterm.Warning, color,
			fmt.Sprintf(commands.MsgCheckUnregistered, strings.Join(res.Unregistered, ", ")))
		return errors.Wrap(err, errors.ErrUnregisteredTag, commands.MsgErrCheckFailed)
	}

	tags, _ := markup.Scan(text)
	printStatus(w, pterm.Success, color, fmt.Sprintf(commands.MsgCheckOK, len(tags)))
	return nil
}

func printStatus(w io.Writer, p pterm.PrefixPrinter, color bool, msg string) {
	if !color {
		pterm.DisableColor()
		defer pterm.EnableColor()
	}
	fmt.Fprint(w, p.Sprintln(msg))
}
