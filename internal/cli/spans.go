package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/texty/internal/commands"
	"github.com/arthur-debert/texty/pkg/render"
	"github.com/arthur-debert/texty/pkg/style"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newSpansCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "spans [text...]",
		Short: commands.MsgSpansShort,
		Long:  commands.MsgSpansLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}

			root, err := a.styleTree()
			if err != nil {
				return err
			}
			res, err := root.ResolveString(text)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.outputFormat(out) == render.FormatXML {
				return render.WriteXML(out, res)
			}

			if len(res.Spans) == 0 {
				_, err = fmt.Fprintln(out, commands.MsgNoSpans)
				return err
			}

			table, err := spansTable(res, writerIsTerminal(out))
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, table)
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "i", "", commands.MsgFlagFile)

	return cmd
}

func spansTable(res *style.Rendered, color bool) (string, error) {
	if !color {
		pterm.DisableColor()
		defer pterm.EnableColor()
	}

	data := pterm.TableData{{"TAG", "START", "LENGTH", "DEPTH", "PARENTS", "STYLE", "TEXT"}}
	for _, sp := range res.Spans {
		registered := "yes"
		if !sp.Registered {
			registered = "no"
		}
		data = append(data, []string{
			sp.Name,
			strconv.Itoa(sp.Range.Start),
			strconv.Itoa(sp.Range.Length),
			strconv.Itoa(sp.Depth),
			strings.Join(parentsOf(res, sp), " > "),
			registered,
			strconv.Quote(res.Text[sp.Bytes.Start:sp.Bytes.End()]),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", err
	}
	return table + "\n", nil
}

// parentsOf names the spans that enclose sp, outermost first
func parentsOf(res *style.Rendered, sp style.AppliedSpan) []string {
	var parents []string
	for _, other := range res.Spans {
		if other.Depth < sp.Depth && other.Range.Contains(sp.Range) {
			parents = append(parents, other.Name)
		}
	}
	return parents
}
