package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/texty/internal/commands"
	"github.com/arthur-debert/texty/pkg/errors"
	"github.com/arthur-debert/texty/pkg/markup"
	"github.com/arthur-debert/texty/pkg/render"
	"github.com/arthur-debert/texty/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		file string
		sets []string
	)

	cmd := &cobra.Command{
		Use:     "render [text...]",
		Short:   commands.MsgRenderShort,
		Long:    commands.MsgRenderLong,
		Example: commands.MsgRenderExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}

			if len(sets) > 0 {
				data, err := parseSets(sets)
				if err != nil {
					return err
				}
				if text, err = render.Expand(text, data); err != nil {
					return err
				}
			}

			root, err := a.styleTree()
			if err != nil {
				return err
			}

			res, err := root.ResolveString(text)
			if err != nil {
				return err
			}
			if len(res.Unregistered) > 0 {
				log.Info().Strs("tags", res.Unregistered).Msg("Rendered tags without a style")
			}

			return a.write(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "i", "", commands.MsgFlagFile)
	cmd.Flags().StringArrayVar(&sets, "set", nil, commands.MsgFlagSet)

	return cmd
}

func newStripCmd(a *app) *cobra.Command {
	var (
		file    string
		lenient bool
	)

	cmd := &cobra.Command{
		Use:   "strip [text...]",
		Short: commands.MsgStripShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args, file)
			if err != nil {
				return err
			}

			if lenient {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), markup.Strip(text))
				return err
			}

			res, err := markup.Extract(text)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Text)
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "i", "", commands.MsgFlagFile)
	cmd.Flags().BoolVar(&lenient, "lenient", false, commands.MsgFlagLenient)

	return cmd
}

// write prints res in the configured output format
func (a *app) write(w io.Writer, res *style.Rendered) error {
	f := a.outputFormat(w)
	if f == render.FormatXML {
		return render.WriteXML(w, res)
	}
	if _, err := fmt.Fprintln(w, a.renderer(w, f).Render(res)); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to write output")
	}
	return nil
}

// parseSets turns key=value flags into template data
func parseSets(sets []string) (map[string]string, error) {
	data := make(map[string]string, len(sets))
	for _, set := range sets {
		key, value, ok := strings.Cut(set, "=")
		if !ok || key == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, commands.MsgErrBadSet, set)
		}
		data[key] = value
	}
	return data, nil
}
