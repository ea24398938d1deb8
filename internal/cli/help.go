package cli

import (
	"embed"
	"io/fs"
	"os"

	"github.com/arthur-debert/texty/pkg/cobrax/topics"
	"github.com/arthur-debert/texty/pkg/render"
	"github.com/arthur-debert/texty/pkg/stylesheet"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

//go:embed help/*.md help/*.txt help/*.texty
var helpFS embed.FS

// initHelpTopics installs the topic-aware help command. Markdown topics go
// through glamour, ".texty" topics through the built-in stylesheet.
func initHelpTopics(rootCmd *cobra.Command) error {
	helpDir, err := fs.Sub(helpFS, "help")
	if err != nil {
		return err
	}

	sheet, err := stylesheet.Default()
	if err != nil {
		return err
	}
	root, err := sheet.Build()
	if err != nil {
		return err
	}

	glamourRenderer := topics.NewGlamourRenderer()
	format := render.FormatTerminal
	if !isTerminal(os.Stdout) {
		glamourRenderer.Style = "notty"
		format = render.FormatText
	}

	opts := topics.Options{
		Extensions: []string{".txt", ".md", ".texty"},
		Renderer: &topics.MarkupRenderer{
			Style:   root,
			Options: formatOptions(format),
			Next:    glamourRenderer,
		},
	}
	return topics.InitializeWithOptions(rootCmd, helpDir, opts)
}

// formatOptions picks the color profile for topics written to stdout;
// the markup renderer draws into a buffer and cannot detect it.
func formatOptions(f render.Format) []render.Option {
	if f == render.FormatText {
		return []render.Option{render.WithPlain()}
	}
	return []render.Option{render.WithColorProfile(termenv.NewOutput(os.Stdout).EnvColorProfile())}
}
