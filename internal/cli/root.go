package cli

import (
	"io"
	"os"

	"github.com/arthur-debert/texty/internal/commands"
	"github.com/arthur-debert/texty/internal/version"
	"github.com/arthur-debert/texty/pkg/config"
	"github.com/arthur-debert/texty/pkg/errors"
	"github.com/arthur-debert/texty/pkg/logging"
	"github.com/arthur-debert/texty/pkg/render"
	"github.com/arthur-debert/texty/pkg/style"
	"github.com/arthur-debert/texty/pkg/stylesheet"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalFlags are the persistent flags shared by every command
type globalFlags struct {
	verbosity  int
	configPath string
	stylesheet string
	format     string
	strict     bool
	width      int
	profile    string
}

// app carries state built once per invocation
type app struct {
	flags globalFlags
	cfg   *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "texty",
		Short:   commands.MsgRootShort,
		Long:    commands.MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&a.flags.verbosity, "verbose", "v", commands.MsgFlagVerbose)
	flags.StringVar(&a.flags.configPath, "config", "", commands.MsgFlagConfig)
	flags.StringVarP(&a.flags.stylesheet, "stylesheet", "s", "", commands.MsgFlagStylesheet)
	flags.StringVarP(&a.flags.format, "format", "f", "", commands.MsgFlagFormat)
	flags.BoolVar(&a.flags.strict, "strict", false, commands.MsgFlagStrict)
	flags.IntVarP(&a.flags.width, "width", "w", 0, commands.MsgFlagWidth)
	flags.StringVar(&a.flags.profile, "profile", "", commands.MsgFlagProfile)

	rootCmd.AddCommand(newRenderCmd(a))
	rootCmd.AddCommand(newStripCmd(a))
	rootCmd.AddCommand(newSpansCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newStylesheetCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	initTemplateFormatting()
	rootCmd.SetUsageTemplate(usageTemplate)
	if err := initHelpTopics(rootCmd); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// setup loads the configuration, letting flags that were set override it,
// and configures logging.
func (a *app) setup(cmd *cobra.Command) error {
	overrides := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("stylesheet") {
		overrides["stylesheet"] = a.flags.stylesheet
	}
	if flags.Changed("format") {
		overrides["render.format"] = a.flags.format
	}
	if flags.Changed("strict") {
		overrides["render.strict"] = a.flags.strict
	}
	if flags.Changed("width") {
		overrides["render.width"] = a.flags.width
	}
	if flags.Changed("profile") {
		overrides["render.profile"] = a.flags.profile
	}

	cfg, err := config.Load(config.Options{
		Path:      a.flags.configPath,
		Overrides: overrides,
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigLoad, commands.MsgErrLoadConfig)
	}
	a.cfg = cfg

	logging.SetupLoggerWithOptions(logging.Options{
		Verbosity: a.flags.verbosity,
		Level:     cfg.Logging.Level,
		File:      cfg.Logging.File,
		Console:   cmd.ErrOrStderr(),
	})
	logging.LogCommand(cmd.CommandPath(), os.Args[1:])
	log.Debug().Strs("sources", cfg.Sources).Msg("Configuration loaded")

	return nil
}

// loadSheet merges the configured stylesheet over the built-in one
func (a *app) loadSheet() (*stylesheet.Sheet, error) {
	sheet, err := stylesheet.LoadLayered(a.cfg.Stylesheet)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrStylesheetLoad, commands.MsgErrStylesheet)
	}
	return sheet, nil
}

// styleTree builds the root style, honoring --strict
func (a *app) styleTree() (*style.Style, error) {
	sheet, err := a.loadSheet()
	if err != nil {
		return nil, err
	}
	root, err := sheet.Build()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrStylesheetInvalid, commands.MsgErrStylesheet)
	}
	if a.cfg.Render.Strict {
		root.SetPolicy(style.PolicyFail)
	}
	return root, nil
}

// outputFormat resolves auto against the writer the command prints to
func (a *app) outputFormat(w io.Writer) render.Format {
	f := a.cfg.Format()
	if f != render.FormatAuto {
		return f
	}
	if file, ok := w.(*os.File); ok {
		return render.DetectFormat(file)
	}
	return render.FormatText
}

// renderer creates a terminal renderer configured for w
func (a *app) renderer(w io.Writer, f render.Format) *render.Renderer {
	opts := []render.Option{
		render.WithWidth(a.cfg.Render.Width),
		render.WithHyperlinks(a.cfg.Render.Hyperlinks),
	}
	if profile, ok, _ := render.ParseProfile(a.cfg.Render.Profile); ok {
		opts = append(opts, render.WithColorProfile(profile))
	} else if f == render.FormatTerminal {
		if file, isFile := w.(*os.File); isFile {
			opts = append(opts, render.WithColorProfile(termenv.NewOutput(file).EnvColorProfile()))
		}
	}
	return render.ForFormat(w, f, opts...)
}
