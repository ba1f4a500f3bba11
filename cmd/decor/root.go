package decor

import (
	"fmt"
	"io"

	"github.com/arthur-debert/decor/internal/version"
	"github.com/arthur-debert/decor/pkg/cobrax/topics"
	"github.com/arthur-debert/decor/pkg/config"
	"github.com/arthur-debert/decor/pkg/core"
	"github.com/arthur-debert/decor/pkg/errors"
	"github.com/arthur-debert/decor/pkg/logging"
	"github.com/arthur-debert/decor/pkg/ui"
	"github.com/arthur-debert/decor/pkg/ui/styles"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app carries the global flags and the configuration loaded for a run
type app struct {
	verbosity  int
	format     string
	configFile string
	stylesFile string

	cfg *config.Config
}

// setup loads configuration, logging and styles before any command runs
func (a *app) setup(cmd *cobra.Command, args []string) error {
	opts := config.Options{File: a.configFile}
	if a.format != "" {
		opts.Overrides = map[string]interface{}{"output.format": a.format}
	}
	cfg, err := config.Load(opts)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logging.SetupLoggerWithOptions(logging.Options{
		Verbosity: a.verbosity,
		NoFile:    !cfg.Logging.File,
		Console:   cmd.ErrOrStderr(),
	})
	logging.LogCommand(cmd.CommandPath(), args)
	log.Debug().Strs("sources", cfg.Sources).Msg("Configuration loaded")

	if a.stylesFile != "" {
		if err := styles.Load(a.stylesFile); err != nil {
			return err
		}
	}

	return core.Initialize()
}

// outputFormat is output.format, which --format overrides
func (a *app) outputFormat() (ui.Format, error) {
	if a.cfg == nil {
		return ui.FormatAuto, nil
	}
	return ui.ParseFormat(a.cfg.Output.Format)
}

// render writes v to the command's output in the selected format
func (a *app) render(cmd *cobra.Command, v interface{}) error {
	format, err := a.outputFormat()
	if err != nil {
		return err
	}
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err := renderer.RenderResult(v); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to write output")
	}
	return nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "decor",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help and report incorrect usage
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&a.format, "format", "f", "", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&a.stylesFile, "styles", "", MsgFlagStyles)

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return config.OutputFormats, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newDescribeCmd(a))
	rootCmd.AddCommand(newRenderCmd(a))
	rootCmd.AddCommand(newPoliciesCmd(a))
	rootCmd.AddCommand(newKindsCmd(a))
	rootCmd.AddCommand(newInitCmd(a))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	opts := topics.Options{Renderer: &topics.PlainRenderer{}}
	if stdoutIsTerminal() {
		opts.Renderer = topics.NewGlamourRenderer()
	}
	if err := topics.InitializeWithOptions(rootCmd, Topics(), opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Same output as "help topics"
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd.Name() == "help" {
				if helpCmd.RunE != nil {
					return helpCmd.RunE(helpCmd, []string{"topics"})
				} else if helpCmd.Run != nil {
					helpCmd.Run(helpCmd, []string{"topics"})
					return nil
				}
			}
			return errors.New(errors.ErrInternal, MsgErrNoHelp)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgVersionLine, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return GenCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}
}

// GenCompletion writes the completion script for shell
func GenCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown shell: %s (supported: bash, zsh, fish, powershell)", shell)
	}
}
