package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rpgo/formkit/internal/behavior"
	"github.com/rpgo/formkit/internal/config"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configFile string
	lang       string
	logLevel   string

	cfg  *config.Configuration
	log  behavior.Logger
	opts behavior.Options
}

// NewRootCmd builds the formkit command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "formkit",
		Short:         "Brazilian Real formatting and form-page behaviors",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.lang, "lang", "", "page language preset (en, pt-BR)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(
		currencyCmd(a),
		maskCmd(a),
		renderCmd(a),
		pageCmd(a),
		searchCmd(a),
		rangeCmd(a),
		attachCmd(a),
	)
	return root
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) setup(cmd *cobra.Command) error {
	loader := config.NewLoader().WithLanguage(a.lang)

	var err error
	if a.configFile != "" {
		a.cfg, err = loader.LoadFromFile(a.configFile)
	} else {
		a.cfg, err = loader.Load([]byte("{}"))
	}
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		a.cfg.LogLevel = a.logLevel
		if err := loader.ValidateConfiguration(a.cfg); err != nil {
			return err
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(a.cfg.LogLevel)); err != nil {
		return fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	a.log = behavior.NewSlogLogger(slog.New(handler))

	a.opts, err = a.cfg.BehaviorOptions(a.log)
	if err != nil {
		return err
	}
	a.log.Debugf("language %s, config %q", a.cfg.Language, a.configFile)
	return nil
}
