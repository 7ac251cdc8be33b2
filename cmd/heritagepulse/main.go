package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/BrandonKowalski/heritagepulse/pkg/heritage"
	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/config"
	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/constants"
	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/shell"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	lang       string
	logLevel   string
	history    bool

	app *heritage.App
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "heritagepulse",
		Short: "Heritage Pulse - stories of India's living heritage",
		Long: `Heritage Pulse is a reader for articles, events and museums about
Indian culture, available in English, Telugu, Tamil and Kannada.

Run without arguments to start the interactive reader.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// The interactive reader owns the terminal, so logs only go to the file.
			console := cmd.Name() != "heritagepulse" && constants.IsDevMode()
			return opts.load(cmd, console)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return shell.Run(cmd.Context(), opts.app)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "heritage.toml", "Config file")
	cmd.PersistentFlags().StringVarP(&opts.lang, "lang", "l", "", "Language code (en, te, ta, kn)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&opts.history, "history", false, "Remember every screen visited for back navigation")

	cmd.AddCommand(
		newSectionsCmd(opts),
		newShowCmd(opts),
		newSavedCmd(opts),
	)
	return cmd
}

// load reads configuration, applies flag overrides and builds the app.
func (o *rootOptions) load(cmd *cobra.Command, console bool) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return heritage.NewInfrastructureError("load_config", err)
	}

	flags := cmd.Flags()
	if flags.Changed("lang") {
		cfg.Language = o.lang
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
		if err := cfg.Validate(); err != nil {
			return heritage.NewInfrastructureError("load_config", err)
		}
	}
	if flags.Changed("history") {
		cfg.History = o.history
	}

	app, err := heritage.New(heritage.Options{Config: cfg, Console: console})
	if err != nil {
		return err
	}
	o.app = app
	return nil
}

// execute runs the command tree and closes the app on every path, including
// a failed RunE, which skips cobra's post-run hooks.
func execute(ctx context.Context, cmd *cobra.Command, opts *rootOptions) error {
	defer func() {
		if opts.app != nil {
			opts.app.Close()
			opts.app = nil
		}
	}()
	return cmd.ExecuteContext(ctx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := &rootOptions{}
	if err := execute(ctx, newRootCmd(opts), opts); err != nil {
		if heritage.IsCancelled(err) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
