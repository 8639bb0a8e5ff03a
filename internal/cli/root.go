package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/sharehouse/internal/config"
	"github.com/idilsaglam/sharehouse/internal/household"
	"github.com/idilsaglam/sharehouse/internal/logger"
	"github.com/idilsaglam/sharehouse/internal/store/kvstore"
	"github.com/idilsaglam/sharehouse/internal/tui"
	"github.com/idilsaglam/sharehouse/internal/ui"
)

// usageError marks bad arguments; it maps to exit code 2.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func usagef(format string, a ...any) error {
	return usageError{msg: fmt.Sprintf(format, a...)}
}

type globalFlags struct {
	configPath string
	dataDir    string
	theme      string
	debug      bool
}

// env is what every subcommand works against once the root has set it up.
type env struct {
	cfg    config.Config
	store  *kvstore.Store
	writer *kvstore.Writer
	state  household.State

	closeLog func() error
}

// close drains pending saves and closes the log file.
func (e *env) close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := e.writer.Close(ctx)
	if err != nil {
		logger.L().Error("store.close_failed", "err", err)
	}
	if e.closeLog != nil {
		_ = e.closeLog()
	}
	return err
}

// Execute runs the CLI and returns an exit code (0 ok, 1 error, 2 usage).
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var current *env
	root := newRootCmd(&current)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	ui.SetOutput(stdout, stderr)

	err := root.Execute()
	if current != nil {
		if cerr := current.close(); cerr != nil && err == nil {
			err = fmt.Errorf("save: %w", cerr)
		}
	}
	if err == nil {
		return 0
	}
	ui.Fail(err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		return 2
	}
	return 1
}

func newRootCmd(out **env) *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:           "sharehouse",
		Short:         "ShareHouse - chores, points and shared lists for the house",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usagef("unknown subcommand: %s", args[0])
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(flags)
			if err != nil {
				return err
			}
			*out = e
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			e := *out
			return tui.Run(tui.Deps{
				Store:      e.store,
				Writer:     e.writer,
				Seed:       household.SeedFrom(e.cfg),
				State:      &e.state,
				User:       e.cfg.User,
				Housemates: e.cfg.Housemates,
				Gesture:    e.cfg.Gesture,
				Now:        time.Now,
				Logger:     logger.L(),
			})
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{msg: err.Error()}
	})

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default <data-dir>/config.yaml, or $"+config.EnvConfig+")")
	pf.StringVar(&flags.dataDir, "data-dir", "", "data directory (default ~/.sharehouse, or $"+config.EnvHome+")")
	pf.StringVar(&flags.theme, "theme", "", "color theme: classic, neon or mono")
	pf.BoolVar(&flags.debug, "debug", false, "verbose logging to <data-dir>/logs/sharehouse.log")

	cmd.AddCommand(
		choresCmd(out),
		calendarCmd(out),
		leaderboardCmd(out),
		listCmd(out, "grocery", "Grocery list"),
		listCmd(out, "cleaning", "Cleaning tasks"),
	)
	return cmd
}

// setup resolves config, starts logging and loads stored state.
func setup(flags globalFlags) (*env, error) {
	dataDir, err := config.ResolveDataDir(flags.dataDir)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(config.ResolvePath(flags.configPath, dataDir))
	if err != nil {
		return nil, err
	}
	cfg.DataDir = dataDir
	if flags.theme != "" {
		cfg.Theme = flags.theme
	}
	if flags.debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, usageError{msg: err.Error()}
	}
	ui.SetTheme(cfg.Theme)

	closeLog, err := logger.Setup(logger.Config{Dir: dataDir, Debug: cfg.Debug})
	if err != nil {
		// Logging is best effort; the app works without it.
		closeLog = nil
	}
	log := logger.L()

	path := filepath.Join(dataDir, kvstore.DataFileName)
	store, err := kvstore.Open(path)
	switch {
	case errors.Is(err, kvstore.ErrCorrupt):
		log.Warn("store.corrupt", "path", path, "err", err)
		store = kvstore.New(path)
	case err != nil:
		if closeLog != nil {
			_ = closeLog()
		}
		return nil, err
	}

	return &env{
		cfg:      cfg,
		store:    store,
		writer:   kvstore.NewWriter(store, log),
		state:    household.Load(store, household.SeedFrom(cfg), log),
		closeLog: closeLog,
	}, nil
}

// Main is the process entry point used by cmd/sharehouse.
func Main() {
	os.Exit(Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
