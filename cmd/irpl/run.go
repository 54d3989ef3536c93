package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/r3d91ll/irpl/pkg/builtins"
	"github.com/r3d91ll/irpl/pkg/config"
	ierrors "github.com/r3d91ll/irpl/pkg/errors"
	"github.com/r3d91ll/irpl/pkg/help"
	"github.com/r3d91ll/irpl/pkg/shell"
	"github.com/r3d91ll/irpl/pkg/symbols"
)

func run(ctx context.Context, opts options, argv []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfgPath := opts.configPath
	if cfgPath == "" {
		cfgPath = config.DefaultConfigPath()
	}

	if opts.initConfig {
		if err := config.InitConfig(cfgPath); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Config initialized at: %s\n", cfgPath)
		return nil
	}

	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return err
	}
	if opts.noHints {
		cfg.Session.Hints = false
	}

	logger, err := newLogger(cfg, opts.verbose, stderr)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	workdir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	if f, ok := stdout.(*os.File); ok && ierrors.IsTTY(f) {
		help.NewRenderer(stdout, cfg.ColorEnabled()).RenderBanner("irpl v" + builtins.Version)
	}
	fmt.Fprintf(stdout, "Work path is: [%s]\n", workdir)

	sess, err := shell.New(shell.Config{
		Name:         cfg.Session.Prompt,
		Hints:        cfg.Session.Hints,
		HistoryFile:  cfg.Session.HistoryFile,
		HistoryLimit: cfg.Session.HistoryLimit,
		Color:        cfg.ColorEnabled(),
		Stdin:        stdin,
		Stdout:       stdout,
		Stderr:       stderr,
		Logger:       logger,
	}, builtins.Registry(), initialSymbols(argv, workdir, time.Now()))
	if err != nil {
		return err
	}

	logger.Info("irpl started", zap.String("version", builtins.Version), zap.String("config", cfgPath))

	err = sess.Run(ctx)
	var critical *shell.CriticalError
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		return nil
	case errors.As(err, &critical):
		logger.Error("terminated by critical failure",
			zap.String("origin", critical.Origin().Session),
			zap.Int("sessions", critical.Depth()))
		return fmt.Errorf("critical REPL error: %w", err)
	default:
		return err
	}
}

// initialSymbols builds the environment every top-level session starts from.
func initialSymbols(argv []string, workdir string, now time.Time) *symbols.Env {
	env := symbols.New(map[string]string{
		symbols.KeyVersion:       builtins.Version,
		symbols.KeyMainStartSecs: strconv.FormatInt(now.Unix(), 10),
		symbols.KeyMainWorkPath:  workdir,
	})
	for i, arg := range argv {
		env.Set(symbols.KeyMainArgPrefix+strconv.Itoa(i), arg)
	}
	return env
}
