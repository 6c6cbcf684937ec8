package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/tartampluch/birthday-board/internal/config"
	"github.com/tartampluch/birthday-board/internal/engine"
	"github.com/tartampluch/birthday-board/internal/i18n"
	"github.com/tartampluch/birthday-board/internal/notify"
	"github.com/tartampluch/birthday-board/internal/render"
	"github.com/tartampluch/birthday-board/internal/roster"
	"github.com/tartampluch/birthday-board/internal/server"
	"github.com/tartampluch/birthday-board/internal/storage"
)

// main delegates to runMain so deferred calls run before the process
// terminates; os.Exit does not run defers.
func main() {
	os.Exit(runMain())
}

// runMain manages the application lifecycle, argument parsing, and exit codes.
func runMain() int {
	showVersion := flag.Bool(config.FlagVersion, false, config.FlagDescVersion)
	debugMode := flag.Bool(config.FlagDebug, false, config.FlagDescDebug)
	flag.Parse()

	if *showVersion {
		printVersion()
		return config.ExitCodeSuccess
	}

	setupLogging(*debugMode)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()

	if err := run(ctx); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// run loads configuration, wires dependencies, and serves until the
// context is cancelled.
func run(ctx context.Context) error {
	// Best-effort .env loading; containers pass real env vars instead.
	if err := godotenv.Load(); err != nil {
		slog.Debug(config.MsgEnvMissing, config.LogKeyComponent, config.CompMain)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Missing background or bubble is a startup-fatal precondition; a
	// degraded font is not.
	assets, err := render.LoadAssets(cfg.AssetDir)
	if err != nil {
		return err
	}

	generator := &engine.Generator{
		Clock:   engine.RealClock{},
		Fetcher: engine.NewHTTPImageFetcher(),
		Assets:  assets,
	}

	loader := roster.NewLoader(roster.NewHTTPFetcher())

	sink, err := storage.NewDiskSink(cfg.OutputDir, cfg.PublicBaseURL)
	if err != nil {
		return err
	}

	var notifier notify.Notifier
	if cfg.SlackWebhookURL != "" {
		notifier = notify.NewSlackWebhook(cfg.SlackWebhookURL)
	}

	translator := i18n.NewTranslator(cfg.Language)

	srv := server.New(cfg, generator, loader, sink, notifier, translator)
	return srv.Start(ctx)
}

// printVersion outputs the build information to stdout.
func printVersion() {
	fmt.Printf(config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger on stdout.
func setupLogging(debugMode bool) {
	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, opts)))
}
