// Package main provides the music player entry point.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"

	"github.com/Princegabz/State-Pattern/internal/app/playback"
	"github.com/Princegabz/State-Pattern/internal/app/session"
	"github.com/Princegabz/State-Pattern/internal/app/sink"
	"github.com/Princegabz/State-Pattern/internal/infra/config"
	"github.com/Princegabz/State-Pattern/internal/infra/logger"
)

var (
	app        = kingpin.New("musicplayer", "Console music player state machine")
	configPath = app.Flag("config", "Path to config file (optional)").String()
	verbose    = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
	logfile    = app.Flag("logfile", "Path to log file (default: stderr)").String()

	// run command (default)
	runCmd    = app.Command("run", "Run the startup script, then wait for a line of input (default)").Default()
	runScript = runCmd.Flag("script", "Comma separated commands to run instead of the configured script").String()
	runNoWait = runCmd.Flag("no-wait", "Exit right after the script").Bool()

	// console command
	consoleCmd = app.Command("console", "Read player commands from stdin, one per line")

	// table command
	tableCmd = app.Command("table", "Print the transition table and exit")

	// list-sinks command
	listSinksCmd = app.Command("list-sinks", "List available sinks and exit")
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	// Parse command
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	// Handle list-sinks command
	if command == listSinksCmd.FullCommand() {
		printSinks()
		return
	}

	// Load config
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger, command-line flags override the config
	loggerConfig := logger.Config{
		Output: cfg.Log.Output,
		Level:  cfg.Log.Level,
	}
	if *verbose {
		loggerConfig.Level = "debug"
	}
	if *logfile != "" {
		loggerConfig.Output = *logfile
	}
	closer, err := logger.Init(loggerConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	if command == tableCmd.FullCommand() {
		session.WriteTable(os.Stdout, playback.NewController(nil, cfg.PlaybackMessages()))
		return
	}

	if err := run(cfg, command); err != nil {
		zlog.Error().Msgf("Player error: %v", err)
		closer.Close()
		os.Exit(1)
	}
}

// loadConfig reads the config file when one is given, else the defaults.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.Default()
	}
	if err != nil {
		return nil, err
	}

	if *runScript != "" {
		cfg.Player.Script = config.SplitScript(*runScript)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	if *runNoWait {
		wait := false
		cfg.Player.WaitForInput = &wait
	}
	return cfg, nil
}

// run executes the selected command. Using a separate function ensures
// defer statements are executed even when returning with an error.
func run(cfg *config.Config, command string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sessionMgr, err := session.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	defer sessionMgr.Close()

	zlog.Info().Msgf("Session started: id=%s", sessionMgr.SessionID())

	switch command {
	case consoleCmd.FullCommand():
		err = sessionMgr.Console(ctx, os.Stdin, os.Stdout)
	default:
		err = sessionMgr.Run(ctx, os.Stdin)
	}

	// An interrupt is a normal way to leave.
	if ctx.Err() != nil {
		zlog.Info().Msg("Received shutdown signal...")
		return nil
	}
	return err
}

// printSinks prints available sinks.
func printSinks() {
	fmt.Println("Available Sinks:")
	registry := sink.GetRegistered()
	for _, name := range sink.Names() {
		s := registry[name](sink.Env{Stdout: io.Discard, Stderr: io.Discard})
		fmt.Printf("  %-10s - %s\n", s.Name(), s.Description())
	}
}
