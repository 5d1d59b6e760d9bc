package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/spf13/viper"

	"github.com/Al69m/top10-streaming-fr/internal/config"
)

// stdout receives command output. Logs go to stderr.
var stdout io.Writer = os.Stdout

// CLI represents the complete command structure for the top10 application
type CLI struct {
	Config   string `help:"Path to config file (defaults to ./config.yaml when present)" type:"path"`
	LogLevel string `help:"Log level" enum:"debug,info,warn,error" default:"info"`
	LogFile  string `help:"Also write logs to this file, rotated by size" type:"path"`

	Scrape   ScrapeCmd   `cmd:"" help:"Build every catalog once and write JSON snapshots"`
	Serve    ServeCmd    `cmd:"" help:"Serve the catalogs as a Stremio addon"`
	List     ListCmd     `cmd:"" help:"Build one catalog and print it"`
	Manifest ManifestCmd `cmd:"" help:"Print the addon manifest"`
}

func kongOptions(extra ...kong.Option) []kong.Option {
	opts := []kong.Option{
		kong.Name("top10"),
		kong.Description("Daily streaming Top 10 catalogs for France: FlixPatrol, TMDB and RPDB into Stremio."),
		kong.UsageOnError(),
	}
	return append(opts, extra...)
}

// Execute runs the Kong-based CLI
func Execute() {
	signalCtx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	var cli CLI
	ctx := kong.Parse(&cli, kongOptions(kong.BindTo(signalCtx, (*context.Context)(nil)))...)

	code := run(ctx, &cli)
	cancel()
	os.Exit(code)
}

func run(ctx *kong.Context, cli *CLI) int {
	cfg, err := loadConfig(cli)
	if err != nil {
		initLogging(os.Stderr, cli.LogLevel)
		slog.Error("Invalid configuration", "error", err)
		return 1
	}

	closer, err := setupLogging(cli.LogLevel, cfg.Log.File)
	if err != nil {
		slog.Error("Failed to open log file", "file", cfg.Log.File, "error", err)
		return 1
	}
	defer func() { _ = closer.Close() }()

	if err := ctx.Run(cfg); err != nil {
		slog.Error("Command failed", "command", ctx.Command(), "error", err)
		return 1
	}
	return 0
}

// loadConfig builds the configuration from defaults, the config file, the
// environment and finally the global flags.
func loadConfig(cli *CLI) (*config.Config, error) {
	v := viper.New()
	config.SetDefaults(v)
	if err := config.BindEnv(v); err != nil {
		return nil, err
	}
	if err := config.ReadFile(v, cli.Config); err != nil {
		return nil, err
	}

	if cli.LogFile != "" {
		v.Set("log.file", cli.LogFile)
	}
	v.Set("log.level", cli.LogLevel)

	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
