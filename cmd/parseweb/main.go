package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
	"github.com/twipi/parseform/config"
	"github.com/twipi/parseform/internal/cfgutil"
	"github.com/twipi/parseform/parseapi"
	"github.com/twipi/parseform/parseform"
	"github.com/twipi/parseform/webform"
	"libdb.so/hserve"
)

var (
	configFile = ""
	listenAddr = ""
	endpoint   = ""
	verbosity  = 0
	jsonLog    = false
)

func main() {
	pflag.StringVarP(&configFile, "config", "c", configFile, "path to a TOML, JSON or YAML config file")
	pflag.StringVarP(&listenAddr, "listen", "l", listenAddr, "listen address (default :8080)")
	pflag.StringVarP(&endpoint, "url", "u", endpoint, "base URL of the parsing service (default "+parseapi.DefaultBaseURL+")")
	pflag.CountVarP(&verbosity, "verbose", "v", "verbosity level: info (0), debug (1)")
	pflag.BoolVarP(&jsonLog, "json-log", "j", jsonLog, "log output as JSON to stdout")
	pflag.Parse()

	logger := setupLogging()
	slog.SetDefault(logger)

	if err := config.LoadEnv(); err != nil {
		logger.Error("failed to load .env", tint.Err(err))
		os.Exit(1)
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		logger.Error(
			"failed to load config",
			"path", configFile,
			tint.Err(err))
		os.Exit(1)
	}

	if endpoint != "" {
		cfg.Endpoint = cfgutil.EnvString(endpoint)
	}
	if listenAddr != "" {
		cfg.Web.ListenAddr = listenAddr
	}

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", tint.Err(err))
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	client := parseapi.NewClient(cfg.Endpoint.String(), logger)
	form := parseform.NewHandler(client)

	r := chi.NewMux()
	r.Handle("/metrics", promhttp.Handler())
	r.Mount("/", webform.New(form, logger))

	logger.Info(
		"starting server",
		"listen_addr", cfg.Web.ListenAddr,
		"endpoint", client.Endpoint())

	if err := hserve.ListenAndServe(ctx, cfg.Web.ListenAddr, r); err != nil {
		logger.Error(
			"failed to start server",
			"listen_addr", cfg.Web.ListenAddr,
			"err", err)

		os.Exit(1)
	}
}

func setupLogging() *slog.Logger {
	level := cfgutil.VerbosityToLevel(slog.LevelInfo, verbosity)

	var handler slog.Handler
	if jsonLog {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	} else {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:   level,
			NoColor: os.Getenv("NO_COLOR") != "",
		})
	}

	return slog.New(handler)
}
