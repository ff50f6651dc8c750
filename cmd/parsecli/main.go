package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/lmittmann/tint"
	"github.com/spf13/pflag"
	"github.com/twipi/parseform/config"
	"github.com/twipi/parseform/internal/cfgutil"
	"github.com/twipi/parseform/internal/slogctx"
	"github.com/twipi/parseform/parseapi"
	"github.com/twipi/parseform/parsecli"
	"github.com/twipi/parseform/parseform"
)

var (
	configFile = ""
	endpoint   = ""
	verbosity  = 0
	fieldFlags = map[string]*string{}
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  %s [flags]\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Without field flags, the fields are read interactively.\n")
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		pflag.PrintDefaults()
	}
	pflag.StringVarP(&configFile, "config", "c", configFile, "path to a TOML, JSON or YAML config file")
	pflag.StringVarP(&endpoint, "url", "u", endpoint, "base URL of the parsing service (default "+parseapi.DefaultBaseURL+")")
	pflag.CountVarP(&verbosity, "verbose", "v", "verbosity level: info (0), debug (1)")
	fieldFlags[parseapi.FieldDocxIn] = pflag.String("docx-in", "", "input DOCX file")
	fieldFlags[parseapi.FieldXLSXIn] = pflag.String("xlsx-in", "", "input XLSX file")
	fieldFlags[parseapi.FieldDocxOut] = pflag.String("docx-out", "", "output DOCX file")
	fieldFlags[parseapi.FieldXLSXOut] = pflag.String("xlsx-out", "", "output XLSX file")
	pflag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if !start(ctx) {
		os.Exit(1)
	}
}

func start(ctx context.Context) bool {
	if fieldsGiven() {
		return once(ctx)
	}

	reader, err := readline.New("")
	if err != nil {
		slog.Error(
			"failed to create readline instance",
			"err", err)
		return false
	}
	defer reader.Close()

	logger := setupLogging(reader.Stdout())

	form, ok := newForm(logger)
	if !ok {
		return false
	}

	ctx = slogctx.With(ctx, logger)
	view := parsecli.NewTerminalView(reader.Stdout())

	logger.Info("enter the four file paths to submit the form, Ctrl+D to quit")
	if err := parsecli.NewPrompt(reader, form, view).Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("failed to read input", tint.Err(err))
		return false
	}

	return true
}

func once(ctx context.Context) bool {
	logger := setupLogging(os.Stderr)

	form, ok := newForm(logger)
	if !ok {
		return false
	}

	fields := parseform.FieldsFunc(func(name string) string {
		return *fieldFlags[name]
	})

	ctx = slogctx.With(ctx, logger)
	view := parsecli.NewTerminalView(os.Stdout)

	return parsecli.Once(ctx, form, view, fields) == nil
}

func fieldsGiven() bool {
	for name := range fieldFlags {
		if pflag.CommandLine.Changed(flagName(name)) {
			return true
		}
	}
	return false
}

// flagName converts a field name into its flag name, e.g. docx_in to docx-in.
func flagName(field string) string {
	return strings.ReplaceAll(field, "_", "-")
}

func newForm(logger *slog.Logger) (*parseform.Handler, bool) {
	if err := config.LoadEnv(); err != nil {
		logger.Error("failed to load .env", tint.Err(err))
		return nil, false
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		logger.Error(
			"failed to load config",
			"path", configFile,
			tint.Err(err))
		return nil, false
	}

	if endpoint != "" {
		cfg.Endpoint = cfgutil.EnvString(endpoint)
	}

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", tint.Err(err))
		return nil, false
	}

	client := parseapi.NewClient(cfg.Endpoint.String(), logger)
	logger.Debug("using parsing service", "endpoint", client.Endpoint())

	return parseform.NewHandler(client), true
}

func setupLogging(w io.Writer) *slog.Logger {
	logger := slog.New(tint.NewHandler(w, &tint.Options{
		Level:   cfgutil.VerbosityToLevel(slog.LevelInfo, verbosity),
		NoColor: os.Getenv("NO_COLOR") != "",
	}))
	slog.SetDefault(logger)
	return logger
}
