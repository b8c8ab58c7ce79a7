package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/iudanet/cardinput/internal/i18n"
)

const (
	envLang     = "CARDINPUT_LANG"
	envLogLevel = "CARDINPUT_LOG_LEVEL"
	envNoColor  = "NO_COLOR"

	defaultLogLevel = "warn"
)

type config struct {
	Lang        string
	Command     string
	Args        []string
	LogLevel    slog.Level
	Color       bool
	ShowVersion bool
}

// parseConfig reads options with priority: flag, then environment, then default.
func parseConfig(args []string, getenv func(string) string) (*config, error) {
	fs := flag.NewFlagSet("cardinput", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	showVersion := fs.Bool("version", false, "Show version information")
	lang := fs.String("lang", "", "Message language (en, ru)")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error")
	noColor := fs.Bool("no-color", false, "Disable colored output")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	cfg := &config{
		ShowVersion: *showVersion,
		Lang:        firstNonEmpty(*lang, getenv(envLang), i18n.DefaultLanguage),
		Color:       !*noColor && getenv(envNoColor) == "",
	}

	levelName := firstNonEmpty(*logLevel, getenv(envLogLevel), defaultLogLevel)
	if err := cfg.LogLevel.UnmarshalText([]byte(levelName)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", levelName, err)
	}

	if rest := fs.Args(); len(rest) > 0 {
		cfg.Command = rest[0]
		cfg.Args = rest[1:]
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
