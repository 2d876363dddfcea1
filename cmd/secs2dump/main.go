// Command secs2dump decodes SECS-II items from files or stdin and prints them as
// SML, YAML or a flattened address map.
//
// Usage:
//
//	secs2dump [-config secs2dump.toml] [-format sml|yaml|addr] [-hex] [-strict]
//	          [-single-quote] [-workers n] [-log-level info] file... | -
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/arloliu/go-secs2/logger"
	"github.com/arloliu/go-secs2/secs2"
)

func main() {
	log := logger.NewSlog(logger.InfoLevel, false)
	logger.SetLogger(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, log); err != nil {
		log.Error("secs2dump failed", "error", err)
		stop()
		os.Exit(1) //nolint:gocritic
	}
}

func run(ctx context.Context, args []string, stdout io.Writer, log logger.Logger) error {
	cfg, inputs, err := parseArgs(args)
	if err != nil {
		return err
	}

	log.SetLevel(cfg.LogLevel)
	if cfg.StrictASCII {
		secs2.WithStrictMode(true)
	}
	if cfg.SingleQuote {
		secs2.UseASCIISingleQuote()
	}

	d := NewDumper(cfg, log)
	if err := d.Run(ctx, stdout, inputs); err != nil {
		return err
	}
	d.LogSummary()

	return nil
}

// parseArgs builds the configuration from defaults, the optional config file
// and the command-line flags, in increasing precedence.
func parseArgs(args []string) (Config, []string, error) {
	fs := flag.NewFlagSet("secs2dump", flag.ContinueOnError)

	configPath := fs.String("config", "", "path to a TOML config file")
	format := fs.String("format", FormatSML, "output format: sml, yaml or addr")
	hexInput := fs.Bool("hex", false, "inputs are hex text instead of raw bytes")
	strict := fs.Bool("strict", false, "render non-printable ASCII characters as hex")
	singleQuote := fs.Bool("single-quote", false, "quote ASCII items with single quotes")
	workers := fs.Int("workers", 0, "number of inputs decoded concurrently")
	logLevel := fs.String("log-level", "info", "log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return Config{}, nil, err
	}

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = loadConfig(*configPath, cfg)
		if err != nil {
			return Config{}, nil, err
		}
	}

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = strings.ToLower(strings.TrimSpace(*format))
		case "hex":
			cfg.Hex = *hexInput
		case "strict":
			cfg.StrictASCII = *strict
		case "single-quote":
			cfg.SingleQuote = *singleQuote
		case "workers":
			cfg.Workers = *workers
		case "log-level":
			level, err := logger.ParseLevel(*logLevel)
			if err != nil {
				flagErr = err
				return
			}
			cfg.LogLevel = level
		}
	})
	if flagErr != nil {
		return Config{}, nil, flagErr
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, nil, err
	}

	inputs := fs.Args()
	if len(inputs) == 0 {
		return Config{}, nil, fmt.Errorf("no input files, use %q to read stdin", stdinName)
	}

	return cfg, inputs, nil
}
