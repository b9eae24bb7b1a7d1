package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/watfreq/analyzer"
	"github.com/wippyai/watfreq/config"
	"github.com/wippyai/watfreq/errors"
	"github.com/wippyai/watfreq/wasm"
	"github.com/wippyai/watfreq/wat"
)

func main() {
	var (
		length      = flag.Int("n", 0, "window length (default from config, else 5)")
		exact       = flag.Bool("exact", false, "only count full n-token windows")
		lex         = flag.Bool("lex", false, "use the WAT lexer instead of the regex scan")
		format      = flag.String("format", "", "output format: plain, table or json")
		top         = flag.Int("top", 0, "print only the K most frequent sequences (0 = all)")
		validate    = flag.Bool("validate", false, "validate binary input with wazero before analyzing")
		configPath  = flag.String("config", "", "config file path")
		initConfig  = flag.Bool("init-config", false, "write the sample config and exit")
		interactive = flag.Bool("i", false, "interactive mode with TUI")
		verbose     = flag.Bool("v", false, "verbose logging to stderr")
	)
	flag.Parse()

	if *initConfig {
		path, err := resolveConfigPath(*configPath)
		if err == nil {
			err = config.WriteSample(path)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(path)
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: watfreq [-n length] [-exact] [-lex] [-format plain|table|json] [-top k] [-validate] <file>")
		fmt.Fprintln(os.Stderr, "       watfreq -i <file>  (interactive mode)")
		fmt.Fprintln(os.Stderr, "       watfreq -init-config")
		os.Exit(1)
	}
	file := flag.Arg(0)

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			analyzer.SetLogger(logger)
			defer logger.Sync()
		}
	}

	settings, err := mergeConfig(*configPath, *length, *exact, *lex, *format, *top)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(file, settings, *validate); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(file, settings, *validate); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func resolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	return config.DefaultPath()
}

// mergeConfig layers explicitly set flags over the config file values.
func mergeConfig(configPath string, length int, exact, lex bool, format string, top int) (config.Config, error) {
	path, err := resolveConfigPath(configPath)
	if err != nil {
		return config.Default(), err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["n"] && length > 0 {
		cfg.Length = length
	}
	if set["exact"] {
		cfg.Exact = exact
	}
	if set["lex"] {
		cfg.Lexer = lex
	}
	if set["format"] {
		if err := config.ValidFormat(format); err != nil {
			return cfg, err
		}
		cfg.Format = format
	}
	if set["top"] {
		cfg.Top = top
	}
	return cfg, nil
}

func run(file string, cfg config.Config, validate bool) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return errors.ReadFailed(file, err)
	}

	report, err := analyze(data, cfg, validate)
	if err != nil {
		return err
	}

	entries := report.Top(cfg.Top)
	switch cfg.Format {
	case config.FormatPlain:
		return analyzer.WriteEntries(os.Stdout, entries)

	case config.FormatTable:
		if len(entries) == 0 {
			fmt.Println("no sequences found")
			return nil
		}
		fmt.Println(renderReport(report, entries))
		return nil

	case config.FormatJSON:
		payload := struct {
			File      string           `json:"file"`
			Length    int              `json:"length"`
			Exact     bool             `json:"exact"`
			Tokens    int              `json:"tokens"`
			Windows   int              `json:"windows"`
			Sequences []analyzer.Entry `json:"sequences"`
		}{file, cfg.Length, cfg.Exact, report.TokenCount, report.WindowCount, entries}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}
	return config.ValidFormat(cfg.Format)
}

// analyze dispatches on the input kind: binary modules go through the
// instruction scanner, text through the regex scan or the WAT lexer.
func analyze(data []byte, cfg config.Config, validate bool) (*analyzer.Report, error) {
	opts := analyzer.Options{Length: cfg.Length, Exact: cfg.Exact}

	if wasm.IsBinary(data) {
		if validate {
			if err := wasm.Validate(context.Background(), data); err != nil {
				return nil, err
			}
		}
		names, err := wasm.Instructions(data)
		if err != nil {
			return nil, err
		}
		return analyzer.Analyze(strings.Join(names, "\n"), opts), nil
	}

	if cfg.Lexer {
		return analyzer.AnalyzeTokens(wat.Instructions(string(data)), opts), nil
	}
	return analyzer.Analyze(string(data), opts), nil
}
