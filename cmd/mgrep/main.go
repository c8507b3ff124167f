package main

import (
	"fmt"
	"os"

	"github.com/mgrep/mgrep/pkg/config"
	flag "github.com/spf13/pflag"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	var (
		configPath  string
		showVersion bool
		help        bool
	)

	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.BoolVar(&help, "help", false, "Show help message")
	flag.Parse()

	if help {
		printUsage()
		os.Exit(0)
	}
	if showVersion {
		fmt.Println("mgrep " + version)
		os.Exit(0)
	}

	if configPath != "" {
		if err := os.Setenv("MGREP_CONFIG", configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting config path: %v\n", err)
			os.Exit(1)
		}
	}

	// Load configuration (defaults, config file, IGNORE_CASE environment)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Positional arguments: <query> <file> [/i|/s]
	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: didn't get a query string")
		printUsage()
		os.Exit(1)
	}
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Error: didn't get a file path")
		printUsage()
		os.Exit(1)
	}
	cfg.Query = args[0]
	cfg.FilePath = args[1]

	// A mode token beats both the config file and the environment. Anything
	// after it is ignored.
	if len(args) > 2 {
		if ignoreCase, ok := config.ParseCaseToken(args[2]); ok {
			cfg.IgnoreCase = ignoreCase
		}
	}

	if os.Getenv("MGREP_DEBUG") == "1" {
		fmt.Fprintf(os.Stderr, "mgrep: query=%q file=%q ignore_case=%v\n",
			cfg.Query, cfg.FilePath, cfg.IgnoreCase)
	}

	deps := NewDependencies(cfg)
	app := NewApplication(deps)

	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("mgrep - print lines of a file containing a substring")
	fmt.Println()
	fmt.Println("Usage: mgrep [OPTIONS] <query> <file> [/i|/s]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Mode tokens:")
	fmt.Println("  /i    Force case-insensitive matching")
	fmt.Println("  /s    Force case-sensitive matching")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  IGNORE_CASE    If set (to anything), match case-insensitively")
	fmt.Println("  MGREP_CONFIG   Path to config file")
	fmt.Println("  MGREP_DEBUG    Set to 1 for diagnostics on stderr")
	fmt.Println()
	fmt.Println("Configuration file: ~/.config/mgrep/config.yaml")
}
