package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"

	"github.com/timson/pirinfetch/fetch"
	"github.com/timson/pirinfetch/hostinfo"
)

const (
	version = "0.1.0"
)

// run collects every fact before writing anything, so a fatal query leaves stdout empty.
func run(cfg *Config, provider hostinfo.Provider, stdout, stderr io.Writer) int {
	lines, err := fetch.Collect(provider)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	if cfg.Output.Format == formatJSON {
		err = printJSONSystemInfo(stdout, lines, useColor(cfg.Output.Color))
	} else {
		err = printSystemInfo(stdout, lines, cfg.Output.Color)
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func runFetch(cfgFile string) int {
	config, err := loadConfig(cfgFile)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error loading config:", err)
		return 1
	}

	logger := createLogger(config.LogLevel)
	fetch.SetLogger(logger)
	hostinfo.SetLogger(logger)

	out := colorable.NewColorable(os.Stdout) // needed for Windows

	logger.Debug("collecting host info", "format", config.Output.Format, "color", config.Output.Color)
	return run(config, hostinfo.NewSystem(), out, os.Stderr)
}

func main() {
	rootCmd := &cobra.Command{
		Use:          "pirinfetch",
		Short:        "pirinfetch - host info at a glance",
		Long:         `pirinfetch prints the current user, host, OS, kernel, uptime, CPU, GPU and memory next to a logo.`,
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			cfgFile, _ := cmd.Flags().GetString("config")
			if code := runFetch(cfgFile); code != 0 {
				os.Exit(code)
			}
		},
	}

	initDefaults()
	setupFlags(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "command execution failed:", err)
		os.Exit(1)
	}
}
