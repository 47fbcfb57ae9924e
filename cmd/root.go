/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/scriptdoc/scriptdoc/core/config"
	"github.com/scriptdoc/scriptdoc/core/logger"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scriptdoc",
	Short: "Extract documentation from shell scripts.",
	Long: `Scriptdoc scans shell script source and pairs every declared function
with the documentation comment block written directly above it, producing
the same listing an in-script help command would show.`,
}

var (
	logfile   string
	verbose   bool
	overrides []string
)

func Execute() {
	defer logger.Close()
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// setup applies the persistent flags and loads config with any --set
// overrides folded in. Every subcommand calls it first.
func setup() (*config.Config, error) {
	logger.SetVerbose(verbose)
	if logfile != "" {
		if err := logger.SetLogfile(logfile); err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyOverrides(overrides); err != nil {
		return nil, err
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logfile, "logfile", "", "File to write logs to")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output")
	rootCmd.PersistentFlags().StringArrayVar(&overrides, "set", nil, "Config override key=value (prefix, extensions, exclude)")
}
