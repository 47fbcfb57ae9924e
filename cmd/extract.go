/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/scriptdoc/scriptdoc/core/logger"
	"github.com/scriptdoc/scriptdoc/core/scanner"
	"github.com/scriptdoc/scriptdoc/core/shared"
	"github.com/spf13/cobra"
)

var extractPrefix string

var extractCmd = &cobra.Command{
	Use:   "extract <script> [function]",
	Short: "Extract function docs from a shell script",
	Long: `Scans a shell script and prints every declared function with the
comment block written above it. An optional second argument restricts
output to that exact function name.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup()
		if err != nil {
			return err
		}

		path, err := shared.ResolveScript(args[0])
		if err != nil {
			return err
		}

		filter := scanner.Filter{Prefix: cfg.Prefix}
		if cmd.Flags().Changed("prefix") {
			filter.Prefix = extractPrefix
		}
		if len(args) == 2 {
			filter.Target = args[1]
		}

		logger.Debug("extract called for %s", path)
		return scanner.Extract(cmd.OutOrStdout(), path, filter)
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&extractPrefix, "prefix", "", "Only emit functions with this name prefix, stripped on display")
}
