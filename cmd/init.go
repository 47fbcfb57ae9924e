/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/scriptdoc/scriptdoc/core/check"
	"github.com/scriptdoc/scriptdoc/core/config"
	"github.com/scriptdoc/scriptdoc/core/logger"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	force bool
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a starter scriptdoc.yaml",
	Long:  `Creates a scriptdoc.yaml with the default settings in the given directory (or the current one).`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.SetVerbose(verbose)
		logger.Debug("init called")

		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		if !check.IsDir(dir) {
			return fmt.Errorf("%s is not a directory", dir)
		}

		path := filepath.Join(dir, "scriptdoc.yaml")
		if check.Exists(path) && !force {
			fmt.Printf("%s already exists. Use --force to overwrite.\n", path)
			return nil
		}

		data, err := yaml.Marshal(config.Default())
		if err != nil {
			return fmt.Errorf("failed to marshal default config: %w", err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&force, "force", false, "Force overwrite existing files")
}
