/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/scriptdoc/scriptdoc/core/logger"
	"github.com/scriptdoc/scriptdoc/core/models"
	"github.com/scriptdoc/scriptdoc/core/scanner"
	"github.com/scriptdoc/scriptdoc/core/walker"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List documented functions of every script under a directory",
	Long:  `Walks a directory tree, discovers shell scripts, and prints each script with its documented functions.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup()
		if err != nil {
			return err
		}

		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		w := walker.NewScriptWalker(cfg)
		docs, err := w.Walk(root)
		if err != nil {
			return err
		}

		logger.Debug("list found %d scripts under %s", len(docs), root)
		return renderListing(docs)
	},
}

func renderListing(docs []*models.ScriptDoc) error {
	for _, doc := range docs {
		fmt.Fprintf(os.Stdout, "%s:\n", doc.RelPath)
		for _, fn := range doc.Functions {
			if err := scanner.WriteRecord(os.Stdout, fn); err != nil {
				return fmt.Errorf("failed to write record: %w", err)
			}
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(listCmd)
}
