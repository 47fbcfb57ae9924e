/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/scriptdoc/scriptdoc/core/version"
	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of Scriptdoc",
	Long:  `Displays the version of Scriptdoc.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Scriptdoc %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
