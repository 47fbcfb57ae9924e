/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/scriptdoc/scriptdoc/core/check"
	"github.com/scriptdoc/scriptdoc/core/logger"
	"github.com/scriptdoc/scriptdoc/core/walker"
	"github.com/scriptdoc/scriptdoc/core/watcher"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Re-render script docs whenever scripts change",
	Long:  `Watches a directory tree and reprints the documentation listing whenever a shell script is created, modified, or removed.`,
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
		if !check.IsDir(root) {
			return fmt.Errorf("%s is not a directory", root)
		}

		w := walker.NewScriptWalker(cfg)
		rescan := func() error {
			docs, err := w.Walk(root)
			if err != nil {
				return err
			}
			return renderListing(docs)
		}

		sw, err := watcher.NewScriptWatcher(root, cfg.Exclude, cfg.Extensions)
		if err != nil {
			return err
		}
		sw.FileWatcher.AddOnStartFunc(rescan)
		sw.FileWatcher.AddOnChangeFunc(rescan)
		sw.FileWatcher.AddOnCloseFunc(func() error { return nil })

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sig
			logger.Info("Shutting down watcher")
			sw.Close()
			os.Exit(0)
		}()

		logger.Info("Watching %s for script changes", root)
		return sw.Watch()
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
