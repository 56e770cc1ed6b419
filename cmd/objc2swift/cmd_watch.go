package main

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/swiftpen/objc2swift/pkg/codegen"
	"github.com/swiftpen/objc2swift/pkg/types"
)

func newWatchCmd() *cobra.Command {
	var outputDir string
	var verbosity int

	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Watch a directory and re-convert changed .h/.m files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbosity, nil)

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer watcher.Close()

			dir := args[0]
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("watch %s: %w", dir, err)
			}
			if outputDir == "" {
				outputDir = dir
			}
			log.Noticef("watching %s", dir)

			opts := codegen.Options{IndentWidth: 4, Types: types.NewTable(nil)}
			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
						continue
					}
					ext := filepath.Ext(event.Name)
					if ext != ".h" && ext != ".m" {
						continue
					}
					log.Infof("changed: %s", event.Name)
					if err := convertOne(event.Name, outputDir, opts); err != nil {
						log.Errorf("convert %s: %s", event.Name, err.Error())
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					log.Errorf("watch: %s", err.Error())
				}
			}
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (default: alongside sources)")
	cmd.Flags().IntVarP(&verbosity, "verbose", "v", 0, "log verbosity")
	return cmd
}
