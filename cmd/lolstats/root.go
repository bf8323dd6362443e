package main

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/decker502/lolgame/pkg/config"
	"github.com/decker502/lolgame/pkg/stats"
)

// deps 命令依赖，测试时替换为内存实现
type deps struct {
	openStore func(appName string) (stats.Store, error)
	newScreen func() (tcell.Screen, error)
	now       func() time.Time
}

func defaultDeps() deps {
	return deps{
		openStore: func(appName string) (stats.Store, error) {
			store, err := stats.OpenGdataStore(appName)
			if err != nil {
				// 降级模式仍可使用，只记录警告
				log.Printf("[lolstats] Warning: %v", err)
			}
			return store, nil
		},
		newScreen: tcell.NewScreen,
		now:       time.Now,
	}
}

type rootOptions struct {
	appName    string
	configPath string
	verbose    bool
}

func newRootCmd(d deps) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "lolstats",
		Short:         "Record and inspect guessing game statistics",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				log.SetOutput(cmd.ErrOrStderr())
			} else {
				log.SetOutput(io.Discard)
			}
		},
	}

	root.PersistentFlags().StringVar(&opts.appName, "app-name", "lolgame", "gdata application name (storage directory)")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "kit config YAML (defaults to built-in values)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(
		newRecordCmd(d, opts),
		newShowCmd(d, opts),
		newConfettiCmd(d, opts),
	)
	return root
}

func (o *rootOptions) tracker(d deps) (*stats.Tracker, error) {
	store, err := d.openStore(o.appName)
	if err != nil {
		return nil, fmt.Errorf("failed to open stats storage: %w", err)
	}
	tracker := stats.NewTracker(store)
	tracker.SetClock(d.now)
	return tracker, nil
}

func (o *rootOptions) kit() (*config.KitConfig, error) {
	if o.configPath == "" {
		return config.DefaultKitConfig(), nil
	}
	return config.LoadKitConfig(o.configPath)
}
