package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/lolgame/pkg/app"
	"github.com/decker502/lolgame/pkg/config"
	"github.com/decker502/lolgame/pkg/stats"
)

var (
	verboseFlag  = flag.Bool("verbose", false, "Enable verbose logging")
	configFlag   = flag.String("config", "", "Path to a kit config YAML (defaults to the embedded data/kit.yaml)")
	gameTypeFlag = flag.String("game", app.DefaultGameType, "Game type recorded by the keyboard controls")
	appNameFlag  = flag.String("app-name", "lolgame", "gdata application name (storage directory)")
)

func main() {
	flag.Parse()

	kit, err := loadKit()
	if err != nil {
		log.Fatal(err)
	}

	// gdata 初始化失败不是致命错误，统计只保存在内存中
	store, err := stats.OpenGdataStore(*appNameFlag)
	if err != nil {
		log.Printf("[Main] Warning: %v (stats will not persist)", err)
	}

	game, err := app.NewApp(app.Config{
		Verbose:  *verboseFlag,
		Kit:      kit,
		Store:    store,
		GameType: *gameTypeFlag,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowSize(app.DefaultWidth, app.DefaultHeight)
	ebiten.SetWindowTitle("LoL Guess")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Start the game loop
	// This will call Update() and Draw() repeatedly until the window is closed
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func loadKit() (*config.KitConfig, error) {
	if *configFlag != "" {
		return config.LoadKitConfig(*configFlag)
	}
	return config.ParseKitConfig(defaultKitYAML)
}
