package main

import (
	"embed"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"github.com/tetrakis/solidlab/internal/config"
	"github.com/tetrakis/solidlab/internal/logger"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		l := logger.New("info")
		l.Fatal().Err(err).Msg("loading configuration")
	}
	log := logger.New(cfg.LogLevel)

	app := NewApp(cfg, log)

	err = wails.Run(&options.App{
		Title:  "solidlab",
		Width:  1280,
		Height: 800,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		OnStartup: app.startup,
		Bind: []interface{}{
			app,
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("running app")
	}
}
