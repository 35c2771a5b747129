package main

import (
	"embed"
	"log"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"github.com/flavono123/schemabuilder/internal/config"
	"github.com/flavono123/schemabuilder/internal/schema"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg, err := config.Load(config.New(), "")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var opts []schema.FormatOption
	if cfg.Output.BareMarkers {
		opts = append(opts, schema.WithBareMarkers())
	}

	// Create an instance of the app structure
	app := NewApp(opts...)

	// Create application with options
	err = wails.Run(&options.App{
		Title:  "Schema Builder",
		Width:  1024,
		Height: 768,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 30, G: 30, B: 46, A: 1},
		OnStartup:        app.startup,
		OnShutdown:       app.shutdown,
		Bind: []interface{}{
			app,
		},
	})

	if err != nil {
		log.Fatalf("failed to run app: %v", err)
	}
}
