package main

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/flavono123/schemabuilder/internal/config"
	"github.com/flavono123/schemabuilder/internal/ui"
	"github.com/flavono123/schemabuilder/internal/ui/theme"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	var configFile string
	v := config.New()

	cmd := &cobra.Command{
		Use:   "schemabuilder",
		Short: "Build a nested field schema and preview it live",
		Long: `schemabuilder is a terminal form for composing nested field schemas.

Fields are added, renamed, retyped, disabled and deleted in the left pane
while the right pane shows the generated JSON-like structure.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bindFlags(v, cmd.Flags()); err != nil {
				return err
			}

			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}

			if cfg.Log.Debug {
				f, err := tea.LogToFile(cfg.Log.File, "debug")
				if err != nil {
					return fmt.Errorf("failed to log to file: %w", err)
				}
				defer f.Close()
			} else {
				log.SetOutput(io.Discard)
			}

			theme.SetFlavour(cfg.Theme.Flavour)
			log.Printf("starting with config %+v", *cfg)

			program := tea.NewProgram(
				ui.InitModel(ui.Options{BareMarkers: cfg.Output.BareMarkers}),
				tea.WithAltScreen(),
			)
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("failed to run program: %w", err)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/"+config.AppID+"/config.yaml)")
	flags.Bool("bare-markers", false, "render type markers unquoted in the preview")
	flags.String("theme", "mocha", "catppuccin flavour: mocha, latte, frappe or macchiato")
	flags.Bool("debug", false, "write a debug log")
	flags.String("log-file", "debug.log", "debug log path")

	return cmd
}

// config key -> flag
var flagKeys = map[string]string{
	"output.bare_markers": "bare-markers",
	"theme.flavour":       "theme",
	"log.debug":           "debug",
	"log.file":            "log-file",
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, name := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}
	return nil
}
