package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/loshunter/HeroByte-sub004/internal/board"
	"github.com/loshunter/HeroByte-sub004/internal/model"
	"github.com/loshunter/HeroByte-sub004/internal/project"
	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
	workers    int
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:           "herobyte-erase",
		Short:         "Apply eraser strokes to HeroByte scene files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&g.configPath, "config", project.DefaultConfigPath(), "path to the config file")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn or error")
	root.PersistentFlags().IntVar(&g.workers, "workers", 0, "number of evaluation workers (0 = config value)")

	root.AddCommand(
		newEraseCmd(g),
		newImportDXFCmd(),
		newConfigCmd(g),
	)
	return root
}

// loadConfig reads the config file and applies flag overrides on top of it.
// resolved is what the run uses; stored is the file as read, the only
// version that may be written back.
func (g *globalFlags) loadConfig(eraserWidth float64) (resolved, stored model.AppConfig, err error) {
	stored, err = project.LoadAppConfig(g.configPath)
	if err != nil {
		return model.AppConfig{}, model.AppConfig{}, fmt.Errorf("failed to load config %s: %w", g.configPath, err)
	}
	resolved = stored
	resolved.RecentScenes = append([]string(nil), stored.RecentScenes...)
	resolved.Resolve(model.Flags{
		EraserWidth: eraserWidth,
		Workers:     g.workers,
		LogLevel:    g.logLevel,
	})
	return resolved, stored, nil
}

// setupLogging installs a text logger on the board package at the configured
// level.
func setupLogging(w io.Writer, level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	board.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
	return nil
}

func printMessages(w io.Writer, prefix string, msgs []string) {
	for _, m := range msgs {
		fmt.Fprintf(w, "%s: %s\n", prefix, m)
	}
}
