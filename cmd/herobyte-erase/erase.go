package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/loshunter/HeroByte-sub004/internal/board"
	"github.com/loshunter/HeroByte-sub004/internal/importer"
	"github.com/loshunter/HeroByte-sub004/internal/project"
	"github.com/spf13/cobra"
)

type eraseOptions struct {
	scenePath string
	pathFile  string
	outPath   string
	opLogPath string
	width     float64
}

func newEraseCmd(g *globalFlags) *cobra.Command {
	o := &eraseOptions{}

	cmd := &cobra.Command{
		Use:   "erase",
		Short: "Erase drawings in a scene along a recorded eraser path",
		Long: `Erase reads a scene and an eraser path (CSV or Excel, one x/y point per
row, optional width column) and writes the scene with every drawing the
path touches removed or split.

The eraser width is taken from --width if given, then from the path file,
then from the config file's default_eraser_width.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runErase(cmd, g, o)
		},
	}

	cmd.Flags().StringVar(&o.scenePath, "scene", "", "scene JSON file to read")
	cmd.Flags().StringVar(&o.pathFile, "path", "", "eraser path file (.csv or .xlsx)")
	cmd.Flags().StringVarP(&o.outPath, "out", "o", "", "where to write the updated scene (default: overwrite --scene)")
	cmd.Flags().StringVar(&o.opLogPath, "oplog", "", "write the applied ops to this JSON file")
	cmd.Flags().Float64Var(&o.width, "width", 0, "eraser width in world units")
	_ = cmd.MarkFlagRequired("scene")
	_ = cmd.MarkFlagRequired("path")
	return cmd
}

func runErase(cmd *cobra.Command, g *globalFlags, o *eraseOptions) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	cfg, stored, err := g.loadConfig(o.width)
	if err != nil {
		return err
	}
	if err := setupLogging(errOut, cfg.LogLevel); err != nil {
		return err
	}
	defer board.SetLogger(nil)
	log := board.Logger()

	scene, err := project.LoadScene(o.scenePath)
	if err != nil {
		return err
	}

	path := importer.ImportEraserPath(o.pathFile)
	printMessages(errOut, "warning", path.Warnings)
	if len(path.Errors) > 0 {
		return errors.New("cannot read eraser path:\n  " + strings.Join(path.Errors, "\n  "))
	}

	stroke := path.Stroke
	if o.width > 0 || stroke.Width <= 0 {
		stroke.Width = cfg.DefaultEraserWidth
	}
	log.Debug("eraser path loaded", "points", len(stroke.Points), "width", stroke.Width, "workers", cfg.Workers)

	b := board.New(scene)
	ops, stats := b.Erase(stroke, cfg.Workers)

	outPath := o.outPath
	if outPath == "" {
		outPath = o.scenePath
	}
	if err := project.SaveScene(outPath, b.Scene()); err != nil {
		return err
	}
	if o.opLogPath != "" {
		if err := project.SaveOpLog(o.opLogPath, b.Site(), ops, stats); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "Evaluated %d drawings: %d deleted, %d split into %d segments\n",
		stats.Evaluated, stats.Deleted, stats.Split, stats.Created)

	stored.AddRecentScene(outPath)
	if err := project.SaveAppConfig(g.configPath, stored); err != nil {
		log.Warn("failed to update recent scenes", "err", err)
	}
	return nil
}
