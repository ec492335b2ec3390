package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/loshunter/HeroByte-sub004/internal/importer"
	"github.com/loshunter/HeroByte-sub004/internal/model"
	"github.com/loshunter/HeroByte-sub004/internal/project"
	"github.com/spf13/cobra"
)

func newImportDXFCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "import-dxf <input.dxf> <scene.json>",
		Short: "Convert a DXF drawing into a scene file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := importer.ImportDXF(args[0])
			printMessages(cmd.ErrOrStderr(), "warning", result.Warnings)
			if len(result.Drawings) == 0 {
				return errors.New("cannot import DXF:\n  " + strings.Join(result.Errors, "\n  "))
			}
			printMessages(cmd.ErrOrStderr(), "error", result.Errors)

			scene := model.NewScene()
			scene.Name = name
			if scene.Name == "" {
				scene.Name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			}
			scene.Drawings = result.Drawings

			if err := project.SaveScene(args[1], scene); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d drawings into %s\n", len(scene.Drawings), args[1])
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "scene name (default: input file name)")
	return cmd
}
