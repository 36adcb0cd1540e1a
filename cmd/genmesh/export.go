package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/taigrr/genmesh/pkg/models"
)

func newExportCmd(flags *sphereFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "export <out.glb>",
		Short: "Write the sphere as an indexed GLB mesh",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if ext := strings.ToLower(filepath.Ext(path)); ext != ".glb" {
				return fmt.Errorf("unsupported format: %s (use .glb)", ext)
			}

			s, err := flags.sphere()
			if err != nil {
				return err
			}
			mesh := models.FromIndexed(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), s)
			if err := models.SaveGLB(path, mesh); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote: %s (%d vertices, %d triangles)\n",
				filepath.Base(path), mesh.VertexCount(), mesh.TriangleCount())
			return nil
		},
	}
}
