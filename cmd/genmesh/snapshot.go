package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/cobra"
	"github.com/taigrr/genmesh/pkg/models"
	"github.com/taigrr/genmesh/pkg/render"
)

func newSnapshotCmd(flags *sphereFlags) *cobra.Command {
	var (
		width, height int
		yaw, pitch    float32
		axes          bool
	)

	cmd := &cobra.Command{
		Use:   "snapshot <out.png>",
		Short: "Render the sphere wireframe to a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if ext := strings.ToLower(filepath.Ext(path)); ext != ".png" {
				return fmt.Errorf("unsupported format: %s (use .png)", ext)
			}
			if width <= 0 || height <= 0 {
				return fmt.Errorf("invalid image size %dx%d", width, height)
			}

			s, err := flags.sphere()
			if err != nil {
				return err
			}
			u, v := s.Resolution()

			mesh := models.FromIndexed("sphere", s)
			mesh.Transform(mgl32.HomogRotate3DX(mgl32.DegToRad(pitch)).
				Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(yaw))))

			fb := render.NewFramebuffer(width, height)
			fb.Clear(render.ColorBlack)
			camera := render.NewCamera()
			camera.SetAspectRatio(float32(width) / float32(height))
			wire := render.NewWireframe(camera, fb)
			wire.DrawMesh(mesh, render.ColorMint)
			if axes {
				wire.DrawAxes(1.5)
			}

			if err := fb.SavePNG(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote: %s (%dx%d sphere, %d triangles)\n",
				filepath.Base(path), u, v, mesh.TriangleCount())
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 512, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", 512, "image height in pixels")
	cmd.Flags().Float32Var(&yaw, "yaw", 30, "rotation around Y in degrees")
	cmd.Flags().Float32Var(&pitch, "pitch", 20, "rotation around X in degrees")
	cmd.Flags().BoolVar(&axes, "axes", false, "draw the coordinate axes")
	return cmd
}
