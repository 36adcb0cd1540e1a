// genmesh - procedural mesh generator
// Streams UV spheres as triangles and quads, exports them as GLB and
// previews them as a spinning wireframe in the terminal.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/taigrr/genmesh/pkg/generators"
)

// sphereFlags holds the resolution shared by every subcommand.
type sphereFlags struct {
	subU int
	subV int
}

func (f *sphereFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().IntVar(&f.subU, "sub-u", 32, "points around the equator")
	cmd.PersistentFlags().IntVar(&f.subV, "sub-v", 16, "points from pole to pole")
}

func (f *sphereFlags) sphere() (*generators.SphereUV, error) {
	if err := generators.ValidateSphereUV(f.subU, f.subV); err != nil {
		return nil, err
	}
	return generators.NewSphereUV(f.subU, f.subV), nil
}

func newRootCmd() *cobra.Command {
	flags := &sphereFlags{}

	root := &cobra.Command{
		Use:   "genmesh",
		Short: "Generate UV sphere meshes",
		Long: "genmesh generates UV spheres as streams of triangles and quads, " +
			"exports them as indexed GLB meshes and previews them in the terminal.",
		SilenceUsage: true,
	}
	flags.register(root)

	root.AddCommand(
		newStatsCmd(flags),
		newExportCmd(flags),
		newSnapshotCmd(flags),
		newViewCmd(flags),
	)
	return root
}

func main() {
	if err := fang.Execute(context.Background(), newRootCmd()); err != nil {
		os.Exit(1)
	}
}
