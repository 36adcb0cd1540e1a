package main

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/cobra"
	"github.com/taigrr/genmesh/pkg/generators"
	"github.com/taigrr/genmesh/pkg/poly"
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D7D9C")).Width(20)
	valueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF80"))
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F5F"))
)

// sphereStats summarizes one full pass over a sphere.
type sphereStats struct {
	triangles       int
	quads           int
	vertices        int
	sharedVertices  int
	indexedPolygons int
}

// consistent reports whether the streamed and indexed forms agree.
func (s sphereStats) consistent() bool {
	return s.triangles+s.quads == s.indexedPolygons &&
		s.vertices == 3*s.triangles+4*s.quads
}

// collectStats streams the sphere twice: once as polygons and once as
// flattened vertices.
func collectStats(u, v int) sphereStats {
	var st sphereStats

	for p := range poly.All[poly.Polygon[mgl32.Vec3]](generators.NewSphereUV(u, v)) {
		switch p.Kind() {
		case poly.KindTriangle:
			st.triangles++
		case poly.KindQuad:
			st.quads++
		}
	}

	verts := poly.Vertices[mgl32.Vec3, poly.Polygon[mgl32.Vec3]](generators.NewSphereUV(u, v))
	for _, ok := verts.Next(); ok; _, ok = verts.Next() {
		st.vertices++
	}

	s := generators.NewSphereUV(u, v)
	st.sharedVertices = s.SharedVertexCount()
	st.indexedPolygons = s.IndexedPolygonCount()
	return st
}

func newStatsCmd(flags *sphereFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print polygon and vertex counts for a sphere",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := flags.sphere(); err != nil {
				return err
			}
			st := collectStats(flags.subU, flags.subV)

			row := func(label string, value any) {
				fmt.Fprintln(cmd.OutOrStdout(), labelStyle.Render(label)+valueStyle.Render(fmt.Sprint(value)))
			}
			row("resolution", fmt.Sprintf("%dx%d", flags.subU, flags.subV))
			row("triangles", st.triangles)
			row("quads", st.quads)
			row("streamed vertices", st.vertices)
			row("shared vertices", st.sharedVertices)
			row("indexed polygons", st.indexedPolygons)

			if !st.consistent() {
				fmt.Fprintln(cmd.OutOrStdout(), failStyle.Render("streamed and indexed forms disagree"))
				return fmt.Errorf("sphere %dx%d: inconsistent tables", flags.subU, flags.subV)
			}
			return nil
		},
	}
}
