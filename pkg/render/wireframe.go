package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/taigrr/genmesh/pkg/models"
	"github.com/taigrr/genmesh/pkg/poly"
)

// Wireframe draws polygon outlines into a framebuffer.
type Wireframe struct {
	camera  *Camera
	fb      *Framebuffer
	corners []mgl32.Vec3
}

// NewWireframe creates a new wireframe renderer.
func NewWireframe(camera *Camera, fb *Framebuffer) *Wireframe {
	return &Wireframe{
		camera: camera,
		fb:     fb,
	}
}

// DrawLine3D draws a line in world space. Lines with both endpoints
// clipped are skipped.
func (w *Wireframe) DrawLine3D(p1, p2 mgl32.Vec3, color Color) {
	x1, y1, vis1 := w.camera.Project(p1, w.fb.Width, w.fb.Height)
	x2, y2, vis2 := w.camera.Project(p2, w.fb.Width, w.fb.Height)
	if !vis1 || !vis2 {
		return
	}
	w.fb.DrawLine(int(x1), int(y1), int(x2), int(y2), color)
}

// DrawPolygon draws the closed outline of a triangle, quad or polygon.
func (w *Wireframe) DrawPolygon(p poly.Emitter[mgl32.Vec3], color Color) {
	w.corners = poly.AppendVertices(w.corners[:0], p)
	for i, a := range w.corners {
		b := w.corners[(i+1)%len(w.corners)]
		w.DrawLine3D(a, b, color)
	}
}

// DrawPolygons drains src, drawing every polygon. It returns the number of
// polygons drawn.
func (w *Wireframe) DrawPolygons(src poly.Source[poly.Polygon[mgl32.Vec3]], color Color) int {
	n := 0
	for p := range poly.All(src) {
		w.DrawPolygon(p, color)
		n++
	}
	return n
}

// DrawMesh draws every triangle of an indexed mesh.
func (w *Wireframe) DrawMesh(m *models.Mesh, color Color) {
	for i := range m.TriangleCount() {
		f := m.GetFace(i)
		w.DrawPolygon(poly.NewTriangle(m.GetVertex(f[0]), m.GetVertex(f[1]), m.GetVertex(f[2])), color)
	}
}

// DrawAxes draws the coordinate axes at the origin.
func (w *Wireframe) DrawAxes(length float32) {
	var origin mgl32.Vec3
	w.DrawLine3D(origin, mgl32.Vec3{length, 0, 0}, ColorRed)   // X axis
	w.DrawLine3D(origin, mgl32.Vec3{0, length, 0}, ColorGreen) // Y axis
	w.DrawLine3D(origin, mgl32.Vec3{0, 0, length}, ColorBlue)  // Z axis
}
