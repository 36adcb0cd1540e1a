package models

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/taigrr/genmesh/pkg/generators"
	"github.com/taigrr/genmesh/pkg/poly"
)

const epsilon = 1e-5

func near(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < epsilon
}

func TestFromIndexedSphere(t *testing.T) {
	s := generators.NewSphereUV(8, 6)
	mesh := FromIndexed("sphere", s)

	if mesh.VertexCount() != s.SharedVertexCount() {
		t.Errorf("VertexCount = %d, want %d", mesh.VertexCount(), s.SharedVertexCount())
	}
	// 2 triangles per quad, 1 per pole triangle
	wantTris := 2*8 + 2*8*(6-2)
	if mesh.TriangleCount() != wantTris {
		t.Errorf("TriangleCount = %d, want %d", mesh.TriangleCount(), wantTris)
	}
	for i, f := range mesh.Faces {
		for _, vi := range f.V {
			if vi < 0 || vi >= mesh.VertexCount() {
				t.Fatalf("face %d references vertex %d", i, vi)
			}
		}
	}
}

func TestFromIndexedMatchesFromPolygons(t *testing.T) {
	indexed := FromIndexed("indexed", generators.NewSphereUV(5, 4))
	soup := FromPolygons("soup", generators.NewSphereUV(5, 4))

	if indexed.TriangleCount() != soup.TriangleCount() {
		t.Fatalf("indexed has %d triangles, soup %d", indexed.TriangleCount(), soup.TriangleCount())
	}
	if soup.VertexCount() != 3*soup.TriangleCount() {
		t.Errorf("soup VertexCount = %d, want %d", soup.VertexCount(), 3*soup.TriangleCount())
	}
	for i := range indexed.Faces {
		a, b := indexed.GetFace(i), soup.GetFace(i)
		for k := range 3 {
			if !near(indexed.GetVertex(a[k]), soup.GetVertex(b[k])) {
				t.Errorf("face %d corner %d: %v vs %v", i, k, indexed.GetVertex(a[k]), soup.GetVertex(b[k]))
			}
		}
	}
}

func TestPositionBuffer(t *testing.T) {
	src := poly.FromSlice([]poly.Polygon[mgl32.Vec3]{
		poly.PolyTri(poly.NewTriangle(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{4, 5, 6}, mgl32.Vec3{7, 8, 9})),
		poly.PolyQuad(poly.NewQuad(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 1, 0}, mgl32.Vec3{0, 1, 0})),
	})
	buf := PositionBuffer(src)

	want := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0}
	if len(buf) != len(want) {
		t.Fatalf("buffer length %d, want %d", len(buf), len(want))
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("buf[%d] = %f, want %f", i, buf[i], want[i])
		}
	}
}

func TestPositionBufferSphere(t *testing.T) {
	buf := PositionBuffer(generators.NewSphereUV(4, 4))
	// 8 triangles and 8 quads
	if want := 3 * (8*3 + 8*4); len(buf) != want {
		t.Errorf("buffer length %d, want %d", len(buf), want)
	}
}

func TestCalculateBounds(t *testing.T) {
	mesh := FromIndexed("sphere", generators.NewSphereUV(16, 8))
	min, max := mesh.GetBounds()
	if !near(min, mgl32.Vec3{-1, -1, -1}) || !near(max, mgl32.Vec3{1, 1, 1}) {
		t.Errorf("bounds = %v..%v", min, max)
	}
	if !near(mesh.Center(), mgl32.Vec3{}) {
		t.Errorf("Center = %v", mesh.Center())
	}
	if !near(mesh.Size(), mgl32.Vec3{2, 2, 2}) {
		t.Errorf("Size = %v", mesh.Size())
	}
}

func TestTransform(t *testing.T) {
	mesh := FromIndexed("sphere", generators.NewSphereUV(16, 8))
	mesh.Transform(mgl32.Translate3D(3, 0, 0).Mul4(mgl32.Scale3D(2, 2, 2)))

	if !near(mesh.Center(), mgl32.Vec3{3, 0, 0}) {
		t.Errorf("Center = %v, want (3,0,0)", mesh.Center())
	}
	if !near(mesh.Size(), mgl32.Vec3{4, 4, 4}) {
		t.Errorf("Size = %v, want (4,4,4)", mesh.Size())
	}
}

func TestClone(t *testing.T) {
	mesh := FromIndexed("original", generators.NewSphereUV(4, 3))
	clone := mesh.Clone()

	if clone.VertexCount() != mesh.VertexCount() || clone.TriangleCount() != mesh.TriangleCount() {
		t.Fatal("Clone should preserve counts")
	}

	clone.Positions[0] = mgl32.Vec3{9, 9, 9}
	clone.Faces[0].V[0] = 42
	if mesh.Positions[0] == clone.Positions[0] {
		t.Error("Clone should have independent positions")
	}
	if mesh.Faces[0].V[0] == 42 {
		t.Error("Clone should have independent faces")
	}
}

func TestEmptyMeshBounds(t *testing.T) {
	mesh := NewMesh("empty")
	mesh.CalculateBounds()
	if mesh.Size() != (mgl32.Vec3{}) {
		t.Errorf("empty mesh size = %v", mesh.Size())
	}
}
