package generators

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/taigrr/genmesh/pkg/poly"
)

// SphereUV is a unit sphere centered at the origin, tessellated along
// longitude (u) and colatitude (v). The rows touching the poles are
// triangles; every other row is quads.
type SphereUV struct {
	u, v       int
	subU, subV int
}

// ValidateSphereUV reports whether a sphere can be built with u points
// around the equator and v points from pole to pole.
func ValidateSphereUV(u, v int) error {
	if u < 1 {
		return fmt.Errorf("sphere u=%d: need at least 1 segment: %w", u, ErrResolution)
	}
	if v < 2 {
		return fmt.Errorf("sphere v=%d: need at least 2 rings: %w", v, ErrResolution)
	}
	return nil
}

// NewSphereUV creates a sphere generator.
// u is the number of points around the equator, v the number of points from
// pole to pole. It panics if ValidateSphereUV rejects them.
func NewSphereUV(u, v int) *SphereUV {
	if err := ValidateSphereUV(u, v); err != nil {
		panic("generators: " + err.Error())
	}
	return &SphereUV{subU: u, subV: v}
}

// Resolution returns the u and v the sphere was created with.
func (s *SphereUV) Resolution() (u, v int) {
	return s.subU, s.subV
}

// Vertex returns the position of grid point (u, v). u wraps around the
// equator every subU steps; v runs from 0 (north pole) to subV (south pole).
func (s *SphereUV) Vertex(u, v int) mgl32.Vec3 {
	theta := float64(u) / float64(s.subU) * 2 * math.Pi
	phi := float64(v) / float64(s.subV) * math.Pi

	return mgl32.Vec3{
		float32(math.Cos(theta) * math.Sin(phi)),
		float32(math.Sin(theta) * math.Sin(phi)),
		float32(math.Cos(phi)),
	}
}

// Next returns the next polygon, row by row from the north pole.
func (s *SphereUV) Next() (poly.Polygon[mgl32.Vec3], bool) {
	if s.v == s.subV {
		return poly.Polygon[mgl32.Vec3]{}, false
	}
	if s.u == s.subU {
		s.u = 0
		s.v++
		if s.v == s.subV {
			return poly.Polygon[mgl32.Vec3]{}, false
		}
	}

	u, v := s.u, s.v
	x := s.Vertex(u, v)
	y := s.Vertex(u, v+1)
	z := s.Vertex(u+1, v+1)
	w := s.Vertex(u+1, v)
	s.u++

	switch v {
	case 0:
		return poly.PolyTri(poly.NewTriangle(x, y, z)), true
	case s.subV - 1:
		return poly.PolyTri(poly.NewTriangle(z, w, x)), true
	default:
		return poly.PolyQuad(poly.NewQuad(x, y, z, w)), true
	}
}

// SharedVertexCount returns one vertex per interior grid point plus one for
// each pole.
func (s *SphereUV) SharedVertexCount() int {
	return (s.subV-1)*s.subU + 2
}

// SharedVertex returns the position of shared vertex idx. Index 0 is the
// north pole and the last index the south pole.
func (s *SphereUV) SharedVertex(idx int) mgl32.Vec3 {
	n := s.SharedVertexCount()
	switch {
	case idx < 0 || idx >= n:
		panic(fmt.Sprintf("generators: shared vertex %d out of range [0,%d)", idx, n))
	case idx == 0:
		return s.Vertex(0, 0)
	case idx == n-1:
		return s.Vertex(0, s.subV)
	}
	// poles occupy the first and last slots
	idx--
	return s.Vertex(idx%s.subU, idx/s.subU+1)
}

// IndexedPolygonCount returns the number of polygons, the same as a full
// run of Next.
func (s *SphereUV) IndexedPolygonCount() int {
	return s.subU * s.subV
}

// IndexedPolygon returns polygon idx with vertices as SharedVertex indices.
// Polygons are ordered and wound exactly as Next produces them.
func (s *SphereUV) IndexedPolygon(idx int) poly.Polygon[int] {
	if n := s.IndexedPolygonCount(); idx < 0 || idx >= n {
		panic(fmt.Sprintf("generators: indexed polygon %d out of range [0,%d)", idx, n))
	}
	u, v := idx%s.subU, idx/s.subU

	x := s.index(u, v)
	y := s.index(u, v+1)
	z := s.index(u+1, v+1)
	w := s.index(u+1, v)

	switch v {
	case 0:
		return poly.PolyTri(poly.NewTriangle(x, y, z))
	case s.subV - 1:
		return poly.PolyTri(poly.NewTriangle(z, w, x))
	default:
		return poly.PolyQuad(poly.NewQuad(x, y, z, w))
	}
}

// index maps grid point (u, v) to its shared vertex. Every u on a pole row
// collapses to the pole, and u == subU wraps to the seam at u == 0.
func (s *SphereUV) index(u, v int) int {
	switch v {
	case 0:
		return 0
	case s.subV:
		return s.SharedVertexCount() - 1
	default:
		return (v-1)*s.subU + u%s.subU + 1
	}
}
