// Package models builds triangle meshes from generated polygons and moves
// them in and out of GLTF.
package models

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/taigrr/genmesh/pkg/generators"
	"github.com/taigrr/genmesh/pkg/poly"
)

// Mesh represents an indexed triangle mesh.
type Mesh struct {
	Name      string
	Positions []mgl32.Vec3
	Faces     []Face

	// Bounding box (calculated on build)
	BoundsMin mgl32.Vec3
	BoundsMax mgl32.Vec3
}

// Face represents a triangle by its vertex indices.
type Face struct {
	V [3]int // Indices into Mesh.Positions
}

// Indexed is a surface described as a shared vertex table and polygons
// indexing into it, such as generators.SphereUV.
type Indexed interface {
	generators.SharedVertex[mgl32.Vec3]
	generators.IndexedPolygon[poly.Polygon[int]]
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:      name,
		Positions: make([]mgl32.Vec3, 0),
		Faces:     make([]Face, 0),
	}
}

// FromIndexed materializes the vertex and polygon tables of g. Quads are
// split into two triangles.
func FromIndexed(name string, g Indexed) *Mesh {
	mesh := NewMesh(name)

	n := g.SharedVertexCount()
	mesh.Positions = make([]mgl32.Vec3, n)
	for i := range n {
		mesh.Positions[i] = g.SharedVertex(i)
	}

	addFace := func(t poly.Triangle[int]) {
		mesh.Faces = append(mesh.Faces, Face{V: [3]int{t.X, t.Y, t.Z}})
	}
	for i := range g.IndexedPolygonCount() {
		g.IndexedPolygon(i).Triangulate(addFace)
	}

	mesh.CalculateBounds()
	return mesh
}

// FromPolygons builds an unindexed mesh from a polygon stream: every
// triangle gets its own three vertices.
func FromPolygons(name string, src poly.Source[poly.Polygon[mgl32.Vec3]]) *Mesh {
	mesh := NewMesh(name)

	tris := poly.Triangles(src)
	for t, ok := tris.Next(); ok; t, ok = tris.Next() {
		base := len(mesh.Positions)
		mesh.Positions = append(mesh.Positions, t.X, t.Y, t.Z)
		mesh.Faces = append(mesh.Faces, Face{V: [3]int{base, base + 1, base + 2}})
	}

	mesh.CalculateBounds()
	return mesh
}

// PositionBuffer flattens the vertices of a polygon stream into a tightly
// packed x, y, z float buffer, in emission order.
func PositionBuffer(src poly.Source[poly.Polygon[mgl32.Vec3]]) []float32 {
	var buf []float32
	verts := poly.Vertices[mgl32.Vec3](src)
	for v, ok := verts.Next(); ok; v, ok = verts.Next() {
		buf = append(buf, v[0], v[1], v[2])
	}
	return buf
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Positions) == 0 {
		return
	}

	m.BoundsMin = m.Positions[0]
	m.BoundsMax = m.Positions[0]

	for _, p := range m.Positions[1:] {
		for i := range 3 {
			m.BoundsMin[i] = min(m.BoundsMin[i], p[i])
			m.BoundsMax[i] = max(m.BoundsMax[i], p[i])
		}
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() mgl32.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Mul(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() mgl32.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// Transform applies a transformation matrix to all vertices.
func (m *Mesh) Transform(mat mgl32.Mat4) {
	for i, p := range m.Positions {
		m.Positions[i] = mgl32.TransformCoordinate(p, mat)
	}
	m.CalculateBounds()
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Positions: make([]mgl32.Vec3, len(m.Positions)),
		Faces:     make([]Face, len(m.Faces)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Positions, m.Positions)
	copy(clone.Faces, m.Faces)
	return clone
}

// GetVertex returns the position of vertex i.
func (m *Mesh) GetVertex(i int) mgl32.Vec3 {
	return m.Positions[i]
}

// GetFace returns the vertex indices for face i.
func (m *Mesh) GetFace(i int) [3]int {
	return m.Faces[i].V
}

// GetBounds returns the axis-aligned bounding box.
func (m *Mesh) GetBounds() (min, max mgl32.Vec3) {
	return m.BoundsMin, m.BoundsMax
}
