// Package generators provides procedural surface generators. Each generator
// streams polygons through poly.Source and also describes the same surface
// as a deduplicated vertex table plus indexed polygons.
package generators

import "errors"

// ErrResolution is returned when a generator is asked for a resolution it
// cannot tessellate.
var ErrResolution = errors.New("invalid resolution")

// SharedVertex is a random-access table of the distinct vertices of a
// surface. Valid indices are 0 through SharedVertexCount()-1.
type SharedVertex[V any] interface {
	SharedVertex(idx int) V
	SharedVertexCount() int
}

// IndexedPolygon is a random-access table of polygons whose vertices are
// indices into the matching SharedVertex table. Valid indices are 0 through
// IndexedPolygonCount()-1.
type IndexedPolygon[P any] interface {
	IndexedPolygon(idx int) P
	IndexedPolygonCount() int
}
