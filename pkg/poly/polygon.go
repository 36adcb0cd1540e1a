// Package poly provides the triangle and quad shapes emitted by mesh
// generators, and adapters that flatten or remap streams of them.
package poly

import "fmt"

// Triangle is a polygon with 3 vertices. Vertex order is winding order.
type Triangle[T any] struct {
	X, Y, Z T
}

// NewTriangle creates a Triangle from its vertices.
func NewTriangle[T any](x, y, z T) Triangle[T] {
	return Triangle[T]{X: x, Y: y, Z: z}
}

// Quad is a polygon with 4 vertices. Vertex order is winding order.
type Quad[T any] struct {
	X, Y, Z, W T
}

// NewQuad creates a Quad from its vertices.
func NewQuad[T any](x, y, z, w T) Quad[T] {
	return Quad[T]{X: x, Y: y, Z: z, W: w}
}

// Triangulate splits the quad into (x, y, z) and (z, w, x).
func (q Quad[T]) Triangulate() (Triangle[T], Triangle[T]) {
	return Triangle[T]{q.X, q.Y, q.Z}, Triangle[T]{q.Z, q.W, q.X}
}

// Kind identifies the shape held by a Polygon.
type Kind uint8

const (
	KindTriangle Kind = iota + 1
	KindQuad
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindTriangle:
		return "triangle"
	case KindQuad:
		return "quad"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Arity returns the number of vertices of the kind, or 0 if unknown.
func (k Kind) Arity() int {
	switch k {
	case KindTriangle:
		return 3
	case KindQuad:
		return 4
	default:
		return 0
	}
}

// Polygon holds either a Triangle or a Quad. Generators that mix shapes,
// like the caps of a sphere, return Polygons.
//
// The zero Polygon holds neither shape; only values built with PolyTri or
// PolyQuad are valid.
type Polygon[T any] struct {
	kind Kind
	tri  Triangle[T]
	quad Quad[T]
}

// PolyTri wraps a triangle.
func PolyTri[T any](t Triangle[T]) Polygon[T] {
	return Polygon[T]{kind: KindTriangle, tri: t}
}

// PolyQuad wraps a quad.
func PolyQuad[T any](q Quad[T]) Polygon[T] {
	return Polygon[T]{kind: KindQuad, quad: q}
}

// Kind returns the wrapped shape kind.
func (p Polygon[T]) Kind() Kind {
	return p.kind
}

// Arity returns the number of vertices in the polygon.
func (p Polygon[T]) Arity() int {
	return p.kind.Arity()
}

// Triangle returns the wrapped triangle, if the polygon is one.
func (p Polygon[T]) Triangle() (Triangle[T], bool) {
	return p.tri, p.kind == KindTriangle
}

// Quad returns the wrapped quad, if the polygon is one.
func (p Polygon[T]) Quad() (Quad[T], bool) {
	return p.quad, p.kind == KindQuad
}

// Triangulate calls emit with the polygon itself if it is a triangle, or
// with the two halves of the quad otherwise.
func (p Polygon[T]) Triangulate(emit func(Triangle[T])) {
	switch p.kind {
	case KindTriangle:
		emit(p.tri)
	case KindQuad:
		a, b := p.quad.Triangulate()
		emit(a)
		emit(b)
	default:
		panic(invalidPolygon(p.kind))
	}
}

// String implements fmt.Stringer.
func (p Polygon[T]) String() string {
	switch p.kind {
	case KindTriangle:
		return fmt.Sprintf("triangle%v", p.tri)
	case KindQuad:
		return fmt.Sprintf("quad%v", p.quad)
	default:
		return "polygon{}"
	}
}

func invalidPolygon(k Kind) string {
	return fmt.Sprintf("poly: invalid polygon kind %v", k)
}
