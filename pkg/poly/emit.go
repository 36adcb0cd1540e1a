package poly

// Emitter is implemented by shapes that can be decomposed into vertices.
// EmitVertices calls emit once per vertex, in declaration order.
type Emitter[T any] interface {
	EmitVertices(emit func(T))
}

// EmitVertices emits x, y, z.
func (t Triangle[T]) EmitVertices(emit func(T)) {
	emit(t.X)
	emit(t.Y)
	emit(t.Z)
}

// EmitVertices emits x, y, z, w.
func (q Quad[T]) EmitVertices(emit func(T)) {
	emit(q.X)
	emit(q.Y)
	emit(q.Z)
	emit(q.W)
}

// EmitVertices emits the vertices of the wrapped shape.
func (p Polygon[T]) EmitVertices(emit func(T)) {
	switch p.kind {
	case KindTriangle:
		p.tri.EmitVertices(emit)
	case KindQuad:
		p.quad.EmitVertices(emit)
	default:
		panic(invalidPolygon(p.kind))
	}
}

// AppendVertices appends the vertices of e to dst and returns the result.
func AppendVertices[T any](dst []T, e Emitter[T]) []T {
	e.EmitVertices(func(v T) {
		dst = append(dst, v)
	})
	return dst
}

// MapTriangle returns a triangle with f applied to each vertex.
func MapTriangle[T, U any](t Triangle[T], f func(T) U) Triangle[U] {
	return Triangle[U]{
		X: f(t.X),
		Y: f(t.Y),
		Z: f(t.Z),
	}
}

// MapQuad returns a quad with f applied to each vertex.
func MapQuad[T, U any](q Quad[T], f func(T) U) Quad[U] {
	return Quad[U]{
		X: f(q.X),
		Y: f(q.Y),
		Z: f(q.Z),
		W: f(q.W),
	}
}

// MapPolygon returns a polygon of the same kind with f applied to each
// vertex.
func MapPolygon[T, U any](p Polygon[T], f func(T) U) Polygon[U] {
	switch p.kind {
	case KindTriangle:
		return PolyTri(MapTriangle(p.tri, f))
	case KindQuad:
		return PolyQuad(MapQuad(p.quad, f))
	default:
		panic(invalidPolygon(p.kind))
	}
}
