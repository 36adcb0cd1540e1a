package poly

import "iter"

// Source is a lazy, pull-based sequence. Next returns the next item, or
// false once the sequence is exhausted.
type Source[P any] interface {
	Next() (P, bool)
}

// SourceFunc adapts a function to a Source.
type SourceFunc[P any] func() (P, bool)

// Next calls f.
func (f SourceFunc[P]) Next() (P, bool) {
	return f()
}

// FromSlice returns a Source yielding the items of s in order.
func FromSlice[P any](s []P) Source[P] {
	i := 0
	return SourceFunc[P](func() (P, bool) {
		if i >= len(s) {
			var zero P
			return zero, false
		}
		p := s[i]
		i++
		return p, true
	})
}

// Collect drains src into a slice.
func Collect[P any](src Source[P]) []P {
	var out []P
	for p, ok := src.Next(); ok; p, ok = src.Next() {
		out = append(out, p)
	}
	return out
}

// All returns an iterator over the remaining items of src.
func All[P any](src Source[P]) iter.Seq[P] {
	return func(yield func(P) bool) {
		for {
			p, ok := src.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// FlatIterator expands each item of a source into zero or more outputs.
// Outputs are buffered in FIFO order, so they come out in source order and,
// within one item, in expansion order.
type FlatIterator[In, Out any] struct {
	source Source[In]
	expand func(In, func(Out))
	push   func(Out)
	buffer []Out
	head   int
	done   bool
}

// Flatten returns an iterator over the outputs of expand applied to each item
// of src.
func Flatten[In, Out any](src Source[In], expand func(In, func(Out))) *FlatIterator[In, Out] {
	it := &FlatIterator[In, Out]{
		source: src,
		expand: expand,
	}
	it.push = func(v Out) {
		it.buffer = append(it.buffer, v)
	}
	return it
}

// Vertices returns an iterator over the individual vertices of the polygons
// in src.
func Vertices[T any, P Emitter[T]](src Source[P]) *FlatIterator[P, T] {
	return Flatten(src, func(p P, emit func(T)) {
		p.EmitVertices(emit)
	})
}

// Triangles returns an iterator that splits every quad in src into two
// triangles and passes triangles through.
func Triangles[T any](src Source[Polygon[T]]) *FlatIterator[Polygon[T], Triangle[T]] {
	return Flatten(src, func(p Polygon[T], emit func(Triangle[T])) {
		p.Triangulate(emit)
	})
}

// Next returns the oldest buffered output, pulling from the source when the
// buffer is empty.
func (it *FlatIterator[In, Out]) Next() (Out, bool) {
	for {
		if it.head < len(it.buffer) {
			v := it.buffer[it.head]
			var zero Out
			it.buffer[it.head] = zero
			it.head++
			return v, true
		}
		it.buffer = it.buffer[:0]
		it.head = 0

		if it.done {
			var zero Out
			return zero, false
		}
		p, ok := it.source.Next()
		if !ok {
			it.done = true
			continue
		}
		it.expand(p, it.push)
	}
}

// Buffered returns the number of outputs waiting to be returned.
func (it *FlatIterator[In, Out]) Buffered() int {
	return len(it.buffer) - it.head
}

// MapIterator yields each polygon of a source with its vertices transformed.
type MapIterator[P, Q, T, U any] struct {
	source   Source[P]
	mapShape func(P, func(T) U) Q
	f        func(T) U
}

// MapShapes returns an iterator applying f to every vertex of every shape in
// src, using mapShape to rebuild each shape (for example MapTriangle).
func MapShapes[P, Q, T, U any](src Source[P], mapShape func(P, func(T) U) Q, f func(T) U) *MapIterator[P, Q, T, U] {
	return &MapIterator[P, Q, T, U]{
		source:   src,
		mapShape: mapShape,
		f:        f,
	}
}

// MapVertices returns an iterator over the polygons of src with f applied to
// each vertex. The kind of every polygon is preserved.
func MapVertices[T, U any](src Source[Polygon[T]], f func(T) U) *MapIterator[Polygon[T], Polygon[U], T, U] {
	return MapShapes(src, MapPolygon[T, U], f)
}

// Next pulls one shape from the source and maps it.
func (m *MapIterator[P, Q, T, U]) Next() (Q, bool) {
	p, ok := m.source.Next()
	if !ok {
		var zero Q
		return zero, false
	}
	return m.mapShape(p, m.f), true
}
