package poly

import (
	"slices"
	"testing"
)

func mixedPolygons() []Polygon[int] {
	return []Polygon[int]{
		PolyTri(NewTriangle(0, 1, 2)),
		PolyQuad(NewQuad(3, 4, 5, 6)),
		PolyQuad(NewQuad(7, 8, 9, 10)),
		PolyTri(NewTriangle(11, 12, 13)),
	}
}

func TestVerticesOrderAndCount(t *testing.T) {
	polys := mixedPolygons()

	var want []int
	arity := 0
	for _, p := range polys {
		want = AppendVertices(want, p)
		arity += p.Arity()
	}

	got := Collect(Vertices[int](FromSlice(polys)))
	if len(got) != arity {
		t.Errorf("got %d vertices, want %d", len(got), arity)
	}
	if !slices.Equal(got, want) {
		t.Errorf("vertices = %v, want %v", got, want)
	}
}

func TestVerticesOfTriangles(t *testing.T) {
	src := FromSlice([]Triangle[string]{
		NewTriangle("a", "b", "c"),
		NewTriangle("d", "e", "f"),
	})
	got := Collect(Vertices[string](src))
	if !slices.Equal(got, []string{"a", "b", "c", "d", "e", "f"}) {
		t.Errorf("vertices = %v", got)
	}
}

func TestVerticesIsLazy(t *testing.T) {
	pulls := 0
	polys := mixedPolygons()
	src := SourceFunc[Polygon[int]](func() (Polygon[int], bool) {
		if pulls >= len(polys) {
			return Polygon[int]{}, false
		}
		pulls++
		return polys[pulls-1], true
	})

	it := Vertices[int](src)
	if pulls != 0 {
		t.Fatalf("source pulled %d times before first Next", pulls)
	}

	it.Next()
	if pulls != 1 || it.Buffered() != 2 {
		t.Errorf("after one vertex: pulls=%d buffered=%d", pulls, it.Buffered())
	}
	it.Next()
	it.Next()
	if pulls != 1 {
		t.Errorf("triangle drained with %d pulls, want 1", pulls)
	}
	it.Next()
	if pulls != 2 || it.Buffered() != 3 {
		t.Errorf("after first quad vertex: pulls=%d buffered=%d", pulls, it.Buffered())
	}
}

func TestVerticesStaysExhausted(t *testing.T) {
	calls := 0
	src := SourceFunc[Polygon[int]](func() (Polygon[int], bool) {
		calls++
		return Polygon[int]{}, false
	})
	it := Vertices[int](src)
	for range 3 {
		if _, ok := it.Next(); ok {
			t.Fatal("empty source produced a vertex")
		}
	}
	if calls != 1 {
		t.Errorf("exhausted source pulled %d times, want 1", calls)
	}
}

func TestTriangles(t *testing.T) {
	got := Collect(Triangles(FromSlice(mixedPolygons())))
	want := []Triangle[int]{
		NewTriangle(0, 1, 2),
		NewTriangle(3, 4, 5),
		NewTriangle(5, 6, 3),
		NewTriangle(7, 8, 9),
		NewTriangle(9, 10, 7),
		NewTriangle(11, 12, 13),
	}
	if !slices.Equal(got, want) {
		t.Errorf("triangles = %v, want %v", got, want)
	}
}

func TestMapVertices(t *testing.T) {
	polys := mixedPolygons()
	calls := 0
	neg := func(v int) int {
		calls++
		return -v
	}

	got := Collect(MapVertices(FromSlice(polys), neg))
	if len(got) != len(polys) {
		t.Fatalf("got %d polygons, want %d", len(got), len(polys))
	}
	vertexCount := 0
	for i, p := range got {
		if p.Kind() != polys[i].Kind() {
			t.Errorf("polygon %d: kind %v, want %v", i, p.Kind(), polys[i].Kind())
		}
		if p != MapPolygon(polys[i], func(v int) int { return -v }) {
			t.Errorf("polygon %d = %v", i, p)
		}
		vertexCount += p.Arity()
	}
	if calls != vertexCount {
		t.Errorf("transform called %d times, want %d", calls, vertexCount)
	}
}

func TestMapShapesTriangles(t *testing.T) {
	src := FromSlice([]Triangle[int]{NewTriangle(1, 2, 3)})
	it := MapShapes(src, MapTriangle[int, float64], func(v int) float64 { return float64(v) / 2 })

	tri, ok := it.Next()
	if !ok || tri != NewTriangle(0.5, 1, 1.5) {
		t.Errorf("Next() = %v, %v", tri, ok)
	}
	if _, ok := it.Next(); ok {
		t.Error("expected exhaustion")
	}
}

func TestMapThenVertices(t *testing.T) {
	polys := mixedPolygons()
	plusOne := func(v int) int { return v + 1 }

	got := Collect(Vertices[int](MapVertices(FromSlice(polys), plusOne)))
	var want []int
	for _, v := range Collect(Vertices[int](FromSlice(polys))) {
		want = append(want, plusOne(v))
	}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAll(t *testing.T) {
	var got []int
	for v := range All(Vertices[int](FromSlice(mixedPolygons()))) {
		if v == 5 {
			break
		}
		got = append(got, v)
	}
	if !slices.Equal(got, []int{0, 1, 2, 3, 4}) {
		t.Errorf("got %v", got)
	}
}

func BenchmarkVertices(b *testing.B) {
	polys := make([]Polygon[int], 1024)
	for i := range polys {
		if i%2 == 0 {
			polys[i] = PolyTri(NewTriangle(i, i+1, i+2))
		} else {
			polys[i] = PolyQuad(NewQuad(i, i+1, i+2, i+3))
		}
	}

	for b.Loop() {
		it := Vertices[int](FromSlice(polys))
		for _, ok := it.Next(); ok; _, ok = it.Next() {
		}
	}
}

func TestSourceFunc(t *testing.T) {
	n := 0
	var src Source[Triangle[int]] = SourceFunc[Triangle[int]](func() (Triangle[int], bool) {
		if n == 2 {
			return Triangle[int]{}, false
		}
		n++
		return NewTriangle(n, n, n), true
	})

	got := Collect(Vertices[int](src))
	if want := []int{1, 1, 1, 2, 2, 2}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
