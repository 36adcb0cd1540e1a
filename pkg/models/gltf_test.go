package models

import (
	"path/filepath"
	"testing"

	"github.com/taigrr/genmesh/pkg/generators"
)

func TestLoadGLBInvalidPath(t *testing.T) {
	_, err := LoadGLB("/nonexistent/path.glb")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestDocumentLayout(t *testing.T) {
	mesh := FromIndexed("sphere", generators.NewSphereUV(6, 4))
	doc := Document(mesh)

	if len(doc.Meshes) != 1 || len(doc.Meshes[0].Primitives) != 1 {
		t.Fatalf("expected one mesh with one primitive, got %d meshes", len(doc.Meshes))
	}
	prim := doc.Meshes[0].Primitives[0]
	if prim.Indices == nil {
		t.Fatal("primitive should be indexed")
	}
	if got := doc.Accessors[*prim.Indices].Count; got != 3*mesh.TriangleCount() {
		t.Errorf("index accessor count = %d, want %d", got, 3*mesh.TriangleCount())
	}
	if len(doc.Nodes) != 1 || doc.Nodes[0].Mesh == nil {
		t.Error("expected a node referencing the mesh")
	}
}

func TestSaveLoadGLBRoundTrip(t *testing.T) {
	mesh := FromIndexed("sphere", generators.NewSphereUV(8, 5))
	path := filepath.Join(t.TempDir(), "sphere.glb")

	if err := SaveGLB(path, mesh); err != nil {
		t.Fatalf("SaveGLB: %v", err)
	}
	loaded, err := LoadGLB(path)
	if err != nil {
		t.Fatalf("LoadGLB: %v", err)
	}

	if loaded.Name != "sphere.glb" {
		t.Errorf("Name = %q", loaded.Name)
	}
	if loaded.VertexCount() != mesh.VertexCount() {
		t.Fatalf("VertexCount = %d, want %d", loaded.VertexCount(), mesh.VertexCount())
	}
	if loaded.TriangleCount() != mesh.TriangleCount() {
		t.Fatalf("TriangleCount = %d, want %d", loaded.TriangleCount(), mesh.TriangleCount())
	}
	for i := range mesh.Positions {
		if loaded.Positions[i] != mesh.Positions[i] {
			t.Errorf("position %d = %v, want %v", i, loaded.Positions[i], mesh.Positions[i])
		}
	}
	for i := range mesh.Faces {
		if loaded.Faces[i] != mesh.Faces[i] {
			t.Errorf("face %d = %v, want %v", i, loaded.Faces[i], mesh.Faces[i])
		}
	}
}
