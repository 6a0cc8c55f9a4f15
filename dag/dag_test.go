package dag

import (
	"errors"
	"testing"

	"github.com/gosynth/flashfill/cfg"
	"github.com/gosynth/flashfill/rx"
)

func TestBuildEmptyOutput(t *testing.T) {
	m := rx.NewMatcher()
	c := cfg.DefaultConfig()
	d := Build("John Smith", "", m, c)

	if d.Source != d.Dest {
		t.Fatalf("empty-output DAG: Source=%q Dest=%q, want equal", d.Source, d.Dest)
	}
	if len(d.W) != 0 {
		t.Fatalf("empty-output DAG has %d edges, want 0", len(d.W))
	}
}

func TestBuildEveryEdgeNonEmpty(t *testing.T) {
	m := rx.NewMatcher()
	c := cfg.DefaultConfig()
	d := Build("John Smith", "Mary", m, c)

	if len(d.W) == 0 {
		t.Fatal("expected at least one edge")
	}
	for e, set := range d.W {
		if set.Len() == 0 {
			t.Errorf("edge %+v has an empty expression set; ConstStr should always survive", e)
		}
	}
}

func TestPathsEmptyOutput(t *testing.T) {
	m := rx.NewMatcher()
	c := cfg.DefaultConfig()
	d := Build("John Smith", "", m, c)

	paths := Paths(d, c)
	if len(paths) != 1 || len(paths[0]) != 0 {
		t.Fatalf("Paths on empty-output DAG = %+v, want one zero-length path", paths)
	}
}

func TestApplyConstStrReproducesOutput(t *testing.T) {
	m := rx.NewMatcher()
	c := cfg.DefaultConfig()
	d := Build("John Smith", "Mary", m, c)

	paths := Paths(d, c)
	if len(paths) == 0 {
		t.Fatal("no paths found")
	}
	out, ok := Apply(d.W, paths[0], "John Smith", m)
	if !ok || out != "Mary" {
		t.Fatalf("Apply = (%q, %v), want (\"Mary\", true)", out, ok)
	}
}

// TestIntersectGeneralizesSubstrExtraction mirrors the core first-name
// extraction scenario: two examples that disagree on the literal output
// but agree on "take the first word" should, after intersection, yield a
// path that generalizes to an unseen input.
func TestIntersectGeneralizesSubstrExtraction(t *testing.T) {
	m := rx.NewMatcher()
	c := cfg.DefaultConfig()

	d1 := Build("John Smith", "John", m, c)
	d2 := Build("Jane Doe", "Jane", m, c)

	prod, err := Intersect(d1, d2, c)
	if err != nil {
		t.Fatalf("Intersect error: %v", err)
	}
	paths := Paths(prod, c)
	if len(paths) == 0 {
		t.Fatal("no paths survive intersection")
	}

	generalized := false
	for _, p := range paths {
		out, ok := Apply(prod.W, p, "Mary Jones", m)
		if ok && out == "Mary" {
			generalized = true
			break
		}
	}
	if !generalized {
		t.Fatal("no surviving path generalizes to an unseen input")
	}
}

func TestIntersectRespectsMaxDagEdges(t *testing.T) {
	m := rx.NewMatcher()
	c := cfg.DefaultConfig()
	c.MaxDagEdges = 1

	d1 := Build("John Smith", "John Smith", m, c)
	d2 := Build("Jane Doe", "Jane Doe", m, c)

	// Rebuild without the cap so the operands themselves are complete;
	// only the product is expected to hit the cap.
	c.MaxDagEdges = cfg.DefaultConfig().MaxDagEdges
	d1 = Build("John Smith", "John Smith", m, c)
	d2 = Build("Jane Doe", "Jane Doe", m, c)

	tight := cfg.DefaultConfig()
	tight.MaxDagEdges = 1
	if _, err := Intersect(d1, d2, tight); !errors.Is(err, ErrTooManyEdges) {
		t.Fatalf("Intersect error = %v, want wrapping ErrTooManyEdges", err)
	}
}
