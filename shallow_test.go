package goclone_test

import (
	"testing"

	"github.com/reoring/goclone"
	"github.com/reoring/goclone/demo"
)

func TestShallowCopy_RenameThroughCopyIsVisibleInOriginal(t *testing.T) {
	orig := demo.NewPack("Buster", "Ginger", "Mimi", "Ella")
	cp := goclone.ShallowCopy(orig)

	cp[0].(*demo.Dog).SetName("Roscoe")

	if got := orig[0].(*demo.Dog).Name(); got != "Roscoe" {
		t.Fatalf("original dog = %q, want Roscoe (shared through shallow copy)", got)
	}
	if cp[0] != orig[0] {
		t.Fatalf("expected the same *Dog in both sequences")
	}
}

func TestShallowCopy_TopLevelSlotsAreIndependent(t *testing.T) {
	orig := demo.NewPack("Buster", "Ginger", "Mimi", "Ella")
	cp := goclone.ShallowCopy(orig)

	cp[1] = "Pepper"
	cp[0] = demo.NewDog("Rex")

	if orig[1] != "Ginger" {
		t.Fatalf("original[1] = %v, want Ginger", orig[1])
	}
	if orig.Dog().Name() != "Buster" {
		t.Fatalf("replacing the copy's slot must not rename the original dog")
	}
}

func TestShallowCopy_NilAndEmpty(t *testing.T) {
	var nilSlice []int
	if got := goclone.ShallowCopy(nilSlice); got != nil {
		t.Fatalf("nil input should yield nil, got %#v", got)
	}
	empty := []int{}
	got := goclone.ShallowCopy(empty)
	if got == nil || len(got) != 0 {
		t.Fatalf("empty input should yield empty non-nil slice, got %#v", got)
	}
}

func TestShallowCopy_KeepsNamedType(t *testing.T) {
	type names []string
	in := names{"a", "b"}
	var out names = goclone.ShallowCopy(in)
	out[0] = "z"
	if in[0] != "a" {
		t.Fatalf("backing array shared: %v", in)
	}
}

func TestShallowCopyMap(t *testing.T) {
	inner := []int{1, 2}
	m := map[string][]int{"a": inner}
	cp := goclone.ShallowCopyMap(m)

	cp["b"] = []int{3}
	if _, ok := m["b"]; ok {
		t.Fatalf("adding a key to the copy leaked into the original")
	}
	cp["a"][0] = 99
	if m["a"][0] != 99 {
		t.Fatalf("values should stay shared in a shallow map copy")
	}
	if goclone.ShallowCopyMap[map[string]int](nil) != nil {
		t.Fatalf("nil map should yield nil")
	}
}
