package engine

import (
	"reflect"
	"testing"
)

type pair struct {
	Left, Right *int
	hidden      map[string]int
}

func TestDeepCopy_InvalidValue(t *testing.T) {
	out, iss := DeepCopy(reflect.Value{}, CopyOptions{})
	if out.IsValid() || iss != nil {
		t.Fatalf("invalid input should pass through, got %v %v", out, iss)
	}
}

func TestDeepCopy_MemoKeepsSharedPointer(t *testing.T) {
	n := 7
	in := pair{Left: &n, Right: &n, hidden: map[string]int{"a": 1}}

	out, iss := DeepCopy(reflect.ValueOf(in), CopyOptions{PreserveSharing: true})
	if len(iss) != 0 {
		t.Fatalf("unexpected issues %v", iss)
	}
	got := out.Interface().(pair)
	if got.Left != got.Right || got.Left == &n || *got.Left != 7 {
		t.Fatalf("shared pointer not preserved: %+v", got)
	}
	got.hidden["a"] = 2
	if in.hidden["a"] != 1 {
		t.Fatalf("unexported map shared with original")
	}
}

func TestDeepCopy_FieldKeyNamesPaths(t *testing.T) {
	type s struct{ C chan int }
	var paths []string
	_, iss := DeepCopy(reflect.ValueOf(s{C: make(chan int)}), CopyOptions{
		FieldKey:  func(sf reflect.StructField) string { return "x" + sf.Name },
		IssueSink: func(si SimpleIssue) { paths = append(paths, si.Path) },
	})
	if len(iss) != 1 || len(paths) != 1 || paths[0] != "/xC" {
		t.Fatalf("unexpected issues %v paths %v", iss, paths)
	}
	if iss[0].Message != "cannot deep copy chan" {
		t.Fatalf("unexpected message %q", iss[0].Message)
	}
}

func TestDeepCopy_MapKeyPathsAreEscaped(t *testing.T) {
	in := map[string]chan int{"a/b": make(chan int)}
	_, iss := DeepCopy(reflect.ValueOf(in), CopyOptions{})
	if len(iss) != 1 || iss[0].Path != "/a~1b" {
		t.Fatalf("unexpected issues %v", iss)
	}
}

func TestFindAliases_PrunesBelowAlias(t *testing.T) {
	type tree struct {
		Kids []*tree
	}
	root := &tree{Kids: []*tree{{}, {}}}
	got := FindAliases(reflect.ValueOf(root), reflect.ValueOf(root), nil)
	if len(got) != 1 || got[0].Path != "/" || got[0].Kind != "pointer" {
		t.Fatalf("expected one root alias, got %+v", got)
	}

	other := &tree{Kids: root.Kids}
	got = FindAliases(reflect.ValueOf(root), reflect.ValueOf(other), nil)
	if len(got) != 1 || got[0].Path != "/Kids" || got[0].Kind != "slice" {
		t.Fatalf("expected alias at /Kids, got %+v", got)
	}
}

func TestRegionOverlaps(t *testing.T) {
	a := region{kind: "slice", start: 100, end: 140}
	cases := []struct {
		name string
		b    region
		want bool
	}{
		{"inside", region{kind: "pointer", start: 108, end: 116}, true},
		{"adjacent", region{kind: "slice", start: 140, end: 160}, false},
		{"map vs slice", region{kind: "map", start: 100, end: 101}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.overlaps(tc.b); got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
	m := region{kind: "map", start: 5, end: 6}
	if !m.overlaps(region{kind: "map", start: 5, end: 6}) {
		t.Fatalf("same map header should overlap")
	}
}
