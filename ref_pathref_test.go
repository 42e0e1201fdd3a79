package goclone_test

import (
	"testing"

	"github.com/reoring/goclone"
)

func TestPathRef_Pointer(t *testing.T) {
	cases := []struct {
		name string
		ref  goclone.PathRef
		want string
	}{
		{"root", goclone.Root(), "/"},
		{"field and index", goclone.Root().Field("pets").Index(0).Field("name"), "/pets/0/name"},
		{"escaped", goclone.Root().Field("a/b").Field("c~d"), "/a~1b/c~0d"},
		{"empty field ignored", goclone.Root().Field(""), "/"},
		{"parsed", goclone.At("/pets/2"), "/pets/2"},
		{"parsed root", goclone.At(""), "/"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.ref.Pointer(); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestPathRef_ChainsDoNotShareParts(t *testing.T) {
	base := goclone.Root().Field("pets")
	a := base.Index(0)
	b := base.Index(1)
	if a.Pointer() != "/pets/0" || b.Pointer() != "/pets/1" {
		t.Fatalf("sibling paths interfered: %s %s", a.Pointer(), b.Pointer())
	}
}

func TestPathRef_Issue(t *testing.T) {
	it := goclone.Root().Field("feed").Issue(goclone.CodeUnsupportedKind, "chan", "kind", "chan", "dangling")
	if it.Path != "/feed" || it.Code != goclone.CodeUnsupportedKind {
		t.Fatalf("unexpected issue %+v", it)
	}
	if len(it.Params) != 1 || it.Params["kind"] != "chan" {
		t.Fatalf("unexpected params %v", it.Params)
	}
}
