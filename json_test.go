package goclone_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/goclone"
	"github.com/reoring/goclone/demo"
)

func TestDeepCopyJSON_PackKeepsTypesAndIndependence(t *testing.T) {
	orig := demo.NewPack("Buster", "Ginger", "Mimi", "Ella")
	cp, err := goclone.DeepCopyJSON(orig)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	dog, ok := cp[0].(*demo.Dog)
	if !ok {
		t.Fatalf("expected *demo.Dog at /0, got %T", cp[0])
	}
	dog.SetName("Roscoe")

	if diff := cmp.Diff([]string{"Buster", "Ginger", "Mimi", "Ella"}, orig.Names()); diff != "" {
		t.Fatalf("original mutated (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Roscoe", "Ginger", "Mimi", "Ella"}, cp.Names()); diff != "" {
		t.Fatalf("copy mismatch (-want +got):\n%s", diff)
	}
	if goclone.SharesState(orig, cp) {
		t.Fatalf("JSON copy should share nothing")
	}
}

func TestDeepCopyJSON_DropsUnexportedState(t *testing.T) {
	in := secret{Public: []int{1}, private: []int{2}}
	out, err := goclone.DeepCopyJSON(in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.private != nil {
		t.Fatalf("unexported state should not survive JSON: %#v", out)
	}
	if diff := cmp.Diff([]int{1}, out.Public); diff != "" {
		t.Fatalf("public mismatch (-want +got):\n%s", diff)
	}
}

func TestDeepCopyJSON_DoesNotPreserveSharing(t *testing.T) {
	shared := &node{Name: "s"}
	out, err := goclone.DeepCopyJSON([]*node{shared, shared})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out[0] == out[1] {
		t.Fatalf("JSON round trip should produce separate objects")
	}
}

func TestDeepCopyJSON_EncodeErrorIsCodecIssue(t *testing.T) {
	_, err := goclone.DeepCopyJSON(withChan{Feed: make(chan int)})
	iss, ok := goclone.AsIssues(err)
	if !ok || iss[0].Code != goclone.CodeCodec {
		t.Fatalf("expected codec_error, got %v", err)
	}
	if iss[0].Cause == nil || iss[0].Params["stage"] != "encode" {
		t.Fatalf("expected cause and stage, got %+v", iss[0])
	}
}
