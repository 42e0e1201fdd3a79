package goclone_test

import (
	"reflect"
	"testing"

	"github.com/reoring/goclone"
)

func TestResolveStructKey(t *testing.T) {
	type sample struct {
		Plain    int
		JSON     int `json:"json_name,omitempty"`
		OnlyOpts int `json:",omitempty"`
		Hidden   int `json:"-"`
		Tagged   int `goclone:"name=custom" json:"ignored"`
	}
	want := map[string]string{
		"Plain":    "Plain",
		"JSON":     "json_name",
		"OnlyOpts": "OnlyOpts",
		"Hidden":   "-",
		"Tagged":   "custom",
	}
	rt := reflect.TypeOf(sample{})
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if got := goclone.ResolveStructKey(sf); got != want[sf.Name] {
			t.Fatalf("%s: got %q want %q", sf.Name, got, want[sf.Name])
		}
	}
}
