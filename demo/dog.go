package demo

import (
	gojson "github.com/goccy/go-json"
)

// Dog is a mutable object with a single named attribute reachable only through
// its accessor and mutator.
type Dog struct {
	name string
}

// NewDog returns a dog with the given name.
func NewDog(name string) *Dog { return &Dog{name: name} }

// Name returns the dog's name.
func (d *Dog) Name() string { return d.name }

// SetName renames the dog in place. Every handle to d observes the change.
func (d *Dog) SetName(name string) { d.name = name }

// DeepCopy returns an independent dog with the same name.
func (d *Dog) DeepCopy() *Dog {
	if d == nil {
		return nil
	}
	return &Dog{name: d.name}
}

func (d *Dog) String() string { return "Dog(" + d.name + ")" }

type dogWire struct {
	Name string `json:"name"`
}

// MarshalJSON exposes the unexported name so JSON copies keep it.
func (d *Dog) MarshalJSON() ([]byte, error) {
	return gojson.Marshal(dogWire{Name: d.name})
}

// UnmarshalJSON restores a dog encoded by MarshalJSON.
func (d *Dog) UnmarshalJSON(b []byte) error {
	var w dogWire
	if err := gojson.Unmarshal(b, &w); err != nil {
		return err
	}
	d.name = w.Name
	return nil
}
