package engine

import (
	"fmt"
	"reflect"
	"strconv"
	"unsafe"
)

// SimpleAlias describes mutable storage reachable from two graphs.
type SimpleAlias struct {
	Path         string // where the storage is reached in the second graph
	OriginalPath string // where the same storage is reached in the first graph
	Kind         string // "pointer", "map" or "slice"
}

// region is a span of mutable memory found while walking a graph. Maps have no
// observable span, so they are keyed by header address alone.
type region struct {
	kind  string
	start uintptr
	end   uintptr
	path  string
}

func (r region) overlaps(o region) bool {
	if r.kind == "map" || o.kind == "map" {
		return r.kind == o.kind && r.start == o.start
	}
	return r.start < o.end && o.start < r.end
}

// FindAliases reports storage reachable from both first and second. Each
// shared region is reported at the first path where the walk of second meets
// it; nothing below an alias is reported again.
func FindAliases(first, second reflect.Value, fieldKey func(reflect.StructField) string) []SimpleAlias {
	var seen []region
	collect := &walker{fieldKey: fieldKey, visit: func(r region) bool {
		seen = append(seen, r)
		return true
	}}
	collect.walk(first, "")

	var out []SimpleAlias
	probe := &walker{fieldKey: fieldKey, visit: func(r region) bool {
		for _, s := range seen {
			if r.overlaps(s) {
				out = append(out, SimpleAlias{Path: pointer(r.path), OriginalPath: pointer(s.path), Kind: r.kind})
				return false
			}
		}
		return true
	}}
	probe.walk(second, "")
	return out
}

type walker struct {
	fieldKey func(reflect.StructField) string
	// visit is called for every region; returning false prunes the subtree.
	visit   func(region) bool
	visited map[identity]bool
}

func (w *walker) walk(v reflect.Value, path string) {
	if !v.IsValid() {
		return
	}
	if w.visited == nil {
		w.visited = make(map[identity]bool)
	}
	t := v.Type()
	if t == typeTime || t == typeLocation {
		return
	}
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return
		}
		key := identity{kind: reflect.Pointer, typ: t, ptr: v.Pointer()}
		if w.visited[key] {
			return
		}
		w.visited[key] = true
		size := t.Elem().Size()
		if size > 0 && !w.visit(region{kind: "pointer", start: v.Pointer(), end: v.Pointer() + size, path: path}) {
			return
		}
		w.walk(v.Elem(), path)
	case reflect.Interface:
		if v.IsNil() {
			return
		}
		w.walk(v.Elem(), path)
	case reflect.Map:
		if v.IsNil() {
			return
		}
		key := identity{kind: reflect.Map, typ: t, ptr: v.Pointer()}
		if w.visited[key] {
			return
		}
		w.visited[key] = true
		if !w.visit(region{kind: "map", start: v.Pointer(), end: v.Pointer() + 1, path: path}) {
			return
		}
		iter := v.MapRange()
		for iter.Next() {
			kpath := join(path, escape(fmt.Sprint(iter.Key().Interface())))
			w.walk(iter.Key(), kpath)
			w.walk(iter.Value(), kpath)
		}
	case reflect.Slice:
		if v.IsNil() {
			return
		}
		key := identity{kind: reflect.Slice, typ: t, ptr: v.Pointer(), len: v.Len(), cap: v.Cap()}
		if w.visited[key] {
			return
		}
		w.visited[key] = true
		size := uintptr(v.Cap()) * t.Elem().Size()
		if size > 0 && !w.visit(region{kind: "slice", start: v.Pointer(), end: v.Pointer() + size, path: path}) {
			return
		}
		for i := 0; i < v.Len(); i++ {
			w.walk(v.Index(i), join(path, strconv.Itoa(i)))
		}
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			w.walk(v.Index(i), join(path, strconv.Itoa(i)))
		}
	case reflect.Struct:
		v = addressable(v)
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			fv := v.Field(i)
			if !sf.IsExported() {
				fv = reflect.NewAt(sf.Type, unsafe.Pointer(fv.UnsafeAddr())).Elem()
			}
			name := sf.Name
			if w.fieldKey != nil {
				name = w.fieldKey(sf)
			}
			w.walk(fv, fieldPath(path, name))
		}
	}
}
