package engine

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unsafe"
)

// UnexportedPolicy selects how unexported struct fields are handled.
type UnexportedPolicy int

const (
	UnexportedCopy UnexportedPolicy = iota
	UnexportedSkip
	UnexportedError
)

// SimpleIssue is a minimal issue used inside the engine to avoid depending on
// the root package.
type SimpleIssue struct {
	Code    string
	Path    string
	Message string
	Params  map[string]any
}

// CopyOptions configures DeepCopy.
type CopyOptions struct {
	// MaxDepth bounds the number of reference hops (pointer, slice, map) from
	// the root; 0 means unlimited. Struct fields and array elements do not add
	// depth.
	MaxDepth int
	// PreserveSharing keeps shared references shared (and cycles cyclic) in the
	// copy by remembering every pointer, map and slice already duplicated.
	PreserveSharing bool
	// ShareUnsupported shares chans and unsafe pointers instead of reporting them.
	ShareUnsupported bool
	Unexported       UnexportedPolicy
	// ShareTypes are treated as immutable and copied by handle.
	ShareTypes map[reflect.Type]bool
	// FieldKey names struct fields in issue paths. Defaults to the field name.
	FieldKey func(reflect.StructField) string
	// IssueSink, when set, observes every issue as it is produced.
	IssueSink func(SimpleIssue)
	// FailFast stops at the first issue; the rest of the graph is left zero.
	FailFast bool
}

var (
	typeTime     = reflect.TypeOf(time.Time{})
	typeLocation = reflect.TypeOf((*time.Location)(nil))
)

// identity keys a piece of mutable storage: a pointer target, a map or a slice
// window over a backing array.
type identity struct {
	kind reflect.Kind
	typ  reflect.Type
	ptr  uintptr
	len  int
	cap  int
}

type copier struct {
	opt    CopyOptions
	memo   map[identity]reflect.Value
	issues []SimpleIssue
	stop   bool
}

// DeepCopy returns a value of src's type that shares no mutable storage with
// src. Values that cannot be copied are reported and left zero in the result.
func DeepCopy(src reflect.Value, opt CopyOptions) (reflect.Value, []SimpleIssue) {
	if !src.IsValid() {
		return src, nil
	}
	c := &copier{opt: opt}
	if opt.PreserveSharing {
		c.memo = make(map[identity]reflect.Value)
	}
	return c.copy(src, "", 0), c.issues
}

func (c *copier) copy(src reflect.Value, path string, depth int) reflect.Value {
	t := src.Type()
	if c.stop {
		return reflect.Zero(t)
	}
	if c.opt.MaxDepth > 0 && depth > c.opt.MaxDepth {
		c.report(SimpleIssue{
			Code:    "max_depth",
			Path:    pointer(path),
			Message: "max depth exceeded",
			Params:  map[string]any{"limit": c.opt.MaxDepth},
		})
		return reflect.Zero(t)
	}
	if c.shared(t) {
		return src
	}

	switch src.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String, reflect.Func:
		return src
	case reflect.Chan, reflect.UnsafePointer:
		if c.opt.ShareUnsupported || src.IsNil() {
			return src
		}
		c.report(SimpleIssue{
			Code:    "unsupported_kind",
			Path:    pointer(path),
			Message: "cannot deep copy " + src.Kind().String(),
			Params:  map[string]any{"kind": src.Kind().String(), "type": t.String()},
		})
		return reflect.Zero(t)
	case reflect.Pointer:
		return c.copyPointer(src, path, depth)
	case reflect.Interface:
		if src.IsNil() {
			return reflect.Zero(t)
		}
		out := reflect.New(t).Elem()
		out.Set(c.copy(src.Elem(), path, depth))
		return out
	case reflect.Slice:
		return c.copySlice(src, path, depth)
	case reflect.Map:
		return c.copyMap(src, path, depth)
	case reflect.Array:
		if out, ok := c.viaCloner(src); ok {
			return out
		}
		out := reflect.New(t).Elem()
		for i := 0; i < src.Len(); i++ {
			out.Index(i).Set(c.copy(src.Index(i), join(path, strconv.Itoa(i)), depth))
		}
		return out
	case reflect.Struct:
		if out, ok := c.viaCloner(src); ok {
			return out
		}
		return c.copyStruct(src, path, depth)
	}
	return src
}

func (c *copier) copyPointer(src reflect.Value, path string, depth int) reflect.Value {
	t := src.Type()
	if src.IsNil() {
		return reflect.Zero(t)
	}
	key := identity{kind: reflect.Pointer, typ: t, ptr: src.Pointer()}
	if out, ok := c.memo[key]; ok {
		return out
	}
	if out, ok := c.viaCloner(src); ok {
		c.remember(key, out)
		return out
	}
	out := reflect.New(t.Elem())
	c.remember(key, out)
	out.Elem().Set(c.copy(src.Elem(), path, depth+1))
	return out
}

func (c *copier) copySlice(src reflect.Value, path string, depth int) reflect.Value {
	t := src.Type()
	if src.IsNil() {
		return reflect.Zero(t)
	}
	key := identity{kind: reflect.Slice, typ: t, ptr: src.Pointer(), len: src.Len(), cap: src.Cap()}
	if out, ok := c.memo[key]; ok {
		return out
	}
	if out, ok := c.viaCloner(src); ok {
		c.remember(key, out)
		return out
	}
	out := reflect.MakeSlice(t, src.Len(), src.Cap())
	c.remember(key, out)
	for i := 0; i < src.Len(); i++ {
		out.Index(i).Set(c.copy(src.Index(i), join(path, strconv.Itoa(i)), depth+1))
	}
	return out
}

func (c *copier) copyMap(src reflect.Value, path string, depth int) reflect.Value {
	t := src.Type()
	if src.IsNil() {
		return reflect.Zero(t)
	}
	key := identity{kind: reflect.Map, typ: t, ptr: src.Pointer()}
	if out, ok := c.memo[key]; ok {
		return out
	}
	if out, ok := c.viaCloner(src); ok {
		c.remember(key, out)
		return out
	}
	out := reflect.MakeMapWithSize(t, src.Len())
	c.remember(key, out)
	iter := src.MapRange()
	for iter.Next() {
		k := iter.Key()
		kpath := join(path, escape(fmt.Sprint(k.Interface())))
		out.SetMapIndex(c.copy(k, kpath, depth+1), c.copy(iter.Value(), kpath, depth+1))
	}
	return out
}

func (c *copier) copyStruct(src reflect.Value, path string, depth int) reflect.Value {
	t := src.Type()
	src = addressable(src)
	out := reflect.New(t).Elem()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Name == "_" {
			continue
		}
		fpath := fieldPath(path, c.fieldKey(sf))
		sv, dv := src.Field(i), out.Field(i)
		if !sf.IsExported() {
			switch c.opt.Unexported {
			case UnexportedSkip:
				continue
			case UnexportedError:
				c.report(SimpleIssue{
					Code:    "unexported_field",
					Path:    pointer(fpath),
					Message: "unexported field " + t.String() + "." + sf.Name,
					Params:  map[string]any{"type": t.String(), "field": sf.Name},
				})
				continue
			}
			sv = reflect.NewAt(sf.Type, unsafe.Pointer(sv.UnsafeAddr())).Elem()
			dv = reflect.NewAt(sf.Type, unsafe.Pointer(dv.UnsafeAddr())).Elem()
		}
		dv.Set(c.copy(sv, fpath, depth))
	}
	return out
}

// viaCloner duplicates src through its own DeepCopy method when the method
// returns src's type.
func (c *copier) viaCloner(src reflect.Value) (reflect.Value, bool) {
	m := src.MethodByName("DeepCopy")
	if !m.IsValid() {
		return reflect.Value{}, false
	}
	mt := m.Type()
	if mt.NumIn() != 0 || mt.NumOut() != 1 || mt.Out(0) != src.Type() {
		return reflect.Value{}, false
	}
	return m.Call(nil)[0], true
}

func (c *copier) shared(t reflect.Type) bool {
	if t == typeTime || t == typeLocation {
		return true
	}
	return c.opt.ShareTypes[t]
}

func (c *copier) remember(key identity, v reflect.Value) {
	if c.memo != nil {
		c.memo[key] = v
	}
}

func (c *copier) fieldKey(sf reflect.StructField) string {
	if c.opt.FieldKey != nil {
		return c.opt.FieldKey(sf)
	}
	return sf.Name
}

func (c *copier) report(si SimpleIssue) {
	c.issues = append(c.issues, si)
	if c.opt.IssueSink != nil {
		c.opt.IssueSink(si)
	}
	if c.opt.FailFast {
		c.stop = true
	}
}

// addressable returns v itself when addressable, otherwise an addressable copy.
// Unexported fields can only be reached through an address.
func addressable(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v
	}
	tmp := reflect.New(v.Type()).Elem()
	tmp.Set(v)
	return tmp
}

func pointer(path string) string {
	if path == "" {
		return "/"
	}
	return path
}

func join(path, seg string) string { return path + "/" + seg }

// fieldPath appends a struct field segment; a "-" key hides the field, so the
// parent path is kept.
func fieldPath(path, key string) string {
	if key == "-" || key == "" {
		return path
	}
	return join(path, escape(key))
}

// escape applies RFC6901 escaping to a single segment.
func escape(seg string) string {
	return strings.ReplaceAll(strings.ReplaceAll(seg, "~", "~0"), "/", "~1")
}
