package goclone

import (
	"reflect"

	eng "github.com/reoring/goclone/internal/engine"
)

// AliasKind names the kind of storage two graphs share.
type AliasKind string

const (
	// AliasPointer is a shared pointer target.
	AliasPointer AliasKind = "pointer"
	// AliasMap is a shared map.
	AliasMap AliasKind = "map"
	// AliasSlice is an overlapping slice backing array.
	AliasSlice AliasKind = "slice"
)

// Alias reports mutable storage reachable from both a copy and its original.
// Mutating it through either handle is visible through the other.
type Alias struct {
	Path         string    `json:"path" yaml:"path"`                  // JSON Pointer in the copy
	OriginalPath string    `json:"original_path" yaml:"original_path"` // JSON Pointer in the original
	Kind         AliasKind `json:"kind" yaml:"kind"`
}

// Aliases walks original and clone and reports the pointer targets, maps and
// slice backing arrays that clone shares with original. Each shared object is
// reported once, at the first path where clone reaches it; nothing below it is
// reported again. Strings, funcs, time.Time and *time.Location are immutable
// and never reported. A fully independent deep copy yields no aliases.
func Aliases(original, clone any) []Alias {
	found := eng.FindAliases(reflect.ValueOf(original), reflect.ValueOf(clone), ResolveStructKey)
	if len(found) == 0 {
		return nil
	}
	out := make([]Alias, 0, len(found))
	for _, a := range found {
		out = append(out, Alias{Path: a.Path, OriginalPath: a.OriginalPath, Kind: AliasKind(a.Kind)})
	}
	return out
}

// SharesState reports whether a and b reach any common mutable storage.
func SharesState(a, b any) bool { return len(Aliases(a, b)) > 0 }
