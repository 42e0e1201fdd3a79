package goclone

import "reflect"

// UnexportedPolicy selects how DeepCopy treats unexported struct fields.
type UnexportedPolicy int

const (
	// UnexportedCopy deep copies unexported fields like exported ones.
	UnexportedCopy UnexportedPolicy = iota
	// UnexportedSkip leaves unexported fields zero in the copy.
	UnexportedSkip
	// UnexportedError reports an unexported_field issue for each one.
	UnexportedError
)

// DefaultMaxDepth is the recursion limit applied by DefaultOptions.
const DefaultMaxDepth = 1000

// Options configures DeepCopyWith.
type Options struct {
	// MaxDepth bounds the number of reference hops (pointer, slice, map) from
	// the root; 0 means unlimited. Struct fields and array elements do not
	// count, so a linked list of MaxDepth nodes copies.
	MaxDepth int
	// PreserveSharing copies two handles to one object as two handles to one
	// new object. Cycles require it (or a MaxDepth) to terminate.
	PreserveSharing bool
	// ShareUnsupported shares chans and unsafe pointers instead of failing.
	ShareUnsupported bool
	Unexported       UnexportedPolicy
	// ShareTypes lists types treated as immutable and copied by handle.
	// time.Time and *time.Location are always shared.
	ShareTypes []reflect.Type
	// FailFast stops at the first issue.
	FailFast bool
	// OnIssue observes every issue as it is produced.
	OnIssue func(Issue)
}

// DefaultOptions returns the options used by DeepCopy.
func DefaultOptions() Options {
	return Options{
		MaxDepth:        DefaultMaxDepth,
		PreserveSharing: true,
		Unexported:      UnexportedCopy,
	}
}
