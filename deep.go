package goclone

import (
	"reflect"

	eng "github.com/reoring/goclone/internal/engine"
)

// Cloner is implemented by types that duplicate themselves. DeepCopy calls
// the method instead of walking the value when its result type matches.
type Cloner[T any] interface {
	DeepCopy() T
}

// DeepCopy returns a copy of v that shares no mutable storage with it, using
// DefaultOptions.
func DeepCopy[T any](v T) (T, error) { return DeepCopyWith(v, DefaultOptions()) }

// DeepCopyWith returns a copy of v that shares no mutable storage with it.
// On failure it returns the zero T and Issues describing every value that
// could not be copied.
func DeepCopyWith[T any](v T, opts Options) (T, error) {
	var zero T
	src := reflect.ValueOf(&v).Elem()
	out, si := eng.DeepCopy(src, toEngineCopy(opts))
	if len(si) > 0 {
		return zero, fromEngineIssues(si)
	}
	res, _ := out.Interface().(T)
	return res, nil
}

// MustDeepCopy is like DeepCopy but panics on error.
func MustDeepCopy[T any](v T) T {
	out, err := DeepCopy(v)
	if err != nil {
		panic(err)
	}
	return out
}

func toEngineCopy(o Options) eng.CopyOptions {
	eo := eng.CopyOptions{
		MaxDepth:         o.MaxDepth,
		PreserveSharing:  o.PreserveSharing,
		ShareUnsupported: o.ShareUnsupported,
		Unexported:       toEngineUnexported(o.Unexported),
		FieldKey:         ResolveStructKey,
		FailFast:         o.FailFast,
	}
	if len(o.ShareTypes) > 0 {
		eo.ShareTypes = make(map[reflect.Type]bool, len(o.ShareTypes))
		for _, t := range o.ShareTypes {
			eo.ShareTypes[t] = true
		}
	}
	if o.OnIssue != nil {
		eo.IssueSink = func(si eng.SimpleIssue) { o.OnIssue(fromEngineIssue(si)) }
	}
	return eo
}

func toEngineUnexported(p UnexportedPolicy) eng.UnexportedPolicy {
	switch p {
	case UnexportedSkip:
		return eng.UnexportedSkip
	case UnexportedError:
		return eng.UnexportedError
	default:
		return eng.UnexportedCopy
	}
}

func fromEngineIssue(s eng.SimpleIssue) Issue {
	return Issue{Code: s.Code, Path: s.Path, Message: s.Message, Params: s.Params}
}

func fromEngineIssues(si []eng.SimpleIssue) Issues {
	var iss Issues
	for _, s := range si {
		iss = AppendIssues(iss, fromEngineIssue(s))
	}
	return iss
}
