package demo

import (
	"fmt"

	"github.com/reoring/goclone"
)

// Strategy selects how a Pack is copied.
type Strategy string

const (
	// Shallow copies the sequence only; the dog stays shared.
	Shallow Strategy = "shallow"
	// Deep copies the whole graph by reflection.
	Deep Strategy = "deep"
	// JSON copies through a JSON round trip.
	JSON Strategy = "json"
)

// Strategies lists every known strategy in presentation order.
func Strategies() []Strategy { return []Strategy{Shallow, Deep, JSON} }

// ParseStrategy validates a strategy name.
func ParseStrategy(s string) (Strategy, error) {
	for _, st := range Strategies() {
		if string(st) == s {
			return st, nil
		}
	}
	return "", goclone.Issues{goclone.Root().Issue(goclone.CodeInvalidConfig,
		fmt.Sprintf("unknown strategy %q", s), "strategy", s)}
}

// Copy duplicates p according to s.
func (s Strategy) Copy(p Pack) (Pack, error) {
	switch s {
	case Shallow:
		return goclone.ShallowCopy(p), nil
	case Deep:
		return goclone.DeepCopy(p)
	case JSON:
		return goclone.DeepCopyJSON(p)
	}
	return nil, goclone.Issues{goclone.Root().Issue(goclone.CodeInvalidConfig,
		fmt.Sprintf("unknown strategy %q", string(s)), "strategy", string(s))}
}
