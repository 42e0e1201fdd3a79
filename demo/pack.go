package demo

import (
	"bytes"
	"fmt"

	gojson "github.com/goccy/go-json"
)

// Pack is an ordered sequence mixing a nested mutable *Dog with plain strings.
type Pack []any

// NewPack returns [NewDog(dog), others...].
func NewPack(dog string, others ...string) Pack {
	p := make(Pack, 0, 1+len(others))
	p = append(p, NewDog(dog))
	for _, o := range others {
		p = append(p, o)
	}
	return p
}

// DogIndex returns the position of the first *Dog in p, or -1.
func (p Pack) DogIndex() int {
	for i, v := range p {
		if _, ok := v.(*Dog); ok {
			return i
		}
	}
	return -1
}

// Dog returns the first *Dog in p, or nil.
func (p Pack) Dog() *Dog {
	if i := p.DogIndex(); i >= 0 {
		return p[i].(*Dog)
	}
	return nil
}

// Names lists what each element is called: a dog's name or the string itself.
func (p Pack) Names() []string {
	out := make([]string, 0, len(p))
	for _, v := range p {
		switch x := v.(type) {
		case *Dog:
			if x == nil {
				out = append(out, "<nil>")
				continue
			}
			out = append(out, x.Name())
		case string:
			out = append(out, x)
		default:
			out = append(out, fmt.Sprint(x))
		}
	}
	return out
}

// UnmarshalJSON decodes objects as *Dog and strings as string so that a JSON
// round trip keeps element types.
func (p *Pack) UnmarshalJSON(b []byte) error {
	var raw []gojson.RawMessage
	if err := gojson.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == nil {
		*p = nil
		return nil
	}
	out := make(Pack, 0, len(raw))
	for i, r := range raw {
		r = bytes.TrimSpace(r)
		if len(r) == 0 {
			return fmt.Errorf("pack element %d: empty", i)
		}
		switch r[0] {
		case '{':
			d := &Dog{}
			if err := gojson.Unmarshal(r, d); err != nil {
				return fmt.Errorf("pack element %d: %w", i, err)
			}
			out = append(out, d)
		case '"':
			var s string
			if err := gojson.Unmarshal(r, &s); err != nil {
				return fmt.Errorf("pack element %d: %w", i, err)
			}
			out = append(out, s)
		default:
			var v any
			if err := gojson.Unmarshal(r, &v); err != nil {
				return fmt.Errorf("pack element %d: %w", i, err)
			}
			out = append(out, v)
		}
	}
	*p = out
	return nil
}
