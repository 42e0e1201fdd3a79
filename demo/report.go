package demo

import (
	"fmt"
	"io"
	"strings"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/goclone"
)

// Format selects how reports are rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON, FormatYAML:
		return Format(s), nil
	}
	return "", goclone.Issues{goclone.Root().Issue(goclone.CodeInvalidConfig,
		fmt.Sprintf("unknown format %q", s), "format", s)}
}

// Render writes reports to w in format f.
func Render(w io.Writer, reports []Report, f Format) error {
	switch f {
	case FormatJSON:
		b, err := gojson.MarshalIndent(reports, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		for i, r := range reports {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if err := renderText(w, r); err != nil {
				return err
			}
		}
		return nil
	}
	_, err := ParseFormat(string(f))
	return err
}

func renderText(w io.Writer, r Report) error {
	b := &strings.Builder{}
	fmt.Fprintf(b, "== %s copy ==\n", r.Strategy)
	fmt.Fprintf(b, "original: %v\n", r.Original)
	fmt.Fprintf(b, "copy:     %v\n", r.Copy)
	if r.DogIndex >= 0 && r.DogIndex < len(r.Original) {
		state := "unchanged"
		if r.OriginalChanged {
			state = "changed through the copy"
		}
		fmt.Fprintf(b, "original[%d].Name() = %q (%s)\n", r.DogIndex, r.Original[r.DogIndex], state)
	}
	if len(r.Aliases) == 0 {
		b.WriteString("aliases:  none\n")
	} else {
		parts := make([]string, 0, len(r.Aliases))
		for _, a := range r.Aliases {
			parts = append(parts, fmt.Sprintf("%s -> %s (%s)", a.Path, a.OriginalPath, a.Kind))
		}
		fmt.Fprintf(b, "aliases:  %s\n", strings.Join(parts, ", "))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
