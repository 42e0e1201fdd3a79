package demo

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/reoring/goclone"
)

// Config describes one walkthrough: the pack to build, the name given to the
// copy's dog and the strategies to compare.
type Config struct {
	Dog        string   `yaml:"dog"`
	Others     []string `yaml:"others"`
	Rename     string   `yaml:"rename"`
	Strategies []string `yaml:"strategies"`
}

// DefaultConfig returns the classic Buster/Roscoe walkthrough.
func DefaultConfig() Config {
	return Config{
		Dog:        "Buster",
		Others:     []string{"Ginger", "Mimi", "Ella"},
		Rename:     "Roscoe",
		Strategies: []string{string(Shallow), string(Deep)},
	}
}

// LoadConfig reads a YAML config file. Missing fields take their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML into a Config, rejecting unknown keys, fills missing
// fields from DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, goclone.Issues{{
			Path:    "/",
			Code:    goclone.CodeInvalidConfig,
			Message: fmt.Sprintf("decode config: %v", err),
			Cause:   err,
		}}
	}
	c = c.withDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Dog == "" {
		c.Dog = d.Dog
	}
	if c.Others == nil {
		c.Others = d.Others
	}
	if c.Rename == "" {
		c.Rename = d.Rename
	}
	if len(c.Strategies) == 0 {
		c.Strategies = d.Strategies
	}
	return c
}

// Validate reports every problem with c as invalid_config issues.
func (c Config) Validate() error {
	var iss goclone.Issues
	root := goclone.Root()
	if c.Dog == "" {
		iss = goclone.AppendIssues(iss, root.Field("dog").Issue(goclone.CodeInvalidConfig, "dog name is required"))
	}
	if c.Rename == "" {
		iss = goclone.AppendIssues(iss, root.Field("rename").Issue(goclone.CodeInvalidConfig, "rename is required"))
	} else if c.Rename == c.Dog {
		iss = goclone.AppendIssues(iss, root.Field("rename").Issue(goclone.CodeInvalidConfig,
			"rename must differ from the dog's name", "dog", c.Dog))
	}
	if len(c.Strategies) == 0 {
		iss = goclone.AppendIssues(iss, root.Field("strategies").Issue(goclone.CodeInvalidConfig, "at least one strategy is required"))
	}
	for i, s := range c.Strategies {
		if _, err := ParseStrategy(s); err != nil {
			iss = goclone.AppendIssues(iss, goclone.IssueAt(root.Field("strategies").Index(i), goclone.CodeInvalidConfig,
				"unknown strategy "+strconv.Quote(s), map[string]any{"strategy": s}))
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}
