package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// ErrInvalidCatalog is wrapped by every content validation failure.
var ErrInvalidCatalog = errors.New("invalid catalog")

var validate = validator.New()

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog file. An empty path selects the built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates YAML catalog content. Unknown keys are rejected
// so that a typo in the content file fails at startup instead of silently
// hiding a section.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	if len(c.Technologies) == 0 {
		c.Technologies = deriveTechnologies(c.Projects)
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, describe(err))
	}

	if len(c.Technologies) == 0 {
		return nil
	}

	known := make(map[string]bool, len(c.Technologies))
	for _, t := range c.Technologies {
		switch {
		case t == "":
			return fmt.Errorf("%w: empty technology", ErrInvalidCatalog)
		case t == All:
			return fmt.Errorf("%w: technologies must not list the %q wildcard", ErrInvalidCatalog, All)
		case known[t]:
			return fmt.Errorf("%w: technology %q listed twice", ErrInvalidCatalog, t)
		}
		known[t] = true
	}

	for _, p := range c.Projects {
		for _, t := range p.Technologies {
			if !known[t] {
				return fmt.Errorf("%w: project %q uses unlisted technology %q", ErrInvalidCatalog, p.Title, t)
			}
		}
	}
	return nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}
