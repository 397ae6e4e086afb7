// Package catalog provides loading of unit catalogs: YAML or TOML files that
// declare unit families, their units and the compound units built from them.
//
// A catalog looks like:
//
//	policy: error
//	families:
//	  - name: distance
//	    default: m
//	    units:
//	      - {name: ft, factor: 0.3048, basis: m}
//	      - {name: mi, factor: 5280, basis: ft}
//	      - {prefix: kilo, basis: m}
//	  - name: angle
//	    default: rad
//	    units:
//	      - {name: deg, factor: "pi / 180.0"}
//	ratios:
//	  - {numerator: km, denominator: hr}
//
// A factor is a number or a CEL expression over doubles; pi and e are
// bound. Integer literals in expressions use integer arithmetic, so write
// "1.0 / 12.0" rather than "1 / 12".
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/openjax/measure"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a catalog file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// candidateFiles are tried in order when Load is given a directory.
var candidateFiles = []string{"units.yaml", "units.yml", "units.toml"}

// Catalog is a parsed unit catalog.
type Catalog struct {
	// Policy is "identity" (the default) or "error"; see
	// measure.ParseUnrelatedPolicy.
	Policy string `yaml:"policy,omitempty" toml:"policy"`

	Families []Family  `yaml:"families" toml:"families"`
	Ratios   []Ratio   `yaml:"ratios,omitempty" toml:"ratios"`
	Products []Product `yaml:"products,omitempty" toml:"products"`
}

// Family declares a unit family and its default unit.
type Family struct {
	Name    string `yaml:"name" toml:"name"`
	Default string `yaml:"default" toml:"default"`
	Units   []Unit `yaml:"units,omitempty" toml:"units"`
}

// Unit declares a derived unit. Either Name and Factor are set, or only
// Prefix is set and the unit is named by the prefix symbol followed by the
// basis name, e.g. kilo and m give km. An empty Basis means the family
// default.
type Unit struct {
	Name   string `yaml:"name,omitempty" toml:"name"`
	Factor Factor `yaml:"factor,omitempty" toml:"factor"`
	Basis  string `yaml:"basis,omitempty" toml:"basis"`
	Prefix string `yaml:"prefix,omitempty" toml:"prefix"` // e.g. "kilo"
}

// Ratio declares a numerator/denominator unit by unit names.
type Ratio struct {
	Numerator   string `yaml:"numerator" toml:"numerator"`
	Denominator string `yaml:"denominator" toml:"denominator"`
}

// Product declares a first·second unit by unit names.
type Product struct {
	First  string `yaml:"first" toml:"first"`
	Second string `yaml:"second" toml:"second"`
}

// Factor is a conversion factor as written in the catalog: a number or a
// CEL expression.
type Factor struct {
	Expr string
}

// UnmarshalYAML accepts any scalar node.
func (f *Factor) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: factor must be a number or an expression", node.Line)
	}
	f.Expr = node.Value
	return nil
}

// UnmarshalTOML accepts integers, floats and strings.
func (f *Factor) UnmarshalTOML(v any) error {
	switch x := v.(type) {
	case int64:
		f.Expr = strconv.FormatInt(x, 10)
	case float64:
		f.Expr = strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		f.Expr = x
	default:
		return fmt.Errorf("factor must be a number or an expression, got %T", v)
	}
	return nil
}

// Value evaluates the factor.
func (f Factor) Value() (float64, error) {
	return evalFactor(f.Expr)
}

// name returns the name the unit is registered under.
func (u Unit) name(basis string) string {
	if u.Prefix == "" {
		return u.Name
	}
	p, ok := measure.MetricPrefixNamed(u.Prefix)
	if !ok {
		return ""
	}
	return p.Symbol() + basis
}

// Load reads and parses a catalog file from the given path.
// If the path is a directory, it looks for units.yaml, units.yml or
// units.toml in that directory.
func Load(path string) (*Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	catalogPath := path
	if info.IsDir() {
		catalogPath = ""
		for _, name := range candidateFiles {
			candidate := filepath.Join(path, name)
			if _, err := os.Stat(candidate); err == nil {
				catalogPath = candidate
				break
			}
		}
		if catalogPath == "" {
			return nil, fmt.Errorf("no %s found in %s", strings.Join(candidateFiles, ", "), path)
		}
	}

	format, err := formatOf(catalogPath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	c, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", catalogPath, err)
	}
	return c, nil
}

func formatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", measure.NewConfigurationError("catalog.Load",
			fmt.Errorf("unsupported catalog extension %q", filepath.Ext(path)))
	}
}

// Parse decodes and validates a catalog.
func Parse(data []byte, format Format) (*Catalog, error) {
	var c Catalog

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
			return nil, measure.NewConfigurationError("catalog.Parse",
				fmt.Errorf("failed to parse YAML catalog: %w", err))
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &c); err != nil {
			return nil, measure.NewConfigurationError("catalog.Parse",
				fmt.Errorf("failed to parse TOML catalog: %w", err))
		}
	default:
		return nil, measure.NewConfigurationError("catalog.Parse",
			fmt.Errorf("unsupported catalog format %q", format))
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that the catalog can be applied to an empty registry:
// every family has a default, every basis is declared earlier in its
// family, unit names are unique, factors evaluate to finite non-zero
// numbers and compound operands exist.
func (c *Catalog) Validate() error {
	const op = "catalog.Validate"

	if _, err := measure.ParseUnrelatedPolicy(c.Policy); err != nil {
		return err
	}
	if len(c.Families) == 0 {
		return measure.NewConfigurationError(op, errors.New("catalog defines no families"))
	}

	seenFamilies := make(map[string]bool)
	seenUnits := make(map[string]string)

	declare := func(family, name string) error {
		if name == "" {
			return measure.NewConfigurationError(op, errors.New("unit name is empty")).
				WithContext(map[string]any{"family": family})
		}
		if other, ok := seenUnits[name]; ok {
			return measure.NewConfigurationError(op, fmt.Errorf("unit %q declared twice", name)).
				WithContext(map[string]any{"family": family, "first_family": other})
		}
		seenUnits[name] = family
		return nil
	}

	for _, fam := range c.Families {
		if fam.Name == "" {
			return measure.NewConfigurationError(op, errors.New("family name is empty"))
		}
		if seenFamilies[fam.Name] {
			return measure.NewConfigurationError(op, measure.ErrDuplicateDefault).
				WithContext(map[string]any{"family": fam.Name})
		}
		seenFamilies[fam.Name] = true

		if err := declare(fam.Name, fam.Default); err != nil {
			return err
		}
		inFamily := map[string]bool{fam.Default: true}

		for _, u := range fam.Units {
			basis := u.Basis
			if basis == "" {
				basis = fam.Default
			}
			if !inFamily[basis] {
				return measure.NewConfigurationError(op, measure.ErrUnknownUnit).
					WithContext(map[string]any{"family": fam.Name, "unit": u.Name, "basis": basis})
			}

			if u.Prefix != "" {
				if u.Name != "" || u.Factor.Expr != "" {
					return measure.NewConfigurationError(op, errors.New("a prefixed unit takes neither name nor factor")).
						WithContext(map[string]any{"family": fam.Name, "unit": u.Name, "prefix": u.Prefix})
				}
				if _, ok := measure.MetricPrefixNamed(u.Prefix); !ok {
					return measure.NewConfigurationError(op, fmt.Errorf("unknown prefix %q", u.Prefix)).
						WithContext(map[string]any{"family": fam.Name, "basis": basis})
				}
			} else {
				f, err := u.Factor.Value()
				if err != nil {
					return measure.NewConfigurationError(op, err).
						WithContext(map[string]any{"family": fam.Name, "unit": u.Name})
				}
				if err := checkFactor(f); err != nil {
					return measure.NewConfigurationError(op, err).
						WithContext(map[string]any{"family": fam.Name, "unit": u.Name, "factor": u.Factor.Expr})
				}
			}

			name := u.name(basis)
			if err := declare(fam.Name, name); err != nil {
				return err
			}
			inFamily[name] = true
		}
	}

	for _, r := range c.Ratios {
		for _, name := range []string{r.Numerator, r.Denominator} {
			if _, ok := seenUnits[name]; !ok {
				return measure.NewConfigurationError(op, measure.ErrUnknownUnit).
					WithContext(map[string]any{"ratio": r.Numerator + "/" + r.Denominator, "unit": name})
			}
		}
	}
	for _, p := range c.Products {
		for _, name := range []string{p.First, p.Second} {
			if _, ok := seenUnits[name]; !ok {
				return measure.NewConfigurationError(op, measure.ErrUnknownUnit).
					WithContext(map[string]any{"product": p.First + "·" + p.Second, "unit": name})
			}
		}
	}

	return nil
}

// Options returns the registry options the catalog asks for.
func (c *Catalog) Options() []measure.Option {
	p, err := measure.ParseUnrelatedPolicy(c.Policy)
	if err != nil {
		return nil
	}
	return []measure.Option{measure.WithUnrelatedPolicy(p)}
}
