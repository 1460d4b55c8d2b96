// Package recipe turns declarative rule descriptions (YAML or JSON) into
// built selectors and stylesheets.
package recipe

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/multierr"

	"cssel/selector"
	"cssel/stylesheet"
)

// Version is the only supported recipe format version.
const Version = 1

var (
	ErrVersion       = errors.New("unsupported recipe version")
	ErrNoSelector    = errors.New("rule has no selector")
	ErrEmptyCompound = errors.New("compound has no parts")
	ErrLeadingComb   = errors.New("first compound cannot have combinator")
)

type (
	// Compound is a single builder worth of parts. Combinator joins it to
	// everything before it, it may be a token or a name (e.g. "child"), empty
	// means descendant.
	Compound struct {
		Combinator selector.Combinator `yaml:"combinator,omitempty" json:"combinator,omitempty"`
		Parts      []selector.Part     `yaml:"parts" json:"parts"`
	}

	Rule struct {
		Selector   []Compound        `yaml:"selector" json:"selector"`
		Properties map[string]string `yaml:"properties,omitempty" json:"properties,omitempty"`
	}

	Recipe struct {
		Version int    `yaml:"version" json:"version"`
		Name    string `yaml:"name,omitempty" json:"name,omitempty"`
		Rules   []Rule `yaml:"rules" json:"rules"`

		// Source is where recipe was loaded from
		Source string `yaml:"-" json:"-"`
	}
)

// Validate checks recipe header.
func (r *Recipe) Validate() error {
	if r.Version != Version {
		return fmt.Errorf("%w: %d", ErrVersion, r.Version)
	}
	return nil
}

// FileName returns stylesheet file name for the recipe: slug of its name or,
// when name is empty, of its source base name.
func (r *Recipe) FileName() string {
	name := r.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(r.Source), filepath.Ext(r.Source))
	}
	if s := slug.Make(name); s != "" {
		return s + ".css"
	}
	return "stylesheet.css"
}

// Build builds rule selector folding compounds left to right. With strict
// set combinators outside of CSS set are rejected.
func (r *Rule) Build(strict bool) (selector.Selector, error) {
	if len(r.Selector) == 0 {
		return nil, ErrNoSelector
	}

	var sel selector.Selector
	for i, comp := range r.Selector {
		if len(comp.Parts) == 0 {
			return nil, fmt.Errorf("compound %d: %w", i, ErrEmptyCompound)
		}
		b, err := selector.Build(comp.Parts...)
		if err != nil {
			return nil, fmt.Errorf("compound %d: %w", i, err)
		}
		if i == 0 {
			if comp.Combinator != "" {
				return nil, ErrLeadingComb
			}
			sel = b
			continue
		}

		c := resolve(comp.Combinator)
		if !strict {
			sel = selector.Combine(sel, c, b)
			continue
		}
		if sel, err = selector.CombineStrict(sel, c, b); err != nil {
			return nil, fmt.Errorf("compound %d: %w", i, err)
		}
	}
	return sel, nil
}

// resolve maps combinator names to tokens, unknown text is kept verbatim.
func resolve(c selector.Combinator) selector.Combinator {
	if c == "" {
		return selector.Descendant
	}
	if parsed, err := selector.ParseCombinator(string(c)); err == nil {
		return parsed
	}
	return c
}

// Selectors builds selectors of all rules. Errors of every rule are reported
// together.
func (r *Recipe) Selectors(strict bool) ([]selector.Selector, error) {
	var (
		sels = make([]selector.Selector, 0, len(r.Rules))
		errs error
	)
	for i := range r.Rules {
		sel, err := r.Rules[i].Build(strict)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("rule %d: %w", i, err))
			continue
		}
		sels = append(sels, sel)
	}
	if errs != nil {
		return nil, errs
	}
	return sels, nil
}

// Stylesheet builds stylesheet with one CSS rule per recipe rule.
func (r *Recipe) Stylesheet(strict bool) (*stylesheet.Stylesheet, error) {
	sels, err := r.Selectors(strict)
	if err != nil {
		return nil, err
	}
	sheet := &stylesheet.Stylesheet{}
	for i, sel := range sels {
		sheet.Add(sel, r.Rules[i].Properties)
	}
	return sheet, nil
}
