// Package profile loads named generator configurations from YAML.
//
// A catalog maps profile names to generator settings and corpus files:
//
//	romans:
//	  mode: character
//	  order: 3
//	  pattern: "^[a-z]{4,9}$"
//	  corpus: [romans.txt]
//	dwarfs:
//	  mode: cluster
//	  no_prior: true
//	  extra_vowels: "y"
//	  corpus: [dwarfs.txt]
//
// Relative corpus paths in a catalog loaded with Load are resolved against
// the catalog file's directory.
package profile

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/namegen"
)

// Profile is one named generator configuration.
type Profile struct {
	Name     string         `yaml:"-"`
	Settings namegen.Config `yaml:",inline"`
	Corpus   []string       `yaml:"corpus"`
}

// Config returns the generator settings of the profile.
func (p Profile) Config() namegen.Config {
	return p.Settings
}

// Catalog is a set of profiles keyed by name.
type Catalog map[string]Profile

// Parse decodes a YAML catalog. Every profile must name a valid mode;
// an omitted mode means character.
func Parse(data []byte) (Catalog, error) {
	var raw map[string]Profile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrParseCatalog, err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyCatalog
	}

	cat := make(Catalog, len(raw))
	for name, p := range raw {
		if _, err := namegen.ParseMode(p.Settings.Mode); err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidProfile, name, err)
		}
		if p.Settings.Mode == "" {
			p.Settings.Mode = namegen.ModeCharacter.String()
		}
		p.Name = name
		cat[name] = p
	}
	return cat, nil
}

// Load reads and parses the catalog at path.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadCatalog, err)
	}

	cat, err := Parse(data)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	for name, p := range cat {
		for i, c := range p.Corpus {
			if !filepath.IsAbs(c) {
				p.Corpus[i] = filepath.Join(dir, c)
			}
		}
		cat[name] = p
	}
	return cat, nil
}

// Get returns the profile called name.
func (c Catalog) Get(name string) (Profile, error) {
	p, ok := c[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	return p, nil
}

// Names returns the profile names in sorted order.
func (c Catalog) Names() []string {
	return slices.Sorted(maps.Keys(c))
}
