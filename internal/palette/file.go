package palette

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileEntry is the on-disk form of an Entry.
//
//	entries:
//	  - name: GEM_BANK
//	    color: "#0000db"
//	    class: item
//	    kind: GEM_BANK
//	    region: gravity
//	    clear: {w: 3, h: 3}
type fileEntry struct {
	Name   string     `yaml:"name"`
	Color  string     `yaml:"color"`
	Class  string     `yaml:"class"`
	Kind   string     `yaml:"kind"`
	Region string     `yaml:"region"`
	Clear  ClearSpace `yaml:"clear"`
}

type file struct {
	Entries []fileEntry `yaml:"entries"`
}

// Load reads a YAML palette from r and validates it with New.
func Load(r io.Reader) (*Palette, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode palette: %w", err)
	}

	entries := make([]Entry, 0, len(f.Entries))
	for i, fe := range f.Entries {
		e, err := fe.entry()
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrInvalidPalette, i, err)
		}
		entries = append(entries, e)
	}
	return New(entries)
}

// LoadFile reads a YAML palette from path.
func LoadFile(path string) (*Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open palette: %w", err)
	}
	defer f.Close()

	return Load(f)
}

func (fe fileEntry) entry() (Entry, error) {
	c, err := ParseColor(fe.Color)
	if err != nil {
		return Entry{}, err
	}
	outcome, err := ParseOutcome(fe.Class)
	if err != nil {
		return Entry{}, err
	}
	region, err := ParseRegion(fe.Region)
	if err != nil {
		return Entry{}, err
	}

	e := Entry{
		Name:  fe.Name,
		Color: c,
		Classification: Classification{
			Outcome: outcome,
			Region:  region,
			Clear:   fe.Clear,
		},
	}
	if fe.Kind != "" {
		if e.Kind, err = ParseItemKind(fe.Kind); err != nil {
			return Entry{}, err
		}
	} else if outcome == Item {
		// The kind defaults to the entry name.
		if e.Kind, err = ParseItemKind(fe.Name); err != nil {
			return Entry{}, err
		}
	}
	return e, nil
}
