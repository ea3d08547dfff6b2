// Package lines is a catalog of well-known spectral lines used to annotate
// plots and to name calibration anchors.
package lines

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownLine is returned by Parse for a key missing from the catalog.
var ErrUnknownLine = errors.New("lines: unknown line")

// Line is a named spectral line.
type Line struct {
	Key      string
	Label    string
	Angstrom float64
}

func (l Line) String() string {
	return fmt.Sprintf("%f (%s)", l.Angstrom, l.Label)
}

// PlotLabel returns the annotation drawn next to the line marker.
func (l Line) PlotLabel() string {
	return fmt.Sprintf("%s (%.02f Å)", l.Label, l.Angstrom)
}

var catalog = map[string]Line{
	"Ha":  {"Ha", "Hα", 6563},
	"Hb":  {"Hb", "Hβ", 4861},
	"Hg":  {"Hg", "Hγ", 4341},
	"Hd":  {"Hd", "Hδ", 4102},
	"CaH": {"CaH", "Ca H", 3968},
	"CaK": {"CaK", "Ca K", 3934},
}

// Catalog resolves line keys against the built-in table. The zero value is
// ready to use.
type Catalog struct{}

// Lookup returns the wavelength of key in angstrom.
func (Catalog) Lookup(key string) (float64, bool) {
	l, ok := catalog[key]
	return l.Angstrom, ok
}

// Get returns the line registered under key.
func Get(key string) (Line, bool) {
	l, ok := catalog[key]
	return l, ok
}

// Keys returns all catalog keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(catalog))
	for k := range catalog {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// All returns every line ordered by wavelength.
func All() []Line {
	out := make([]Line, 0, len(catalog))
	for _, l := range catalog {
		out = append(out, l)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Angstrom < out[j].Angstrom })

	return out
}

// Parse resolves a comma-separated list of keys such as "Ha,Hb". Empty
// input yields no lines.
func Parse(list string) ([]Line, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}

	var out []Line

	for _, key := range strings.Split(list, ",") {
		key = strings.TrimSpace(key)

		l, ok := catalog[key]
		if !ok {
			return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownLine, key, strings.Join(Keys(), ", "))
		}

		out = append(out, l)
	}

	return out, nil
}
