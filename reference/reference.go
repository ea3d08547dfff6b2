// Package reference locates and loads stellar reference spectra stored as
// FITS binary tables, such as the Pickles UVKLIB library.
package reference

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/cwbudde/algo-spectro/internal/fitsfile"
	"github.com/cwbudde/algo-spectro/spectrum"
)

var (
	// ErrUnknownReference is returned when a name resolves to no file.
	ErrUnknownReference = errors.New("reference: unknown reference")
	// ErrBadTable is returned when the table lacks wavelength and flux columns.
	ErrBadTable = errors.New("reference: table needs wavelength and intensity columns")
)

// EnvRoot names the environment variable consulted by DefaultRoot.
const EnvRoot = "SPECTRO_REFERENCES"

// Catalog maps spectral-type names to files below Root.
type Catalog struct {
	Root  string
	Files map[string]string
}

// New returns a catalog rooted at root with the Pickles table installed.
func New(root string) *Catalog {
	files := make(map[string]string, len(pickles))
	for k, v := range pickles {
		files[k] = v
	}

	return &Catalog{Root: root, Files: files}
}

// DefaultRoot resolves the catalog directory: flag value, then EnvRoot,
// then "references" beside the executable.
func DefaultRoot(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}

	if env := os.Getenv(EnvRoot); env != "" {
		return env
	}

	exe, err := os.Executable()
	if err != nil {
		return "references"
	}

	return filepath.Join(filepath.Dir(exe), "references")
}

// Names returns the mapped names in sorted order.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.Files))
	for k := range c.Files {
		out = append(out, k)
	}

	sort.Strings(out)

	return out
}

// Path resolves name to a file. Mapped names take precedence over a
// literal <name>.fits below Root.
func (c *Catalog) Path(name string) (string, error) {
	if file, ok := c.Files[name]; ok {
		return filepath.Join(c.Root, file), nil
	}

	p := filepath.Join(c.Root, name+".fits")
	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownReference, name)
}

// Load reads the first two columns of the HDU 1 table as wavelength and
// intensity.
func (c *Catalog) Load(name string) (*spectrum.Sampled, error) {
	p, err := c.Path(name)
	if err != nil {
		return nil, err
	}

	tbl, err := fitsfile.ReadTable(p, 1)
	if err != nil {
		return nil, err
	}

	if len(tbl.Columns) < 2 {
		return nil, fmt.Errorf("%w: %s has %d columns", ErrBadTable, p, len(tbl.Columns))
	}

	return spectrum.NewSampled(Label(name), tbl.Columns[0], tbl.Columns[1])
}

// Label is the legend text used for a loaded reference.
func Label(name string) string {
	return fmt.Sprintf("Reference (%s)", name)
}
