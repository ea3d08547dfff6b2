package fitsfile

import (
	"fmt"
	"io"
	"os"

	"github.com/astrogo/fitsio"
)

// Table is a binary or ASCII table read into float64 columns.
type Table struct {
	Names   []string
	Columns [][]float64
}

// ReadTable loads every numeric column of the table in HDU index hdu of
// the named file.
func ReadTable(path string, hdu int) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := ReadTableFrom(f, hdu)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// ReadTableFrom is ReadTable on a stream.
func ReadTableFrom(r io.Reader, hdu int) (*Table, error) {
	f, err := fitsio.Open(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if hdu < 0 || hdu >= len(f.HDUs()) {
		return nil, fmt.Errorf("%w: no HDU %d", ErrNotTable, hdu)
	}

	tbl, ok := f.HDU(hdu).(*fitsio.Table)
	if !ok {
		return nil, fmt.Errorf("%w: HDU %d", ErrNotTable, hdu)
	}

	out := &Table{}
	for _, c := range tbl.Cols() {
		out.Names = append(out.Names, c.Name)
	}

	out.Columns = make([][]float64, len(out.Names))

	rows, err := tbl.Read(0, tbl.NumRows())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		row := map[string]any{}
		if err := rows.Scan(&row); err != nil {
			return nil, err
		}

		for i, name := range out.Names {
			v, ok := number(row[name])
			if !ok {
				return nil, fmt.Errorf("fitsfile: column %s holds %T", name, row[name])
			}

			out.Columns[i] = append(out.Columns[i], v)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// WriteTable stores columns as a binary table extension (format D) named
// extname behind an empty primary HDU.
func WriteTable(path, extname string, names []string, columns [][]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := WriteTableTo(f, extname, names, columns); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return f.Close()
}

// WriteTableTo is WriteTable on a stream.
func WriteTableTo(w io.Writer, extname string, names []string, columns [][]float64) error {
	if len(names) != len(columns) || len(names) == 0 {
		return fmt.Errorf("%w: %d names for %d columns", ErrShape, len(names), len(columns))
	}

	nrows := len(columns[0])
	for _, c := range columns {
		if len(c) != nrows {
			return fmt.Errorf("%w: ragged columns", ErrShape)
		}
	}

	f, err := fitsio.Create(w)
	if err != nil {
		return err
	}
	defer f.Close()

	primary := fitsio.NewImage(8, nil)
	defer primary.Close()

	if err := f.Write(primary); err != nil {
		return err
	}

	cols := make([]fitsio.Column, len(names))
	for i, name := range names {
		cols[i] = fitsio.Column{Name: name, Format: "D"}
	}

	tbl, err := fitsio.NewTable(extname, cols, fitsio.BINARY_TBL)
	if err != nil {
		return err
	}
	defer tbl.Close()

	row := make([]any, len(columns))
	vals := make([]float64, len(columns))

	for r := range nrows {
		for i := range columns {
			vals[i] = columns[i][r]
			row[i] = &vals[i]
		}

		if err := tbl.Write(row...); err != nil {
			return err
		}
	}

	return f.Write(tbl)
}

func number(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int64:
		return float64(x), true
	case int32:
		return float64(x), true
	case int16:
		return float64(x), true
	case int8:
		return float64(x), true
	case uint8:
		return float64(x), true
	case int:
		return float64(x), true
	}

	return 0, false
}
