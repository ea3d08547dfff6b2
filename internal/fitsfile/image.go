package fitsfile

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/astrogo/fitsio"
)

// Image is the primary HDU of a FITS file with its data as float64.
type Image struct {
	Header *Header
	// Bitpix is the storage type read from or written to disk.
	Bitpix int
	// Unsigned marks BITPIX 16 data stored as unsigned through BZERO 32768.
	// Other BITPIX values ignore it.
	Unsigned bool
	// Axes are NAXIS1, NAXIS2, ...
	Axes []int
	Data []float64
}

// Format is the on-disk sample type of an image.
type Format struct {
	Bitpix   int
	Unsigned bool
}

// Format returns the storage type of img.
func (img *Image) Format() Format {
	return Format{Bitpix: img.Bitpix, Unsigned: img.Unsigned}
}

// Len returns the number of samples implied by Axes.
func (img *Image) Len() int {
	if len(img.Axes) == 0 {
		return 0
	}

	n := 1
	for _, a := range img.Axes {
		n *= a
	}

	return n
}

// Read loads the primary HDU of the named file.
func Read(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return img, nil
}

// ReadFrom loads the primary HDU from r. BZERO and BSCALE are applied.
func ReadFrom(r io.Reader) (*Image, error) {
	f, err := fitsio.Open(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	hdu, ok := f.HDU(0).(fitsio.Image)
	if !ok {
		return nil, ErrNotImage
	}

	hdr := hdu.Header()
	img := &Image{
		Header: headerFrom(hdr),
		Bitpix: hdr.Bitpix(),
		Axes:   append([]int(nil), hdr.Axes()...),
	}

	img.Data, err = decode(hdu, img.Bitpix, img.Len())
	if err != nil {
		return nil, err
	}

	zero := img.Header.FloatOr("BZERO", 0)
	scale := img.Header.FloatOr("BSCALE", 1)
	img.Unsigned = img.Bitpix == 16 && zero == 32768 && scale == 1

	if zero != 0 || scale != 1 {
		for i, v := range img.Data {
			img.Data[i] = v*scale + zero
		}
	}

	return img, nil
}

func decode(hdu fitsio.Image, bitpix, n int) ([]float64, error) {
	if !validBitpix(bitpix) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitpix, bitpix)
	}

	if raw := hdu.Raw(); len(raw) < n*abs(bitpix)/8 {
		return nil, fmt.Errorf("%w: %d bytes for %d samples of BITPIX %d", ErrShape, len(raw), n, bitpix)
	}

	if n == 0 {
		return nil, nil
	}

	switch bitpix {
	case 8:
		return readAs[uint8](hdu, n)
	case 16:
		return readAs[int16](hdu, n)
	case 32:
		return readAs[int32](hdu, n)
	case 64:
		return readAs[int64](hdu, n)
	case -32:
		return readAs[float32](hdu, n)
	default:
		return readAs[float64](hdu, n)
	}
}

// readAs reads the pixels in their stored type and widens them.
func readAs[T uint8 | int16 | int32 | int64 | float32 | float64](hdu fitsio.Image, n int) ([]float64, error) {
	pix := make([]T, n)
	if err := hdu.Read(&pix); err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for i, v := range pix {
		out[i] = float64(v)
	}

	return out, nil
}

// Write stores img as the primary HDU of a new file at path.
func Write(path string, img *Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := WriteTo(f, img); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return f.Close()
}

// WriteTo encodes img to w. Data is converted to img.Bitpix; integer types
// are rounded toward zero and saturated. BITPIX 16 is stored unsigned with
// BZERO 32768 when img.Unsigned is set and as signed int16 otherwise.
func WriteTo(w io.Writer, img *Image) error {
	if !validBitpix(img.Bitpix) {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitpix, img.Bitpix)
	}

	if len(img.Data) != img.Len() {
		return fmt.Errorf("%w: %d samples for axes %v", ErrShape, len(img.Data), img.Axes)
	}

	f, err := fitsio.Create(w)
	if err != nil {
		return err
	}
	defer f.Close()

	hdu := fitsio.NewImage(img.Bitpix, img.Axes)
	defer hdu.Close()

	var cards []fitsio.Card
	unsigned := img.Bitpix == 16 && img.Unsigned
	if unsigned {
		cards = append(cards,
			fitsio.Card{Name: "BZERO", Value: 32768.0, Comment: "offset data range to that of unsigned short"},
			fitsio.Card{Name: "BSCALE", Value: 1.0, Comment: "default scaling factor"},
		)
	}

	if img.Header != nil {
		for _, c := range img.Header.cards {
			if !structural(c.Name) {
				cards = append(cards, c)
			}
		}
	}

	for _, c := range cards {
		if err := hdu.Header().Append(c); err != nil {
			if c.Name == "COMMENT" || c.Name == "HISTORY" {
				continue
			}

			return fmt.Errorf("fitsfile: header card %s: %w", c.Name, err)
		}
	}

	if err := hdu.Write(encode(img.Data, img.Bitpix, unsigned)); err != nil {
		return err
	}

	return f.Write(hdu)
}

func encode(data []float64, bitpix int, unsigned bool) any {
	switch bitpix {
	case 8:
		out := make([]uint8, len(data))
		for i, v := range data {
			out[i] = uint8(saturate(v, 0, math.MaxUint8))
		}

		return out
	case 16:
		out := make([]int16, len(data))
		for i, v := range data {
			if unsigned {
				out[i] = int16(saturate(v, 0, math.MaxUint16) - 32768)
			} else {
				out[i] = int16(saturate(v, math.MinInt16, math.MaxInt16))
			}
		}

		return out
	case 32:
		out := make([]int32, len(data))
		for i, v := range data {
			out[i] = int32(saturate(v, math.MinInt32, math.MaxInt32))
		}

		return out
	case 64:
		out := make([]int64, len(data))
		for i, v := range data {
			out[i] = int64(saturate(v, math.MinInt64, maxInt64Float))
		}

		return out
	case -32:
		out := make([]float32, len(data))
		for i, v := range data {
			out[i] = float32(v)
		}

		return out
	default:
		return append([]float64(nil), data...)
	}
}

// maxInt64Float is the largest float64 below 2^63.
var maxInt64Float = math.Nextafter(math.MaxInt64, 0)

func saturate(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return 0
	}

	return math.Trunc(min(max(v, lo), hi))
}

func validBitpix(b int) bool {
	switch b {
	case 8, 16, 32, 64, -32, -64:
		return true
	}

	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
