package fitsfile

import (
	"fmt"
	"strings"

	"github.com/astrogo/fitsio"
)

// Header is an ordered, mutable list of FITS cards.
type Header struct {
	cards []fitsio.Card
}

// NewHeader returns a header holding copies of cards.
func NewHeader(cards ...fitsio.Card) *Header {
	return &Header{cards: append([]fitsio.Card(nil), cards...)}
}

func headerFrom(h *fitsio.Header) *Header {
	keys := h.Keys()
	out := &Header{cards: make([]fitsio.Card, 0, len(keys))}

	for i := range keys {
		if c := h.Card(i); c != nil {
			out.cards = append(out.cards, *c)
		}
	}

	return out
}

// Cards returns the cards in order.
func (h *Header) Cards() []fitsio.Card { return h.cards }

// Keys returns card names in order.
func (h *Header) Keys() []string {
	out := make([]string, len(h.cards))
	for i, c := range h.cards {
		out[i] = c.Name
	}

	return out
}

func (h *Header) index(key string) int {
	key = strings.ToUpper(key)
	for i, c := range h.cards {
		if c.Name == key {
			return i
		}
	}

	return -1
}

// Get returns the card named key (case-insensitive).
func (h *Header) Get(key string) (fitsio.Card, bool) {
	if i := h.index(key); i >= 0 {
		return h.cards[i], true
	}

	return fitsio.Card{}, false
}

// Set replaces the value and comment of key, or appends a new card.
func (h *Header) Set(key string, value any, comment string) {
	card := fitsio.Card{Name: strings.ToUpper(key), Value: value, Comment: comment}
	if i := h.index(key); i >= 0 {
		if comment == "" {
			card.Comment = h.cards[i].Comment
		}

		h.cards[i] = card

		return
	}

	h.cards = append(h.cards, card)
}

// Delete removes key if present.
func (h *Header) Delete(key string) {
	if i := h.index(key); i >= 0 {
		h.cards = append(h.cards[:i], h.cards[i+1:]...)
	}
}

// Float returns key as a number. Integer cards are converted.
func (h *Header) Float(key string) (float64, error) {
	c, ok := h.Get(key)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingHeaderField, key)
	}

	switch v := c.Value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("%w: %s is %T, not a number", ErrMissingHeaderField, key, c.Value)
	}
}

// FloatOr returns key as a number, or def when absent or not numeric.
func (h *Header) FloatOr(key string, def float64) float64 {
	v, err := h.Float(key)
	if err != nil {
		return def
	}

	return v
}

// Int returns key truncated to an integer.
func (h *Header) Int(key string) (int, error) {
	v, err := h.Float(key)
	if err != nil {
		return 0, err
	}

	return int(v), nil
}

// String returns key as a string.
func (h *Header) String(key string) (string, error) {
	c, ok := h.Get(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingHeaderField, key)
	}

	s, ok := c.Value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is %T, not a string", ErrMissingHeaderField, key, c.Value)
	}

	return strings.TrimSpace(s), nil
}

// Clone returns an independent copy.
func (h *Header) Clone() *Header {
	return NewHeader(h.cards...)
}

// structural reports keywords regenerated from the data on write.
func structural(name string) bool {
	switch name {
	case "", "SIMPLE", "BITPIX", "EXTEND", "BZERO", "BSCALE", "END",
		"XTENSION", "PCOUNT", "GCOUNT":
		return true
	}

	return strings.HasPrefix(name, "NAXIS")
}
