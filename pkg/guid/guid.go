// Package guid provides a 128-bit globally unique identifier stored
// as four 32-bit words, the layout replication and asset systems
// expect.
package guid

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ErrMalformedGuid is returned by Parse for input that is not four
// dash-separated 8-digit hex groups.
var ErrMalformedGuid = errors.New("malformed guid")

// Guid is a 128-bit identifier. The zero value is the invalid guid.
type Guid struct {
	A, B, C, D uint32
}

// Invalid is the all-zero guid.
var Invalid = Guid{}

// New returns a freshly generated random guid.
func New() Guid {
	return FromBytes(uuid.New())
}

// NewGuid returns the guid with the given words.
func NewGuid(a, b, c, d uint32) Guid {
	return Guid{a, b, c, d}
}

// FromBytes packs 16 big-endian bytes into a guid.
func FromBytes(b [16]byte) Guid {
	return Guid{
		A: binary.BigEndian.Uint32(b[0:4]),
		B: binary.BigEndian.Uint32(b[4:8]),
		C: binary.BigEndian.Uint32(b[8:12]),
		D: binary.BigEndian.Uint32(b[12:16]),
	}
}

// Bytes returns the guid as 16 big-endian bytes.
func (g Guid) Bytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint32(b[0:4], g.A)
	binary.BigEndian.PutUint32(b[4:8], g.B)
	binary.BigEndian.PutUint32(b[8:12], g.C)
	binary.BigEndian.PutUint32(b[12:16], g.D)
	return b
}

// Parse reads the "AAAAAAAA-BBBBBBBB-CCCCCCCC-DDDDDDDD" form produced
// by String. Errors identify the failing segment.
func Parse(s string) (Guid, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 4 {
		return Guid{}, fmt.Errorf("%w: %q has %d segments, want 4", ErrMalformedGuid, s, len(parts))
	}
	var words [4]uint32
	for i, part := range parts {
		if len(part) != 8 {
			return Guid{}, fmt.Errorf("%w: segment %d of %q has %d digits, want 8", ErrMalformedGuid, i+1, s, len(part))
		}
		w, err := strconv.ParseUint(part, 16, 32)
		if err != nil {
			return Guid{}, fmt.Errorf("%w: segment %d of %q is not hexadecimal", ErrMalformedGuid, i+1, s)
		}
		words[i] = uint32(w)
	}
	return Guid{words[0], words[1], words[2], words[3]}, nil
}

// String renders the guid as four dash-separated hex groups.
func (g Guid) String() string {
	return fmt.Sprintf("%08X-%08X-%08X-%08X", g.A, g.B, g.C, g.D)
}

// IsValid reports whether the guid is non-zero.
func (g Guid) IsValid() bool {
	return g != Invalid
}

// MarshalText implements encoding.TextMarshaler.
func (g Guid) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Guid) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
