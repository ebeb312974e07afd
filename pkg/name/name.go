// Package name provides an interned string identifier. Names are
// cheap to copy and compare: equality checks the xxhash of the
// interned text before falling back to the text itself, and equal
// names share one stored copy of the string.
package name

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Name is an interned string. The zero value is None.
type Name struct {
	hash  uint64
	value string
}

// None is the empty name.
var None = Name{}

var intern sync.Map // uint64 -> string

// New interns value and returns its Name. Repeated calls with equal
// text return names sharing one stored string.
func New(value string) Name {
	if value == "" {
		return None
	}
	hash := xxhash.Sum64String(value)
	if stored, ok := intern.Load(hash); ok {
		if s := stored.(string); s == value {
			return Name{hash: hash, value: s}
		}
		// Hash collision between distinct strings: fall back to the
		// caller's copy without interning.
		return Name{hash: hash, value: value}
	}
	stored, _ := intern.LoadOrStore(hash, value)
	return Name{hash: hash, value: stored.(string)}
}

// String returns the name's text.
func (n Name) String() string {
	return n.value
}

// Hash returns the name's xxhash identity.
func (n Name) Hash() uint64 {
	return n.hash
}

// IsNone reports whether the name is empty.
func (n Name) IsNone() bool {
	return n.value == ""
}

// Equal reports whether the names hold the same text, comparing
// hashes first.
func (n Name) Equal(other Name) bool {
	return n.hash == other.hash && n.value == other.value
}

// MarshalText implements encoding.TextMarshaler.
func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Name) UnmarshalText(text []byte) error {
	*n = New(string(text))
	return nil
}
