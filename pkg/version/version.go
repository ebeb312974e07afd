// Package version provides a semantic version value with an optional
// build changelist.
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedVersion is returned by Parse for input that is not
// "major.minor.patch" or "major.minor.patch.changelist".
var ErrMalformedVersion = errors.New("malformed version")

// Version is a semantic version. Changelist 0 means "no build
// metadata".
type Version struct {
	Major, Minor, Patch uint16
	Changelist          uint32
}

// New returns the version major.minor.patch.
func New(major, minor, patch uint16) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// Parse reads "1.2.3" or "1.2.3.4444". Errors identify the failing
// segment.
func Parse(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 && len(parts) != 4 {
		return Version{}, fmt.Errorf("%w: %q has %d segments, want 3 or 4", ErrMalformedVersion, s, len(parts))
	}
	segment := func(i int, bits int) (uint64, error) {
		v, err := strconv.ParseUint(parts[i], 10, bits)
		if err != nil {
			return 0, fmt.Errorf("%w: segment %d of %q is not a number", ErrMalformedVersion, i+1, s)
		}
		return v, nil
	}
	major, err := segment(0, 16)
	if err != nil {
		return Version{}, err
	}
	minor, err := segment(1, 16)
	if err != nil {
		return Version{}, err
	}
	patch, err := segment(2, 16)
	if err != nil {
		return Version{}, err
	}
	var changelist uint64
	if len(parts) == 4 {
		changelist, err = segment(3, 32)
		if err != nil {
			return Version{}, err
		}
	}
	return Version{uint16(major), uint16(minor), uint16(patch), uint32(changelist)}, nil
}

// String renders the version, omitting a zero changelist.
func (v Version) String() string {
	if v.Changelist == 0 {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Patch, v.Changelist)
}

// Compare orders two versions: -1 when v is older, 1 when newer, 0
// when equal. The changelist participates after patch.
func (v Version) Compare(other Version) int {
	pairs := [4][2]uint64{
		{uint64(v.Major), uint64(other.Major)},
		{uint64(v.Minor), uint64(other.Minor)},
		{uint64(v.Patch), uint64(other.Patch)},
		{uint64(v.Changelist), uint64(other.Changelist)},
	}
	for _, p := range pairs {
		if p[0] < p[1] {
			return -1
		}
		if p[0] > p[1] {
			return 1
		}
	}
	return 0
}

// IsCompatibleWith reports whether the versions share a major
// version.
func (v Version) IsCompatibleWith(other Version) bool {
	return v.Major == other.Major
}
