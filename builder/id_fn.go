// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"slices"
	"strconv"
)

// IDFn names the vertex created at a zero-based construction index.
// It must be pure and must not map two indices to the same ID.
type IDFn func(idx int) string

// DefaultIDFn names vertices "0", "1", "2", ...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// LetterIDFn names vertices "A".."Z", then "AA", "AB", ... with no upper
// bound, so letter-labelled fixtures like the A-B-C-D diamond scale past 26
// vertices. Panics if idx < 0.
func LetterIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("builder: LetterIDFn(%d): negative index", idx))
	}
	var buf []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		buf = append(buf, byte('A'+i%26))
	}
	slices.Reverse(buf)

	return string(buf)
}

// PrefixIDFn names vertices prefix+idx, e.g. "v0", "v1". It keeps IDs from
// two constructors apart when both are applied to the same graph.
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("builder: PrefixIDFn(%d): negative index", idx))
		}

		return prefix + strconv.Itoa(idx)
	}
}

// WithDefaultIDs resets the ID scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption { return WithIDScheme(DefaultIDFn) }

// WithLetterIDs switches to LetterIDFn.
func WithLetterIDs() BuilderOption { return WithIDScheme(LetterIDFn) }

// WithPrefixIDs switches to PrefixIDFn(prefix).
func WithPrefixIDs(prefix string) BuilderOption { return WithIDScheme(PrefixIDFn(prefix)) }
