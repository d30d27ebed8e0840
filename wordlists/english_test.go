// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package wordlists

import (
	"sort"
	"testing"

	"github.com/matryer/is"
)

func TestEnglish_Shape(t *testing.T) {
	is := is.New(t)

	is.Equal(len(English), 1626)
	is.Equal(English[0], "abbey")
	is.Equal(English[len(English)-1], "zoom")
	is.True(sort.StringsAreSorted(English))
}

// TestEnglish_UniquePrefixes verifies that the first three letters identify a
// word, which the mnemonic checksum relies on.
func TestEnglish_UniquePrefixes(t *testing.T) {
	is := is.New(t)

	seen := make(map[string]string, len(English))
	for _, w := range English {
		is.True(len(w) >= 3)
		if prev, dup := seen[w[:3]]; dup {
			t.Fatalf("%q shares a prefix with %q", w, prev)
		}
		seen[w[:3]] = w
	}
}
