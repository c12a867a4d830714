package textbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	ab := FromString("ab")
	cd := AppendString(FromString("c"), "d")

	require.Equal(t, ab, Merge(Buffer{}, ab))
	require.Equal(t, ab, Merge(ab, Buffer{}))
	require.True(t, Merge(Buffer{}, Buffer{}).IsEmpty())

	m := Merge(ab, cd)
	require.Equal(t, "abcd", m.String())
	require.Equal(t, "ab", ab.String())
	require.Equal(t, "cd", cd.String())

	// Merging onto the newest extension of a store grows it in place.
	m2 := Merge(cd, ab)
	require.True(t, m2.SharesStore(cd))
	require.Equal(t, "cdab", m2.String())
}

func TestMergeAll(t *testing.T) {
	require.True(t, MergeAll().IsEmpty())

	one := FromString("solo")
	require.Equal(t, one, MergeAll(one))

	parts := []Buffer{FromString("a"), {}, FromString("bc"), FromString("😀"), {}}
	require.Equal(t, "abc😀", MergeAll(parts...).String())
	require.Equal(t, "a", parts[0].String())
}
