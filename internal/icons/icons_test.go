package icons

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveKnownKeys(t *testing.T) {
	t.Parallel()

	require.Equal(t, "lucide:target", Resolve("Target").Name)
	require.Equal(t, "lucide:image", Resolve("ImageIcon").Name)
	require.Equal(t, "lucide:x", Resolve("X").Name)
	require.Equal(t, Heart, Resolve(" Heart "))
	for k := range table {
		require.True(t, Known(k))
		require.Equal(t, k, Resolve(k).Key)
	}
	require.False(t, Known("Rocket"))
}

func TestResolveUnknownKeysDegrade(t *testing.T) {
	t.Parallel()

	for _, k := range []string{"", "target", "Rocket", "lucide:target", "🦄"} {
		require.NotPanics(t, func() { Resolve(k) })
		require.Equal(t, Default, Resolve(k), k)
	}
	require.Equal(t, Star, ResolveOr("Unknown", Star))
	require.Equal(t, Default, ResolveOr("Unknown", Glyph{}))
	require.Equal(t, Eye, ResolveOr("Eye", Star))
}

func TestGlyphClass(t *testing.T) {
	t.Parallel()

	require.Equal(t, "iconify inline-block", Target.Class(""))
	require.Equal(t, "iconify inline-block size-8", Target.Class("size-8"))
}
