package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantDirRoundTrip(t *testing.T) {
	for _, v := range Variants {
		dir, ok := VariantDir(v)
		require.True(t, ok, "variant %s has no directory", v)
		back, ok := DirVariant(dir)
		require.True(t, ok, "directory %s does not map back", dir)
		assert.Equal(t, v, back)
	}
}

func TestDirVariantRoundTrip(t *testing.T) {
	dirs := []string{
		"materialicons",
		"materialiconsoutlined",
		"materialiconsround",
		"materialiconssharp",
		"materialiconstwotone",
	}
	for _, d := range dirs {
		v, ok := DirVariant(d)
		require.True(t, ok, "directory %s is unmapped", d)
		back, ok := VariantDir(v)
		require.True(t, ok)
		assert.Equal(t, d, back)
	}
	_, ok := DirVariant("materialiconsbold")
	assert.False(t, ok)
}

func TestVariantsOrder(t *testing.T) {
	// default-variant fallback depends on this exact order
	assert.Equal(t, []IconVariant{
		VariantFilled, VariantOutlined, VariantRound, VariantSharp, VariantTwotone,
	}, Variants)
}
