package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSVGSetsIconAttrs(t *testing.T) {
	in := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path d="M0 0"/></svg>`

	out, err := NormalizeSVG(in)
	require.NoError(t, err)

	assert.Contains(t, out, `fill="currentColor"`)
	assert.Contains(t, out, `width="1em"`)
	assert.Contains(t, out, `height="1em"`)
	assert.Contains(t, out, `viewBox="0 0 24 24"`)
	assert.Contains(t, out, `<path d="M0 0"/>`)
	assert.NotContains(t, out, "xmlns=")
}

func TestNormalizeSVGOverwritesExistingAttrs(t *testing.T) {
	in := `<svg fill="#000" width="24" height="24"><path d="M1 1"/></svg>`

	out, err := NormalizeSVG(in)
	require.NoError(t, err)

	assert.Contains(t, out, `fill="currentColor"`)
	assert.Contains(t, out, `width="1em"`)
	assert.Contains(t, out, `height="1em"`)
	assert.NotContains(t, out, `#000`)
	assert.NotContains(t, out, `"24"`)
}

func TestNormalizeSVGRewritesNamespacedAttrsRecursively(t *testing.T) {
	in := `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">` +
		`<defs><path id="a" d="M0 0"/></defs>` +
		`<g><use xlink:href="#a"/></g>` +
		`</svg>`

	out, err := NormalizeSVG(in)
	require.NoError(t, err)

	assert.Contains(t, out, `<use href="#a"/>`)
	assert.NotContains(t, out, "xlink")
	assert.NotContains(t, out, "xmlns")
}

func TestNormalizeSVGPreservesContentAndOrder(t *testing.T) {
	in := `<svg><g id="first"><path d="M0 0"/><circle cx="1" cy="1" r="1"/></g><g id="second"><rect x="0" y="0"/></g></svg>`

	out, err := NormalizeSVG(in)
	require.NoError(t, err)

	first := `<g id="first"><path d="M0 0"/><circle cx="1" cy="1" r="1"/></g>`
	second := `<g id="second"><rect x="0" y="0"/></g>`
	assert.Contains(t, out, first)
	assert.Contains(t, out, second)
	assert.Less(t, strings.Index(out, first), strings.Index(out, second))
}

func TestNormalizeSVGIdempotent(t *testing.T) {
	inputs := []string{
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path d="M0 0"/></svg>`,
		`<svg><g><path d="M2 2h20v20H2z" opacity=".3"/></g></svg>`,
		`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink"><use xlink:href="#x"/></svg>`,
	}
	for _, in := range inputs {
		once, err := NormalizeSVG(in)
		require.NoError(t, err)
		twice, err := NormalizeSVG(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	}
}

func TestNormalizeSVGInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"whitespace", "   \n\t"},
		{"unclosed element", `<svg><path d="M0 0">`},
		{"plain text", "not xml at all"},
		{"mismatched tags", `<svg><g></svg></g>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeSVG(tt.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSVG)
		})
	}
}
