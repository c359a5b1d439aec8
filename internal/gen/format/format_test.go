package format

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFormatter(t *testing.T, config string) *Formatter {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	if config != "" {
		require.NoError(t, os.WriteFile(path, []byte(config), 0o644))
	}
	f, err := New(path)
	require.NoError(t, err)
	return f
}

func TestFormatNormalizesWhitespace(t *testing.T) {
	f := newFormatter(t, "")

	got, err := f.Format("\n\nconst a = 1;  \r\n\n\n\nconst b = 2;\n\n", Options{})
	require.NoError(t, err)
	assert.Equal(t, "const a = 1;\n\nconst b = 2;\n", got)
}

func TestFormatEnsuresTrailingNewline(t *testing.T) {
	f := newFormatter(t, "")

	got, err := f.Format("const a = 1;", Options{})
	require.NoError(t, err)
	assert.Equal(t, "const a = 1;\n", got)
}

func TestFormatDeterministic(t *testing.T) {
	f := newFormatter(t, "")
	src := "const a = 1;\n\n\nconst b = 2;   \n"

	first, err := f.Format(src, Options{Parser: "typescript"})
	require.NoError(t, err)
	second, err := f.Format(src, Options{Parser: "typescript"})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// formatting already-formatted output is a no-op
	again, err := f.Format(first, Options{Parser: "typescript"})
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestFormatConfigMerge(t *testing.T) {
	f := newFormatter(t, `{"maxBlankLines": 2, "endOfLine": "lf"}`)

	got, err := f.Format("a\n\n\n\nb", Options{})
	require.NoError(t, err)
	assert.Equal(t, "a\n\n\nb\n", got)

	// per-call override wins over the loaded config
	got, err = f.Format("a\n\n\nb", Options{MaxBlankLines: 1})
	require.NoError(t, err)
	assert.Equal(t, "a\n\nb\n", got)
}

func TestFormatMalformedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err := New(path)
	assert.Error(t, err)
}

func TestFormatMissingConfigUsesDefaults(t *testing.T) {
	f, err := New(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	got, err := f.Format("x", Options{})
	require.NoError(t, err)
	assert.Equal(t, "x\n", got)
}
