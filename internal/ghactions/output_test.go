package ghactions

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newOutputFile creates the pre-existing output file the Actions runner
// would provide and points GITHUB_OUTPUT at it.
func newOutputFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "output")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	t.Setenv("GITHUB_OUTPUT", path)
	return path
}

func TestWriteOutputs(t *testing.T) {
	path := newOutputFile(t)

	err := WriteOutputs(map[string]string{
		"minimized":  "2",
		"failed":     "0",
		"candidates": "r1,r2",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	// Keys come out sorted.
	assert.Equal(t, "candidates=r1,r2\nfailed=0\nminimized=2\n", string(data))
}

func TestWriteOutputs_SanitizesNewlines(t *testing.T) {
	path := newOutputFile(t)

	err := WriteOutputs(map[string]string{"note": "line1\r\nline2"})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "note=line1%0D%0Aline2\n", string(data))
}

func TestWriteOutputs_Appends(t *testing.T) {
	path := newOutputFile(t)
	require.NoError(t, os.WriteFile(path, []byte("existing=1\n"), 0o600))

	err := WriteOutputs(map[string]string{"minimized": "3"})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "existing=1\nminimized=3\n", string(data))
}

func TestWriteOutputs_NoOutputFile(t *testing.T) {
	t.Setenv("GITHUB_OUTPUT", "")

	err := WriteOutputs(map[string]string{"minimized": "1"})

	assert.NoError(t, err, "outside a runner the writer is a no-op")
}
