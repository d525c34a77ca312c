package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	data := "# demos\n\nexport DEMOS_TEST_A=orbit\nDEMOS_TEST_B = \"with space\"\nDEMOS_TEST_C='x'\nnot a pair\n=novalue\nDEMOS_TEST_SET=file\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	t.Setenv("DEMOS_TEST_SET", "shell")
	for _, k := range []string{"DEMOS_TEST_A", "DEMOS_TEST_B", "DEMOS_TEST_C"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	require.NoError(t, Load(path))
	assert.Equal(t, "orbit", os.Getenv("DEMOS_TEST_A"))
	assert.Equal(t, "with space", os.Getenv("DEMOS_TEST_B"))
	assert.Equal(t, "x", os.Getenv("DEMOS_TEST_C"))
	assert.Equal(t, "shell", os.Getenv("DEMOS_TEST_SET"))
}

func TestLoadMissing(t *testing.T) {
	assert.NoError(t, Load(filepath.Join(t.TempDir(), "missing")))
}

func TestGet(t *testing.T) {
	t.Setenv("DEMOS_TEST_GET", "")
	assert.Equal(t, "fallback", Get("DEMOS_TEST_GET", "fallback"))
	t.Setenv("DEMOS_TEST_GET", "set")
	assert.Equal(t, "set", Get("DEMOS_TEST_GET", "fallback"))
}
