package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDotEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestTokenSource_EnvWinsOverConfigured(t *testing.T) {
	t.Setenv("NAVIPLAN_TEST_MAPBOX_TOKEN", "from-env")

	ts := &TokenSource{
		EnvKey:     "NAVIPLAN_TEST_MAPBOX_TOKEN",
		Configured: "from-config",
	}
	token, err := ts.Token()
	require.NoError(t, err)
	assert.Equal(t, "from-env", token)
}

func TestTokenSource_ConfiguredWinsOverFile(t *testing.T) {
	path := writeDotEnv(t, "NAVIPLAN_TEST_MAPBOX_TOKEN=from-file\n")

	ts := &TokenSource{
		EnvKey:      "NAVIPLAN_TEST_MAPBOX_TOKEN",
		Configured:  "from-config",
		DotEnvPaths: []string{path},
	}
	token, err := ts.Token()
	require.NoError(t, err)
	assert.Equal(t, "from-config", token)
}

func TestTokenSource_FileFallback(t *testing.T) {
	path := writeDotEnv(t, `NAVIPLAN_TEST_MAPBOX_TOKEN="from-file"`+"\n")

	ts := &TokenSource{
		EnvKey:      "NAVIPLAN_TEST_MAPBOX_TOKEN",
		DotEnvPaths: []string{filepath.Join(t.TempDir(), "missing.env"), path},
	}
	token, err := ts.Token()
	require.NoError(t, err)
	assert.Equal(t, "from-file", token)
}

func TestTokenSource_Unresolved(t *testing.T) {
	ts := &TokenSource{EnvKey: "NAVIPLAN_TEST_MAPBOX_TOKEN"}
	_, err := ts.Token()
	assert.ErrorIs(t, err, ErrTokenNotSet)

	// hasil resolusi di-cache — env yang baru muncul tidak mengubah outcome
	t.Setenv("NAVIPLAN_TEST_MAPBOX_TOKEN", "late")
	_, err = ts.Token()
	assert.ErrorIs(t, err, ErrTokenNotSet)
}
