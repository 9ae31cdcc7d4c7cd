package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/devscalar/internal/devmem"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "devscalar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigTracking(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "resource: tracking\n"))
	require.NoError(t, err)
	assert.Equal(t, "tracking", cfg.Resource)
}

func TestLoadConfigDefaultsToStandard(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, "standard", cfg.Resource)
}

func TestLoadConfigInvalidResource(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "resource: cuda-async\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid resource")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "resource: [unclosed\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestConfigFlagInstallsTrackingResource(t *testing.T) {
	prev := devmem.Current()
	defer devmem.SetCurrent(prev)

	path := writeConfig(t, "resource: tracking\n")
	out, err := execute(t, "--config", path, "make", "--string", "abcd")
	require.NoError(t, err)

	assert.Contains(t, out, "live allocations: 1 (4 bytes)")
	assert.Equal(t, "tracking", devmem.Current().Name())
}
