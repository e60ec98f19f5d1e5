package pathutil

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	assert.Equal(t, "unwind.db", name("unwind.db", ""))
	assert.Equal(t, "unwind_dev.db", name("unwind.db", "dev"))
	assert.Equal(t, "status_dev.json", name("status.json", "dev"))
}

func TestResolve(t *testing.T) {
	root := t.TempDir()

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	xdg.Reload()

	t.Cleanup(xdg.Reload)

	p, err := Resolve("test")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "config", "unwind", "config_test.yml"), p.Config)
	assert.Equal(t, filepath.Join(root, "data", "unwind", "unwind_test.db"), p.DB)
	assert.Equal(t, filepath.Join(root, "data", "unwind", "status_test.json"), p.Status)
	assert.Equal(t, filepath.Join(root, "state", "unwind", "unwind_test.log"), p.Log)
	assert.DirExists(t, filepath.Join(root, "data", "unwind"))
}
