package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsCmd_Show(t *testing.T) {
	setupServices(t)

	out, err := execute(t, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "[Server]")
	assert.Contains(t, out, "Address: localhost:8000")
	assert.Contains(t, out, "[History]")
	assert.Contains(t, out, "[Analyze]")
}

func TestSettingsCmd_SetAndShow(t *testing.T) {
	setupServices(t)

	out, err := execute(t, "settings", "set", "server.addr", "0.0.0.0:9000")
	require.NoError(t, err)
	assert.Contains(t, out, "Set server.addr = 0.0.0.0:9000")

	out, err = execute(t, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Address: 0.0.0.0:9000")
}

func TestSettingsCmd_SetInvalidKey(t *testing.T) {
	setupServices(t)

	_, err := execute(t, "settings", "set", "nonsense.key", "1")
	assert.Error(t, err)
}

func TestSettingsCmd_Keys(t *testing.T) {
	setupServices(t)

	out, err := execute(t, "settings", "keys")
	require.NoError(t, err)
	assert.Contains(t, out, "server.addr")
	assert.Contains(t, out, "history.enabled")
	assert.Contains(t, out, "analyze.flag_count")
}
