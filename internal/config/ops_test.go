package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetScalars(t *testing.T) {
	var cfg Config
	require.NoError(t, cfg.Set("menu.width", "42"))
	require.NoError(t, cfg.Set("menu.abortKey", "true"))
	require.NoError(t, cfg.Set("menu.logUnhandledKeys", "1"))
	require.NoError(t, cfg.Set("menu.splashPath", "/tmp/splash"))
	require.NoError(t, cfg.Set("shell.prompt", "# "))
	require.NoError(t, cfg.Set("shell.allowExec", "true"))
	require.NoError(t, cfg.Set("logFile", "/tmp/bootmenu.log"))

	assert.Equal(t, 42, cfg.MenuWidth())
	assert.True(t, cfg.Menu.AbortKey)
	assert.True(t, cfg.Menu.LogUnhandledKeys)
	assert.Equal(t, "/tmp/splash", cfg.Menu.SplashPath)
	assert.Equal(t, "# ", cfg.Prompt())
	assert.True(t, cfg.Shell.AllowExec)
	assert.Equal(t, "/tmp/bootmenu.log", cfg.LogFile)
}

func TestSetRejectsBadValues(t *testing.T) {
	var cfg Config
	assert.ErrorContains(t, cfg.Set("menu.width", "0"), "menu.width")
	assert.ErrorContains(t, cfg.Set("menu.width", "abc"), "menu.width")
	assert.ErrorContains(t, cfg.Set("menu.abortKey", "maybe"), "true or false")
	assert.ErrorContains(t, cfg.Set("menu.colour", "red"), "unknown config key")
	assert.ErrorContains(t, cfg.Set("env.1bad", "x"), "invalid variable name")
}

func TestSetEnvAddsAndRemoves(t *testing.T) {
	var cfg Config
	require.NoError(t, cfg.Set("env.bootcmd", "menu show"))
	assert.Equal(t, "menu show", cfg.Shell.Env["bootcmd"])

	require.NoError(t, cfg.Set("env.bootcmd", ""))
	_, ok := cfg.Shell.Env["bootcmd"]
	assert.False(t, ok)
}

func TestKeysAreSorted(t *testing.T) {
	keys := Keys()
	require.NotEmpty(t, keys)
	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1], keys[i])
	}
	assert.Contains(t, keys, "menu.width")
}
