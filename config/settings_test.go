package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wmw9/twitchvod"
)

func TestLoadSettings_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("TWITCHVOD_CONFIG", "")
	t.Setenv("TWITCHVOD_API_URL", "")
	t.Setenv("TWITCHVOD_CLIENT_ID", "")
	t.Setenv("TWITCHVOD_DEBUG", "")

	s, err := LoadSettings()
	require.NoError(t, err)
	require.Equal(t, twitchvod.API_URL, s.APIURL)
	require.Equal(t, twitchvod.CLIENT_ID, s.ClientID)
	require.False(t, s.Debug)
	require.Equal(t, filepath.Join(dir, appDir, fileName), s.ConfigFile)
}

func TestLoadSettings_Overrides(t *testing.T) {
	t.Setenv("TWITCHVOD_CONFIG", "/etc/twitchvod.yaml")
	t.Setenv("TWITCHVOD_API_URL", "http://localhost:8080/kraken")
	t.Setenv("TWITCHVOD_CLIENT_ID", "abc")
	t.Setenv("TWITCHVOD_DEBUG", "true")

	s, err := LoadSettings()
	require.NoError(t, err)
	require.Equal(t, "/etc/twitchvod.yaml", s.ConfigFile)
	require.Equal(t, "http://localhost:8080/kraken", s.APIURL)
	require.Equal(t, "abc", s.ClientID)
	require.True(t, s.Debug)
}

func TestLoadSettings_ValidationError(t *testing.T) {
	t.Setenv("TWITCHVOD_API_URL", "not a url")

	s, err := LoadSettings()
	require.Error(t, err)
	require.Nil(t, s)
}
