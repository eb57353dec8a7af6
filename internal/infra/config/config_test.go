package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Princegabz/State-Pattern/internal/app/playback"
)

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"play", "stop", "pause"}, cfg.Player.Script)
	assert.True(t, cfg.Player.ShouldWaitForInput())
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "stderr", cfg.Log.Output)

	require.Len(t, cfg.Sinks, 2)
	assert.Equal(t, "console", cfg.Sinks[0].Type)
	assert.Equal(t, "log", cfg.Sinks[1].Type)

	assert.Equal(t, playback.DefaultMessages(), cfg.PlaybackMessages())
}

func TestParse(t *testing.T) {
	data := []byte(`
player:
  script: [play, pause, play, stop]
  wait_for_input: false
messages:
  start_playing: "Now spinning"
sinks:
  - type: console
    settings:
      show_state: true
log:
  level: debug
  output: stdout
`)

	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"play", "pause", "play", "stop"}, cfg.Player.Script)
	assert.False(t, cfg.Player.ShouldWaitForInput())
	assert.Equal(t, "Now spinning", cfg.Messages.StartPlaying)
	assert.Equal(t, "Song is paused", cfg.Messages.Paused, "unset messages keep their defaults")
	require.Len(t, cfg.Sinks, 1)
	assert.Equal(t, true, cfg.Sinks[0].Settings["show_state"])
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "stdout", cfg.Log.Output)

	cmds, err := cfg.ScriptCommands()
	require.NoError(t, err)
	assert.Equal(t, []playback.Command{
		playback.CommandPlay, playback.CommandPause, playback.CommandPlay, playback.CommandStop,
	}, cmds)
}

func TestParse_EmptyScriptIsKept(t *testing.T) {
	cfg, err := Parse([]byte("player:\n  script: []\n"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Player.Script)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid config",
			yaml: "player:\n  script: [stop]\n",
		},
		{
			name:    "unknown command in script",
			yaml:    "player:\n  script: [play, rewind]\n",
			wantErr: true,
			errMsg:  "Script",
		},
		{
			name:    "invalid log level",
			yaml:    "log:\n  level: loud\n",
			wantErr: true,
			errMsg:  "Level",
		},
		{
			name:    "sink without type",
			yaml:    "sinks:\n  - settings:\n      stream: stdout\n",
			wantErr: true,
			errMsg:  "Type",
		},
		{
			name:    "malformed yaml",
			yaml:    "player: [",
			wantErr: true,
			errMsg:  "failed to parse config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))

			if tt.wantErr {
				require.Error(t, err, "expected validation to fail")
				assert.Contains(t, err.Error(), tt.errMsg,
					"error message should mention the problematic field")
			} else {
				assert.NoError(t, err, "expected validation to pass")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "player.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player:\n  script: [play]\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"play"}, cfg.Player.Script)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestOverrideFromEnv(t *testing.T) {
	t.Setenv(EnvScript, " Play, ,STOP ")
	t.Setenv(EnvWaitForInput, "false")
	t.Setenv(EnvLogLevel, "DEBUG")

	cfg, err := Parse([]byte("player:\n  script: [pause]\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"play", "stop"}, cfg.Player.Script)
	assert.False(t, cfg.Player.ShouldWaitForInput())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestOverrideFromEnv_InvalidBoolIgnored(t *testing.T) {
	t.Setenv(EnvWaitForInput, "sometimes")

	cfg, err := Default()
	require.NoError(t, err)
	assert.True(t, cfg.Player.ShouldWaitForInput())
}

func TestConfig_GetMessage(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	for code, text := range playback.DefaultMessages() {
		assert.Equal(t, text, cfg.GetMessage(code), "code %s", code)
	}
	assert.Empty(t, cfg.GetMessage(playback.MessageCode("unknown")))
}

func TestSplitScript(t *testing.T) {
	assert.Equal(t, []string{"play", "pause"}, SplitScript("play,pause"))
	assert.Equal(t, []string{}, SplitScript(" , "))
}
