package launchcfg_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfgkit/launchcfg"
)

// writeConfig writes content to a temp file and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func initConfig(t *testing.T, content string) *launchcfg.Config {
	t.Helper()
	launchcfg.Reset()
	t.Cleanup(launchcfg.Reset)

	cfg, err := launchcfg.Init(writeConfig(t, content))
	require.NoError(t, err)
	return cfg
}

func TestInit_ParsesFile(t *testing.T) {
	cfg := initConfig(t, "AppId=game123\nOffline=1\n#comment\nBuildId=42\n")

	assert.Equal(t, "game123", cfg.AppID())
	assert.True(t, cfg.Offline())

	v, ok := cfg.Raw("BuildId")
	require.True(t, ok)
	assert.Equal(t, "42", v)

	_, ok = cfg.Raw("Missing")
	assert.False(t, ok)
}

func TestInit_FlagCoercion(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"True", true},
		{"yes", true},
		{"YES", true},
		{"", false},
		{"0", false},
		{"false", false},
		{"no", false},
		{"banana", false},
	}

	for _, tt := range tests {
		t.Run("value "+tt.value, func(t *testing.T) {
			cfg := initConfig(t, "Offline="+tt.value+"\n")
			assert.Equal(t, tt.want, cfg.Offline())
		})
	}
}

func TestInit_FlagAbsentIsFalse(t *testing.T) {
	cfg := initConfig(t, "AppId=game123\n")

	assert.False(t, cfg.Offline())
	assert.False(t, cfg.AutoDLC())
	assert.False(t, cfg.UpdateDB())
	assert.False(t, cfg.WaitForExit())
	assert.False(t, cfg.NoOperation())
}

func TestInit_DuplicateKeyLastWins(t *testing.T) {
	cfg := initConfig(t, "Language=en\nAppId=game123\nLanguage=pt\n")

	assert.Equal(t, "pt", cfg.Language())

	// The key keeps its first-seen position and appears once.
	entries := cfg.All()
	require.Len(t, entries, 2)
	assert.Equal(t, launchcfg.Entry{Key: "Language", Value: "pt"}, entries[0])
	assert.Equal(t, launchcfg.Entry{Key: "AppId", Value: "game123"}, entries[1])
}

func TestInit_FormatConventions(t *testing.T) {
	cfg := initConfig(t, `! bang comment
# hash comment
UserName : alice
   Language=  pt-BR
WindowInfo = 100,200,\
800,600
Extra.Key=kept
`)

	assert.Equal(t, "alice", cfg.UserName(), "colon separator")
	assert.Equal(t, "pt-BR", cfg.Language(), "surrounding whitespace trimmed")
	assert.Equal(t, "100,200,800,600", cfg.WindowInfo(), "backslash continuation")

	v, ok := cfg.Raw("Extra.Key")
	require.True(t, ok)
	assert.Equal(t, "kept", v)
	assert.Equal(t, 4, cfg.Len())
}

func TestInit_MissingFileYieldsDefaults(t *testing.T) {
	launchcfg.Reset()
	t.Cleanup(launchcfg.Reset)

	cfg, err := launchcfg.Init(filepath.Join(t.TempDir(), "nope.txt"))
	require.NoError(t, err)

	assert.Empty(t, cfg.All())
	assert.Zero(t, cfg.Len())

	assert.Empty(t, cfg.AppID())
	assert.Empty(t, cfg.UserName())
	assert.Empty(t, cfg.Language())
	assert.Empty(t, cfg.BuildID())
	assert.Empty(t, cfg.DLCName())
	assert.Empty(t, cfg.Signature())
	assert.Empty(t, cfg.WindowInfo())
	assert.Empty(t, cfg.LVWindowInfo())
	assert.Empty(t, cfg.ApplicationPath())
	assert.Empty(t, cfg.WorkingDirectory())
	assert.False(t, cfg.Offline())
	assert.False(t, cfg.AutoDLC())
	assert.False(t, cfg.UpdateDB())
	assert.False(t, cfg.WaitForExit())
	assert.False(t, cfg.NoOperation())
}

func TestConfig_NamedFields(t *testing.T) {
	cfg := initConfig(t, `AppId=game123
UserName=alice
Language=pt
Offline=1
AutoDLC=yes
BuildId=42
DLCName=expansion
UpdateDB=true
Signature=abcdef
WindowInfo=100,200,800,600
LVWindowInfo=0,0,640,480
ApplicationPath=/opt/game
WorkingDirectory=/var/game
WaitForExit=1
NoOperation=0
`)

	assert.Equal(t, "game123", cfg.AppID())
	assert.Equal(t, "alice", cfg.UserName())
	assert.Equal(t, "pt", cfg.Language())
	assert.True(t, cfg.Offline())
	assert.True(t, cfg.AutoDLC())
	assert.Equal(t, "42", cfg.BuildID())
	assert.Equal(t, "expansion", cfg.DLCName())
	assert.True(t, cfg.UpdateDB())
	assert.Equal(t, "abcdef", cfg.Signature())
	assert.Equal(t, "100,200,800,600", cfg.WindowInfo())
	assert.Equal(t, "0,0,640,480", cfg.LVWindowInfo())
	assert.Equal(t, "/opt/game", cfg.ApplicationPath())
	assert.Equal(t, "/var/game", cfg.WorkingDirectory())
	assert.True(t, cfg.WaitForExit())
	assert.False(t, cfg.NoOperation())
}

func TestConfig_AllReturnsCopy(t *testing.T) {
	cfg := initConfig(t, "AppId=game123\nUserName=alice\n")

	entries := cfg.All()
	require.Len(t, entries, 2)
	entries[0] = launchcfg.Entry{Key: "AppId", Value: "mutated"}

	again := cfg.All()
	assert.Equal(t, "game123", again[0].Value)
	assert.Equal(t, "game123", cfg.AppID())
}

func TestConfig_String(t *testing.T) {
	cfg := initConfig(t, "AppId=game123\nOffline=1\n")

	want := "Config {\n  AppId = game123\n  Offline = 1\n}"
	assert.Equal(t, want, cfg.String())

	// Deterministic across calls.
	assert.Equal(t, cfg.String(), cfg.String())
}

func TestConfig_StringEmpty(t *testing.T) {
	launchcfg.Reset()
	t.Cleanup(launchcfg.Reset)

	cfg, err := launchcfg.Init(filepath.Join(t.TempDir(), "nope.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Config {\n}", cfg.String())
}
