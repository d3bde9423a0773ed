package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/Taichi-iskw/media-catalog/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupHome points HOME at a temp dir holding the given config file
func setupHome(t *testing.T, configContent string) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{"DATABASE_URL", "CATALOG_STORE", "CATALOG_LOG_LEVEL", "CATALOG_LOG_FORMAT"} {
		t.Setenv(key, "")
	}

	if configContent != "" {
		dir := filepath.Join(home, ".media-catalog")
		require.NoError(t, os.MkdirAll(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(configContent), 0644))
	}
	return home
}

// run executes the root command with args and returns its stdout
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	storeFlag = ""

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

const memoryConfig = "store: memory\nlog_level: error\n"

func TestConfigCommands(t *testing.T) {
	home := setupHome(t, "")

	out, err := run(t, "config", "init", "postgres://catalog:secret@db:5432/catalog")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(home, ".media-catalog", "config.yaml"))

	out, err = run(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "postgres://catalog:***@db:5432/catalog")
	assert.NotContains(t, out, "secret")
	assert.Contains(t, out, "STORE:            postgres")

	_, err = run(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestChannelCommands(t *testing.T) {
	setupHome(t, memoryConfig)

	tests := []struct {
		name     string
		args     []string
		wantOut  string
		wantCode string
	}{
		{
			name:    "create",
			args:    []string{"channel", "create", "UC1", "Lofi Girl", "https://example.com/icon.png"},
			wantOut: "Channel UC1 created",
		},
		{
			name:     "create with invalid icon url",
			args:     []string{"channel", "create", "UC1", "Lofi Girl", "icon.png"},
			wantCode: apperrors.CodeValidationFailed,
		},
		{
			name:     "get on an empty store",
			args:     []string{"channel", "get", "UC1"},
			wantCode: apperrors.CodeNotFound,
		},
		{
			name:    "search on an empty store",
			args:    []string{"channel", "search", "lofi"},
			wantOut: "[]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, apperrors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.wantOut)
		})
	}
}

func TestVideoCommands(t *testing.T) {
	setupHome(t, memoryConfig)

	_, err := run(t, "video", "create", "v1", "one", "Title", "https://youtu.be/v1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid channel id")

	// Each command gets a fresh memory store, so the channel reference is unknown
	_, err = run(t, "video", "create", "v1", "1", "Title", "https://youtu.be/v1", "--published-at", "2024-01-15T10:30:00Z")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeWriteFailed, apperrors.CodeOf(err))

	out, err := run(t, "video", "list", "--channel", "1", "--limit", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "[]")

	_, err = run(t, "video", "list", "--offset", "-1")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeValidationFailed, apperrors.CodeOf(err))
}

func TestSongSearchCommand(t *testing.T) {
	setupHome(t, memoryConfig)

	out, err := run(t, "song", "search", "--title", "snow", "--channel-name", "Lofi Girl")
	require.NoError(t, err)
	assert.Contains(t, out, "[]")
}

func TestStoreFlagOverride(t *testing.T) {
	setupHome(t, "log_level: error\n")

	// No database_url: postgres cannot be selected, memory can
	_, err := run(t, "channel", "search", "x")
	require.Error(t, err)

	out, err := run(t, "--store", "memory", "channel", "search", "x")
	require.NoError(t, err)
	assert.Contains(t, out, "[]")
}

func TestSchemaCommandsNeedPostgres(t *testing.T) {
	setupHome(t, memoryConfig)

	_, err := run(t, "schema", "apply")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "need the postgres store")

	_, err = run(t, "schema", "drop")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "(not set)", redact(""))
	assert.Equal(t, "postgres://u@h/db", redact("postgres://u@h/db"))
	assert.Equal(t, "postgres://u:***@h:5432/db?sslmode=disable", redact("postgres://u:p@h/db"))
}
