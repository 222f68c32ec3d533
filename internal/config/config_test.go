package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults when the file is absent", func(t *testing.T) {
		// Given: a path that does not exist
		chdir(t, t.TempDir())
		path := filepath.Join(t.TempDir(), "config.yml")

		// When: loading the config
		conf, err := Load(path)

		// Then: defaults should be applied
		require.NoError(t, err)
		assert.Equal(t, "error", conf.LogLevel)
		assert.Equal(t, "X", conf.Game.FirstPlayer)
		assert.False(t, conf.Game.NoClear)
		assert.Equal(t, StorageFile, conf.Todo.Storage)
		assert.Equal(t, "tasks.json", conf.Todo.FilePath)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Reads values from the yaml file", func(t *testing.T) {
		// Given: a config file with overrides
		chdir(t, t.TempDir())
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\n" +
			"game:\n  first-player: O\n  no-clear: true\n" +
			"todo:\n  storage: sqlite\n  sqlite-path: /tmp/todo.db\n" +
			"redis:\n  host: cache\n  port: \"6380\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading the config
		conf, err := Load(path)

		// Then: the file values should be used
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "O", conf.Game.FirstPlayer)
		assert.True(t, conf.Game.NoClear)
		assert.Equal(t, StorageSQLite, conf.Todo.Storage)
		assert.Equal(t, "/tmp/todo.db", conf.Todo.SQLitePath)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		// Given: an environment variable and no file
		chdir(t, t.TempDir())
		t.Setenv("TODO_STORAGE", StorageRedis)

		// When: loading the config
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: the env value should be used
		require.NoError(t, err)
		assert.Equal(t, StorageRedis, conf.Todo.Storage)
	})

	t.Run("Broken file panics in MustLoad", func(t *testing.T) {
		// Given: an invalid yaml file
		chdir(t, t.TempDir())
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: [\n"), 0o600))

		// Then: MustLoad should panic
		assert.Panics(t, func() { MustLoad(path) })
	})
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
