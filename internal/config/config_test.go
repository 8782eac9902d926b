package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/streak-tournament/internal/apperror"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the yml file", func(t *testing.T) {
		// Given: a config file with every section set
		path := writeConfig(t, `
log-level: debug
rounds: 100
board-size: 5
win-streak: 4
renderer: void
seed: 7
player1:
  name: Alice
  type: genius
player2:
  type: clever
redis:
  enabled: true
  host: cache
  port: "6380"
`)

		// When: it is loaded
		conf, err := Load(path)

		// Then: the values and defaults are filled in
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 100, conf.Rounds)
		assert.Equal(t, 5, conf.BoardSize)
		assert.Equal(t, 4, conf.WinStreak)
		assert.Equal(t, "void", conf.Renderer)
		assert.Equal(t, int64(7), conf.Seed)
		assert.Equal(t, Player{Name: "Alice", Type: "genius"}, conf.Player1)
		assert.Equal(t, "clever", conf.Player2.Type)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, "tournament:results", conf.Redis.Channel)
	})

	t.Run("Falls back to the environment", func(t *testing.T) {
		// Given: no config file and a few env overrides
		t.Setenv("ROUNDS", "12")
		t.Setenv("PLAYER2_TYPE", "genius")

		// When: a missing path is loaded
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: env values and defaults are used
		require.NoError(t, err)
		assert.Equal(t, 12, conf.Rounds)
		assert.Equal(t, 4, conf.BoardSize)
		assert.Equal(t, 3, conf.WinStreak)
		assert.Equal(t, "console", conf.Renderer)
		assert.Equal(t, "whatever", conf.Player1.Type)
		assert.Equal(t, "genius", conf.Player2.Type)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Missing board keys use defaults", func(t *testing.T) {
		// Given: a config file without board settings
		path := writeConfig(t, "rounds: 3\n")

		// When: it is loaded
		conf, err := Load(path)

		// Then: the board defaults are kept
		require.NoError(t, err)
		assert.Equal(t, 4, conf.BoardSize)
		assert.Equal(t, 3, conf.WinStreak)
	})

	t.Run("Explicit zero board settings are rejected", func(t *testing.T) {
		// Given: a config file that sets the board size and streak to zero
		path := writeConfig(t, "rounds: 3\nboard-size: 0\nwin-streak: 0\n")

		// When: it is loaded and validated
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: the zeros survive loading and fail validation
		assert.Equal(t, 0, conf.BoardSize)
		assert.Equal(t, 0, conf.WinStreak)
		require.ErrorIs(t, conf.Validate(), apperror.ErrInvalidBoardSize)

		conf.BoardSize = 3
		require.ErrorIs(t, conf.Validate(), apperror.ErrInvalidWinStreak)
	})

	t.Run("Broken yml", func(t *testing.T) {
		path := writeConfig(t, "rounds: [")

		_, err := Load(path)

		require.Error(t, err)
	})
}

func TestConfig_ApplyArgs(t *testing.T) {
	t.Run("Positional arguments override the file", func(t *testing.T) {
		conf := &Config{Rounds: 1, BoardSize: 4, WinStreak: 3, Renderer: "console"}

		err := conf.ApplyArgs([]string{"100", "4", "3", "void", "genius", "clever"})

		require.NoError(t, err)
		assert.Equal(t, 100, conf.Rounds)
		assert.Equal(t, 4, conf.BoardSize)
		assert.Equal(t, 3, conf.WinStreak)
		assert.Equal(t, "void", conf.Renderer)
		assert.Equal(t, "genius", conf.Player1.Type)
		assert.Equal(t, "clever", conf.Player2.Type)
	})

	t.Run("Partial arguments keep the rest", func(t *testing.T) {
		conf := &Config{Rounds: 1, BoardSize: 4, WinStreak: 3}

		require.NoError(t, conf.ApplyArgs([]string{"9"}))

		assert.Equal(t, 9, conf.Rounds)
		assert.Equal(t, 4, conf.BoardSize)
	})

	t.Run("Non numeric size", func(t *testing.T) {
		conf := &Config{}

		err := conf.ApplyArgs([]string{"1", "big"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "board size")
	})

	t.Run("Too many arguments", func(t *testing.T) {
		conf := &Config{}

		err := conf.ApplyArgs([]string{"1", "2", "3", "a", "b", "c", "d"})

		require.ErrorIs(t, err, ErrTooManyArgs)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		conf    Config
		wantErr error
	}{
		{name: "valid", conf: Config{Rounds: 0, BoardSize: 1, WinStreak: 1}},
		{name: "negative rounds", conf: Config{Rounds: -1, BoardSize: 3, WinStreak: 3}, wantErr: apperror.ErrInvalidRounds},
		{name: "zero board size", conf: Config{Rounds: 1, BoardSize: 0, WinStreak: 3}, wantErr: apperror.ErrInvalidBoardSize},
		{name: "zero win streak", conf: Config{Rounds: 1, BoardSize: 3, WinStreak: 0}, wantErr: apperror.ErrInvalidWinStreak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.conf.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConfig_PlayerNames(t *testing.T) {
	conf := &Config{
		Player1: Player{Name: "Alice", Type: "human"},
		Player2: Player{Type: "genius"},
	}

	name1, name2 := conf.PlayerNames()

	assert.Equal(t, "Alice", name1)
	assert.Equal(t, "genius", name2)
}
