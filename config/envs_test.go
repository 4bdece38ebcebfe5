package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		c, err := Load()
		require.NoError(t, err)
		assert.Equal(t, defaultRows, c.Rows)
		assert.Equal(t, defaultCols, c.Cols)
		assert.Zero(t, c.Seed)
		assert.Equal(t, "info", c.LogLevel)
		assert.Empty(t, c.LogFile)
	})

	t.Run("Environment overrides", func(t *testing.T) {
		t.Setenv("MAZE_ROWS", "7")
		t.Setenv("MAZE_COLS", "9")
		t.Setenv("MAZE_SEED", "1234567890123")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FILE", "maze.log")

		c, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 7, c.Rows)
		assert.Equal(t, 9, c.Cols)
		assert.Equal(t, int64(1234567890123), c.Seed)
		assert.Equal(t, "debug", c.LogLevel)
		assert.Equal(t, "maze.log", c.LogFile)
	})

	t.Run("Malformed integer", func(t *testing.T) {
		t.Setenv("MAZE_COLS", "wide")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "MAZE_COLS")
	})

	t.Run("Non positive dimension", func(t *testing.T) {
		t.Setenv("MAZE_ROWS", "0")

		_, err := Load()
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Config{Rows: 1, Cols: 1}.Validate())
	assert.ErrorIs(t, Config{Rows: 3, Cols: -1}.Validate(), ErrInvalidDimension)
	assert.ErrorIs(t, Config{Rows: -3, Cols: 1}.Validate(), ErrInvalidDimension)
}
