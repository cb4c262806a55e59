package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvWithDefault(t *testing.T) {
	t.Setenv("MAZE_LAYOUT", "serpentine")
	assert.Equal(t, "serpentine", getEnvWithDefault("MAZE_LAYOUT", "wilson"))
	assert.Equal(t, "wilson", getEnvWithDefault("MAZE_UNSET_KEY", "wilson"))
}

func TestGetEnvAsUint32WithDefault(t *testing.T) {
	t.Setenv("MAZE_WIDTH", "12")
	assert.Equal(t, uint32(12), getEnvAsUint32WithDefault("MAZE_WIDTH", 9))

	t.Setenv("MAZE_WIDTH", "")
	assert.Equal(t, uint32(9), getEnvAsUint32WithDefault("MAZE_WIDTH", 9))
}

func TestGetEnvAsInt64WithDefault(t *testing.T) {
	t.Setenv("MAZE_SEED", "-42")
	assert.Equal(t, int64(-42), getEnvAsInt64WithDefault("MAZE_SEED", 0))
	assert.Equal(t, int64(7), getEnvAsInt64WithDefault("MAZE_UNSET_KEY", 7))
}

func TestGetEnvAsBoolWithDefault(t *testing.T) {
	t.Setenv("ASSEMBLY_STRICT", "false")
	assert.False(t, getEnvAsBoolWithDefault("ASSEMBLY_STRICT", true))
	assert.True(t, getEnvAsBoolWithDefault("MAZE_UNSET_KEY", true))
}
