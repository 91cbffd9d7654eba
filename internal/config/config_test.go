package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"blackjack-sim/internal/util"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("BJ_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("BJ_SEED", "99")
	defer clear2()

	a := assert.New(t)
	config.loaded = false
	cfg := Instance()
	a.Equal(25, cfg.Rounds)
	a.Equal(int64(99), cfg.Seed)
	a.Equal("debug", cfg.Log.Level)
	a.Equal("json", cfg.Log.Format)

	// ensure that it's only loaded once
	_ = os.Setenv("BJ_SEED", "100")
	// ensure we aren't using a pointer
	cfg.Seed = -1
	cfg = Instance()
	a.Equal(int64(99), cfg.Seed)
}

func TestDefaults(t *testing.T) {
	clear := util.SetEnv("BJ_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, 10, cfg.Rounds)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, "", cfg.Log.Level)
}
