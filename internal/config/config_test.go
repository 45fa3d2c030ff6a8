package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"splitpoker-server/internal/util"
)

func TestLoad_Defaults(t *testing.T) {
	unset := util.SetEnv("SPS_CONFIG_FILE", "does-not-exist.yaml")
	defer unset()

	require.NoError(t, Load())

	c := Instance()
	assert.Equal(t, 25, c.Game.MinBet)
	assert.Equal(t, 1000, c.Game.StartingBankroll)
	assert.Equal(t, "perConfirm", c.Game.TurnPolicy)
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	contents := `
signingKey: file-key
log:
  level: debug
game:
  minBet: 50
  startingBankroll: 2000
`
	require.NoError(t, os.WriteFile(configFile, []byte(contents), 0600))

	unsetFile := util.SetEnv("SPS_CONFIG_FILE", configFile)
	defer unsetFile()

	unsetKey := util.SetEnv("SPS_SIGNING_KEY", "env-key")
	defer unsetKey()

	require.NoError(t, Load())

	c := Instance()
	assert.Equal(t, "env-key", c.SigningKey)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, 50, c.Game.MinBet)
	assert.Equal(t, 2000, c.Game.StartingBankroll)
	assert.Equal(t, "perConfirm", c.Game.TurnPolicy)
}
