package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestSetDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()

	assert.Equal(t, "8080", GetString("server.port"))
	assert.Equal(t, int64(32<<20), GetInt64("server.maxUploadSize"))
	assert.Equal(t, 500, GetInt("audit.maxLimit"))
	assert.Equal(t, time.Minute, GetDuration("ratelimit.window"))
	assert.Equal(t, "primary", GetString("vault.activeKeyID"))
}

func TestGetStringMapString_VaultKeys(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("vault.keys", map[string]interface{}{"Primary": "a2V5"})

	// viper folds map keys to lower case.
	assert.Equal(t, map[string]string{"primary": "a2V5"}, GetStringMapString("vault.keys"))
}

func TestLocation(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("policy.timezone", "Local")
	assert.Equal(t, time.Local, Location())

	viper.Set("policy.timezone", "UTC")
	assert.Equal(t, "UTC", Location().String())

	viper.Set("policy.timezone", "Nowhere/Invalid")
	assert.Equal(t, time.Local, Location())
}
