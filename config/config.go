// config/config.go
package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

func InitConfig() error {
	viper.AddConfigPath("config")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// LOCKEY_VAULT_ACTIVEKEYID overrides vault.activeKeyID, etc.
	viper.SetEnvPrefix("lockey")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	return nil
}

// SetDefaults registers the default value of every known key. Tests call it
// directly instead of InitConfig to avoid touching the filesystem.
func SetDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.maxUploadSize", 32<<20)
	viper.SetDefault("neo4j.uri", "bolt://localhost:7687")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.defaultCacheTTL", "10m")
	viper.SetDefault("elasticsearch.url", "http://localhost:9200")
	viper.SetDefault("elasticsearch.index", "lockey-audit")
	viper.SetDefault("vault.activeKeyID", "primary")
	viper.SetDefault("policy.timezone", "Local")
	viper.SetDefault("audit.maxLimit", 500)
	viper.SetDefault("ratelimit.requests", 100)
	viper.SetDefault("ratelimit.window", time.Minute)
	viper.SetDefault("log.dir", "logging")
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

func GetInt64(key string) int64 {
	return viper.GetInt64(key)
}

func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// GetStringMapString retrieves a nested map, e.g. vault.keys
func GetStringMapString(key string) map[string]string {
	return viper.GetStringMapString(key)
}

// Location resolves policy.timezone, falling back to the process local zone
// when the name is unknown.
func Location() *time.Location {
	name := viper.GetString("policy.timezone")
	if name == "" || name == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("Unknown policy.timezone %q, using local time: %v", name, err)
		return time.Local
	}
	return loc
}
