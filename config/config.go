package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config represents an alias to viper config
type Config = viper.Viper

// StorefrontConfig is the process-wide configuration, populated in New.
var StorefrontConfig = New()

// New returns a new pointer to the config
func New() *Config {
	v := viper.New()
	v.SetEnvPrefix("STOREFRONT")
	v.AutomaticEnv()
	v.SetDefault("port", 3000)
	v.SetDefault("token_expiry_minutes", 60)
	v.SetDefault("build_date", "null")
	v.SetDefault("deployed_at", time.Now().UTC().Format(time.RFC3339))
	return v
}
