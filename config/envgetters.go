package config

func GetPort() int {
	return StorefrontConfig.GetInt("port")
}

// GetTokenExpiryMinutes is the lifetime of issued login JWTs.
func GetTokenExpiryMinutes() int {
	return StorefrontConfig.GetInt("token_expiry_minutes")
}
