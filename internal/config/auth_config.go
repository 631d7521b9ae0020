package config

import "time"

const (
	// Login throttling
	LoginMaxAttempts    = 5
	LoginThrottleWindow = 15 * time.Minute

	// Session tokens
	TokenValidity = 72 * time.Hour
	TokenIssuer   = "wheely-backend"
)
