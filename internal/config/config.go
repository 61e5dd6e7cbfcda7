package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds the service configuration, loaded from environment variables.
type Config struct {
	Port                     string
	RiskEngineURL            string
	RiskEngineMock           bool
	ChallengeDeadlineSeconds int
	WalletDeadlineSeconds    int
	WalletConfirmSeconds     int
}

func Load() *Config {
	return &Config{
		Port:                     getenvDefault("PORT", "8080"),
		RiskEngineURL:            getenvDefault("RISK_ENGINE_URL", "http://localhost:8000"),
		RiskEngineMock:           boolFromEnv("RISK_ENGINE_MOCK"),
		ChallengeDeadlineSeconds: intFromEnv("CHALLENGE_DEADLINE_SECONDS", 300),
		WalletDeadlineSeconds:    intFromEnv("WALLET_DEADLINE_SECONDS", 300),
		WalletConfirmSeconds:     intFromEnv("WALLET_CONFIRM_SECONDS", 5),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intFromEnv(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func boolFromEnv(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
