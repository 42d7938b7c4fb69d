package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	IncentivePoints  int
	AnalysisModel    string
	AnalysisTimeout  time.Duration
	RateLimitRPS     int
	SimulatedLatency time.Duration
}

func NewConfig() *Config {
	incentivePoints := getEnvInt("INCENTIVE_POINTS", 10)
	rateLimitRPS := getEnvInt("RATE_LIMIT_RPS", 50)
	latencyMs := getEnvInt("SIMULATED_LATENCY_MS", 0)

	return &Config{
		IncentivePoints:  incentivePoints,
		AnalysisModel:    getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		AnalysisTimeout:  10 * time.Second,
		RateLimitRPS:     rateLimitRPS,
		SimulatedLatency: time.Duration(latencyMs) * time.Millisecond,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
