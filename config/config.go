package config

import (
	"os"
	"strconv"
)

// Configuration variables. These aren't part of the game rules but are
// useful for running the game on unusual terminals or while debugging.
var (
	Backend  = getEnvString("SNAKE_BACKEND", "ansi")
	LogFile  = getEnvString("SNAKE_LOG_FILE", "")
	LogLevel = getEnvString("SNAKE_LOG_LEVEL", "info")

	// Seed fixes food placement for reproducing a round; 0 seeds from the clock.
	Seed = getEnvInt("SNAKE_SEED", 0)
)

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

func getEnvString(varName string, defaults string) string {
	if val, ok := os.LookupEnv(varName); ok && val != "" {
		return val
	}
	return defaults
}
