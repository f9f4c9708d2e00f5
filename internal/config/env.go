package config

import "os"

const defaultLogFile = "minesweeper.log"

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// LogFile is where the interactive game writes its log.
func LogFile() string {
	path, ok := os.LookupEnv("MINES_LOG_FILE")
	if !ok || path == "" {
		return defaultLogFile
	}
	return path
}

// PresetsFile is an optional YAML file replacing the built-in difficulty
// table. Empty means the built-in table.
func PresetsFile() string {
	return os.Getenv("MINES_PRESETS_FILE")
}
