package tui

import "os"

// GetLogFilePath returns the log file named by GIT_TRUNK_LOG_FILE, or "" when
// file logging is off.
func GetLogFilePath() string {
	return os.Getenv("GIT_TRUNK_LOG_FILE")
}
