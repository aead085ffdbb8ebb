package logging

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// LogLevel represents the logging level
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	QUIET
)

var (
	currentLogLevel = INFO
	out             = log.New(os.Stderr, "", log.LstdFlags)
)

// SetLogLevel sets the current logging level
func SetLogLevel(level LogLevel) {
	currentLogLevel = level
}

// SetLogLevelFromString sets the log level from a string
func SetLogLevelFromString(level string) {
	switch strings.ToLower(level) {
	case "debug":
		SetLogLevel(DEBUG)
	case "info":
		SetLogLevel(INFO)
	case "warn", "warning":
		SetLogLevel(WARN)
	case "error":
		SetLogLevel(ERROR)
	case "quiet":
		SetLogLevel(QUIET)
	default:
		SetLogLevel(INFO)
	}
}

// InitLogger initializes the logger from the LOG_LEVEL environment variable
func InitLogger() {
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		SetLogLevelFromString(logLevel)
	}
}

func shouldLog(level LogLevel) bool {
	return level >= currentLogLevel
}

// LogDebug logs a debug message
func LogDebug(component, message string, args ...interface{}) {
	if shouldLog(DEBUG) {
		out.Printf("[DEBUG] %s: %s", component, fmt.Sprintf(message, args...))
	}
}

// LogInfo logs an info message
func LogInfo(component, message string, args ...interface{}) {
	if shouldLog(INFO) {
		out.Printf("[INFO] %s: %s", component, fmt.Sprintf(message, args...))
	}
}

// LogWarn logs a warning message
func LogWarn(component, message string, args ...interface{}) {
	if shouldLog(WARN) {
		out.Printf("[WARN] %s: %s", component, fmt.Sprintf(message, args...))
	}
}

// LogError logs an error message
func LogError(component, message string, args ...interface{}) {
	if shouldLog(ERROR) {
		out.Printf("[ERROR] %s: %s", component, fmt.Sprintf(message, args...))
	}
}
