package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

const defaultPort = 3000

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("PORTAL_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("PORTAL_DEBUG") == "true"
}

// GetPort reads the single port-selection variable. Anything unparsable
// falls back to the default.
func GetPort() int {
	port := os.Getenv("PORT")
	if port == "" {
		return defaultPort
	}
	p, err := strconv.Atoi(port)
	if err != nil || p <= 0 || p > 65535 {
		return defaultPort
	}
	return p
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("PORTAL_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "."
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/accounts.db", GetDBFolderPath())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("PORTAL_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "log"
	}
	return logFolderPath
}
