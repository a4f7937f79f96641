package config

import (
	"os"

	"notepad/internal/logger"
)

const (
	AppName    = "Notepad"
	AppID      = "com.mycompany.mynotepad"
	AppVersion = "1.0.0"

	LauncherWidth  = 500
	LauncherHeight = 500
	EditorWidth    = 800
	EditorHeight   = 600

	RecentFilesKey = "recent_files"
	MaxRecentFiles = 5
)

// Config carries the application identity, window geometry and logging setup
type Config struct {
	AppName    string
	AppID      string
	AppVersion string

	LauncherWidth  float32
	LauncherHeight float32
	EditorWidth    float32
	EditorHeight   float32

	MaxRecentFiles int

	LogLevel    logger.LogLevel
	JSONLogging bool
}

func Default() Config {
	return Config{
		AppName:        AppName,
		AppID:          AppID,
		AppVersion:     AppVersion,
		LauncherWidth:  LauncherWidth,
		LauncherHeight: LauncherHeight,
		EditorWidth:    EditorWidth,
		EditorHeight:   EditorHeight,
		MaxRecentFiles: MaxRecentFiles,
		LogLevel:       logger.InfoLevel,
	}
}

// FromEnv overlays LOG_LEVEL, DEBUG and NOTEPAD_JSON_LOGS on the defaults
func FromEnv() Config {
	cfg := Default()

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = logger.ParseLevel(level)
	} else if os.Getenv("DEBUG") == "1" {
		cfg.LogLevel = logger.DebugLevel
	}

	if os.Getenv("NOTEPAD_JSON_LOGS") == "true" {
		cfg.JSONLogging = true
	}

	return cfg
}

// NewLogger builds the logger described by the config
func (c Config) NewLogger() logger.Logger {
	if c.JSONLogging {
		return logger.NewZerolog(os.Stderr, c.LogLevel)
	}
	return logger.NewConsoleLogger(c.LogLevel)
}
