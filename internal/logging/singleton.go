package logging

import "sync"

var (
	instance *Logger
	once     sync.Once
	initErr  error
)

// InitLogger initializes the global logger with the given configuration.
// Subsequent calls are no-ops; the first configuration wins.
func InitLogger(config *LogConfig) error {
	once.Do(func() {
		instance, initErr = NewLogger(config)
	})
	return initErr
}

// GetGlobalLogger returns the singleton logger instance.
// InitLogger must have been called first.
func GetGlobalLogger() *Logger {
	if instance == nil {
		panic("logger not initialized - call logging.InitLogger() first")
	}
	return instance
}
