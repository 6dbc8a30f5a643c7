package app

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

const defaultLogLevel = log.InfoLevel

// InitLogger applies the configured level. Unknown levels fall back to info.
func InitLogger() {
	name := strings.ToLower(strings.TrimSpace(Config.Logger.Level))

	level, err := log.ParseLevel(name)
	if err != nil {
		if name != "" {
			log.Warn("[LOGGER] Unknown log level ", name, ", using ", defaultLogLevel)
		}
		level = defaultLogLevel
	}

	log.SetLevel(level)
	log.Info("[LOGGER] Logger initialized with level: ", level)
}
