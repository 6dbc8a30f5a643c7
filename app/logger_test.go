package app

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger(t *testing.T) {
	defer func() {
		Config.Logger.Level = ""
		log.SetLevel(log.InfoLevel)
	}()

	cases := map[string]log.Level{
		"debug":   log.DebugLevel,
		" WARN ":  log.WarnLevel,
		"error":   log.ErrorLevel,
		"trace":   log.TraceLevel,
		"":        log.InfoLevel,
		"verbose": log.InfoLevel,
	}

	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			Config.Logger.Level = name
			InitLogger()
			assert.Equal(t, want, log.GetLevel())
		})
	}
}
