package logger

import (
	"log"
	"os"
	"strings"

	"go.uber.org/zap"
)

const debugEnv = "ENUMFIELDS_DEBUG"

var logger = zap.NewNop().Sugar()

func Init(debug bool) {
	if !debug {
		envDebug := os.Getenv(debugEnv)
		if len(envDebug) > 0 && !(strings.ToLower(envDebug) == "disable" || strings.ToLower(envDebug) == "false") {
			debug = true
		}
	}

	var config zap.Config
	if debug {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}
	l, err := config.Build()
	if err != nil {
		log.Fatal(err)
	}

	zap.ReplaceGlobals(l)
	logger = zap.S()
}

func Debugw(msg string, keysAndValues ...interface{}) {
	logger.Debugw(msg, keysAndValues...)
}

func Debugf(template string, args ...interface{}) {
	logger.Debugf(template, args...)
}
