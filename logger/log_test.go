package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func debugEnabled() bool {
	return logger.Desugar().Core().Enabled(zap.DebugLevel)
}

func Test_Init(t *testing.T) {
	for _, c := range []struct {
		name  string
		debug bool
		env   string
		want  bool
	}{
		{name: "default", want: false},
		{name: "flag", debug: true, want: true},
		{name: "env", env: "1", want: true},
		{name: "env disable", env: "disable", want: false},
		{name: "env false", env: "FALSE", want: false},
		{name: "flag overrides env", debug: true, env: "false", want: true},
	} {
		t.Run(c.name, func(t *testing.T) {
			t.Setenv(debugEnv, c.env)
			Init(c.debug)
			assert.Equal(t, c.want, debugEnabled())
		})
	}
	Init(false)
}
