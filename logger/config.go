package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogFormat int

const (
	ColorizedOutput LogFormat = iota
	PlaintextOutput
	JSONOutput
)

type NamedLevel struct {
	Name  string
	Level string
}

type Config struct {
	Production   bool
	DefaultLevel string
	Levels       []NamedLevel // first match wins
	Format       LogFormat
}

// ApplyGlobal builds the default logger from the config and installs
// the named levels. In production mode debug and verbose output is
// suppressed unless a named level re-enables it.
func (c Config) ApplyGlobal() {
	var conf zap.Config
	if c.Production {
		conf = zap.NewProductionConfig()
	} else {
		conf = zap.NewDevelopmentConfig()
	}

	encConfig := conf.EncoderConfig
	switch c.Format {
	case PlaintextOutput:
		encConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		conf.Encoding = "console"
	case JSONOutput:
		encConfig.MessageKey = "msg"
		encConfig.TimeKey = "ts"
		encConfig.LevelKey = "level"
		encConfig.NameKey = "logger"
		encConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		conf.Encoding = "json"
	default:
		conf.Encoding = "console"
		encConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	conf.EncoderConfig = encConfig

	if defaultLevel, err := zap.ParseAtomicLevel(c.DefaultLevel); err == nil {
		conf.Level = defaultLevel
	}

	l, err := conf.Build()
	if err != nil {
		return
	}

	mu.Lock()
	loggerConfig = conf
	mu.Unlock()

	SetDefault(l)
	SetNamedLevels(c.Levels)
}
