package main

import (
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"imgpick/internal/config"
)

type commandContext struct {
	configFlag  *string
	verboseFlag *bool

	logger zerolog.Logger

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error
}

func newCommandContext(configFlag *string, verboseFlag *bool) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		verboseFlag: verboseFlag,
		logger:      zerolog.Nop(),
	}
}

func (c *commandContext) setupLogger() {
	level := zerolog.InfoLevel
	if c.verboseFlag != nil && *c.verboseFlag {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	c.logger = zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configSeen = exists
		c.logger.Debug().
			Str("path", resolved).
			Bool("exists", exists).
			Msg("configuration loaded")
	})
	return c.config, c.configErr
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
