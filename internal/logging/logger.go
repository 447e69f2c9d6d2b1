package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"wortkiste/internal/config"
)

// New builds a logrus logger from the log config. Output goes to stderr so
// stdout stays free for command output and the MCP stdio channel.
func New(cfg config.LogConfig) (*logrus.Logger, error) {
	return NewWithOutput(cfg, os.Stderr)
}

func NewWithOutput(cfg config.LogConfig, out io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(out)

	level := cfg.Level
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	logger.SetLevel(lvl)

	switch cfg.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger, nil
}
