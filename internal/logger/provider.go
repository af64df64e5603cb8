package logger

import (
	"github.com/google/wire"
	"github.com/ncobase/taskboard/internal/config"
	"github.com/ncobase/taskboard/internal/version"
)

// ProviderSet is the wire provider set for the logger package
var ProviderSet = wire.NewSet(ProvideLogger)

// ProvideLogger initializes and returns the standard logger
func ProvideLogger(cfg *config.Logger) (*Logger, func(), error) {
	l := StdLogger()
	cleanup, err := l.Init(cfg)
	if err != nil {
		return nil, nil, err
	}
	l.SetVersion(version.GetVersionInfo().Version)
	return l, cleanup, nil
}
