//go:build wireinject
// +build wireinject

package server

import (
	"github.com/google/wire"
	"github.com/ncobase/taskboard/internal/config"
	"github.com/ncobase/taskboard/internal/data"
	"github.com/ncobase/taskboard/internal/handler"
	"github.com/ncobase/taskboard/internal/logger"
	"github.com/ncobase/taskboard/internal/observes"
	"github.com/ncobase/taskboard/internal/service"
)

// InitializeApp wires up the entire application with all dependencies.
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	panic(wire.Build(
		// Config sections
		config.ProviderSet,

		// Logger provider
		logger.ProviderSet,

		// Error reporting
		observes.ProviderSet,

		// Data layer provider
		data.ProviderSet,

		// Service layer provider
		service.ProviderSet,

		// Handler layer provider
		handler.ProviderSet,

		// Application constructor
		NewApp,
	))
}
