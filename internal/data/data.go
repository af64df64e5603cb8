// Package data owns the process-wide task store.
package data

import (
	"context"

	"github.com/google/wire"
	"github.com/ncobase/taskboard/internal/data/repository"
	"github.com/ncobase/taskboard/internal/logger"
)

// ProviderSet is the wire provider set for the data layer.
var ProviderSet = wire.NewSet(NewData)

// Data encapsulates all data layer dependencies.
type Data struct {
	TaskRepo repository.TaskRepository
}

// NewData creates a new Data instance with initialized repositories.
// State lives only for the life of the process.
func NewData(logger *logger.Logger) (*Data, func(), error) {
	d := &Data{
		TaskRepo: repository.NewTaskRepository(logger),
	}

	cleanup := func() {
		n, _ := d.TaskRepo.Count(context.Background())
		logger.Info(context.Background(), "discarding in-memory tasks", "count", n)
	}
	return d, cleanup, nil
}
