// Package service contains the task business logic: validation, deadline
// parsing and the derived active/completed views.
package service

import (
	"time"

	"github.com/google/wire"
	"github.com/ncobase/taskboard/internal/data"
	"github.com/ncobase/taskboard/internal/logger"
)

// ProviderSet is the wire provider set for the service layer.
var ProviderSet = wire.NewSet(NewService, ProvideClock)

// Service aggregates all business logic services.
type Service struct {
	Task *TaskService
}

// NewService creates a new service instance with all sub-services initialized.
func NewService(d *data.Data, logger *logger.Logger, loc *time.Location, now Clock) *Service {
	return &Service{
		Task: NewTaskService(d, logger, loc, now),
	}
}

// ProvideClock provides the wall clock.
func ProvideClock() Clock {
	return time.Now
}
