// Package persistence selects the storage adapters configured by storage.driver.
package persistence

import (
	"log/slog"

	"circlecheck/config"
	"circlecheck/internal/domain/constants"
	"circlecheck/internal/domain/repository"
	"circlecheck/internal/infra/persistence/memory"
	"circlecheck/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// RepositoryParams holds dependencies for the repositories, injected by Fx
type RepositoryParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
	Store  *memory.Store
}

// Repositories groups every adapter the geofence pipeline reads and writes
type Repositories struct {
	fx.Out

	Resolver   repository.SubscriptionResolver
	EntryState repository.EntryStateRepository
	Devices    repository.DeviceTokenRepository
}

// NewRepositories creates the adapters for the configured storage driver
func NewRepositories(params RepositoryParams) Repositories {
	if useMemory(params.Config) {
		params.Logger.Warn("Using in-memory storage, data is lost on restart")

		return Repositories{
			Resolver:   memory.NewSubscriptionResolver(params.Store),
			EntryState: memory.NewEntryStateRepository(params.Store),
			Devices:    memory.NewDeviceTokenRepository(params.Store),
		}
	}

	return Repositories{
		Resolver:   postgres.NewSubscriptionResolver(params.DB),
		EntryState: postgres.NewEntryStateRepository(params.DB),
		Devices:    postgres.NewDeviceTokenRepository(params.DB),
	}
}

func useMemory(cfg *config.Config) bool {
	return cfg != nil && cfg.Storage != nil && cfg.Storage.Driver == constants.StorageDriverMemory
}
