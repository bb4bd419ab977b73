package interfaces

import (
	"context"
	"smart_laundry/internal/domain/entities"
)

// ISettingsRepository stores flat key/value settings, upserted in place.
// Get returns found=false when the key has never been written.

//go:generate mockgen -source=settings_repository_interface.go -destination=mocks/settings_repository_mock.go -package=mock_interfaces

type ISettingsRepository interface {
	Get(ctx context.Context, key string) (setting entities.Setting, found bool, err error)
	Put(ctx context.Context, s entities.Setting) error
}
