package interfaces

import (
	"context"
	"smart_laundry/internal/domain/entities"
)

//go:generate mockgen -source=user_repository_interface.go -destination=mocks/user_repository_mock.go -package=mock_interfaces

type IUserRepository interface {
	GetByUsername(ctx context.Context, username string) (entities.User, error)
	Put(ctx context.Context, u entities.User) error
	// Empty reports whether no account is stored at all.
	Empty(ctx context.Context) (bool, error)
}
