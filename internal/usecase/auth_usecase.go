package usecase

import (
	"context"
	"errors"
	"smart_laundry/internal/domain/entities"
	"smart_laundry/internal/usecase/interfaces"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "password123"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

//go:generate mockgen -source=auth_usecase.go -destination=../adapter/http/handlers/mocks/auth_usecase_mock.go -package=mocks

type IAuthUseCase interface {
	Login(ctx context.Context, username, password string) (entities.User, error)
	SeedAdmin(ctx context.Context) error
}

type AuthUseCase struct {
	repo interfaces.IUserRepository
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(repo interfaces.IUserRepository) *AuthUseCase {
	return &AuthUseCase{repo: repo}
}

func (u *AuthUseCase) Login(ctx context.Context, username, password string) (entities.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return entities.User{}, ErrInvalidCredentials
	}

	user, err := u.repo.GetByUsername(ctx, username)
	if err != nil {
		return entities.User{}, err
	}
	if user.Username == "" || !CheckPassword(user.PasswordHash, password) {
		logrus.WithFields(logrus.Fields{"component": "auth.usecase", "username": username}).Warn("login rejected")
		return entities.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// SeedAdmin creates the default administrator on a store without accounts.
// Once any account exists nothing is seeded, even if admin was removed.
func (u *AuthUseCase) SeedAdmin(ctx context.Context) error {
	empty, err := u.repo.Empty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	hash, err := HashPassword(DefaultAdminPassword)
	if err != nil {
		return err
	}
	if err := u.repo.Put(ctx, entities.User{Username: DefaultAdminUsername, PasswordHash: hash, Role: entities.UserRoleAdmin}); err != nil {
		return err
	}
	logrus.WithField("component", "auth.usecase").Info("default admin seeded")
	return nil
}

func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b), err
}

func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}
