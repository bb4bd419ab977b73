package usecase

import (
	"context"
	"errors"
	"testing"

	"smart_laundry/internal/domain/entities"
	mock_interfaces "smart_laundry/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSettingsUseCase_GetIntegrationConfig(t *testing.T) {
	t.Run("defaults when nothing stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		repo.EXPECT().Get(gomock.Any(), entities.SettingKeyFonnteToken).Return(entities.Setting{}, false, nil)
		repo.EXPECT().Get(gomock.Any(), entities.SettingKeyWAEnabled).Return(entities.Setting{}, false, nil)

		uc := NewSettingsUseCase(repo, IntegrationDefaults{Token: " env-token ", Enabled: true})
		cfg, err := uc.GetIntegrationConfig(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Token != "env-token" || !cfg.Enabled || !cfg.Ready() {
			t.Fatalf("unexpected config: %+v", cfg)
		}
	})

	t.Run("stored values win", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		expectIntegration(repo, "", false)

		uc := NewSettingsUseCase(repo, IntegrationDefaults{Token: "env-token", Enabled: true})
		cfg, err := uc.GetIntegrationConfig(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Token != "" || cfg.Enabled || cfg.Ready() {
			t.Fatalf("unexpected config: %+v", cfg)
		}
	})

	t.Run("unparseable flag keeps default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		repo.EXPECT().Get(gomock.Any(), entities.SettingKeyFonnteToken).Return(entities.Setting{Value: "tok"}, true, nil)
		repo.EXPECT().Get(gomock.Any(), entities.SettingKeyWAEnabled).Return(entities.Setting{Value: "maybe"}, true, nil)

		uc := NewSettingsUseCase(repo, IntegrationDefaults{Enabled: true})
		cfg, err := uc.GetIntegrationConfig(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Token != "tok" || !cfg.Enabled {
			t.Fatalf("unexpected config: %+v", cfg)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		repo.EXPECT().Get(gomock.Any(), entities.SettingKeyFonnteToken).Return(entities.Setting{}, true, nil)
		repo.EXPECT().Get(gomock.Any(), entities.SettingKeyWAEnabled).Return(entities.Setting{}, false, errors.New("db"))

		_, err := NewSettingsUseCase(repo, IntegrationDefaults{}).GetIntegrationConfig(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestSettingsUseCase_UpdateIntegration(t *testing.T) {
	t.Run("token and flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		token := "  new-token "
		enabled := false

		gomock.InOrder(
			repo.EXPECT().Put(gomock.Any(), entities.Setting{Key: entities.SettingKeyFonnteToken, Value: "new-token"}).Return(nil),
			repo.EXPECT().Put(gomock.Any(), entities.Setting{Key: entities.SettingKeyWAEnabled, Value: "false"}).Return(nil),
		)
		expectIntegration(repo, "new-token", false)

		cfg, err := NewSettingsUseCase(repo, IntegrationDefaults{Enabled: true}).UpdateIntegration(context.Background(), &token, &enabled)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Token != "new-token" || cfg.Enabled {
			t.Fatalf("unexpected config: %+v", cfg)
		}
	})

	t.Run("flag only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		enabled := true

		repo.EXPECT().Put(gomock.Any(), entities.Setting{Key: entities.SettingKeyWAEnabled, Value: "true"}).Return(nil)
		expectIntegration(repo, "tok", true)

		cfg, err := NewSettingsUseCase(repo, IntegrationDefaults{}).UpdateIntegration(context.Background(), nil, &enabled)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cfg.Ready() {
			t.Fatalf("expected ready config: %+v", cfg)
		}
	})

	t.Run("put error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		token := "tok"
		repo.EXPECT().Put(gomock.Any(), gomock.Any()).Return(errors.New("db"))

		_, err := NewSettingsUseCase(repo, IntegrationDefaults{}).UpdateIntegration(context.Background(), &token, nil)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
