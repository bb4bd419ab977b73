package usecase

import (
	"context"
	"smart_laundry/internal/domain/entities"
	"smart_laundry/internal/usecase/interfaces"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// IntegrationDefaults are used for settings that were never stored.
type IntegrationDefaults struct {
	Token   string
	Enabled bool
}

//go:generate mockgen -source=settings_usecase.go -destination=../adapter/http/handlers/mocks/settings_usecase_mock.go -package=mocks

// ISettingsUseCase manages the WhatsApp integration settings.
//
// The configuration is resolved from the settings table on every call and
// handed to the notification dispatcher explicitly; nothing is cached.
type ISettingsUseCase interface {
	GetIntegrationConfig(ctx context.Context) (entities.IntegrationConfig, error)
	UpdateIntegration(ctx context.Context, token *string, enabled *bool) (entities.IntegrationConfig, error)
}

type SettingsUseCase struct {
	repo     interfaces.ISettingsRepository
	defaults IntegrationDefaults
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ISettingsRepository, defaults IntegrationDefaults) *SettingsUseCase {
	return &SettingsUseCase{repo: repo, defaults: defaults}
}

// GetIntegrationConfig resolves the token and enabled flag. A stored token
// always wins over the environment default, even when it was cleared.
func (u *SettingsUseCase) GetIntegrationConfig(ctx context.Context) (entities.IntegrationConfig, error) {
	cfg := entities.IntegrationConfig{
		Token:   strings.TrimSpace(u.defaults.Token),
		Enabled: u.defaults.Enabled,
	}

	tok, found, err := u.repo.Get(ctx, entities.SettingKeyFonnteToken)
	if err != nil {
		return entities.IntegrationConfig{}, err
	}
	if found {
		cfg.Token = strings.TrimSpace(tok.Value)
	}

	flag, found, err := u.repo.Get(ctx, entities.SettingKeyWAEnabled)
	if err != nil {
		return entities.IntegrationConfig{}, err
	}
	if found {
		enabled, perr := strconv.ParseBool(strings.TrimSpace(flag.Value))
		if perr != nil {
			logrus.WithFields(logrus.Fields{
				"component": "settings.usecase",
				"value":     flag.Value,
			}).Warn("unparseable wa_enabled setting; using default")
		} else {
			cfg.Enabled = enabled
		}
	}

	return cfg, nil
}

// UpdateIntegration upserts whichever of token and enabled is non-nil.
func (u *SettingsUseCase) UpdateIntegration(ctx context.Context, token *string, enabled *bool) (entities.IntegrationConfig, error) {
	if token != nil {
		if err := u.repo.Put(ctx, entities.Setting{Key: entities.SettingKeyFonnteToken, Value: strings.TrimSpace(*token)}); err != nil {
			return entities.IntegrationConfig{}, err
		}
		logrus.WithField("component", "settings.usecase").Info("fonnte token updated")
	}
	if enabled != nil {
		if err := u.repo.Put(ctx, entities.Setting{Key: entities.SettingKeyWAEnabled, Value: strconv.FormatBool(*enabled)}); err != nil {
			return entities.IntegrationConfig{}, err
		}
		logrus.WithFields(logrus.Fields{
			"component": "settings.usecase",
			"enabled":   *enabled,
		}).Info("whatsapp integration toggled")
	}
	return u.GetIntegrationConfig(ctx)
}
