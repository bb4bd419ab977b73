package repository

import (
	"context"

	"smart_laundry/internal/domain/entities"
	"smart_laundry/internal/usecase/interfaces"
)

const settingsHashKey = "key"

type settingItem struct {
	Key   string `dynamodbav:"key"`
	Value string `dynamodbav:"value"`
}

// SettingsDynamoRepository stores flat key/value settings (PK: key).
type SettingsDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb DynamoDBAPI, tableName string) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SettingsDynamoRepository) Get(ctx context.Context, key string) (entities.Setting, bool, error) {
	var it settingItem
	found, err := getItem(ctx, r.ddb, r.tableName, settingsHashKey, key, &it)
	if err != nil || !found {
		return entities.Setting{}, false, err
	}
	return entities.Setting{Key: it.Key, Value: it.Value}, true, nil
}

func (r *SettingsDynamoRepository) Put(ctx context.Context, s entities.Setting) error {
	return putItem(ctx, r.ddb, r.tableName, settingsHashKey, settingItem{Key: s.Key, Value: s.Value}, false)
}
