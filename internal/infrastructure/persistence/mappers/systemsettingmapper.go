package mappers

import (
	"github.com/orris-inc/estatehub/internal/domain/setting"
	"github.com/orris-inc/estatehub/internal/infrastructure/persistence/models"
)

type SystemSettingMapper interface {
	ToEntity(model *models.SystemSettingModel) *setting.SystemSetting
	ToModel(entity *setting.SystemSetting) *models.SystemSettingModel
	ToEntities(modelList []*models.SystemSettingModel) []*setting.SystemSetting
}

type SystemSettingMapperImpl struct{}

func NewSystemSettingMapper() SystemSettingMapper {
	return &SystemSettingMapperImpl{}
}

func (m *SystemSettingMapperImpl) ToEntity(model *models.SystemSettingModel) *setting.SystemSetting {
	if model == nil {
		return nil
	}

	return setting.ReconstructSystemSetting(
		model.ID,
		model.Key,
		model.RawValue,
		setting.ValueType(model.ValueType),
		model.Description,
		model.UpdatedBy,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *SystemSettingMapperImpl) ToModel(entity *setting.SystemSetting) *models.SystemSettingModel {
	if entity == nil {
		return nil
	}

	return &models.SystemSettingModel{
		ID:          entity.ID(),
		Key:         entity.Key(),
		RawValue:    entity.RawValue(),
		ValueType:   string(entity.ValueType()),
		Description: entity.Description(),
		UpdatedBy:   entity.UpdatedBy(),
		Version:     entity.Version(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

// ToEntities drops rows for keys that are no longer part of the schema.
func (m *SystemSettingMapperImpl) ToEntities(modelList []*models.SystemSettingModel) []*setting.SystemSetting {
	entities := make([]*setting.SystemSetting, 0, len(modelList))
	for _, model := range modelList {
		if model == nil {
			continue
		}
		if _, known := setting.Lookup(model.Key); !known {
			continue
		}
		entities = append(entities, m.ToEntity(model))
	}
	return entities
}
