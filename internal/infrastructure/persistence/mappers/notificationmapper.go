package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/orris-inc/estatehub/internal/domain/notification"
	vo "github.com/orris-inc/estatehub/internal/domain/notification/valueobjects"
	"github.com/orris-inc/estatehub/internal/infrastructure/persistence/models"
)

type NotificationMapper interface {
	ToEntity(model *models.NotificationModel) (*notification.Notification, error)
	ToModel(entity *notification.Notification) (*models.NotificationModel, error)
	ToEntities(models []*models.NotificationModel) ([]*notification.Notification, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToEntity(model *models.NotificationModel) (*notification.Notification, error) {
	if model == nil {
		return nil, nil
	}

	notificationType, err := vo.NewNotificationType(model.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification type: %w", err)
	}

	var payload map[string]any
	if len(model.Payload) > 0 {
		if err := json.Unmarshal(model.Payload, &payload); err != nil {
			return nil, fmt.Errorf("failed to decode notification payload: %w", err)
		}
	}

	entity, err := notification.ReconstructNotification(
		model.ID,
		model.SID,
		model.UserID,
		notificationType,
		model.EventID,
		notification.Content{
			Title:       model.Title,
			Message:     model.Message,
			Link:        model.Link,
			RelatedType: model.RelatedType,
			RelatedID:   model.RelatedID,
			Payload:     payload,
		},
		model.IsRead,
		model.ReadAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct notification entity: %w", err)
	}

	return entity, nil
}

func (m *NotificationMapperImpl) ToModel(entity *notification.Notification) (*models.NotificationModel, error) {
	if entity == nil {
		return nil, nil
	}

	var payload datatypes.JSON
	if entity.Payload() != nil {
		raw, err := json.Marshal(entity.Payload())
		if err != nil {
			return nil, fmt.Errorf("failed to encode notification payload: %w", err)
		}
		payload = datatypes.JSON(raw)
	}

	return &models.NotificationModel{
		ID:          entity.ID(),
		SID:         entity.SID(),
		UserID:      entity.UserID(),
		EventID:     entity.EventID(),
		Type:        entity.Type().String(),
		Title:       entity.Title(),
		Message:     entity.Message(),
		Link:        entity.Link(),
		RelatedType: entity.RelatedType(),
		RelatedID:   entity.RelatedID(),
		Payload:     payload,
		IsRead:      entity.IsRead(),
		ReadAt:      entity.ReadAt(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *NotificationMapperImpl) ToEntities(modelList []*models.NotificationModel) ([]*notification.Notification, error) {
	entities := make([]*notification.Notification, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map notification %d: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
