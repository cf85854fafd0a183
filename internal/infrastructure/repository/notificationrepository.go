package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/orris-inc/estatehub/internal/domain/notification"
	"github.com/orris-inc/estatehub/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/estatehub/internal/infrastructure/persistence/models"
	"github.com/orris-inc/estatehub/internal/shared/db"
)

type NotificationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewNotificationRepository(db *gorm.DB) notification.NotificationRepository {
	return &NotificationRepositoryImpl{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *NotificationRepositoryImpl) Create(ctx context.Context, notif *notification.Notification) error {
	model, err := r.mapper.ToModel(notif)
	if err != nil {
		return fmt.Errorf("failed to map notification entity to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(model)
	if result.Error != nil {
		return fmt.Errorf("failed to create notification: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		// already delivered for this event; adopt the stored row id
		var existing models.NotificationModel
		if err := tx.Select("id").
			Where("event_id = ? AND user_id = ?", model.EventID, model.UserID).
			First(&existing).Error; err != nil {
			return fmt.Errorf("failed to load existing notification: %w", err)
		}
		model.ID = existing.ID
	}

	if err := notif.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set notification ID: %w", err)
	}

	return nil
}

func (r *NotificationRepositoryImpl) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	var model models.NotificationModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notification.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to get notification by ID: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map notification model to entity: %w", err)
	}

	return entity, nil
}

func (r *NotificationRepositoryImpl) List(ctx context.Context, filter notification.ListFilter) ([]*notification.Notification, int64, error) {
	var total int64
	query := db.GetTxFromContext(ctx, r.db).Model(&models.NotificationModel{}).Where("user_id = ?", filter.UserID)
	if filter.UnreadOnly {
		query = query.Where("is_read = ?", false)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	var modelList []*models.NotificationModel
	query = query.Order("created_at DESC, id DESC")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications by user ID: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map notification models to entities: %w", err)
	}

	return entities, total, nil
}

func (r *NotificationRepositoryImpl) CountUnread(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

func (r *NotificationRepositoryImpl) MarkAsRead(ctx context.Context, id, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.NotificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to look up notification: %w", err)
	}
	if count == 0 {
		return notification.ErrNotificationNotFound
	}

	now := time.Now().UTC()
	err := tx.Model(&models.NotificationModel{}).
		Where("id = ? AND user_id = ? AND is_read = ?", id, userID, false).
		Updates(map[string]interface{}{
			"is_read":    true,
			"read_at":    now,
			"updated_at": now,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}

	return nil
}

func (r *NotificationRepositoryImpl) MarkAllAsRead(ctx context.Context, userID uint) (int64, error) {
	now := time.Now().UTC()
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{
			"is_read":    true,
			"read_at":    now,
			"updated_at": now,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark all notifications as read: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *NotificationRepositoryImpl) CountByRelated(ctx context.Context, notificationType string, relatedType string, relatedID uint) (int64, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.NotificationModel{}).
		Where("type = ? AND related_type = ? AND related_id = ?", notificationType, relatedType, relatedID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count notifications: %w", err)
	}
	return count, nil
}
