package usecases

import (
	"context"
	stderrors "errors"

	"github.com/orris-inc/estatehub/internal/application/notification/dto"
	"github.com/orris-inc/estatehub/internal/domain/notification"
	"github.com/orris-inc/estatehub/internal/shared/errors"
	"github.com/orris-inc/estatehub/internal/shared/logger"
)

type MarkNotificationAsReadUseCase struct {
	repo   notification.NotificationRepository
	logger logger.Interface
}

func NewMarkNotificationAsReadUseCase(repo notification.NotificationRepository, logger logger.Interface) *MarkNotificationAsReadUseCase {
	return &MarkNotificationAsReadUseCase{repo: repo, logger: logger}
}

// Execute marks id as read for userID. A notification owned by someone else is
// reported as not found.
func (uc *MarkNotificationAsReadUseCase) Execute(ctx context.Context, id, userID uint) error {
	if err := uc.repo.MarkAsRead(ctx, id, userID); err != nil {
		if stderrors.Is(err, notification.ErrNotificationNotFound) {
			return errors.NewNotFoundError("notification not found")
		}
		uc.logger.Errorw("failed to mark notification as read", "id", id, "user_id", userID, "error", err)
		return errors.NewInternalError("failed to mark notification as read").Wrap(err)
	}
	return nil
}

type MarkAllAsReadUseCase struct {
	repo   notification.NotificationRepository
	logger logger.Interface
}

func NewMarkAllAsReadUseCase(repo notification.NotificationRepository, logger logger.Interface) *MarkAllAsReadUseCase {
	return &MarkAllAsReadUseCase{repo: repo, logger: logger}
}

func (uc *MarkAllAsReadUseCase) Execute(ctx context.Context, userID uint) (*dto.MarkAllAsReadResponse, error) {
	updated, err := uc.repo.MarkAllAsRead(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to mark all notifications as read", "user_id", userID, "error", err)
		return nil, errors.NewInternalError("failed to mark notifications as read").Wrap(err)
	}
	uc.logger.Infow("notifications marked as read", "user_id", userID, "count", updated)
	return &dto.MarkAllAsReadResponse{Updated: updated}, nil
}
