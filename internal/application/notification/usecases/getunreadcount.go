package usecases

import (
	"context"

	"github.com/orris-inc/estatehub/internal/application/notification/dto"
	"github.com/orris-inc/estatehub/internal/domain/notification"
	"github.com/orris-inc/estatehub/internal/shared/errors"
	"github.com/orris-inc/estatehub/internal/shared/logger"
)

type GetUnreadCountUseCase struct {
	repo   notification.NotificationRepository
	logger logger.Interface
}

func NewGetUnreadCountUseCase(repo notification.NotificationRepository, logger logger.Interface) *GetUnreadCountUseCase {
	return &GetUnreadCountUseCase{repo: repo, logger: logger}
}

func (uc *GetUnreadCountUseCase) Execute(ctx context.Context, userID uint) (*dto.UnreadCountResponse, error) {
	count, err := uc.repo.CountUnread(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get unread count", "user_id", userID, "error", err)
		return nil, errors.NewInternalError("failed to get unread count").Wrap(err)
	}
	return &dto.UnreadCountResponse{Count: count}, nil
}
