package usecases

import (
	"context"

	"github.com/orris-inc/estatehub/internal/application/notification/dto"
	"github.com/orris-inc/estatehub/internal/domain/notification"
	"github.com/orris-inc/estatehub/internal/shared/errors"
	"github.com/orris-inc/estatehub/internal/shared/logger"
	"github.com/orris-inc/estatehub/internal/shared/utils"
)

type ListNotificationsQuery struct {
	UserID     uint
	UnreadOnly bool
	Pagination utils.Pagination
}

type ListNotificationsUseCase struct {
	repo   notification.NotificationRepository
	logger logger.Interface
}

func NewListNotificationsUseCase(repo notification.NotificationRepository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{repo: repo, logger: logger}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, query ListNotificationsQuery) (*utils.ListResponse, error) {
	p := query.Pagination
	items, total, err := uc.repo.List(ctx, notification.ListFilter{
		UserID:     query.UserID,
		UnreadOnly: query.UnreadOnly,
		Limit:      p.PageSize,
		Offset:     p.Offset(),
	})
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "user_id", query.UserID, "error", err)
		return nil, errors.NewInternalError("failed to list notifications").Wrap(err)
	}

	return &utils.ListResponse{
		Items:      dto.ToNotificationResponses(items),
		Total:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: utils.TotalPages(total, p.PageSize),
	}, nil
}
