package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/estatehub/internal/application/notification/usecases"
	"github.com/orris-inc/estatehub/internal/shared/errors"
	"github.com/orris-inc/estatehub/internal/shared/logger"
	"github.com/orris-inc/estatehub/internal/shared/utils"
)

type NotificationHandler struct {
	listUC    notificationLister
	unreadUC  unreadCounter
	markUC    notificationReader
	markAllUC allNotificationsReader
	logger    logger.Interface
}

func NewNotificationHandler(
	listUC notificationLister,
	unreadUC unreadCounter,
	markUC notificationReader,
	markAllUC allNotificationsReader,
	logger logger.Interface,
) *NotificationHandler {
	return &NotificationHandler{
		listUC:    listUC,
		unreadUC:  unreadUC,
		markUC:    markUC,
		markAllUC: markAllUC,
		logger:    logger,
	}
}

// ListNotifications handles GET /notifications?status=unread
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	status := c.Query("status")
	if status != "" && status != "unread" && status != "all" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("status must be one of [all unread]"))
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListNotificationsQuery{
		UserID:     userID,
		UnreadOnly: status == "unread",
		Pagination: utils.ParsePagination(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetUnreadCount handles GET /notifications/unread-count
func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.unreadUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// MarkAsRead handles POST /notifications/:id/read
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	notificationID, err := utils.ParseUintParam(c, "id", "notification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.markUC.Execute(c.Request.Context(), notificationID, userID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", nil)
}

// MarkAllAsRead handles POST /notifications/read-all
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.markAllUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "All notifications marked as read", result)
}
