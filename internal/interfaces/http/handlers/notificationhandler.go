package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"grievance/internal/application/notification/usecases"
	"grievance/internal/shared/logger"
	"grievance/internal/shared/utils"
)

type ListNotificationsExecutor interface {
	Execute(ctx context.Context, userID uint) (*usecases.ListNotificationsResult, error)
}

type MarkReadExecutor interface {
	Execute(ctx context.Context, notificationID, userID uint) error
}

type MarkAllReadExecutor interface {
	Execute(ctx context.Context, userID uint) error
}

type NotificationHandler struct {
	listNotificationsUC ListNotificationsExecutor
	markReadUC          MarkReadExecutor
	markAllReadUC       MarkAllReadExecutor
	logger              logger.Interface
}

func NewNotificationHandler(
	listNotificationsUC ListNotificationsExecutor,
	markReadUC MarkReadExecutor,
	markAllReadUC MarkAllReadExecutor,
) *NotificationHandler {
	return &NotificationHandler{
		listNotificationsUC: listNotificationsUC,
		markReadUC:          markReadUC,
		markAllReadUC:       markAllReadUC,
		logger:              logger.NewLogger(),
	}
}

// ListNotifications handles GET /users/notifications
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, _ := utils.AuthenticatedUser(c)

	result, err := h.listNotificationsUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"notifications": result.Notifications,
		"unread_count":  result.UnreadCount,
	})
}

// MarkRead handles PATCH /users/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	notificationID, err := utils.ParseIDParam(c, "id", "notification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := utils.AuthenticatedUser(c)
	if err := h.markReadUC.Execute(c.Request.Context(), notificationID, userID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", nil)
}

// MarkAllRead handles PATCH /users/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, _ := utils.AuthenticatedUser(c)

	if err := h.markAllReadUC.Execute(c.Request.Context(), userID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "All notifications marked as read", nil)
}
