package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/internhub/internal/app/models/dto"
	"github.com/yigit/internhub/internal/app/services"
	"github.com/yigit/internhub/internal/middleware"
	"github.com/yigit/internhub/internal/pkg/ws"
)

// NotificationController serves the mentor notification feed and its live
// websocket stream
type NotificationController struct {
	notificationService services.NotificationService
	facultyService      services.FacultyService
	hub                 *ws.Hub
	logger              zerolog.Logger
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(
	notificationService services.NotificationService,
	facultyService services.FacultyService,
	hub *ws.Hub,
	logger zerolog.Logger,
) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
		facultyService:      facultyService,
		hub:                 hub,
		logger:              logger,
	}
}

// resolveFaculty maps the authenticated account to its faculty profile
func (c *NotificationController) resolveFaculty(ctx *gin.Context) (int64, int64, bool) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return 0, 0, false
	}

	faculty, err := c.facultyService.GetProfileByUserID(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return 0, 0, false
	}

	return userID, faculty.ID, true
}

// List returns the calling mentor's notifications
// @Summary List notifications
// @Description Returns the mentor's notifications, newest first, with the unread count
// @Tags notifications
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.NotificationListResponse}
// @Failure 404 {object} dto.ErrorResponse "Faculty profile not found"
// @Security BearerAuth
// @Router /faculty/notifications [get]
func (c *NotificationController) List(ctx *gin.Context) {
	_, facultyID, ok := c.resolveFaculty(ctx)
	if !ok {
		return
	}

	feed, err := c.notificationService.ListForFaculty(ctx.Request.Context(), facultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: feed})
}

// MarkRead marks one notification as read
// @Summary Mark notification read
// @Tags notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Notification not found"
// @Security BearerAuth
// @Router /faculty/notifications/{id}/read [patch]
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	_, facultyID, ok := c.resolveFaculty(ctx)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid notification ID")))
		return
	}

	if err := c.notificationService.MarkRead(ctx.Request.Context(), id, facultyID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Notification marked as read"}})
}

// MarkAllRead marks all of the mentor's notifications as read
// @Summary Mark all notifications read
// @Tags notifications
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Security BearerAuth
// @Router /faculty/notifications/read-all [post]
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	_, facultyID, ok := c.resolveFaculty(ctx)
	if !ok {
		return
	}

	count, err := c.notificationService.MarkAllRead(ctx.Request.Context(), facultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{
		Message: strconv.FormatInt(count, 10) + " notifications marked as read",
	}})
}

// Stream upgrades the connection to a websocket notification push stream
// @Summary Notification stream
// @Description Upgrades to a websocket that pushes new notifications as they are created. Push-only; client frames are discarded.
// @Tags notifications
// @Success 101 "Switching protocols"
// @Security BearerAuth
// @Router /faculty/notifications/stream [get]
func (c *NotificationController) Stream(ctx *gin.Context) {
	userID, facultyID, ok := c.resolveFaculty(ctx)
	if !ok {
		return
	}

	if err := ws.ServeNotificationStream(c.hub, ctx.Writer, ctx.Request, userID, facultyID, c.logger); err != nil {
		c.logger.Error().Err(err).Int64("facultyID", facultyID).Msg("Failed to upgrade notification stream")
	}
}
