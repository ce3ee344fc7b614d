package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetNotifications godoc
// @Summary      Get notifications
// @Description  Returns the caller's notifications, newest first.
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Page number" default(1)
// @Param        limit query     int  false  "Items per page" default(50)
// @Success      200  {object}  PaginatedResponse[domain.Notification]
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /notifications [get]
func (h *Handler) GetNotifications(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	notifications, err := h.svc.NotificationsFor(c.Request.Context(), viewerID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}

	page, limit := pageParams(c)
	c.JSON(http.StatusOK, paginateSlice(notifications, page, limit))
}
