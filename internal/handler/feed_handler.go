package handler

import (
	"errors"
	"net/http"

	"minitwitter/backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// GetFeed godoc
// @Summary      Get the home feed
// @Description  Returns the home feed newest first. In personalized mode a token is required and the feed covers the viewer and everyone they follow; in global mode the feed covers all users and works anonymously.
// @Tags         feed
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Page number" default(1)
// @Param        limit query     int  false  "Items per page" default(50)
// @Success      200  {object}  PaginatedResponse[domain.FeedItem]
// @Failure      401  {object}  ErrorResponse "Personalized feed requires a signed-in viewer"
// @Failure      500  {object}  ErrorResponse
// @Router       /feed [get]
func (h *Handler) GetFeed(c *gin.Context) {
	viewerID := ""
	if v, ok := c.Get("userID"); ok {
		viewerID = v.(string)
	}

	items, err := h.svc.HomeFeed(c.Request.Context(), viewerID)
	if err != nil {
		if errors.Is(err, domain.ErrViewerRequired) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Login first"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assemble feed"})
		return
	}

	page, limit := pageParams(c)
	c.JSON(http.StatusOK, paginateSlice(items, page, limit))
}
