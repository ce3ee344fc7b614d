package handler

import (
	"errors"
	"fmt"
	"net/http"

	"minitwitter/backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// PublicUserResponse defines the structure for a user's public profile.
type PublicUserResponse struct {
	ID             string `json:"id" example:"2c2a9e6e-6a6f-4b88-9a0e-1f4f2f1a2b3c"`
	Username       string `json:"username" example:"alice"`
	FollowersCount int64  `json:"followers_count"`
	FollowingCount int64  `json:"following_count"`

	// FollowedByMe is omitted when the viewer is anonymous or looking at
	// their own profile.
	FollowedByMe *bool `json:"followed_by_me,omitempty"`
}

// GetUserByUsername godoc
// @Summary      Get user by username
// @Description  Retrieves the public profile for a user, including follower counts and whether the viewer follows them.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200  {object}  PublicUserResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{username} [get]
func (h *Handler) GetUserByUsername(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	profile, err := h.svc.Profile(c.Request.Context(), viewerID.(string), c.Param("username"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}

	c.JSON(http.StatusOK, PublicUserResponse{
		ID:             profile.User.ID,
		Username:       profile.User.Username,
		FollowersCount: profile.FollowersCount,
		FollowingCount: profile.FollowingCount,
		FollowedByMe:   profile.FollowedByViewer,
	})
}

// FollowUser godoc
// @Summary      Follow a user
// @Description  Follows the named user. Following someone already followed is a no-op; the first follow notifies them.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username to follow"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse "Self-follow"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "User not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /users/{username}/follow [post]
func (h *Handler) FollowUser(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	username := c.Param("username")

	err := h.svc.Follow(c.Request.Context(), viewerID.(string), username)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, domain.ErrSelfFollow):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Can't follow yourself"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to follow user"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("You now follow %s", username)})
	}
}

// UnfollowUser godoc
// @Summary      Unfollow a user
// @Description  Unfollows the named user. Unfollowing someone not followed is a no-op.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username to unfollow"
// @Success      200  {object}  MessageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "User not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /users/{username}/unfollow [post]
func (h *Handler) UnfollowUser(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	username := c.Param("username")

	err := h.svc.Unfollow(c.Request.Context(), viewerID.(string), username)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unfollow user"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Unfollowed %s", username)})
	}
}
