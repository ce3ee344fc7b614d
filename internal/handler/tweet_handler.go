package handler

import (
	"errors"
	"net/http"

	"minitwitter/backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// CreateTweetInput defines the structure for posting a tweet. Text is left
// unbound so validation failures surface as domain errors, not binding
// errors.
type CreateTweetInput struct {
	Text     string `json:"text" example:"hello world"`
	ImageURL string `json:"image_url,omitempty" example:"https://example.com/cat.png"`
}

// CreateTweet godoc
// @Summary      Post a tweet
// @Description  Validates and posts a tweet: non-empty, at most 280 characters, moderation pass, and the optional duplicate and cooldown guards.
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body CreateTweetInput true "Tweet"
// @Success      201  {object}  domain.Tweet
// @Failure      400  {object}  ErrorResponse "Empty or too long"
// @Failure      401  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Duplicate of previous tweet"
// @Failure      422  {object}  ErrorResponse "Blocked by moderation"
// @Failure      429  {object}  ErrorResponse "Posting too fast"
// @Failure      500  {object}  ErrorResponse
// @Router       /tweets [post]
func (h *Handler) CreateTweet(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	var input CreateTweetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tweet, err := h.svc.CreateTweet(c.Request.Context(), viewerID.(string), input.Text, input.ImageURL)
	if err != nil {
		var cooldown *domain.CooldownError
		switch {
		case errors.Is(err, domain.ErrEmptyTweet):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Tweet cannot be empty"})
		case errors.Is(err, domain.ErrTweetTooLong):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Tweet too long"})
		case errors.Is(err, domain.ErrTweetBlocked):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Tweet blocked by moderation"})
		case errors.Is(err, domain.ErrDuplicateTweet):
			c.JSON(http.StatusConflict, gin.H{"error": "Tweet is identical to your previous tweet"})
		case errors.As(err, &cooldown):
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":               "Posting too fast",
				"retry_after_seconds": cooldown.RetryAfterSeconds(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tweet"})
		}
		return
	}

	c.JSON(http.StatusCreated, tweet)
}

// DeleteTweet godoc
// @Summary      Delete a tweet
// @Description  Deletes the tweet if the caller authored it. A missing tweet or somebody else's tweet is silently ignored.
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Tweet ID"
// @Success      200  {object}  MessageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /tweets/{id} [delete]
func (h *Handler) DeleteTweet(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	if err := h.svc.DeleteTweet(c.Request.Context(), viewerID.(string), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tweet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tweet deleted"})
}

// LikeTweet godoc
// @Summary      Like a tweet
// @Description  Likes the tweet. Liking a tweet twice is a no-op; the first like notifies the author.
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Tweet ID"
// @Success      200  {object}  MessageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Tweet not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /tweets/{id}/like [post]
func (h *Handler) LikeTweet(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	err := h.svc.Like(c.Request.Context(), viewerID.(string), c.Param("id"))
	switch {
	case errors.Is(err, domain.ErrTweetNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Tweet not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like tweet"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Tweet liked"})
	}
}

// UnlikeTweet godoc
// @Summary      Unlike a tweet
// @Description  Removes the caller's like. Unliking a tweet that was never liked is a no-op.
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Tweet ID"
// @Success      200  {object}  MessageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /tweets/{id}/unlike [post]
func (h *Handler) UnlikeTweet(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	if err := h.svc.Unlike(c.Request.Context(), viewerID.(string), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlike tweet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tweet unliked"})
}
