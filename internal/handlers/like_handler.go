package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/warblr-social/backend/internal/repositories"
)

// LikeHandler handles like/unlike HTTP requests
type LikeHandler struct {
	likeRepository repositories.LikeRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository) *LikeHandler {
	return &LikeHandler{likeRepository: likeRepo}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/messages/:id/like", h.LikeMessage)
	g.DELETE("/messages/:id/like", h.UnlikeMessage)
	g.GET("/users/:id/likes", h.ListLikedMessages)
}

// LikeMessage likes a message
func (h *LikeHandler) LikeMessage(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	messageID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid message ID")
	}

	if err := h.likeRepository.LikeMessage(currentUserID, uint(messageID)); err != nil {
		switch {
		case errors.Is(err, repositories.ErrMessageNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Message not found")
		case errors.Is(err, repositories.ErrOwnMessageLike):
			return echo.NewHTTPError(http.StatusBadRequest, "Cannot like your own message")
		case errors.Is(err, repositories.ErrAlreadyLiked):
			return echo.NewHTTPError(http.StatusConflict, "Message already liked")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"liked": true}})
}

// UnlikeMessage removes a like from a message
func (h *LikeHandler) UnlikeMessage(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	messageID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid message ID")
	}

	if err := h.likeRepository.UnlikeMessage(currentUserID, uint(messageID)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"liked": false}})
}

// ListLikedMessages lists the messages a user has liked
func (h *LikeHandler) ListLikedMessages(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	messages, err := h.likeRepository.ListLikedMessages(uint(userID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, messages)
}
