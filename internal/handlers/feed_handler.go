package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/warblr-social/backend/internal/models"
	"github.com/warblr-social/backend/internal/repositories"
)

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	messageRepository repositories.MessageRepository
	userRepository    repositories.UserRepository
	likeRepository    repositories.LikeRepository
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(
	messageRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
	likeRepo repositories.LikeRepository,
) *FeedHandler {
	return &FeedHandler{
		messageRepository: messageRepo,
		userRepository:    userRepo,
		likeRepository:    likeRepo,
	}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
}

// EnrichedMessage is a message with author info and user-specific flags
type EnrichedMessage struct {
	models.Message
	Author  *models.User `json:"author,omitempty"`
	IsLiked bool         `json:"is_liked"`
}

// GetFeed returns the 100 most recent messages from followed users plus the
// current user's own, enriched with author profiles and like state.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	messages, err := h.messageRepository.ListFeed(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Build author map without refetching the same user per message
	authors := make(map[uint]*models.User)
	for _, m := range messages {
		if _, ok := authors[m.UserID]; ok {
			continue
		}
		user, err := h.userRepository.GetUserByID(m.UserID)
		if err == nil {
			authors[m.UserID] = user
		}
	}

	enriched := make([]EnrichedMessage, len(messages))
	for i, m := range messages {
		liked, _ := h.likeRepository.HasLiked(currentUserID, m.ID)
		enriched[i] = EnrichedMessage{
			Message: m,
			Author:  authors[m.UserID],
			IsLiked: liked,
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"messages": enriched},
	})
}
