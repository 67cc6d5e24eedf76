package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/warblr-social/backend/internal/metrics"
	"github.com/warblr-social/backend/internal/models"
	"github.com/warblr-social/backend/internal/repositories"
)

// MessageHandler handles HTTP requests related to messages
type MessageHandler struct {
	messageRepository repositories.MessageRepository
	userRepository    repositories.UserRepository
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageRepo repositories.MessageRepository, userRepo repositories.UserRepository) *MessageHandler {
	return &MessageHandler{
		messageRepository: messageRepo,
		userRepository:    userRepo,
	}
}

// RegisterMessageRoutes registers message-related routes
func (h *MessageHandler) RegisterMessageRoutes(g *echo.Group) {
	g.POST("/messages", h.CreateMessage)
	g.GET("/messages/:id", h.GetMessage)
	g.DELETE("/messages/:id", h.DeleteMessage)
	g.GET("/users/:id/messages", h.ListUserMessages)
}

// CreateMessage creates a new message owned by the authenticated user
func (h *MessageHandler) CreateMessage(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	message := &models.Message{
		Text:   req.Text,
		UserID: currentUserID,
	}

	if err := h.messageRepository.CreateMessage(message); err != nil {
		switch {
		case errors.Is(err, repositories.ErrMessageTextRequired),
			errors.Is(err, repositories.ErrMessageTooLong):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, repositories.ErrUserNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	metrics.MessagesCreatedCounter.Inc()

	return c.JSON(http.StatusCreated, message)
}

// GetMessage retrieves a single message by ID
func (h *MessageHandler) GetMessage(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid message ID")
	}

	message, err := h.messageRepository.GetMessageByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrMessageNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Message not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, message)
}

// DeleteMessage removes a message owned by the authenticated user
func (h *MessageHandler) DeleteMessage(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid message ID")
	}

	if err := h.messageRepository.DeleteMessage(uint(id), currentUserID); err != nil {
		switch {
		case errors.Is(err, repositories.ErrMessageNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Message not found")
		case errors.Is(err, repositories.ErrNotMessageOwner):
			return echo.NewHTTPError(http.StatusForbidden, "Message is owned by another user")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.NoContent(http.StatusNoContent)
}

// ListUserMessages lists a user's messages, newest first
func (h *MessageHandler) ListUserMessages(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	if _, err := h.userRepository.GetUserByID(uint(id)); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	messages, err := h.messageRepository.ListMessagesByUserID(uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, messages)
}
