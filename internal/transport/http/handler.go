// Package http provides the HTTP wrapper around the conversation agent.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/marcaguilaar/automax-whatsapp-bot/internal/adapter/llm"
	"github.com/marcaguilaar/automax-whatsapp-bot/internal/agent"
	"github.com/marcaguilaar/automax-whatsapp-bot/internal/dealership"
	"github.com/marcaguilaar/automax-whatsapp-bot/internal/domain"
)

// Handler handles HTTP requests.
type Handler struct {
	directory *agent.Directory
	svc       *dealership.Service
}

// NewHandler creates a new handler.
func NewHandler(directory *agent.Directory, svc *dealership.Service) *Handler {
	return &Handler{
		directory: directory,
		svc:       svc,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/chat", h.Chat)
	e.GET("/api/chat/sessions/:session_id/history", h.GetSessionHistory)
	e.DELETE("/api/chat/sessions/:session_id", h.ClearSession)

	e.GET("/api/appointments/:appointment_id", h.GetAppointment)
	e.POST("/api/appointments/:appointment_id/cancel", h.CancelAppointment)

	e.GET("/health", h.Health)
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

// ChatResponse is the reply of POST /api/chat.
type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"sessionId"`
	Timestamp string `json:"timestamp"`
}

// Chat submits one user message to its session and returns the assistant's
// reply. A missing sessionId starts a new session.
// POST /api/chat
func (h *Handler) Chat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.Message == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Message is required"})
	}
	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}

	reply := h.directory.Submit(c.Request().Context(), req.SessionID, req.Message)

	return c.JSON(http.StatusOK, ChatResponse{
		Response:  reply,
		SessionID: req.SessionID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// GetSessionHistory returns the session's messages for display, the system
// message filtered out.
// GET /api/chat/sessions/:session_id/history
func (h *Handler) GetSessionHistory(c echo.Context) error {
	sessionID := c.Param("session_id")
	history := h.directory.History(sessionID)
	if history == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	}

	messages := make([]llm.ChatMessage, 0, len(history))
	for _, m := range history {
		if m.Role == llm.RoleSystem {
			continue
		}
		messages = append(messages, m)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"sessionId": sessionID,
		"messages":  messages,
	})
}

// ClearSession destroys the session and its history.
// DELETE /api/chat/sessions/:session_id
func (h *Handler) ClearSession(c echo.Context) error {
	h.directory.Clear(c.Param("session_id"))
	return c.JSON(http.StatusOK, map[string]string{"message": "Session cleared"})
}

// GetAppointment returns a booked appointment by its confirmation number.
// GET /api/appointments/:appointment_id
func (h *Handler) GetAppointment(c echo.Context) error {
	appt, err := h.svc.GetAppointment(c.Request().Context(), c.Param("appointment_id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if appt == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "appointment not found"})
	}
	return c.JSON(http.StatusOK, appt)
}

// CancelAppointment cancels a booked appointment, freeing its slot.
// POST /api/appointments/:appointment_id/cancel
func (h *Handler) CancelAppointment(c echo.Context) error {
	id := c.Param("appointment_id")
	if err := h.svc.CancelAppointment(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrAppointmentNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "appointment not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}
