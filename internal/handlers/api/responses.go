package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/KirkDiggler/feastfinder/internal/models"
	"github.com/KirkDiggler/feastfinder/internal/services/candidates"
	sessionService "github.com/KirkDiggler/feastfinder/internal/services/session"
	"github.com/gin-gonic/gin"
)

// sessionSummary is the public view of a session
type sessionSummary struct {
	Code            string              `json:"code"`
	CreatedAt       time.Time           `json:"createdAt"`
	CreatedBy       string              `json:"createdBy"`
	Users           []string            `json:"users"`
	RestaurantCount int                 `json:"restaurantCount"`
	AllFinished     bool                `json:"allFinished"`
	State           models.SessionState `json:"state"`
}

func summarize(session *models.Session, allFinished bool, state models.SessionState) sessionSummary {
	return sessionSummary{
		Code:            session.Code,
		CreatedAt:       session.CreatedAt,
		CreatedBy:       session.CreatedBy,
		Users:           session.Members,
		RestaurantCount: len(session.Candidates),
		AllFinished:     allFinished,
		State:           state,
	}
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

// statusFor maps service errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, sessionService.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, sessionService.ErrSessionAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, sessionService.ErrInvalidInput),
		errors.Is(err, candidates.ErrInvalidRange):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func messageFor(status int) string {
	switch status {
	case http.StatusNotFound:
		return "Session not found"
	case http.StatusConflict:
		return "Session already exists"
	case http.StatusBadRequest:
		return "Missing required fields"
	}
	return "Internal server error"
}

// writeError logs server faults and writes the JSON error body
func (h *handler) writeError(c *gin.Context, err error) {
	status := statusFor(err)
	requestID := c.GetString(requestIDKey)

	if status == http.StatusInternalServerError {
		h.logger.Error("request failed",
			"path", c.Request.URL.Path,
			"request_id", requestID,
			"error", err)
	}

	c.AbortWithStatusJSON(status, errorResponse{
		Error:     messageFor(status),
		RequestID: requestID,
	})
}

func (h *handler) badRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{
		Error:     message,
		RequestID: c.GetString(requestIDKey),
	})
}
