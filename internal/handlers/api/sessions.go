package api

import (
	"net/http"

	"github.com/KirkDiggler/feastfinder/internal/models"
	"github.com/KirkDiggler/feastfinder/internal/services/candidates"
	sessionService "github.com/KirkDiggler/feastfinder/internal/services/session"
	"github.com/gin-gonic/gin"
)

type createSessionRequest struct {
	// Code is optional; one is generated when empty
	Code   string `json:"code"`
	UserID string `json:"userId"`

	// Candidates, when present, are used as given
	Candidates []models.Candidate `json:"candidates"`

	// Location and Filters source candidates from the provider instead
	Location *models.Location `json:"location"`
	Filters  models.Filters   `json:"filters"`
}

type joinSessionRequest struct {
	UserID string `json:"userId"`
}

type voteRequest struct {
	UserID       string `json:"userId"`
	RestaurantID string `json:"restaurantId"`
	CandidateID  string `json:"candidateId"`
	Liked        *bool  `json:"liked"`
}

// CreateSession handles POST /api/sessions
func (h *handler) CreateSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}

	if req.UserID == "" {
		h.badRequest(c, "Missing required fields")
		return
	}

	restaurants := req.Candidates
	if restaurants == nil {
		if req.Location == nil {
			h.badRequest(c, "Missing required fields")
			return
		}

		nearby, err := h.candidates.Nearby(c.Request.Context(), &candidates.NearbyInput{
			Location:     req.Location,
			RadiusMeters: req.Filters.Distance * 1000,
			Limit:        h.candidateLimit,
			Filters:      req.Filters,
		})
		if err != nil {
			h.writeError(c, err)
			return
		}
		restaurants = nearby.Restaurants
	}

	created, err := h.sessions.CreateSession(c.Request.Context(), &sessionService.CreateSessionInput{
		Code:       req.Code,
		CreatorID:  req.UserID,
		Candidates: restaurants,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"session": summarize(created.Session, created.Session.Finished, models.SessionStateCreated),
	})
}

// GetSession handles GET /api/sessions/:code
func (h *handler) GetSession(c *gin.Context) {
	output, err := h.sessions.GetSession(c.Request.Context(), &sessionService.GetSessionInput{
		Code: c.Param("code"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"session":     summarize(output.Session, output.AllFinished, output.State),
		"restaurants": output.Session.Candidates,
	})
}

// JoinSession handles POST /api/sessions/:code/join
func (h *handler) JoinSession(c *gin.Context) {
	var req joinSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		h.badRequest(c, "Missing required fields")
		return
	}

	output, err := h.sessions.JoinSession(c.Request.Context(), &sessionService.JoinSessionInput{
		Code:   c.Param("code"),
		UserID: req.UserID,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       output.Success,
		"alreadyMember": output.AlreadyMember,
		"userCount":     output.MemberCount,
	})
}

// RecordVote handles POST /api/sessions/:code/vote
func (h *handler) RecordVote(c *gin.Context) {
	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}

	candidateID := req.RestaurantID
	if candidateID == "" {
		candidateID = req.CandidateID
	}

	if req.UserID == "" || candidateID == "" || req.Liked == nil {
		h.badRequest(c, "Missing required fields")
		return
	}

	output, err := h.sessions.RecordVote(c.Request.Context(), &sessionService.RecordVoteInput{
		Code:        c.Param("code"),
		UserID:      req.UserID,
		CandidateID: candidateID,
		Liked:       *req.Liked,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"userFinished": output.UserFinished,
		"allFinished":  output.AllFinished,
	})
}

// GetBallot handles GET /api/sessions/:code/ballot?userId=
func (h *handler) GetBallot(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		h.badRequest(c, "Missing required fields")
		return
	}

	output, err := h.sessions.GetBallot(c.Request.Context(), &sessionService.GetBallotInput{
		Code:   c.Param("code"),
		UserID: userID,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	var next *models.Candidate
	if len(output.Remaining) > 0 {
		next = &output.Remaining[0]
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"next":       next,
		"remaining":  output.Remaining,
		"votedCount": output.VotedCount,
		"total":      output.Total,
		"finished":   output.Finished,
	})
}

// GetResults handles GET /api/sessions/:code/results
func (h *handler) GetResults(c *gin.Context) {
	output, err := h.sessions.GetDecision(c.Request.Context(), &sessionService.GetDecisionInput{
		Code: c.Param("code"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	if output.Decision.Kind.IsNone() {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"results": nil,
			"message": "No matches found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"results":     output.Decision,
		"allFinished": output.AllFinished,
	})
}

// GetStatus handles GET /api/sessions/:code/status
func (h *handler) GetStatus(c *gin.Context) {
	output, err := h.sessions.GetStatus(c.Request.Context(), &sessionService.GetStatusInput{
		Code: c.Param("code"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"allFinished":   output.AllFinished,
		"state":         output.State,
		"userCount":     output.MemberCount,
		"finishedCount": output.FinishedCount,
	})
}
