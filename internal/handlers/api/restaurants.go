package api

import (
	"net/http"

	"github.com/KirkDiggler/feastfinder/internal/models"
	"github.com/KirkDiggler/feastfinder/internal/services/candidates"
	"github.com/gin-gonic/gin"
)

type nearbyRequest struct {
	Lat     *float64       `json:"lat"`
	Lng     *float64       `json:"lng"`
	Radius  float64        `json:"radius"`
	Limit   int            `json:"limit"`
	Filters models.Filters `json:"filters"`
}

// Nearby handles POST /api/restaurants/nearby
func (h *handler) Nearby(c *gin.Context) {
	var req nearbyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return
	}

	input := &candidates.NearbyInput{
		RadiusMeters: req.Radius,
		Limit:        req.Limit,
		Filters:      req.Filters,
	}
	if req.Lat != nil && req.Lng != nil {
		input.Location = &models.Location{Lat: *req.Lat, Lng: *req.Lng}
	}
	if input.RadiusMeters == 0 {
		input.RadiusMeters = req.Filters.Distance * 1000
	}
	if input.Limit == 0 {
		input.Limit = h.candidateLimit
	}

	output, err := h.candidates.Nearby(c.Request.Context(), input)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"restaurants": output.Restaurants,
		"matched":     output.Matched,
	})
}
