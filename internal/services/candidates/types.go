package candidates

import (
	"github.com/KirkDiggler/feastfinder/internal/models"
	"github.com/KirkDiggler/feastfinder/internal/picker"
)

// DefaultLimit is how many restaurants a session gets when no limit is given
const DefaultLimit = 10

// Config holds configuration for the catalog provider
type Config struct {
	// Picker samples restaurants from the filtered pool
	Picker picker.Picker

	// Restaurants overrides the built-in catalog
	Restaurants []models.Candidate

	// DefaultLimit overrides DefaultLimit
	DefaultLimit int
}

// NearbyInput contains the search parameters
type NearbyInput struct {
	// Location is the search centre; nil skips the distance filter
	Location *models.Location

	// RadiusMeters bounds the search; 0 means unbounded
	RadiusMeters float64

	// Limit caps the number of results; 0 uses the provider default
	Limit int

	// Filters narrow the pool before sampling
	Filters models.Filters
}

// NearbyOutput contains the restaurants found
type NearbyOutput struct {
	Restaurants []models.Candidate

	// Matched is the size of the filtered pool before sampling
	Matched int
}
