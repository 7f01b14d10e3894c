package candidates

import (
	"context"
	"math"

	"github.com/KirkDiggler/feastfinder/internal/models"
	"github.com/KirkDiggler/feastfinder/internal/picker"
)

const earthRadiusMeters = 6371000.0

// catalogProvider implements Provider over a fixed restaurant list
type catalogProvider struct {
	restaurants  []models.Candidate
	picker       picker.Picker
	defaultLimit int
}

// NewCatalog creates a provider backed by the built-in catalog unless cfg.Restaurants is set
func NewCatalog(cfg *Config) (*catalogProvider, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Picker == nil {
		return nil, ErrNilPicker
	}

	restaurants := cfg.Restaurants
	if restaurants == nil {
		restaurants = Catalog()
	}

	limit := cfg.DefaultLimit
	if limit <= 0 {
		limit = DefaultLimit
	}

	return &catalogProvider{
		restaurants:  restaurants,
		picker:       cfg.Picker,
		defaultLimit: limit,
	}, nil
}

// Nearby filters the catalog then samples up to Limit restaurants in random order
func (p *catalogProvider) Nearby(ctx context.Context, input *NearbyInput) (*NearbyOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.RadiusMeters < 0 || input.Limit < 0 {
		return nil, ErrInvalidRange
	}

	limit := input.Limit
	if limit == 0 {
		limit = p.defaultLimit
	}

	pool := make([]models.Candidate, 0, len(p.restaurants))
	for _, restaurant := range p.restaurants {
		if p.matches(restaurant, input) {
			pool = append(pool, restaurant)
		}
	}

	picked := p.picker.Pick(len(pool), limit)
	restaurants := make([]models.Candidate, 0, len(picked))
	for _, i := range picked {
		restaurants = append(restaurants, pool[i].Clone())
	}

	return &NearbyOutput{
		Restaurants: restaurants,
		Matched:     len(pool),
	}, nil
}

func (p *catalogProvider) matches(restaurant models.Candidate, input *NearbyInput) bool {
	filters := input.Filters

	if filters.MinRating > 0 && restaurant.Rating < filters.MinRating {
		return false
	}

	if filters.MaxReviews > 0 && restaurant.ReviewCount > filters.MaxReviews {
		return false
	}

	if filters.OpenNow && !restaurant.OpenNow {
		return false
	}

	if input.Location != nil && input.RadiusMeters > 0 {
		if Distance(*input.Location, models.Location{Lat: restaurant.Lat, Lng: restaurant.Lng}) > input.RadiusMeters {
			return false
		}
	}

	return true
}

// Distance returns the great-circle distance in metres (haversine)
func Distance(from, to models.Location) float64 {
	lat1 := from.Lat * math.Pi / 180
	lat2 := to.Lat * math.Pi / 180
	dLat := (to.Lat - from.Lat) * math.Pi / 180
	dLng := (to.Lng - from.Lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
