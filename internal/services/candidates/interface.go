package candidates

//go:generate mockgen -package=mocks -destination=mocks/mock_provider.go github.com/KirkDiggler/feastfinder/internal/services/candidates Provider

import "context"

// Provider supplies the ordered candidate list a session is created with
type Provider interface {
	// Nearby returns filtered restaurants around a location, in display order
	Nearby(ctx context.Context, input *NearbyInput) (*NearbyOutput, error)
}
