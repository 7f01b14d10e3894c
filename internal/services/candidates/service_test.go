package candidates

import (
	"context"
	"testing"

	"github.com/KirkDiggler/feastfinder/internal/models"
	"github.com/KirkDiggler/feastfinder/internal/picker/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogProviderTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockPicker *mocks.MockPicker
	provider   Provider
	ctx        context.Context

	restaurants []models.Candidate
}

func (s *CatalogProviderTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPicker = mocks.NewMockPicker(s.mockCtrl)
	s.ctx = context.Background()

	s.restaurants = []models.Candidate{
		{ID: "near-open", Rating: 4.5, ReviewCount: 100, Lat: 37.7600, Lng: -122.4150, OpenNow: true},
		{ID: "near-closed", Rating: 4.0, ReviewCount: 900, Lat: 37.7610, Lng: -122.4160, OpenNow: false},
		{ID: "near-low", Rating: 2.5, ReviewCount: 20, Lat: 37.7590, Lng: -122.4140, OpenNow: true},
		{ID: "far-away", Rating: 4.9, ReviewCount: 50, Lat: 37.8500, Lng: -122.2500, OpenNow: true},
	}

	provider, err := NewCatalog(&Config{
		Picker:      s.mockPicker,
		Restaurants: s.restaurants,
	})
	s.Require().NoError(err)
	s.provider = provider
}

func (s *CatalogProviderTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogProviderTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogProviderTestSuite))
}

func ids(restaurants []models.Candidate) []string {
	out := make([]string, len(restaurants))
	for i, r := range restaurants {
		out[i] = r.ID
	}
	return out
}

func (s *CatalogProviderTestSuite) TestNewCatalogValidation() {
	_, err := NewCatalog(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = NewCatalog(&Config{})
	s.ErrorIs(err, ErrNilPicker)
}

func (s *CatalogProviderTestSuite) TestNearbyReturnsPickedOrder() {
	s.mockPicker.EXPECT().Pick(4, DefaultLimit).Return([]int{3, 0, 2, 1})

	out, err := s.provider.Nearby(s.ctx, &NearbyInput{})
	s.Require().NoError(err)

	s.Equal([]string{"far-away", "near-open", "near-low", "near-closed"}, ids(out.Restaurants))
	s.Equal(4, out.Matched)
}

func (s *CatalogProviderTestSuite) TestNearbyAppliesFilters() {
	s.mockPicker.EXPECT().Pick(1, 5).Return([]int{0})

	out, err := s.provider.Nearby(s.ctx, &NearbyInput{
		Location:     &models.Location{Lat: 37.7600, Lng: -122.4150},
		RadiusMeters: 2000,
		Limit:        5,
		Filters: models.Filters{
			MinRating:  3.0,
			MaxReviews: 500,
			OpenNow:    true,
		},
	})
	s.Require().NoError(err)

	s.Equal([]string{"near-open"}, ids(out.Restaurants))
	s.Equal(1, out.Matched)
}

func (s *CatalogProviderTestSuite) TestNearbyDistanceOnly() {
	s.mockPicker.EXPECT().Pick(3, 2).Return([]int{2, 1})

	out, err := s.provider.Nearby(s.ctx, &NearbyInput{
		Location:     &models.Location{Lat: 37.7600, Lng: -122.4150},
		RadiusMeters: 1000,
		Limit:        2,
	})
	s.Require().NoError(err)

	s.Equal([]string{"near-low", "near-closed"}, ids(out.Restaurants))
}

func (s *CatalogProviderTestSuite) TestNearbyNothingMatches() {
	s.mockPicker.EXPECT().Pick(0, DefaultLimit).Return([]int{})

	out, err := s.provider.Nearby(s.ctx, &NearbyInput{
		Filters: models.Filters{MinRating: 5.0},
	})
	s.Require().NoError(err)
	s.Empty(out.Restaurants)
}

func (s *CatalogProviderTestSuite) TestNearbyValidation() {
	_, err := s.provider.Nearby(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)

	_, err = s.provider.Nearby(s.ctx, &NearbyInput{Limit: -1})
	s.ErrorIs(err, ErrInvalidRange)
}

func (s *CatalogProviderTestSuite) TestBuiltinCatalogHasUniqueIDs() {
	seen := make(map[string]bool)
	for _, restaurant := range Catalog() {
		s.False(seen[restaurant.ID], "duplicate id %s", restaurant.ID)
		seen[restaurant.ID] = true
	}
	s.GreaterOrEqual(len(seen), DefaultLimit)
}

func (s *CatalogProviderTestSuite) TestDistance() {
	from := models.Location{Lat: 37.7600, Lng: -122.4150}

	s.InDelta(0, Distance(from, from), 0.001)
	// One hundredth of a degree of latitude is about 1.11 km
	s.InDelta(1112, Distance(from, models.Location{Lat: 37.7700, Lng: -122.4150}), 5)
}
