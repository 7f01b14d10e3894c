package candidates

import "github.com/KirkDiggler/feastfinder/internal/models"

// CatalogCenter is roughly the middle of the built-in catalog
var CatalogCenter = models.Location{Lat: 37.7599, Lng: -122.4148}

// builtinCatalog stands in for a places API until one is integrated
var builtinCatalog = []models.Candidate{
	{ID: "r-001", Name: "Pho Real", Address: "2301 Mission St", Rating: 4.5, ReviewCount: 812, Cuisines: []string{"vietnamese", "noodles"}, PriceLevel: "$", Phone: "415-555-0101", Lat: 37.7600, Lng: -122.4190, OpenNow: true},
	{ID: "r-002", Name: "Taco Bout It", Address: "2889 24th St", Rating: 4.2, ReviewCount: 1340, Cuisines: []string{"mexican", "tacos"}, PriceLevel: "$", Lat: 37.7526, Lng: -122.4118, OpenNow: true},
	{ID: "r-003", Name: "Wok This Way", Address: "540 Valencia St", Rating: 3.9, ReviewCount: 221, Cuisines: []string{"chinese"}, PriceLevel: "$$", Lat: 37.7637, Lng: -122.4217, OpenNow: false},
	{ID: "r-004", Name: "The Codfather", Address: "101 Guerrero St", Rating: 4.7, ReviewCount: 96, Cuisines: []string{"seafood", "british"}, PriceLevel: "$$", Website: "https://codfather.example", Lat: 37.7694, Lng: -122.4244, OpenNow: true},
	{ID: "r-005", Name: "Thai Tanic", Address: "3199 16th St", Rating: 4.0, ReviewCount: 455, Cuisines: []string{"thai"}, PriceLevel: "$$", Lat: 37.7648, Lng: -122.4225, OpenNow: true},
	{ID: "r-006", Name: "Naan Sense", Address: "830 Divisadero St", Rating: 4.4, ReviewCount: 287, Cuisines: []string{"indian"}, PriceLevel: "$$", Lat: 37.7767, Lng: -122.4381, OpenNow: false},
	{ID: "r-007", Name: "Lettuce Eat", Address: "77 Hayes St", Rating: 3.6, ReviewCount: 48, Cuisines: []string{"salads", "vegetarian"}, PriceLevel: "$", Lat: 37.7771, Lng: -122.4196, OpenNow: true},
	{ID: "r-008", Name: "Pasta La Vista", Address: "1500 Stockton St", Rating: 4.6, ReviewCount: 2210, Cuisines: []string{"italian", "pasta"}, PriceLevel: "$$$", Lat: 37.7999, Lng: -122.4090, OpenNow: true},
	{ID: "r-009", Name: "Sushi Do Bout It", Address: "1737 Post St", Rating: 4.3, ReviewCount: 640, Cuisines: []string{"japanese", "sushi"}, PriceLevel: "$$$", Lat: 37.7854, Lng: -122.4300, OpenNow: false},
	{ID: "r-010", Name: "Grillenium Falcon", Address: "4001 18th St", Rating: 4.1, ReviewCount: 173, Cuisines: []string{"burgers", "american"}, PriceLevel: "$$", Lat: 37.7609, Lng: -122.4350, OpenNow: true},
	{ID: "r-011", Name: "Seoul Food", Address: "3318 Mission St", Rating: 4.5, ReviewCount: 390, Cuisines: []string{"korean", "bbq"}, PriceLevel: "$$", Lat: 37.7450, Lng: -122.4198, OpenNow: true},
	{ID: "r-012", Name: "Bread Pitt", Address: "699 Cortland Ave", Rating: 4.8, ReviewCount: 64, Cuisines: []string{"bakery", "cafe"}, PriceLevel: "$", Lat: 37.7389, Lng: -122.4160, OpenNow: false},
	{ID: "r-013", Name: "Falafel Good", Address: "2600 Folsom St", Rating: 3.8, ReviewCount: 142, Cuisines: []string{"middle eastern", "vegetarian"}, PriceLevel: "$", Lat: 37.7560, Lng: -122.4140, OpenNow: true},
	{ID: "r-014", Name: "Curry Up Now", Address: "659 Valencia St", Rating: 4.0, ReviewCount: 980, Cuisines: []string{"indian", "street food"}, PriceLevel: "$", Lat: 37.7614, Lng: -122.4218, OpenNow: true},
	{ID: "r-015", Name: "Dim Sum Mor", Address: "845 Clay St", Rating: 4.2, ReviewCount: 505, Cuisines: []string{"chinese", "dim sum"}, PriceLevel: "$$", Lat: 37.7943, Lng: -122.4059, OpenNow: true},
	{ID: "r-016", Name: "Brie My Guest", Address: "401 Cortland Ave", Rating: 4.6, ReviewCount: 33, Cuisines: []string{"french", "wine bar"}, PriceLevel: "$$$", Lat: 37.7391, Lng: -122.4185, OpenNow: false},
}

// Catalog returns a copy of the built-in restaurants
func Catalog() []models.Candidate {
	restaurants := make([]models.Candidate, len(builtinCatalog))
	for i, restaurant := range builtinCatalog {
		restaurants[i] = restaurant.Clone()
	}
	return restaurants
}
