package models

// Candidate is one restaurant being voted on. Only ID matters to the decision engine.
type Candidate struct {
	// ID is unique within a session's candidate set
	ID string `json:"id"`

	Name        string   `json:"name"`
	Address     string   `json:"address,omitempty"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
	Cuisines    []string `json:"cuisines,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	PriceLevel  string   `json:"priceLevel,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Website     string   `json:"website,omitempty"`

	// Lat and Lng locate the restaurant for distance filtering
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`

	// OpenNow is a catalog flag used by the open-now filter
	OpenNow bool `json:"openNow,omitempty"`
}

// Clone copies the candidate including its cuisine slice
func (c Candidate) Clone() Candidate {
	c.Cuisines = append([]string(nil), c.Cuisines...)
	return c
}

// Location is a latitude/longitude pair
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Filters narrow the candidate pool before a session is created
type Filters struct {
	// Distance is the search radius in kilometres
	Distance float64 `json:"distance"`

	// MinRating excludes restaurants rated below it (0 = any)
	MinRating float64 `json:"minRating"`

	// MaxReviews excludes restaurants with more reviews, for hidden gems (0 = any)
	MaxReviews int `json:"maxReviews"`

	// OpenNow keeps only restaurants currently open
	OpenNow bool `json:"openNow"`
}
