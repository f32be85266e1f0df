package models

// RawPlace is a record returned by the geo-search provider.
type RawPlace struct {
	ID         string   `json:"place_id"`
	Name       string   `json:"name"`
	Rating     *float64 `json:"rating,omitempty"`
	PriceLevel *int     `json:"price_level,omitempty"`
	Latitude   *float64 `json:"lat,omitempty"`
	Longitude  *float64 `json:"lng,omitempty"`
	Vicinity   string   `json:"vicinity,omitempty"`
	Types      []string `json:"types,omitempty"`
	OpenNow    *bool    `json:"open_now,omitempty"`
}

// PriceRange is the catalog's coarse price classification.
type PriceRange string

const (
	PriceBudget    PriceRange = "BUDGET"
	PriceMidRange  PriceRange = "MID_RANGE"
	PriceExpensive PriceRange = "EXPENSIVE"
)

// CatalogEntry is a hotel or restaurant from the local inventory.
type CatalogEntry struct {
	ID            string        `bson:"id" json:"id"`
	Name          string        `bson:"name" json:"name"`
	Kind          CandidateKind `bson:"kind" json:"kind"`
	City          string        `bson:"city,omitempty" json:"city,omitempty"`
	Address       string        `bson:"address,omitempty" json:"address,omitempty"`
	Latitude      *float64      `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude     *float64      `bson:"longitude,omitempty" json:"longitude,omitempty"`
	Rating        float64       `bson:"rating" json:"rating"`
	PriceRange    PriceRange    `bson:"priceRange,omitempty" json:"priceRange,omitempty"`
	PricePerNight float64       `bson:"pricePerNight,omitempty" json:"pricePerNight,omitempty"`
	Cuisine       []string      `bson:"cuisine,omitempty" json:"cuisine,omitempty"`
	Amenities     []string      `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Website       string        `bson:"website,omitempty" json:"website,omitempty"`
	IsActive      bool          `bson:"isActive" json:"isActive"`
}

// CatalogFilter narrows a catalog query.
type CatalogFilter struct {
	Kind       CandidateKind
	City       string
	MinRating  float64
	PriceRange PriceRange
	Cuisine    string
	Limit      int64
}

// Route is the routing provider's answer for an origin/destination pair.
// Origin and Destination are the resolved addresses; the Requested fields
// keep the query as the caller typed it.
type Route struct {
	Origin               string  `json:"origin"`
	Destination          string  `json:"destination"`
	RequestedOrigin      string  `json:"requestedOrigin,omitempty"`
	RequestedDestination string  `json:"requestedDestination,omitempty"`
	DistanceKm           float64 `json:"distance"`
	DurationMin          float64 `json:"estimatedDuration"`
}
