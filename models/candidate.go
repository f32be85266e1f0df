package models

// SourceKind tells where a candidate came from.
type SourceKind string

const (
	SourceProvider SourceKind = "provider"
	SourceCatalog  SourceKind = "catalog"
)

// CandidateKind is the kind of point of interest a candidate describes.
type CandidateKind string

const (
	KindHotel      CandidateKind = "hotel"
	KindRestaurant CandidateKind = "restaurant"
	KindTransport  CandidateKind = "transport"
	KindActivity   CandidateKind = "activity"
)

// Location is a WGS84 position with an optional human readable address.
type Location struct {
	Latitude  float64 `bson:"latitude" json:"latitude" mapstructure:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude" mapstructure:"longitude"`
	Address   string  `bson:"address,omitempty" json:"address,omitempty" mapstructure:"address"`
}

// Candidate is one rankable point of interest after normalization.
type Candidate struct {
	ID           string        `bson:"id" json:"id"`
	Name         string        `bson:"name" json:"name"`
	Kind         CandidateKind `bson:"kind" json:"kind"`
	Source       SourceKind    `bson:"source" json:"source"`
	Rating       float64       `bson:"rating" json:"rating"`       // 0-5, missing ratings are 0
	PriceTier    int           `bson:"priceTier" json:"priceTier"` // 1-5
	Location     Location      `bson:"location" json:"location"`
	DistanceKm   float64       `bson:"distanceKm" json:"distanceKm"`
	CostEstimate float64       `bson:"costEstimate" json:"costEstimate"`
	Category     string        `bson:"category,omitempty" json:"category,omitempty"` // cuisine, amenity or mode
	Available    *bool         `bson:"available,omitempty" json:"available,omitempty"`
	Description  string        `bson:"description,omitempty" json:"description,omitempty"`
	Duration     string        `bson:"duration,omitempty" json:"duration,omitempty"`
	Amenities    []string      `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Link         string        `bson:"link,omitempty" json:"link,omitempty"`
	Provider     string        `bson:"provider,omitempty" json:"provider,omitempty"`
}

// IsAvailable treats an unknown availability as available.
func (c Candidate) IsAvailable() bool {
	return c.Available == nil || *c.Available
}
