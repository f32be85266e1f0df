package planner

import (
	"context"
	"errors"
	"fmt"

	"tripplanner/models"

	"go.uber.org/zap"
)

// CatalogLookup loads a single catalog entry by id.
type CatalogLookup interface {
	Get(ctx context.Context, kind models.CandidateKind, id string) (models.CatalogEntry, error)
}

// PlaceDetailer loads a single provider place by its place id.
type PlaceDetailer interface {
	Details(ctx context.Context, placeID string) (models.RawPlace, error)
}

// WithDetails enables lookups by id. Either collaborator may be nil.
func WithDetails(catalog CatalogLookup, places PlaceDetailer) Option {
	return func(p *Planner) {
		p.lookup = catalog
		p.detailer = places
	}
}

func (p *Planner) HotelDetails(ctx context.Context, id string) (models.Candidate, error) {
	return p.details(ctx, models.KindHotel, id)
}

func (p *Planner) RestaurantDetails(ctx context.Context, id string) (models.Candidate, error) {
	return p.details(ctx, models.KindRestaurant, id)
}

// details checks the catalog first and falls back to the place provider.
// Distances are reported from the place itself, so they are always zero.
func (p *Planner) details(ctx context.Context, kind models.CandidateKind, id string) (models.Candidate, error) {
	if id == "" {
		return models.Candidate{}, models.NewPlanError(models.CodeInvalidRequest, fmt.Sprintf("%s id is required", kind))
	}

	if p.lookup != nil {
		cctx, cancel := context.WithTimeout(ctx, p.timeout)
		entry, err := p.lookup.Get(cctx, kind, id)
		cancel()
		switch {
		case err == nil:
			if entry.Latitude != nil && entry.Longitude != nil {
				self := models.Location{Latitude: *entry.Latitude, Longitude: *entry.Longitude}
				if c, ok := fromCatalog(kind, self, entry, p.prices); ok {
					return c, nil
				}
			}
		case !errors.Is(err, models.ErrNotFound):
			p.logger.Warn("Catalog lookup failed", zap.String("kind", string(kind)), zap.String("id", id), zap.Error(err))
		}
	}

	if p.detailer == nil {
		return models.Candidate{}, models.NewPlanError(models.CodeNotFound, fmt.Sprintf("%s %s not found", kind, id))
	}
	cctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	raw, err := p.detailer.Details(cctx, id)
	if err != nil {
		return models.Candidate{}, err
	}
	if raw.Latitude != nil && raw.Longitude != nil {
		self := models.Location{Latitude: *raw.Latitude, Longitude: *raw.Longitude}
		if c, ok := fromProvider(kind, self, raw, p.prices); ok {
			return c, nil
		}
	}
	return models.Candidate{}, models.NewPlanError(models.CodeNotFound, fmt.Sprintf("%s %s has no usable location", kind, id))
}
