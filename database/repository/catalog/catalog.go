package catalogRepo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"tripplanner/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultLimit = 20

// CatalogRepository is the local inventory of hotels and restaurants.
type CatalogRepository interface {
	Query(ctx context.Context, filter models.CatalogFilter) ([]models.CatalogEntry, error)
	Get(ctx context.Context, kind models.CandidateKind, id string) (models.CatalogEntry, error)
	Upsert(ctx context.Context, entry models.CatalogEntry) error
}

type MongoCatalogRepo struct {
	coll *mongo.Collection
}

func NewMongoCatalogRepo(db *mongo.Database) *MongoCatalogRepo {
	return &MongoCatalogRepo{coll: db.Collection("catalog")}
}

// EnsureIndexes creates the indexes Query relies on.
func (r *MongoCatalogRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "kind", Value: 1}, {Key: "isActive", Value: 1}, {Key: "rating", Value: -1}}},
		{Keys: bson.D{{Key: "city", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create catalog indexes: %w", err)
	}
	return nil
}

// Query returns active entries matching the filter, best rated first.
func (r *MongoCatalogRepo) Query(ctx context.Context, filter models.CatalogFilter) ([]models.CatalogEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, buildFilter(filter), findOptions(filter))
	if err != nil {
		return nil, fmt.Errorf("catalog query failed: %w", err)
	}
	defer cursor.Close(ctx)

	entries := []models.CatalogEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode catalog entries: %w", err)
	}
	return entries, nil
}

// Get loads one active entry of the given kind.
func (r *MongoCatalogRepo) Get(ctx context.Context, kind models.CandidateKind, id string) (models.CatalogEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var entry models.CatalogEntry
	err := r.coll.FindOne(ctx, bson.M{"id": id, "kind": kind, "isActive": true}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.CatalogEntry{}, models.NewPlanError(models.CodeNotFound, fmt.Sprintf("%s %s not found", kind, id))
	}
	if err != nil {
		return models.CatalogEntry{}, fmt.Errorf("failed to load catalog entry %s: %w", id, err)
	}
	return entry, nil
}

func (r *MongoCatalogRepo) Upsert(ctx context.Context, entry models.CatalogEntry) error {
	if entry.ID == "" {
		return fmt.Errorf("catalog entry must have an id")
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx, bson.M{"id": entry.ID}, bson.M{"$set": entry}, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert catalog entry %s: %w", entry.ID, err)
	}
	return nil
}

func buildFilter(f models.CatalogFilter) bson.M {
	q := bson.M{"isActive": true}
	if f.Kind != "" {
		q["kind"] = f.Kind
	}
	if f.City != "" {
		q["city"] = bson.M{"$regex": "^" + regexp.QuoteMeta(f.City) + "$", "$options": "i"}
	}
	if f.MinRating > 0 {
		q["rating"] = bson.M{"$gte": f.MinRating}
	}
	if f.PriceRange != "" {
		q["priceRange"] = f.PriceRange
	}
	if f.Cuisine != "" {
		q["cuisine"] = bson.M{"$regex": "^" + regexp.QuoteMeta(f.Cuisine) + "$", "$options": "i"}
	}
	return q
}

func findOptions(f models.CatalogFilter) *options.FindOptions {
	limit := f.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	sort := bson.D{{Key: "rating", Value: -1}}
	if f.Kind == models.KindHotel {
		sort = append(sort, bson.E{Key: "pricePerNight", Value: 1})
	}
	return options.Find().SetLimit(limit).SetSort(sort)
}
