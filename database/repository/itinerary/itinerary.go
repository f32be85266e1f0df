package itineraryRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tripplanner/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const listLimit = 50

// ItineraryRepository persists generated itineraries.
type ItineraryRepository interface {
	Save(ctx context.Context, it models.Itinerary) (string, error)
	GetByID(ctx context.Context, id string) (models.Itinerary, error)
	ListByUser(ctx context.Context, userID string) ([]models.Itinerary, error)
}

type MongoItineraryRepo struct {
	coll *mongo.Collection
}

func NewMongoItineraryRepo(db *mongo.Database) *MongoItineraryRepo {
	return &MongoItineraryRepo{coll: db.Collection("itineraries")}
}

func (r *MongoItineraryRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create itinerary indexes: %w", err)
	}
	return nil
}

// Save inserts the itinerary and returns its id, assigning one if empty.
func (r *MongoItineraryRepo) Save(ctx context.Context, it models.Itinerary) (string, error) {
	if it.ID == "" {
		it.ID = uuid.New().String()
	}
	if it.CreatedAt.IsZero() {
		it.CreatedAt = time.Now().UTC()
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, it); err != nil {
		return "", fmt.Errorf("failed to save itinerary: %w", err)
	}
	return it.ID, nil
}

func (r *MongoItineraryRepo) GetByID(ctx context.Context, id string) (models.Itinerary, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var it models.Itinerary
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&it)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Itinerary{}, models.NewPlanError(models.CodeNotFound, fmt.Sprintf("itinerary %s not found", id))
	}
	if err != nil {
		return models.Itinerary{}, fmt.Errorf("failed to load itinerary %s: %w", id, err)
	}
	return it, nil
}

// ListByUser returns the user's itineraries, newest first.
func (r *MongoItineraryRepo) ListByUser(ctx context.Context, userID string) ([]models.Itinerary, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(listLimit)
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list itineraries: %w", err)
	}
	defer cursor.Close(ctx)

	out := []models.Itinerary{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode itineraries: %w", err)
	}
	return out, nil
}
