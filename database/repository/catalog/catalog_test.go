package catalogRepo

import (
	"context"
	"testing"

	"tripplanner/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestBuildFilter(t *testing.T) {
	assert.Equal(t, bson.M{"isActive": true}, buildFilter(models.CatalogFilter{}))

	q := buildFilter(models.CatalogFilter{
		Kind:       models.KindRestaurant,
		City:       "Goa (North)",
		MinRating:  4,
		PriceRange: models.PriceBudget,
		Cuisine:    "Goan",
	})
	assert.Equal(t, models.KindRestaurant, q["kind"])
	assert.Equal(t, bson.M{"$regex": `^Goa \(North\)$`, "$options": "i"}, q["city"])
	assert.Equal(t, bson.M{"$gte": 4.0}, q["rating"])
	assert.Equal(t, models.PriceBudget, q["priceRange"])
	assert.Equal(t, bson.M{"$regex": "^Goan$", "$options": "i"}, q["cuisine"])
}

func TestFindOptions(t *testing.T) {
	opts := findOptions(models.CatalogFilter{Kind: models.KindHotel})
	assert.Equal(t, int64(defaultLimit), *opts.Limit)
	assert.Equal(t, bson.D{{Key: "rating", Value: -1}, {Key: "pricePerNight", Value: 1}}, opts.Sort)

	opts = findOptions(models.CatalogFilter{Kind: models.KindRestaurant, Limit: 25})
	assert.Equal(t, int64(25), *opts.Limit)
	assert.Equal(t, bson.D{{Key: "rating", Value: -1}}, opts.Sort)
}

func TestMongoCatalogRepo_Query(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes entries", func(mt *mtest.T) {
		repo := &MongoCatalogRepo{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.catalog", mtest.FirstBatch,
			bson.D{{Key: "id", Value: "h1"}, {Key: "name", Value: "Casa"}, {Key: "rating", Value: 4.2}, {Key: "isActive", Value: true}},
		))

		entries, err := repo.Query(context.Background(), models.CatalogFilter{Kind: models.KindHotel})
		require.NoError(mt, err)
		require.Len(mt, entries, 1)
		assert.Equal(mt, "Casa", entries[0].Name)
		assert.Nil(mt, entries[0].Latitude)
	})

	mt.Run("upsert requires id", func(mt *mtest.T) {
		repo := &MongoCatalogRepo{coll: mt.Coll}
		assert.Error(mt, repo.Upsert(context.Background(), models.CatalogEntry{}))
	})

	mt.Run("get decodes entry", func(mt *mtest.T) {
		repo := &MongoCatalogRepo{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.catalog", mtest.FirstBatch,
			bson.D{{Key: "id", Value: "r1"}, {Key: "kind", Value: "restaurant"}, {Key: "name", Value: "Fisherman's Wharf"}, {Key: "isActive", Value: true}},
		))

		entry, err := repo.Get(context.Background(), models.KindRestaurant, "r1")
		require.NoError(mt, err)
		assert.Equal(mt, "Fisherman's Wharf", entry.Name)
	})

	mt.Run("get missing is not found", func(mt *mtest.T) {
		repo := &MongoCatalogRepo{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.catalog", mtest.FirstBatch))

		_, err := repo.Get(context.Background(), models.KindHotel, "nope")
		assert.ErrorIs(mt, err, models.ErrNotFound)
	})
}
