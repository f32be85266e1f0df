package places

import (
	"context"
	"fmt"
	"time"

	"tripplanner/models"
	"tripplanner/utils"

	"github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const searchKeyPrefix = "places:search:"

// Searcher is the search operation CachedSearcher decorates.
type Searcher interface {
	Search(ctx context.Context, lat, lon float64, radiusMeters int, category string) ([]models.RawPlace, error)
}

// CachedSearcher is a read-through Redis cache in front of a Searcher.
// Cache errors never fail a search.
type CachedSearcher struct {
	next   Searcher
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedSearcher(next Searcher, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedSearcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedSearcher{next: next, client: client, ttl: ttl, logger: logger}
}

func searchKey(lat, lon float64, radiusMeters int, category string) string {
	return fmt.Sprintf("%s%s:%.4f:%.4f:%d", searchKeyPrefix, category, lat, lon, radiusMeters)
}

func (s *CachedSearcher) Search(ctx context.Context, lat, lon float64, radiusMeters int, category string) ([]models.RawPlace, error) {
	if s.client == nil {
		return s.next.Search(ctx, lat, lon, radiusMeters, category)
	}
	key := searchKey(lat, lon, radiusMeters, category)

	data, err := s.client.Get(ctx, key).Bytes()
	switch {
	case err == redis.Nil:
		utils.SearchCacheLookups.WithLabelValues("miss").Inc()
	case err != nil:
		utils.SearchCacheLookups.WithLabelValues("error").Inc()
		s.logger.Warn("Search cache read failed", zap.String("key", key), zap.Error(err))
	default:
		var places []models.RawPlace
		if err := json.Unmarshal(data, &places); err == nil {
			utils.SearchCacheLookups.WithLabelValues("hit").Inc()
			return places, nil
		}
		s.logger.Warn("Discarding corrupt search cache entry", zap.String("key", key))
	}

	places, err := s.next.Search(ctx, lat, lon, radiusMeters, category)
	if err != nil {
		return nil, err
	}

	b, err := json.Marshal(places)
	if err != nil {
		return places, nil
	}
	if err := s.client.Set(ctx, key, b, s.ttl).Err(); err != nil {
		s.logger.Warn("Search cache write failed", zap.String("key", key), zap.Error(err))
	}
	return places, nil
}
