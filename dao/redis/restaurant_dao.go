package redis

import (
	"encoding/json"
	"fmt"
	"strings"

	"eats-scraper/db"
	"eats-scraper/models"
)

const RESTAURANTS_GEO_KEY_V1 = "restaurants_geo_v1"
const RESTAURANTS_GEO_PLACE_MEMBER_FORMAT_V1 = "restaurants_geo_place_v1:%s"

// FEED_SNAPSHOT_KEY_FORMAT caches whole scrape results per city and state.
const FEED_SNAPSHOT_KEY_FORMAT = "feed_snapshot_v1:%s_%s"

// RestaurantDAO handles restaurant operations using Redis.
type RestaurantDAO struct {
	client db.RedisClient
}

// NewRestaurantDAO initializes a RestaurantDAO with the Redis client.
func NewRestaurantDAO(client db.RedisClient) *RestaurantDAO {
	return &RestaurantDAO{client: client}
}

// sanitizeName turns a restaurant name into a stable member slug.
func sanitizeName(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(slug, " ", "-")
}

func snapshotKey(city, state string) string {
	return fmt.Sprintf(FEED_SNAPSHOT_KEY_FORMAT, strings.ToLower(city), state)
}

// UpsertRestaurant stores the restaurant in the geo index with its record
// as the JSON payload.
func (dao *RestaurantDAO) UpsertRestaurant(name string, record models.RestaurantRecord, lat, lon float64) error {
	ctx := dao.client.GetContext()
	memberKey := fmt.Sprintf(RESTAURANTS_GEO_PLACE_MEMBER_FORMAT_V1, sanitizeName(name))
	return dao.client.AddLocationWithJSON(ctx, RESTAURANTS_GEO_KEY_V1, memberKey, lat, lon, record)
}

// GetNearbyRestaurants retrieves restaurant records within a given radius (in km).
func (dao *RestaurantDAO) GetNearbyRestaurants(lat, lon, radius float64) ([]models.RestaurantRecord, error) {
	recordsJSON, err := dao.client.GetLocationsWithinRadius(RESTAURANTS_GEO_KEY_V1, lat, lon, radius)
	if err != nil {
		return nil, fmt.Errorf("[RestaurantDAO] failed to get restaurants: %v", err)
	}

	records := make([]models.RestaurantRecord, len(recordsJSON))
	for i, recordJSON := range recordsJSON {
		if err := json.Unmarshal([]byte(recordJSON), &records[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal restaurant JSON: %v", err)
		}
	}
	return records, nil
}

// SetSnapshot caches the full result set of a scrape for a city and state.
func (dao *RestaurantDAO) SetSnapshot(city, state string, results models.ResultSet) error {
	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot for %s, %s: %w", city, state, err)
	}
	if err := dao.client.Set(snapshotKey(city, state), string(data)); err != nil {
		return fmt.Errorf("failed to set snapshot in redis: %w", err)
	}
	return nil
}

// GetSnapshot retrieves the cached result set for a city and state.
func (dao *RestaurantDAO) GetSnapshot(city, state string) (models.ResultSet, error) {
	str, err := dao.client.Get(snapshotKey(city, state))
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot from redis: %w", err)
	}
	var results models.ResultSet
	if err := json.Unmarshal([]byte(str), &results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot JSON: %w", err)
	}
	return results, nil
}

// ListSnapshotKeys returns the city_state suffixes of all cached snapshots.
func (dao *RestaurantDAO) ListSnapshotKeys() ([]string, error) {
	pattern := fmt.Sprintf(FEED_SNAPSHOT_KEY_FORMAT, "*", "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshot keys: %w", err)
	}

	prefix := "feed_snapshot_v1:"
	suffixes := make([]string, 0, len(keys))
	for _, k := range keys {
		suffixes = append(suffixes, strings.TrimPrefix(k, prefix))
	}
	return suffixes, nil
}
