package db

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sync"
)

// MemoryRedisClient is an in-process RedisClient. It backs tests, and the
// scraper falls back to it when no Redis address is configured so a run
// never depends on external infrastructure.
type MemoryRedisClient struct {
	data    map[string]string
	geoData map[string]map[string]GeoLoc
	mu      sync.RWMutex
	context context.Context
}

// GeoLoc represents a geolocation with latitude and longitude.
type GeoLoc struct {
	Latitude  float64
	Longitude float64
}

// NewMemoryRedisClient initializes an empty in-memory store.
func NewMemoryRedisClient(ctx context.Context) *MemoryRedisClient {
	return &MemoryRedisClient{
		data:    make(map[string]string),
		geoData: make(map[string]map[string]GeoLoc),
		context: ctx,
	}
}

// Set stores a key-value pair.
func (m *MemoryRedisClient) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Get retrieves a value for a given key.
func (m *MemoryRedisClient) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, exists := m.data[key]
	if !exists {
		return "", fmt.Errorf("key not found: %s", key)
	}
	return value, nil
}

// AddLocationWithJSON records the member's coordinates and stores its
// payload as JSON, mirroring the real client.
func (m *MemoryRedisClient) AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %v", err)
	}

	if _, exists := m.geoData[geoKey]; !exists {
		m.geoData[geoKey] = make(map[string]GeoLoc)
	}
	m.geoData[geoKey][memberKey] = GeoLoc{Latitude: lat, Longitude: lon}

	m.data[memberKey] = string(jsonData)
	return nil
}

// GetLocationsWithinRadius returns the payloads of every member indexed
// under the key. Radius filtering is not simulated.
func (m *MemoryRedisClient) GetLocationsWithinRadius(key string, lat, lon, radius float64) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	geoMembers, exists := m.geoData[key]
	if !exists {
		return nil, nil
	}

	var results []string
	for memberKey := range geoMembers {
		if data, exists := m.data[memberKey]; exists {
			results = append(results, data)
		}
	}
	return results, nil
}

// Keys returns the stored keys matching the glob pattern.
func (m *MemoryRedisClient) Keys(pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matched []string
	for key := range m.data {
		ok, err := path.Match(pattern, key)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %v", pattern, err)
		}
		if ok {
			matched = append(matched, key)
		}
	}
	return matched, nil
}

// GetContext returns the client's context.
func (m *MemoryRedisClient) GetContext() context.Context {
	return m.context
}

// Ping always succeeds.
func (m *MemoryRedisClient) Ping() error {
	return nil
}
