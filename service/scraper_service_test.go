package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"eats-scraper/dao/redis"
	"eats-scraper/db"
	"eats-scraper/location"
	"eats-scraper/models"
)

// stubFeedAPI returns a canned response or error.
type stubFeedAPI struct {
	response *models.FeedResponse
	err      error
}

func (s *stubFeedAPI) GetFeed(city, state string) (*models.FeedResponse, error) {
	return s.response, s.err
}

func stubFeed(t *testing.T, raw string) *models.FeedResponse {
	t.Helper()
	var resp models.FeedResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("failed to unmarshal test feed: %v", err)
	}
	return &resp
}

func TestScraperService_Scrape_Success(t *testing.T) {
	// Setup
	feed := stubFeed(t, `{
		"data": {
			"feedItems": [
				{
					"type": "REGULAR_STORE",
					"store": {
						"title": {"text": "Pho Binh Minh"},
						"rating": {"text": "4.7"}
					}
				}
			]
		}
	}`)

	client := db.NewMemoryRedisClient(context.Background())
	dao := redis.NewRestaurantDAO(client)
	loc := location.Resolve(nil, "Edmonton", "AB")
	service := NewScraperService(&stubFeedAPI{response: feed}, dao, nil, loc)

	// Act
	results, response, err := service.Scrape("Edmonton", "AB")

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if response == nil {
		t.Fatal("Expected raw response to be returned")
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 restaurant, got %d", len(results))
	}

	// Snapshot and geo index written as side effects
	snapshot, err := dao.GetSnapshot("Edmonton", "AB")
	if err != nil {
		t.Fatalf("Expected snapshot to be stored, got %v", err)
	}
	if snapshot["Pho Binh Minh"][0].Rating != "4.7" {
		t.Errorf("Snapshot rating = %q; want 4.7", snapshot["Pho Binh Minh"][0].Rating)
	}

	nearby, err := dao.GetNearbyRestaurants(0, 0, 10)
	if err != nil {
		t.Fatalf("GetNearbyRestaurants failed: %v", err)
	}
	if len(nearby) != 1 {
		t.Errorf("Expected 1 geo-indexed restaurant, got %d", len(nearby))
	}
}

func TestScraperService_Scrape_APIError(t *testing.T) {
	service := NewScraperService(&stubFeedAPI{err: errors.New("boom")}, nil, nil, location.Location{})

	results, response, err := service.Scrape("Edmonton", "AB")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if results != nil || response != nil {
		t.Errorf("Expected nil results and response, got %v, %v", results, response)
	}
}

func TestScraperService_Scrape_EmptyFeedSkipsSnapshot(t *testing.T) {
	feed := stubFeed(t, `{"data": {"feedItems": [{"type": "EMPTY_STATE", "title": "Nothing here"}]}}`)

	client := db.NewMemoryRedisClient(context.Background())
	dao := redis.NewRestaurantDAO(client)
	service := NewScraperService(&stubFeedAPI{response: feed}, dao, nil, location.Location{})

	results, response, err := service.Scrape("Edmonton", "AB")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected empty results, got %v", results)
	}
	if response == nil || len(response.Raw) == 0 {
		t.Error("Expected raw response retained for debugging")
	}

	if _, err := dao.GetSnapshot("Edmonton", "AB"); err == nil {
		t.Error("Expected no snapshot for empty results")
	}
}

func TestScraperService_Scrape_NoDAO(t *testing.T) {
	feed := stubFeed(t, `{
		"data": {
			"feedItems": [
				{"type": "REGULAR_STORE", "store": {"title": {"text": "Solo"}}}
			]
		}
	}`)

	service := NewScraperService(&stubFeedAPI{response: feed}, nil, nil, location.Location{})

	results, _, err := service.Scrape("Edmonton", "AB")
	if err != nil {
		t.Fatalf("Expected no error without DAO, got %v", err)
	}
	if len(results) != 1 {
		t.Errorf("Expected 1 restaurant, got %d", len(results))
	}
}
