package services

import (
	"context"
	"log"

	"eats-scraper/api/ubereats"
	"eats-scraper/dao/redis"
	"eats-scraper/location"
	"eats-scraper/models"
	"eats-scraper/storage"
)

// ScraperService fetches a delivery feed, parses it into restaurant
// records, and optionally persists the result to the geo store and the
// raw-feed archive. The DAO and archive are both optional.
type ScraperService struct {
	feedAPI ubereats.FeedAPI
	dao     *redis.RestaurantDAO
	archive *storage.FeedArchive
	loc     location.Location
}

// NewScraperService constructs a ScraperService with its dependencies.
func NewScraperService(
	feedAPI ubereats.FeedAPI,
	dao *redis.RestaurantDAO,
	archive *storage.FeedArchive,
	loc location.Location) *ScraperService {

	return &ScraperService{
		feedAPI: feedAPI,
		dao:     dao,
		archive: archive,
		loc:     loc,
	}
}

// Scrape runs one full fetch-and-parse cycle for the given city and state.
// The raw response is returned alongside the parsed results so callers can
// dump it for inspection when the parse comes back empty.
func (ss *ScraperService) Scrape(city, state string) (models.ResultSet, *models.FeedResponse, error) {
	log.Printf("[ScraperService] Fetching feed for city=%q state=%q", city, state)

	response, err := ss.feedAPI.GetFeed(city, state)
	if err != nil {
		return nil, nil, err
	}

	results := ParseFeedResponse(response)
	log.Printf("[ScraperService] Parsed %d restaurants", len(results))

	ss.persist(city, state, results, response)

	return results, response, nil
}

// persist writes best-effort side artifacts; failures are logged, never fatal.
func (ss *ScraperService) persist(city, state string, results models.ResultSet, response *models.FeedResponse) {
	if ss.dao != nil && len(results) > 0 {
		if err := ss.dao.SetSnapshot(city, state, results); err != nil {
			log.Printf("[ScraperService] Failed to store feed snapshot: %v", err)
		}
		for name, records := range results {
			if len(records) == 0 {
				continue
			}
			if err := ss.dao.UpsertRestaurant(name, records[0], ss.loc.Latitude, ss.loc.Longitude); err != nil {
				log.Printf("[ScraperService] Upsert failed for %q: %v", name, err)
			}
		}
	}

	if ss.archive != nil && response != nil && len(response.Raw) > 0 {
		if err := ss.archive.StoreRawFeed(context.Background(), city, state, response.Raw); err != nil {
			log.Printf("[ScraperService] Failed to archive raw feed: %v", err)
		}
	}
}
