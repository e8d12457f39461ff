package ubereats

import (
	"fmt"

	"eats-scraper/config"
	"eats-scraper/models"
	"eats-scraper/util"
)

// FeedApiClientMock serves a canned feed response from disk instead of
// calling the live API.
type FeedApiClientMock struct {
}

// NewFeedApiClientMock creates a new instance of FeedApiClientMock
func NewFeedApiClientMock() *FeedApiClientMock {
	return &FeedApiClientMock{}
}

// GetFeed loads the static feed response fixture, ignoring city and state.
func (c *FeedApiClientMock) GetFeed(city, state string) (*models.FeedResponse, error) {
	response, err := util.ReadFeedResponseFromJSON(config.GetResourcePath(config.FEED_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read feed response from json")
		return nil, err
	}
	return response, nil
}
