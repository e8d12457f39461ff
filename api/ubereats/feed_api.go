package ubereats

import (
	"eats-scraper/models"
)

// FeedAPI defines the interface for fetching the Uber Eats restaurant feed
type FeedAPI interface {
	GetFeed(city, state string) (*models.FeedResponse, error)
}
