package services

import (
	"log"

	"eats-scraper/config"
	"eats-scraper/models"
)

// ParseFeedResponse walks the feed and produces the normalized result set.
// A missing data block or feed-items list yields an empty set, not an
// error. Any EMPTY_STATE item means the location legitimately has zero
// results: it is logged and the scan stops immediately.
func ParseFeedResponse(response *models.FeedResponse) models.ResultSet {
	restaurants := models.ResultSet{}
	if response == nil {
		return restaurants
	}

	feedItems := response.Data.FeedItems

	for _, item := range feedItems {
		if item.Type == models.FeedItemTypeEmptyState {
			title := item.Title
			if title == "" {
				title = "No businesses available"
			}
			log.Printf("[FeedParser] API returned empty state: %s", title)
			log.Printf("[FeedParser] Subtitle: %s", item.Subtitle)
			return models.ResultSet{}
		}
	}

	for _, item := range feedItems {
		if item.Type != models.FeedItemTypeRegularStore {
			continue
		}
		store := item.Store
		if store == nil {
			continue
		}
		name := store.Title.Text
		if name == "" {
			continue
		}
		restaurants[name] = []models.RestaurantRecord{extractRecord(store)}
	}

	return restaurants
}

// extractRecord maps one store object to its flat record. The delivery
// cost comes from the FARE badge and the delivery time from the first ETD
// badge; every other non-empty metadata text joins the badge list, with
// non-ETD badge types appended in bracket notation.
func extractRecord(store *models.Store) models.RestaurantRecord {
	record := models.NewRestaurantRecord()

	if store.ActionURL != "" {
		record.StoreURL = config.UBER_EATS_ORIGIN + store.ActionURL
	}
	if store.Rating.Value != "" {
		record.Rating = store.Rating.Value
	}
	if store.PriceBucket != "" {
		record.PriceRange = store.PriceBucket
	}

	badges := []string{}
	for _, meta := range store.Meta {
		if meta.BadgeType == models.BadgeTypeFare && meta.Text != "" {
			record.DeliveryCost = meta.Text
		}
		if meta.Text != "" {
			badges = append(badges, meta.Text)
		}
		// ETD text is already surfaced as the delivery time.
		if meta.BadgeType != "" && meta.BadgeType != models.BadgeTypeETD {
			badges = append(badges, "["+meta.BadgeType+"]")
		}
	}

	for _, meta := range store.Meta {
		if meta.BadgeType == models.BadgeTypeETD {
			if meta.Text != "" {
				record.DeliveryTime = meta.Text
			}
			break
		}
	}

	filtered := []string{}
	for _, badge := range badges {
		if badge != models.NotAvailable {
			filtered = append(filtered, badge)
		}
	}
	record.DealsAndBadges = filtered

	return record
}
