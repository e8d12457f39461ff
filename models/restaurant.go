package models

// NotAvailable is the sentinel for feed fields absent from a store entry.
const NotAvailable = "N/A"

// RestaurantRecord is the normalized per-restaurant extract of a feed item.
// JSON field names match the published output format.
type RestaurantRecord struct {
	DeliveryTime   string   `json:"Delivery Time"`
	DeliveryCost   string   `json:"Delivery Cost"`
	Rating         string   `json:"Rating"`
	PriceRange     string   `json:"Price Range"`
	DealsAndBadges []string `json:"Deals & Badges"`
	StoreURL       string   `json:"Store URL"`
}

// NewRestaurantRecord returns a record with the feed fields defaulted to
// the not-available sentinel, an empty (non-nil) badge list, and an empty
// store URL.
func NewRestaurantRecord() RestaurantRecord {
	return RestaurantRecord{
		DeliveryTime:   NotAvailable,
		DeliveryCost:   NotAvailable,
		Rating:         NotAvailable,
		PriceRange:     NotAvailable,
		DealsAndBadges: []string{},
	}
}

// ResultSet maps restaurant name to a single-element list holding its
// record. The list wrapper is part of the output shape; only one record is
// ever produced per name, and a later feed entry with the same name
// overwrites an earlier one.
type ResultSet map[string][]RestaurantRecord
