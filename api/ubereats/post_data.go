package ubereats

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"eats-scraper/config"
	"eats-scraper/location"
)

// cacheKeySuffix is the literal pipe/slash-delimited tail the API requires
// after the base64 location blob. Any deviation yields an empty response.
const cacheKeySuffix = "/DELIVERY///0/0//[]///"

// cacheData is the JSON the cache key encodes: the delivery location plus
// fixed delivery-context constants. Field order matters for nothing but
// mirrors what the web client sends.
type cacheData struct {
	Address       location.Address `json:"address"`
	Latitude      float64          `json:"latitude"`
	Longitude     float64          `json:"longitude"`
	Reference     string           `json:"reference"`
	ReferenceType string           `json:"referenceType"`
	Type          string           `json:"type"`
	Source        string           `json:"source"`
}

// PageInfo carries the static paging block of the feed request.
type PageInfo struct {
	EndTime   string `json:"endTime"`
	StartTime string `json:"startTime"`
}

// FeedRequest is the POST body of the feed call.
type FeedRequest struct {
	CacheKey string   `json:"cacheKey"`
	PageInfo PageInfo `json:"pageInfo"`
}

// BuildCacheKey base64-encodes the location context and appends the
// required literal suffix. The key is rebuilt on every invocation.
func BuildCacheKey(loc location.Location) (string, error) {
	data := cacheData{
		Address:       loc.Address,
		Latitude:      loc.Latitude,
		Longitude:     loc.Longitude,
		Reference:     loc.Reference,
		ReferenceType: "google_places",
		Type:          "google_places",
		Source:        "user_autocomplete",
	}
	encoded, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal cache data: %w", err)
	}
	return base64.StdEncoding.EncodeToString(encoded) + cacheKeySuffix, nil
}

// BuildPostData assembles the feed request body for the given location.
func BuildPostData(loc location.Location) (FeedRequest, error) {
	cacheKey, err := BuildCacheKey(loc)
	if err != nil {
		return FeedRequest{}, err
	}
	return FeedRequest{
		CacheKey: cacheKey,
		PageInfo: PageInfo{EndTime: "0", StartTime: "0"},
	}, nil
}

// FeedEndpoint builds the feed path with the locale, lower-cased city and
// normalized state as query parameters.
func FeedEndpoint(city, state string) string {
	return fmt.Sprintf("%s?localeCode=%s&city=%s&state=%s",
		config.FEED_API_PATH,
		config.FEED_LOCALE_CODE,
		url.QueryEscape(strings.ToLower(city)),
		url.QueryEscape(location.NormalizeState(state)),
	)
}
