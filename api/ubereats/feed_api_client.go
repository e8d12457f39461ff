package ubereats

import (
	"errors"
	"log"

	"eats-scraper/api"
	"eats-scraper/config"
	"eats-scraper/location"
	"eats-scraper/models"
	"eats-scraper/session"
)

// FeedApiClient embeds the common HTTPClient
type FeedApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
	creds           session.Credentials
	loc             location.Location
}

// NewFeedApiClient creates a new instance of FeedApiClient for the given
// session cookies and resolved delivery location.
func NewFeedApiClient(httpClient *api.HTTPClient, creds session.Credentials, loc location.Location) *FeedApiClient {
	return &FeedApiClient{
		HTTPClient: httpClient,
		creds:      creds,
		loc:        loc,
	}
}

// GetFeed performs the single feed POST and decodes the response. All
// failure classes surface to the caller as an error (no response obtained);
// only the logging differs: HTTP status failures report code and reason
// (with credential-expiry guidance on 401), transport failures report the
// connection error, and malformed bodies are treated as a generic failure.
func (c *FeedApiClient) GetFeed(city, state string) (*models.FeedResponse, error) {
	endpoint := FeedEndpoint(city, state)
	body, err := BuildPostData(c.loc)
	if err != nil {
		return nil, err
	}

	var response models.FeedResponse
	err = c.Request("POST", endpoint, c.headers(), body, &response)
	if err != nil {
		c.logFailure(endpoint, err)
		return nil, err
	}
	return &response, nil
}

func (c *FeedApiClient) logFailure(endpoint string, err error) {
	var statusErr *api.StatusError
	var decodeErr *api.DecodeError
	switch {
	case errors.As(err, &statusErr):
		log.Printf("[FeedApiClient] HTTP error %d: %s (url: %s%s)", statusErr.Code, statusErr.Status, c.BaseURL, endpoint)
		if statusErr.Code == 401 {
			log.Println("[FeedApiClient] Session cookies may have expired. Re-extract them from a logged-in browser.")
		}
	case errors.As(err, &decodeErr):
		log.Printf("[FeedApiClient] Error decoding API response: %v", decodeErr)
	default:
		log.Printf("[FeedApiClient] Error making API request: %v", err)
	}
}

// headers returns the fixed browser-like request headers plus the Cookie
// header joined from the supplied credentials. The CSRF token is static;
// the endpoint does not validate it beyond presence.
func (c *FeedApiClient) headers() map[string]string {
	return map[string]string{
		"User-Agent":            "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
		"Accept":                "application/json",
		"Accept-Language":       "en-US,en;q=0.9",
		"x-csrf-token":          "x",
		"x-uber-client-gitref":  "web-eats-v2",
		"Origin":                config.UBER_EATS_ORIGIN,
		"Referer":               config.UBER_EATS_REFERER,
		"Cookie":                c.creds.CookieHeader(),
	}
}
