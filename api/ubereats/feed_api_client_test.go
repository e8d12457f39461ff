package ubereats

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"eats-scraper/api"
	"eats-scraper/location"
	"eats-scraper/session"
)

func TestGetFeed(t *testing.T) {
	var received map[string]interface{}
	wantBody := `{
		"data": {
			"feedItems": [
				{
					"type": "REGULAR_STORE",
					"store": {
						"title": {"text": "Test Kitchen"},
						"actionUrl": "/store/test-kitchen/uuid-1",
						"rating": {"text": "4.5"},
						"priceBucket": "$$",
						"meta": []
					}
				}
			]
		}
	}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// method + path
		if r.Method != "POST" {
			t.Errorf("expected POST; got %s", r.Method)
		}
		if r.URL.Path != "/_p/api/getFeedV1" {
			t.Errorf("expected path /_p/api/getFeedV1; got %s", r.URL.Path)
		}

		// query args
		q := r.URL.Query()
		if q.Get("localeCode") != "ca" {
			t.Errorf("localeCode = %q; want ca", q.Get("localeCode"))
		}
		if q.Get("city") != "edmonton" {
			t.Errorf("city = %q; want edmonton", q.Get("city"))
		}
		if q.Get("state") != "AB" {
			t.Errorf("state = %q; want AB", q.Get("state"))
		}

		// headers
		if got := r.Header.Get("Cookie"); got != "jwt-session=abc; uev2.loc=xyz" {
			t.Errorf("Cookie = %q; want joined pairs", got)
		}
		if got := r.Header.Get("x-csrf-token"); got != "x" {
			t.Errorf("x-csrf-token = %q; want x", got)
		}
		if got := r.Header.Get("x-uber-client-gitref"); got != "web-eats-v2" {
			t.Errorf("x-uber-client-gitref = %q; want web-eats-v2", got)
		}

		// read+unmarshal body
		b, _ := ioutil.ReadAll(r.Body)
		json.Unmarshal(b, &received)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(wantBody))
	}))
	defer srv.Close()

	creds := session.Parse("jwt-session=abc; uev2.loc=xyz")
	loc := location.Resolve(nil, "Edmonton", "AB")
	client := NewFeedApiClient(api.NewHTTPClient(srv.URL), creds, loc)

	got, err := client.GetFeed("Edmonton", "Alberta")
	if err != nil {
		t.Fatal(err)
	}

	// request body carried the cache key and static paging block
	if _, ok := received["cacheKey"].(string); !ok {
		t.Errorf("body missing cacheKey: %v", received)
	}
	pageInfo, ok := received["pageInfo"].(map[string]interface{})
	if !ok || pageInfo["startTime"] != "0" || pageInfo["endTime"] != "0" {
		t.Errorf("pageInfo = %v; want startTime/endTime \"0\"", received["pageInfo"])
	}

	// response decoded correctly and raw body retained
	if len(got.Data.FeedItems) != 1 {
		t.Fatalf("feedItems = %d; want 1", len(got.Data.FeedItems))
	}
	if got.Data.FeedItems[0].Store.Title.Text != "Test Kitchen" {
		t.Errorf("store name = %q; want Test Kitchen", got.Data.FeedItems[0].Store.Title.Text)
	}
	if len(got.Raw) == 0 {
		t.Error("expected raw body to be retained")
	}
}

func TestGetFeed_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	creds := session.Parse("jwt-session=expired")
	loc := location.Resolve(nil, "Edmonton", "AB")
	client := NewFeedApiClient(api.NewHTTPClient(srv.URL), creds, loc)

	got, err := client.GetFeed("Edmonton", "AB")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if got != nil {
		t.Errorf("expected nil response, got %+v", got)
	}
}
