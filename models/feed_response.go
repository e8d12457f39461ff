package models

import (
	"encoding/json"
	"strconv"
)

// FeedResponse is the top-level JSON returned by POST /_p/api/getFeedV1.
// Raw keeps the undecoded body so an empty parse can still be persisted
// for post-mortem inspection.
type FeedResponse struct {
	Data FeedData `json:"data"`
	Raw  json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the feed while retaining the raw body.
func (r *FeedResponse) UnmarshalJSON(data []byte) error {
	type alias FeedResponse
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*r = FeedResponse(a)
	r.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// FeedData contains the list of feed items for the queried location.
type FeedData struct {
	FeedItems []FeedItem `json:"feedItems"`
}

// Feed item type tags. Only REGULAR_STORE items carry restaurant data;
// an EMPTY_STATE item signals zero results for the location.
const (
	FeedItemTypeRegularStore = "REGULAR_STORE"
	FeedItemTypeEmptyState   = "EMPTY_STATE"
)

// FeedItem is one element of the feed, discriminated by Type.
type FeedItem struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Store    *Store `json:"store"`
}

// Store is the nested store object of a REGULAR_STORE item.
type Store struct {
	Title       StoreTitle  `json:"title"`
	StoreUUID   string      `json:"storeUuid"`
	ActionURL   string      `json:"actionUrl"`
	Rating      StoreRating `json:"rating"`
	PriceBucket string      `json:"priceBucket"`
	Meta        []StoreMeta `json:"meta"`
}

// StoreTitle is the store name, which the feed delivers either as a plain
// string or as an object with a "text" field.
type StoreTitle struct {
	Text string
}

// UnmarshalJSON accepts both title shapes. Anything else decodes to an
// empty name, which the parser then skips.
func (t *StoreTitle) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		t.Text = s
		return nil
	}
	var obj struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		t.Text = obj.Text
		return nil
	}
	t.Text = ""
	return nil
}

// StoreRating is the store score. The feed carries either a display "text"
// or a numeric "ratingValue"; text wins when both are present.
type StoreRating struct {
	Value string
}

func (r *StoreRating) UnmarshalJSON(data []byte) error {
	var obj struct {
		Text        string          `json:"text"`
		RatingValue json.RawMessage `json:"ratingValue"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		r.Value = ""
		return nil
	}
	if obj.Text != "" {
		r.Value = obj.Text
		return nil
	}
	if len(obj.RatingValue) > 0 {
		var s string
		if err := json.Unmarshal(obj.RatingValue, &s); err == nil {
			r.Value = s
			return nil
		}
		var f float64
		if err := json.Unmarshal(obj.RatingValue, &f); err == nil {
			r.Value = strconv.FormatFloat(f, 'f', -1, 64)
			return nil
		}
	}
	r.Value = ""
	return nil
}

// StoreMeta is one badge entry in the store's metadata list.
type StoreMeta struct {
	Text      string `json:"text"`
	BadgeType string `json:"badgeType"`
}

// Badge type tags the parser treats specially.
const (
	BadgeTypeFare = "FARE"
	BadgeTypeETD  = "ETD"
)

// UnmarshalJSON tolerates non-object metadata entries by decoding them to
// the zero value instead of failing the whole feed.
func (m *StoreMeta) UnmarshalJSON(data []byte) error {
	type alias StoreMeta
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		*m = StoreMeta{}
		return nil
	}
	*m = StoreMeta(a)
	return nil
}
