package models

import (
	"encoding/json"
	"testing"
)

func TestFeedResponse_RetainsRawBody(t *testing.T) {
	raw := `{"data": {"feedItems": []}, "extra": "kept"}`

	var resp FeedResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if string(resp.Raw) != raw {
		t.Errorf("Raw = %q; want original body", string(resp.Raw))
	}
}

func TestStoreRating_TextWinsOverRatingValue(t *testing.T) {
	var rating StoreRating
	if err := json.Unmarshal([]byte(`{"text": "4.8", "ratingValue": 4.75}`), &rating); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if rating.Value != "4.8" {
		t.Errorf("Value = %q; want 4.8", rating.Value)
	}
}

func TestStoreRating_StringRatingValue(t *testing.T) {
	var rating StoreRating
	if err := json.Unmarshal([]byte(`{"ratingValue": "4.5"}`), &rating); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if rating.Value != "4.5" {
		t.Errorf("Value = %q; want 4.5", rating.Value)
	}
}

func TestStoreMeta_ToleratesNonObjectEntries(t *testing.T) {
	var store Store
	raw := `{"title": {"text": "Tolerant"}, "meta": ["stray string", {"text": "ok", "badgeType": "FARE"}]}`
	if err := json.Unmarshal([]byte(raw), &store); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if len(store.Meta) != 2 {
		t.Fatalf("Expected 2 meta entries, got %d", len(store.Meta))
	}
	if store.Meta[0].Text != "" || store.Meta[0].BadgeType != "" {
		t.Errorf("Expected zero-value entry for non-object metadata, got %+v", store.Meta[0])
	}
	if store.Meta[1].Text != "ok" {
		t.Errorf("Expected second entry decoded, got %+v", store.Meta[1])
	}
}
