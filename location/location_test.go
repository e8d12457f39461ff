package location

import (
	"net/url"
	"testing"
)

func TestNormalizeState_ProvinceNames(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Alberta", "AB"},
		{"british columbia", "BC"},
		{"MANITOBA", "MB"},
		{"New Brunswick", "NB"},
		{"Newfoundland", "NL"},
		{"Nova Scotia", "NS"},
		{"Ontario", "ON"},
		{"Prince Edward Island", "PE"},
		{"Quebec", "QC"},
		{"Saskatchewan", "SK"},
		{"Yukon", "YT"},
		{"Northwest Territories", "NT"},
		{"Nunavut", "NU"},
		{"  ontario  ", "ON"},
	}

	for _, test := range tests {
		if got := NormalizeState(test.input); got != test.expected {
			t.Errorf("NormalizeState(%q) = %q; want %q", test.input, got, test.expected)
		}
	}
}

func TestNormalizeState_UnrecognizedTruncation(t *testing.T) {
	if got := NormalizeState("Texas"); got != "TE" {
		t.Errorf("NormalizeState(Texas) = %q; want TE", got)
	}
	if got := NormalizeState("ab"); got != "AB" {
		t.Errorf("NormalizeState(ab) = %q; want AB", got)
	}
	if got := NormalizeState("X"); got != "X" {
		t.Errorf("NormalizeState(X) = %q; want X", got)
	}
	if got := NormalizeState(""); got != "" {
		t.Errorf("NormalizeState(\"\") = %q; want empty", got)
	}
}

func TestDecodeUEV2Loc_Valid(t *testing.T) {
	raw := `{"latitude": 53.5, "longitude": -113.5, "address": {"title": "Edmonton, AB"}, "reference": "place-ref"}`
	encoded := url.PathEscape(raw)

	loc := DecodeUEV2Loc(encoded)
	if loc == nil {
		t.Fatal("expected decoded location, got nil")
	}
	if loc.Latitude != 53.5 || loc.Longitude != -113.5 {
		t.Errorf("coordinates = (%v, %v); want (53.5, -113.5)", loc.Latitude, loc.Longitude)
	}
	if loc.Address.Title != "Edmonton, AB" {
		t.Errorf("title = %q; want 'Edmonton, AB'", loc.Address.Title)
	}
	if loc.Reference != "place-ref" {
		t.Errorf("reference = %q; want 'place-ref'", loc.Reference)
	}
}

func TestDecodeUEV2Loc_Empty(t *testing.T) {
	if loc := DecodeUEV2Loc(""); loc != nil {
		t.Errorf("expected nil for empty cookie, got %+v", loc)
	}
}

func TestDecodeUEV2Loc_Malformed(t *testing.T) {
	if loc := DecodeUEV2Loc("%7Bnot-json"); loc != nil {
		t.Errorf("expected nil for malformed cookie, got %+v", loc)
	}
}

func TestResolve_CookieWins(t *testing.T) {
	cookieLoc := &CookieLocation{
		Latitude:  53.5,
		Longitude: -113.5,
		Address:   Address{Title: "Edmonton, AB"},
		Reference: "ref-123",
	}

	loc := Resolve(cookieLoc, "Calgary", "AB")
	if loc.Latitude != 53.5 || loc.Longitude != -113.5 {
		t.Errorf("coordinates = (%v, %v); want cookie coordinates", loc.Latitude, loc.Longitude)
	}
	if loc.Address.Title != "Edmonton, AB" {
		t.Errorf("title = %q; want cookie title", loc.Address.Title)
	}
	if loc.Reference != "ref-123" {
		t.Errorf("reference = %q; want ref-123", loc.Reference)
	}
}

func TestResolve_PlaceholderFromCityState(t *testing.T) {
	loc := Resolve(nil, "Edmonton", "AB")
	if loc.Address.Title != "Edmonton, AB" {
		t.Errorf("title = %q; want 'Edmonton, AB'", loc.Address.Title)
	}
	if loc.Latitude != 0 || loc.Longitude != 0 {
		t.Errorf("coordinates = (%v, %v); want (0, 0)", loc.Latitude, loc.Longitude)
	}
	if loc.Address.Subtitle != "" || loc.Address.Address1 != "" {
		t.Errorf("expected empty address subfields, got %+v", loc.Address)
	}
}

func TestResolve_UnknownWhenMissingCityOrState(t *testing.T) {
	if loc := Resolve(nil, "", "AB"); loc.Address.Title != "Unknown" {
		t.Errorf("title = %q; want Unknown", loc.Address.Title)
	}
	if loc := Resolve(nil, "Edmonton", ""); loc.Address.Title != "Unknown" {
		t.Errorf("title = %q; want Unknown", loc.Address.Title)
	}
}

func TestResolve_ZeroCoordinatesFallThrough(t *testing.T) {
	// A cookie without usable coordinates still contributes its reference.
	cookieLoc := &CookieLocation{
		Address:   Address{Title: "Somewhere"},
		Reference: "ref-zero",
	}

	loc := Resolve(cookieLoc, "Edmonton", "AB")
	if loc.Address.Title != "Edmonton, AB" {
		t.Errorf("title = %q; want placeholder title", loc.Address.Title)
	}
	if loc.Reference != "ref-zero" {
		t.Errorf("reference = %q; want ref-zero", loc.Reference)
	}
}
