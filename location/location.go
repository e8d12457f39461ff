package location

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"strings"
)

// Address mirrors the address block carried inside the uev2.loc cookie.
type Address struct {
	Title                 string `json:"title"`
	Subtitle              string `json:"subtitle"`
	Address1              string `json:"address1"`
	Address2              string `json:"address2"`
	EaterFormattedAddress string `json:"eaterFormattedAddress"`
}

// CookieLocation is the decoded payload of the uev2.loc cookie.
type CookieLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   Address `json:"address"`
	Reference string  `json:"reference"`
}

// Location is the delivery location the feed request is built around,
// either taken from the cookie or synthesized from the CLI city/state.
type Location struct {
	Address   Address
	Latitude  float64
	Longitude float64
	Reference string
}

// provinceCodes maps Canadian province and territory names to their
// 2-letter codes.
var provinceCodes = map[string]string{
	"ALBERTA":               "AB",
	"BRITISH COLUMBIA":      "BC",
	"MANITOBA":              "MB",
	"NEW BRUNSWICK":         "NB",
	"NEWFOUNDLAND":          "NL",
	"NOVA SCOTIA":           "NS",
	"ONTARIO":               "ON",
	"PRINCE EDWARD ISLAND":  "PE",
	"QUEBEC":                "QC",
	"SASKATCHEWAN":          "SK",
	"YUKON":                 "YT",
	"NORTHWEST TERRITORIES": "NT",
	"NUNAVUT":               "NU",
}

// NormalizeState maps a state/province name to its 2-letter code. Unknown
// input longer than two characters is truncated to its first two characters;
// input of two characters or fewer passes through. Always uppercased.
func NormalizeState(state string) string {
	state = strings.ToUpper(strings.TrimSpace(state))
	if code, ok := provinceCodes[state]; ok {
		return code
	}
	if len(state) > 2 {
		return state[:2]
	}
	return state
}

// DecodeUEV2Loc decodes the percent-encoded JSON payload of the uev2.loc
// cookie. Decoding failures are non-fatal: a warning is logged and nil is
// returned so the caller can fall back to a placeholder location.
func DecodeUEV2Loc(encoded string) *CookieLocation {
	if encoded == "" {
		return nil
	}
	decoded, err := url.PathUnescape(encoded)
	if err != nil {
		log.Printf("[Location] Could not decode uev2.loc cookie: %v", err)
		return nil
	}
	var loc CookieLocation
	if err := json.Unmarshal([]byte(decoded), &loc); err != nil {
		log.Printf("[Location] Could not decode uev2.loc cookie: %v", err)
		return nil
	}
	return &loc
}

// Resolve produces the request Location. A cookie location carrying both
// coordinates wins verbatim; anything else yields a zero-coordinate
// placeholder titled "<city>, <state>", or "Unknown" when either is empty.
func Resolve(cookieLoc *CookieLocation, city, state string) Location {
	if cookieLoc != nil && cookieLoc.Latitude != 0 && cookieLoc.Longitude != 0 {
		return Location{
			Address:   cookieLoc.Address,
			Latitude:  cookieLoc.Latitude,
			Longitude: cookieLoc.Longitude,
			Reference: cookieLoc.Reference,
		}
	}

	title := "Unknown"
	if city != "" && state != "" {
		title = fmt.Sprintf("%s, %s", city, state)
	}
	// A cookie that decoded but lacked coordinates still contributes its
	// place reference.
	reference := ""
	if cookieLoc != nil {
		reference = cookieLoc.Reference
	}
	return Location{
		Address:   Address{Title: title},
		Reference: reference,
	}
}
