package session

import (
	"fmt"
	"os"
	"strings"

	"eats-scraper/config"
)

// Cookie is a single name=value pair from the operator-supplied cookie string.
type Cookie struct {
	Name  string
	Value string
}

// Credentials holds the session cookies in the order they were supplied.
// They are read once at startup and never mutated.
type Credentials []Cookie

// Parse splits a semicolon-separated "name=value; name=value" cookie string.
// Malformed fragments without an '=' are dropped.
func Parse(raw string) Credentials {
	var creds Credentials
	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		eq := strings.Index(part, "=")
		if eq < 0 {
			continue
		}
		creds = append(creds, Cookie{
			Name:  strings.TrimSpace(part[:eq]),
			Value: strings.TrimSpace(part[eq+1:]),
		})
	}
	return creds
}

// FromEnv reads the UBER_EATS_COOKIES environment variable. An absent or
// empty variable is a hard precondition failure for the scraper.
func FromEnv() (Credentials, error) {
	raw := os.Getenv(config.COOKIES_ENV_VAR)
	if raw == "" {
		return nil, fmt.Errorf("environment variable %s not set", config.COOKIES_ENV_VAR)
	}
	creds := Parse(raw)
	if len(creds) == 0 {
		return nil, fmt.Errorf("environment variable %s contains no name=value pairs", config.COOKIES_ENV_VAR)
	}
	return creds, nil
}

// Get returns the value of the named cookie, or "" when it is not present.
func (c Credentials) Get(name string) string {
	for _, cookie := range c {
		if cookie.Name == name {
			return cookie.Value
		}
	}
	return ""
}

// CookieHeader joins all cookies into a single Cookie header value,
// preserving the order they were supplied in.
func (c Credentials) CookieHeader() string {
	pairs := make([]string, 0, len(c))
	for _, cookie := range c {
		pairs = append(pairs, cookie.Name+"="+cookie.Value)
	}
	return strings.Join(pairs, "; ")
}
