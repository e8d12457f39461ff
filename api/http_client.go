package api

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"eats-scraper/config"
)

// StatusError reports a non-2xx response, keeping the code and reason so
// callers can log them and special-case expired sessions (401).
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return "unexpected status code: " + e.Status
}

// DecodeError reports a 2xx response whose body was not valid JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed response body: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// HTTPClient struct to hold base URL and HTTP client configuration
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewHTTPClient creates a new instance of HTTPClient with certificate
// verification enabled and the fixed request deadline.
func NewHTTPClient(baseURL string) *HTTPClient {
	return newHTTPClient(baseURL, false)
}

// NewInsecureHTTPClient creates a client that skips TLS certificate and
// hostname verification. This is a deliberate, named opt-out carried over
// from the original tooling and is a security concern: it exposes the
// session cookies to man-in-the-middle interception. Never the default.
func NewInsecureHTTPClient(baseURL string) *HTTPClient {
	log.Println("[HTTPClient] TLS certificate verification is DISABLED for this connection")
	return newHTTPClient(baseURL, true)
}

func newHTTPClient(baseURL string, insecureSkipVerify bool) *HTTPClient {
	client := &http.Client{
		Timeout: config.FEED_REQUEST_TIMEOUT_SECONDS * time.Second,
	}
	if insecureSkipVerify {
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
	return &HTTPClient{
		BaseURL:    baseURL,
		HTTPClient: client,
	}
}

// Request makes an HTTP request to the API and decodes the response.
// Failures come back as one of three classes: *StatusError for a non-2xx
// status, *DecodeError for an unparsable body, and the transport error
// itself for connection/TLS/timeout failures.
func (c *HTTPClient) Request(method, endpoint string, headers map[string]string, body interface{}, response interface{}) error {
	var requestBody []byte
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return err
		}
		requestBody = jsonBody
	}

	url := c.BaseURL + endpoint
	req, err := http.NewRequest(method, url, bytes.NewBuffer(requestBody))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return &StatusError{Code: res.StatusCode, Status: res.Status}
	}

	if response != nil {
		if err := json.Unmarshal(resBody, response); err != nil {
			return &DecodeError{Err: err}
		}
	}

	return nil
}
