package utils

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrEmptyAddress is returned by [NormalizeBaseURL] for a blank address.
var ErrEmptyAddress = errors.New("empty address")

// UserAgent identifies the dashboard in outbound requests.
const UserAgent = "avatar-dashboard"

// HTTPClient is the resty client shared by the outbound adapters.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that sends UserAgent and
// accepts JSON by default.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", UserAgent).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}

// NewBaseURLClient returns an HTTPClient bound to the normalized rawURL.
// A non-zero timeout bounds every request made with the client.
func NewBaseURLClient(rawURL string, timeout time.Duration) (*HTTPClient, error) {
	baseURL, err := NormalizeBaseURL(rawURL)
	if err != nil {
		return nil, err
	}

	client := NewHTTPClient()
	client.SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return client, nil
}

// NormalizeBaseURL trims rawURL, defaults the scheme to http and strips the
// trailing slash. The result must contain both a scheme and a host.
func NormalizeBaseURL(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(rawURL, "://") {
		rawURL = "http://" + rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme: %q", rawURL)
	}

	return strings.TrimRight(u.String(), "/"), nil
}
