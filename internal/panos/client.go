// Package panos talks to the PAN-OS / Panorama REST API object collections.
package panos

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/atomicstack/panoscope/internal/object"
	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
)

const (
	// KeyHeader carries the static API credential on every request.
	KeyHeader = "X-PAN-KEY"

	DefaultAPIVersion = "v11.0"
	DefaultLocation   = "shared"
)

// ErrNoBaseURL is returned by New when the console address is missing.
var ErrNoBaseURL = errors.New("panos: base URL is required")

// Options configures a Client.
type Options struct {
	BaseURL     string
	APIVersion  string
	Location    string
	APIKey      string
	Insecure    bool
	Timeout     time.Duration
	MinInterval time.Duration
	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// Client fetches Address and AddressGroup collections.
type Client struct {
	resty    *resty.Client
	version  string
	location string
	throttle *throttle
}

// New returns a Client for the configured console.
func New(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		return nil, ErrNoBaseURL
	}
	version := strings.TrimSpace(opts.APIVersion)
	if version == "" {
		version = DefaultAPIVersion
	}
	location := strings.TrimSpace(opts.Location)
	if location == "" {
		location = DefaultLocation
	}
	var rc *resty.Client
	if opts.HTTPClient != nil {
		rc = resty.NewWithClient(opts.HTTPClient)
	} else {
		rc = resty.New()
	}
	rc.SetBaseURL(base).
		SetHeader(KeyHeader, opts.APIKey).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "panoscope/1.0")
	if opts.Timeout > 0 {
		rc.SetTimeout(opts.Timeout)
	}
	if opts.Insecure {
		rc.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec // self-signed consoles
	}
	return &Client{
		resty:    rc,
		version:  version,
		location: location,
		throttle: newThrottle(opts.MinInterval),
	}, nil
}

// Find returns the objects of kind whose name matches exactly. An empty slice
// means no match.
func (c *Client) Find(ctx context.Context, kind object.Kind, name string) ([]object.Object, error) {
	return c.fetch(ctx, kind, map[string]string{"name": name})
}

// List returns every object of kind at the configured location.
func (c *Client) List(ctx context.Context, kind object.Kind) ([]object.Object, error) {
	return c.fetch(ctx, kind, nil)
}

func (c *Client) fetch(ctx context.Context, kind object.Kind, query map[string]string) ([]object.Object, error) {
	path, err := collectionPath(c.version, kind)
	if err != nil {
		return nil, err
	}
	if err := c.throttle.wait(ctx); err != nil {
		return nil, err
	}
	params := map[string]string{"location": c.location}
	for k, v := range query {
		params[k] = v
	}
	resp, err := c.resty.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", kind, err)
	}
	return decodeResponse(kind, resp.StatusCode(), resp.Body())
}

func collectionPath(version string, kind object.Kind) (string, error) {
	switch kind {
	case object.KindAddress:
		return fmt.Sprintf("/restapi/%s/Objects/Addresses", version), nil
	case object.KindAddressGroup:
		return fmt.Sprintf("/restapi/%s/Objects/AddressGroups", version), nil
	default:
		return "", fmt.Errorf("unsupported object kind %s", kind)
	}
}

// decodeResponse interprets a collection response. A 404 or an envelope
// without a result is an empty set; other failures are errors.
func decodeResponse(kind object.Kind, status int, body []byte) ([]object.Object, error) {
	if status == http.StatusNotFound {
		return nil, nil
	}
	var env envelope
	if len(body) > 0 {
		if err := sonic.Unmarshal(body, &env); err != nil {
			if status < 200 || status >= 300 {
				return nil, &APIError{Kind: kind, Status: status}
			}
			return nil, fmt.Errorf("decode %s response: %w", kind, err)
		}
	}
	if status < 200 || status >= 300 {
		return nil, &APIError{Kind: kind, Status: status, Code: env.Code.String(), Message: env.Message}
	}
	if env.Result == nil {
		if len(body) == 0 {
			return nil, fmt.Errorf("decode %s response: empty body", kind)
		}
		return nil, nil
	}
	objs := make([]object.Object, 0, len(env.Result.Entry))
	for _, e := range env.Result.Entry {
		objs = append(objs, e.object())
	}
	return objs, nil
}

// APIError describes a non-success HTTP response from the console.
type APIError struct {
	Kind    object.Kind
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "fetch %s: HTTP %d", e.Kind, e.Status)
	if text := http.StatusText(e.Status); text != "" {
		fmt.Fprintf(&b, " %s", text)
	}
	if e.Code != "" {
		fmt.Fprintf(&b, " (code %s)", e.Code)
	}
	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	return b.String()
}
