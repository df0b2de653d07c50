package panos

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/atomicstack/panoscope/internal/object"
	"github.com/atomicstack/panoscope/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, p *testutil.Panorama) *Client {
	t.Helper()
	c, err := New(Options{BaseURL: p.URL() + "/", APIKey: p.Key})
	require.NoError(t, err)
	return c
}

func TestNewRequiresBaseURL(t *testing.T) {
	_, err := New(Options{APIKey: "k"})
	assert.ErrorIs(t, err, ErrNoBaseURL)
}

func TestFindAddressSendsKeyAndFilters(t *testing.T) {
	p := testutil.NewPanorama(t, "secret")
	p.AddAddresses(testutil.Address("web-1", "10.0.0.1/32"), testutil.Address("web-2", "10.0.0.2/32"))
	c := newTestClient(t, p)

	objs, err := c.Find(context.Background(), object.KindAddress, "web-2")
	require.NoError(t, err)
	require.Len(t, objs, 1)
	assert.Equal(t, "web-2", objs[0].Name)
	assert.Equal(t, "10.0.0.2/32", objs[0].IPNetmask)

	reqs := p.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "Addresses", reqs[0].Collection)
	assert.Equal(t, "web-2", reqs[0].Name)
	assert.Equal(t, DefaultLocation, reqs[0].Location)
	assert.Equal(t, "secret", reqs[0].Key)
}

func TestFindMissingNameIsEmptyNotError(t *testing.T) {
	p := testutil.NewPanorama(t, "secret")
	c := newTestClient(t, p)

	objs, err := c.Find(context.Background(), object.KindAddressGroup, "nope")
	require.NoError(t, err)
	assert.Empty(t, objs)
	assert.Equal(t, 1, p.Count("AddressGroups"))
}

func TestListGroupsDecodesMembers(t *testing.T) {
	p := testutil.NewPanorama(t, "secret")
	p.AddGroups(testutil.Group("dmz", "web-1", "web-2"), testutil.Group("empty"))
	c := newTestClient(t, p)

	objs, err := c.List(context.Background(), object.KindAddressGroup)
	require.NoError(t, err)
	require.Len(t, objs, 2)
	assert.Equal(t, []string{"web-1", "web-2"}, objs[0].Members)
	assert.True(t, objs[1].IsGroup())
	assert.Empty(t, p.Requests()[0].Name)
}

func TestUnauthorizedIsAPIError(t *testing.T) {
	p := testutil.NewPanorama(t, "secret")
	c, err := New(Options{BaseURL: p.URL(), APIKey: "wrong"})
	require.NoError(t, err)

	_, err = c.List(context.Background(), object.KindAddress)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "16", apiErr.Code)
	assert.Contains(t, err.Error(), "Unauthorized")
}

func TestServerFailureIsAPIError(t *testing.T) {
	p := testutil.NewPanorama(t, "secret")
	p.FailCollection("Addresses", http.StatusInternalServerError)
	c := newTestClient(t, p)

	_, err := c.Find(context.Background(), object.KindAddress, "web-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestDecodeResponse(t *testing.T) {
	t.Run("malformed json", func(t *testing.T) {
		_, err := decodeResponse(object.KindAddress, http.StatusOK, []byte("{not json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode address response")
	})
	t.Run("missing result", func(t *testing.T) {
		objs, err := decodeResponse(object.KindAddress, http.StatusOK, []byte(`{"@status":"success"}`))
		require.NoError(t, err)
		assert.Empty(t, objs)
	})
	t.Run("empty body", func(t *testing.T) {
		_, err := decodeResponse(object.KindAddress, http.StatusOK, nil)
		require.Error(t, err)
	})
	t.Run("string counts and extra fields", func(t *testing.T) {
		body := `{"@status":"success","@code":"19","result":{"@total-count":"1","@count":"1","entry":[
			{"@name":"svc","fqdn":"svc.example.com","description":"api","tag":{"member":["prod"]}}]}}`
		objs, err := decodeResponse(object.KindAddress, http.StatusOK, []byte(body))
		require.NoError(t, err)
		require.Len(t, objs, 1)
		assert.Equal(t, "svc.example.com", objs[0].FQDN)
		assert.Equal(t, []string{"prod"}, objs[0].Tags)
		assert.False(t, objs[0].IsGroup())
	})
	t.Run("dynamic group", func(t *testing.T) {
		body := `{"result":{"entry":[{"@name":"dyn","dynamic":{"filter":"'web'"}}]}}`
		objs, err := decodeResponse(object.KindAddressGroup, http.StatusOK, []byte(body))
		require.NoError(t, err)
		require.Len(t, objs, 1)
		assert.Equal(t, "'web'", objs[0].DynamicFilter)
	})
}

func TestThrottleSpacesRequests(t *testing.T) {
	th := newThrottle(30 * time.Millisecond)
	ctx := context.Background()
	start := time.Now()
	require.NoError(t, th.wait(ctx))
	require.NoError(t, th.wait(ctx))
	assert.GreaterOrEqual(t, time.Since(start), 25*time.Millisecond)
}

func TestThrottleHonoursContext(t *testing.T) {
	th := newThrottle(time.Hour)
	require.NoError(t, th.wait(context.Background()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, th.wait(ctx), context.Canceled)
}

func TestDisabledThrottleNeverWaits(t *testing.T) {
	var th *throttle
	assert.NoError(t, th.wait(context.Background()))
	assert.NoError(t, newThrottle(0).wait(context.Background()))
}
