package render

import (
	"errors"
	"testing"

	"github.com/atomicstack/panoscope/internal/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderAddress(t *testing.T) {
	c := Render(object.Object{Name: "web", IPNetmask: "10.0.0.1/32", Members: []string{"ignored"}})
	assert.Equal(t, ModeAddress, c.Mode)
	assert.Equal(t, "web", c.Title)
	assert.Equal(t, []string{"IP: 10.0.0.1/32"}, c.Texts())
	assert.False(t, c.Bullet)
}

func TestRenderAddressList(t *testing.T) {
	c := Render(object.AddressList([]object.Object{
		{Name: "web", IPNetmask: "10.0.0.1/32"},
		{Name: "site", FQDN: "example.com"},
	}))
	assert.Equal(t, ModeAddressList, c.Mode)
	assert.Equal(t, "Addresses", c.Title)
	assert.Equal(t, []string{"web: 10.0.0.1/32", "site: N/A"}, c.Texts())
	assert.True(t, c.Bullet)
	for _, l := range c.Lines {
		assert.Empty(t, l.Link)
	}
}

func TestRenderAddressListPrefixesTitle(t *testing.T) {
	list := object.AddressList(nil)
	list.Name = "shared"
	c := Render(list)
	assert.Equal(t, "Addresses shared", c.Title)
	assert.Empty(t, c.Lines)
}

func TestRenderMembersAreLinks(t *testing.T) {
	c := Render(object.Group("dmz", []string{"web", "db"}))
	assert.Equal(t, ModeMembers, c.Mode)
	assert.Equal(t, "dmz", c.Title)
	require.Len(t, c.Lines, 2)
	assert.Equal(t, Line{Text: "web", Link: "web"}, c.Lines[0])
	assert.Equal(t, Line{Text: "db", Link: "db"}, c.Lines[1])
}

func TestRenderFallback(t *testing.T) {
	c := Render(object.Object{Name: "site", FQDN: "example.com", Tags: []string{"prod", "edge"}})
	assert.Equal(t, ModeRaw, c.Mode)
	assert.Equal(t, []string{"FQDN:  example.com", "Tags:  prod, edge"}, c.Texts())

	c = Render(object.NotFound("ghost"))
	assert.Equal(t, "ghost", c.Title)
	assert.Equal(t, []string{"Not found"}, c.Texts())

	c = Render(object.Failure(errors.New("dial tcp: refused")))
	assert.Equal(t, "Error", c.Title)
	assert.Equal(t, []string{"Error:    request failed", "Details:  dial tcp: refused"}, c.Texts())

	c = Render(object.Object{Name: "bare"})
	assert.Equal(t, []string{"No details available"}, c.Texts())
}

func TestPreview(t *testing.T) {
	cases := []struct {
		name string
		obj  object.Object
		want string
	}{
		{"address", object.Object{Name: "web", IPNetmask: "10.0.0.1"}, "IP: 10.0.0.1"},
		{"group", object.Group("dmz", []string{"a", "b"}), "Members: a, b"},
		{"not found", object.NotFound("ghost"), "Not found"},
		{"failure", object.Failure(errors.New("timeout")), "request failed: timeout"},
		{"fqdn", object.Object{Name: "site", FQDN: "example.com"}, "Address: example.com"},
		{"empty", object.Object{Name: "bare"}, "No details available"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Preview(tc.obj)
			require.Len(t, got, 3)
			assert.Equal(t, tc.obj.Name, got[0])
			assert.Empty(t, got[1])
			assert.Equal(t, tc.want, got[2])
		})
	}
}
