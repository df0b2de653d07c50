// Package testutil provides a fake Panorama REST endpoint for tests.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// Entry is one object served by the fake console, in wire form.
type Entry map[string]interface{}

// Address builds an address entry with an ip-netmask.
func Address(name, ip string) Entry {
	return Entry{"@name": name, "@location": "shared", "ip-netmask": ip}
}

// Group builds a static address group entry.
func Group(name string, members ...string) Entry {
	return Entry{"@name": name, "@location": "shared", "static": map[string]interface{}{"member": members}}
}

// Panorama is an httptest server that answers the Addresses and
// AddressGroups collections and records every request it sees.
type Panorama struct {
	Server *httptest.Server
	Key    string

	mu        sync.Mutex
	addresses []Entry
	groups    []Entry
	requests  []Request
	failures  map[string]int
}

// Request captures the collection and query of a served request.
type Request struct {
	Collection string
	Name       string
	Location   string
	Key        string
}

// NewPanorama starts a fake console that requires key in the X-PAN-KEY header.
func NewPanorama(t testing.TB, key string) *Panorama {
	t.Helper()
	p := &Panorama{Key: key, failures: map[string]int{}}
	p.Server = httptest.NewServer(http.HandlerFunc(p.serve))
	t.Cleanup(p.Server.Close)
	return p
}

// URL returns the base URL of the fake console.
func (p *Panorama) URL() string {
	return p.Server.URL
}

// AddAddresses registers address entries.
func (p *Panorama) AddAddresses(entries ...Entry) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.addresses = append(p.addresses, entries...)
}

// AddGroups registers address group entries.
func (p *Panorama) AddGroups(entries ...Entry) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.groups = append(p.groups, entries...)
}

// FailCollection makes the named collection answer with status until cleared.
func (p *Panorama) FailCollection(collection string, status int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failures[collection] = status
}

// Requests returns a copy of the requests served so far.
func (p *Panorama) Requests() []Request {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Request(nil), p.requests...)
}

// Count returns how many requests hit the collection.
func (p *Panorama) Count(collection string) int {
	n := 0
	for _, r := range p.Requests() {
		if r.Collection == collection {
			n++
		}
	}
	return n
}

func (p *Panorama) serve(w http.ResponseWriter, r *http.Request) {
	collection := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
	req := Request{
		Collection: collection,
		Name:       r.URL.Query().Get("name"),
		Location:   r.URL.Query().Get("location"),
		Key:        r.Header.Get("X-PAN-KEY"),
	}
	p.mu.Lock()
	p.requests = append(p.requests, req)
	status, failing := p.failures[collection]
	var source []Entry
	switch collection {
	case "Addresses":
		source = p.addresses
	case "AddressGroups":
		source = p.groups
	}
	matches := make([]Entry, 0, len(source))
	for _, e := range source {
		if req.Name == "" || e["@name"] == req.Name {
			matches = append(matches, e)
		}
	}
	p.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if req.Key != p.Key {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"code": 16, "message": "Unauthorized"})
		return
	}
	if failing {
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"code": 1, "message": "injected failure"})
		return
	}
	if collection != "Addresses" && collection != "AddressGroups" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if req.Name != "" && len(matches) == 0 {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"code": 5, "message": "Object Not Present"})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"@status": "success",
		"@code":   "19",
		"result": map[string]interface{}{
			"@total-count": len(matches),
			"@count":       len(matches),
			"entry":        matches,
		},
	})
}
