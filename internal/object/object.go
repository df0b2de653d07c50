// Package object defines the named firewall objects browsed by panoscope.
package object

import (
	"fmt"
	"strings"
)

// Kind identifies the REST collection an object was fetched from.
type Kind int

const (
	KindAddress Kind = iota
	KindAddressGroup
)

func (k Kind) String() string {
	switch k {
	case KindAddress:
		return "address"
	case KindAddressGroup:
		return "address-group"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// NotFoundMarker is the error marker carried by the not-found sentinel.
const NotFoundMarker = "Not found"

// Object is an Address, an AddressGroup, a synthetic list of addresses, or an
// error placeholder. Which fields are populated decides how it renders.
type Object struct {
	Name          string
	Location      string
	IPNetmask     string
	IPRange       string
	IPWildcard    string
	FQDN          string
	Description   string
	Tags          []string
	Members       []string
	DynamicFilter string
	Entries       []Object
	Err           string
	Details       string
}

// NotFound returns the sentinel for a name that matched neither collection.
func NotFound(name string) Object {
	return Object{Name: name, Err: NotFoundMarker}
}

// Failure wraps a transport or parse failure into a displayable object.
func Failure(err error) Object {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return Object{Name: "Error", Err: "request failed", Details: details}
}

// Group builds a static group object from a list of member names.
func Group(name string, members []string) Object {
	return Object{Name: name, Members: append([]string{}, members...)}
}

// AddressList builds the bootstrap list of address objects.
func AddressList(entries []Object) Object {
	dup := make([]Object, len(entries))
	copy(dup, entries)
	return Object{Entries: dup}
}

// Names returns the names of the provided objects in order.
func Names(objs []Object) []string {
	names := make([]string, 0, len(objs))
	for _, obj := range objs {
		names = append(names, obj.Name)
	}
	return names
}

// IsNotFound reports whether the object is the not-found sentinel.
func (o Object) IsNotFound() bool {
	return o.Err == NotFoundMarker
}

// IsGroup reports whether the object carries group membership.
func (o Object) IsGroup() bool {
	return o.Members != nil || o.DynamicFilter != ""
}

// Address returns the most specific address value available.
func (o Object) Address() string {
	for _, v := range []string{o.IPNetmask, o.IPRange, o.IPWildcard, o.FQDN} {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
