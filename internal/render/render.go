// Package render decides how a resolved object is presented inside a window
// and builds the text of the hover preview.
package render

import (
	"strings"

	"github.com/atomicstack/panoscope/internal/format/table"
	"github.com/atomicstack/panoscope/internal/object"
)

// Mode identifies which presentation rule matched an object.
type Mode int

const (
	ModeAddress Mode = iota
	ModeAddressList
	ModeMembers
	ModeRaw
)

func (m Mode) String() string {
	switch m {
	case ModeAddress:
		return "address"
	case ModeAddressList:
		return "address-list"
	case ModeMembers:
		return "members"
	default:
		return "raw"
	}
}

// AddressListLabel is prepended to the title of address list windows.
const AddressListLabel = "Addresses"

// NotAvailable stands in for an address entry without an IP/netmask.
const NotAvailable = "N/A"

// Line is one row of window content. Link is the object name the row opens,
// or empty when the row is plain text.
type Line struct {
	Text string
	Link string
}

// Content is the presentation of one object.
type Content struct {
	Mode   Mode
	Title  string
	Lines  []Line
	Bullet bool
}

// Texts returns the visible text of every line.
func (c Content) Texts() []string {
	out := make([]string, len(c.Lines))
	for i, l := range c.Lines {
		out[i] = l.Text
	}
	return out
}

// Render selects the first rule that applies to obj.
func Render(obj object.Object) Content {
	switch {
	case obj.IPNetmask != "":
		return Content{
			Mode:  ModeAddress,
			Title: obj.Name,
			Lines: []Line{{Text: "IP: " + obj.IPNetmask}},
		}
	case obj.Entries != nil:
		lines := make([]Line, len(obj.Entries))
		for i, e := range obj.Entries {
			ip := e.IPNetmask
			if ip == "" {
				ip = NotAvailable
			}
			lines[i] = Line{Text: e.Name + ": " + ip}
		}
		return Content{
			Mode:   ModeAddressList,
			Title:  strings.TrimSpace(AddressListLabel + " " + obj.Name),
			Lines:  lines,
			Bullet: true,
		}
	case obj.Members != nil:
		lines := make([]Line, len(obj.Members))
		for i, m := range obj.Members {
			lines[i] = Line{Text: m, Link: m}
		}
		return Content{
			Mode:   ModeMembers,
			Title:  obj.Name,
			Lines:  lines,
			Bullet: true,
		}
	default:
		return Content{Mode: ModeRaw, Title: obj.Name, Lines: raw(obj)}
	}
}

func raw(obj object.Object) []Line {
	if obj.IsNotFound() {
		return []Line{{Text: object.NotFoundMarker}}
	}
	rows := table.KeyValue([][2]string{
		{"Error", obj.Err},
		{"Details", obj.Details},
		{"IP range", obj.IPRange},
		{"Wildcard", obj.IPWildcard},
		{"FQDN", obj.FQDN},
		{"Filter", obj.DynamicFilter},
		{"Description", obj.Description},
		{"Tags", strings.Join(obj.Tags, ", ")},
		{"Location", obj.Location},
	})
	if len(rows) == 0 {
		return []Line{{Text: "No details available"}}
	}
	lines := make([]Line, len(rows))
	for i, r := range rows {
		lines[i] = Line{Text: r}
	}
	return lines
}

// Preview returns the hover bubble text for obj: the name, a blank line,
// then a one-line summary.
func Preview(obj object.Object) []string {
	lines := []string{obj.Name, ""}
	switch {
	case obj.IPNetmask != "":
		lines = append(lines, "IP: "+obj.IPNetmask)
	case obj.Members != nil:
		lines = append(lines, "Members: "+strings.Join(obj.Members, ", "))
	case obj.IsNotFound():
		lines = append(lines, object.NotFoundMarker)
	case obj.Err != "":
		summary := obj.Err
		if obj.Details != "" {
			summary += ": " + obj.Details
		}
		lines = append(lines, summary)
	case obj.Address() != "":
		lines = append(lines, "Address: "+obj.Address())
	default:
		lines = append(lines, "No details available")
	}
	return lines
}
