package panos

import (
	"strconv"
	"strings"

	"github.com/atomicstack/panoscope/internal/object"
)

// envelope mirrors the REST response wrapper:
//
//	{"@status": "success", "result": {"entry": [...]}}
//	{"code": 5, "message": "Object Not Present"}
type envelope struct {
	Status  string     `json:"@status"`
	Code    codeValue  `json:"code"`
	Ack     codeValue  `json:"@code"`
	Message string     `json:"message"`
	Result  *resultSet `json:"result"`
}

type resultSet struct {
	TotalCount codeValue `json:"@total-count"`
	Count      codeValue `json:"@count"`
	Entry      []entry   `json:"entry"`
}

type memberList struct {
	Member []string `json:"member"`
}

type entry struct {
	Name        string      `json:"@name"`
	Location    string      `json:"@location"`
	IPNetmask   string      `json:"ip-netmask"`
	IPRange     string      `json:"ip-range"`
	IPWildcard  string      `json:"ip-wildcard"`
	FQDN        string      `json:"fqdn"`
	Description string      `json:"description"`
	Tag         *memberList `json:"tag"`
	Static      *memberList `json:"static"`
	Dynamic     *struct {
		Filter string `json:"filter"`
	} `json:"dynamic"`
}

func (e entry) object() object.Object {
	obj := object.Object{
		Name:        e.Name,
		Location:    e.Location,
		IPNetmask:   e.IPNetmask,
		IPRange:     e.IPRange,
		IPWildcard:  e.IPWildcard,
		FQDN:        e.FQDN,
		Description: e.Description,
	}
	if e.Tag != nil {
		obj.Tags = append([]string(nil), e.Tag.Member...)
	}
	if e.Static != nil {
		obj.Members = append([]string{}, e.Static.Member...)
	}
	if e.Dynamic != nil {
		obj.DynamicFilter = e.Dynamic.Filter
	}
	return obj
}

// codeValue accepts a scalar sent as either a JSON number or a string.
type codeValue string

func (c *codeValue) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" || raw == "" {
		*c = ""
		return nil
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		*c = codeValue(unquoted)
		return nil
	}
	*c = codeValue(raw)
	return nil
}

func (c codeValue) String() string {
	return string(c)
}
