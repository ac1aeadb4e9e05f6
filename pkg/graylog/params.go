package graylog

import (
	"net/url"
	"strconv"
	"strings"
)

// SearchOptions carries the optional universal-search parameters shared by
// relative and absolute queries. Nil pointers and empty strings are left out
// of the request entirely, so the backend's own defaults apply.
type SearchOptions struct {
	// Limit caps the number of returned messages. The backend treats 0 as
	// "no messages, counts only".
	Limit *int
	// Offset skips that many messages from the start of the result.
	Offset *int
	// Sort orders results, in Graylog's "field:asc" / "field:desc" form.
	Sort string
	// Filter narrows the search, e.g. "streams:<id>".
	Filter string
	// Fields restricts which message fields the backend returns.
	Fields []string
	// Decorate controls whether message decorators run on the results.
	Decorate *bool
}

func (o *SearchOptions) apply(v url.Values) {
	if o.Limit != nil {
		v.Set("limit", strconv.Itoa(*o.Limit))
	}
	if o.Offset != nil {
		v.Set("offset", strconv.Itoa(*o.Offset))
	}
	if o.Sort != "" {
		v.Set("sort", o.Sort)
	}
	if o.Filter != "" {
		v.Set("filter", o.Filter)
	}
	if len(o.Fields) > 0 {
		v.Set("fields", strings.Join(o.Fields, ","))
	}
	if o.Decorate != nil {
		v.Set("decorate", strconv.FormatBool(*o.Decorate))
	}
}
