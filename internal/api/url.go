package api

import (
	"net/url"
	"strconv"
	"strings"
)

// segment is one positional path component. Absent optional segments are
// carried with present=false and dropped when the URL is built.
type segment struct {
	value   string
	present bool
}

func str(s string) segment { return segment{value: s, present: true} }

func num(n int) segment { return segment{value: strconv.Itoa(n), present: true} }

// optStr marks an empty string as an absent segment.
func optStr(s string) segment { return segment{value: s, present: s != ""} }

// optNum marks a non-positive number as an absent segment.
func optNum(n int) segment { return segment{value: strconv.Itoa(n), present: n > 0} }

// requestSpec is the ephemeral description of one request: ordered path
// segments plus an optional query. Built per call, consumed immediately.
type requestSpec struct {
	segments []segment
	query    *Query
}

// buildURL joins the present segments onto base and appends the encoded
// query. An absent segment contributes nothing, not an empty component, so
// the result never contains "//" or a trailing slash. Callers must order
// arguments so that a dropped interior segment does not shift a later one
// into its position. When the query is nil or empty the "?" is omitted
// entirely.
func buildURL(base string, segments []segment, query *Query) string {
	var b strings.Builder
	b.WriteString(base)
	for _, s := range segments {
		if !s.present {
			continue
		}
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s.value))
	}
	if query.Len() > 0 {
		b.WriteByte('?')
		b.WriteString(query.Encode())
	}
	return b.String()
}
