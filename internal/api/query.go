package api

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Query is an ordered set of query parameters. Unlike url.Values it
// preserves insertion order, so the encoded string is stable and matches
// the order keys were supplied in. Values are flat scalars only.
type Query struct {
	pairs []queryPair
}

type queryPair struct {
	key   string
	value string
}

// NewQuery returns an empty query.
func NewQuery() *Query {
	return &Query{}
}

// Set adds a key or updates it in place, keeping its original position.
// It returns the query for chaining.
func (q *Query) Set(key string, value any) *Query {
	v := formatScalar(value)
	for i := range q.pairs {
		if q.pairs[i].key == key {
			q.pairs[i].value = v
			return q
		}
	}
	q.pairs = append(q.pairs, queryPair{key: key, value: v})
	return q
}

// Get returns the value for key and whether it is present.
func (q *Query) Get(key string) (string, bool) {
	if q == nil {
		return "", false
	}
	for _, p := range q.pairs {
		if p.key == key {
			return p.value, true
		}
	}
	return "", false
}

// Len returns the number of pairs. A nil query has length zero.
func (q *Query) Len() int {
	if q == nil {
		return 0
	}
	return len(q.pairs)
}

// Encode serializes the query as "a=b&c=d" in insertion order, escaping
// reserved URL characters. Spaces encode as %20.
func (q *Query) Encode() string {
	if q.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range q.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(queryEscape(p.key))
		b.WriteByte('=')
		b.WriteString(queryEscape(p.value))
	}
	return b.String()
}

// queryEscape escapes like url.QueryEscape but keeps spaces as %20 rather
// than "+" so encoded values are also valid in other URL contexts.
func queryEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func formatScalar(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
