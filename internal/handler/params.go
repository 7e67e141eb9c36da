package handlers

import (
	"net/url"
	"strconv"
	"strings"
)

// queryString returns nil for a missing or blank parameter.
func queryString(q url.Values, key string) *string {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return nil
	}
	return &v
}

func queryInt64(q url.Values, key string) (*int64, bool) {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return nil, true
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return nil, false
	}
	return &n, true
}
