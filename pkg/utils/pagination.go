package utils

import (
	"net/url"
	"strconv"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ParsePagination reads limit/offset (or page) query params with sane bounds.
func ParsePagination(values url.Values) (limit, offset uint64) {
	limit = DefaultLimit
	page := uint64(1)

	if limitStr := values.Get("limit"); limitStr != "" {
		if l, err := strconv.ParseUint(limitStr, 10, 64); err == nil && l > 0 {
			if l > MaxLimit {
				limit = MaxLimit
			} else {
				limit = l
			}
		}
	}

	if pageStr := values.Get("page"); pageStr != "" {
		if p, err := strconv.ParseUint(pageStr, 10, 64); err == nil && p > 0 {
			page = p
		}
	}

	if offsetStr := values.Get("offset"); offsetStr != "" {
		if o, err := strconv.ParseUint(offsetStr, 10, 64); err == nil {
			offset = o
		}
	} else {
		offset = (page - 1) * limit
	}
	return limit, offset
}
