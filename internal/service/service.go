// Package service implements the use cases behind the HTTP handlers.
// Services return the sentinels in errors.go; the HTTP layer maps them to status codes.
package service

import (
	"time"

	"newsapi/internal/repository"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

func utcNow() time.Time {
	return time.Now().UTC()
}

// pageQuery applies the listing defaults: non-positive limit means the default,
// limits above the cap are clamped and negative skips start from zero.
func pageQuery(limit, skip int) repository.PageQuery {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if skip < 0 {
		skip = 0
	}
	return repository.PageQuery{Limit: limit, Offset: skip}
}
