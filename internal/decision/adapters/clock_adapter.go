package adapters

import (
	"context"
	"time"

	"cloud.google.com/go/civil"

	"inbank/internal/decision/ports"
	"inbank/pkg/requestcontext"
)

// RequestClock implements ports.Clock on top of the request-scoped time set by
// the requesttime middleware, so every check within a request sees the same
// date. Outside HTTP it falls back to the wall clock.
type RequestClock struct {
	loc *time.Location
}

// NewRequestClock returns a clock that reads dates in loc. A nil loc means UTC.
func NewRequestClock(loc *time.Location) ports.Clock {
	if loc == nil {
		loc = time.UTC
	}
	return &RequestClock{loc: loc}
}

// Today returns the calendar date of the request in the clock's location.
func (c *RequestClock) Today(ctx context.Context) civil.Date {
	return civil.DateOf(requestcontext.Now(ctx).In(c.loc))
}
