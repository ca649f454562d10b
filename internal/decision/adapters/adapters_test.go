package adapters

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"

	"inbank/pkg/requestcontext"
)

func TestPersonalCodeAdapter(t *testing.T) {
	v := NewPersonalCodeAdapter()
	assert.True(t, v.IsValid("37605030299"))
	assert.False(t, v.IsValid("37605030298"))
	assert.False(t, v.IsValid("not-a-code"))
}

func TestRequestClock(t *testing.T) {
	// 23:30 UTC on the 18th is already the 19th in Tallinn.
	now := time.Date(2026, time.October, 18, 23, 30, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), now)

	t.Run("nil location reads UTC", func(t *testing.T) {
		assert.Equal(t, civil.Date{Year: 2026, Month: time.October, Day: 18}, NewRequestClock(nil).Today(ctx))
	})

	t.Run("dates are taken in the configured zone", func(t *testing.T) {
		loc := time.FixedZone("EEST", 3*60*60)
		assert.Equal(t, civil.Date{Year: 2026, Month: time.October, Day: 19}, NewRequestClock(loc).Today(ctx))
	})
}
