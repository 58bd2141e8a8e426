package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/volatiletech/null/v8"
)

func TestApiKey_Expired(t *testing.T) {
	now := time.Now()

	neverExpires := &ApiKey{}
	assert.False(t, neverExpires.Expired(now))

	future := &ApiKey{ExpiresAt: null.TimeFrom(now.Add(time.Hour))}
	assert.False(t, future.Expired(now))

	past := &ApiKey{ExpiresAt: null.TimeFrom(now.Add(-time.Hour))}
	assert.True(t, past.Expired(now))

	// Expiry instant itself counts as expired.
	exact := &ApiKey{ExpiresAt: null.TimeFrom(now)}
	assert.True(t, exact.Expired(now))
}

func TestUser_Roles(t *testing.T) {
	u := &User{Roles: []Role{{Name: "admin"}, {Name: "uploader"}}}

	assert.True(t, u.HasRole("admin"))
	assert.False(t, u.HasRole("viewer"))
	assert.Equal(t, []string{"admin", "uploader"}, u.RoleNames())
}
