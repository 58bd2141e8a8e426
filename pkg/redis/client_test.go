package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_InvalidURL(t *testing.T) {
	assert.Error(t, Init("not-a-url", ""))
}

func TestInit_AndPing(t *testing.T) {
	mr := miniredis.RunT(t)

	require.NoError(t, Init("redis://"+mr.Addr(), ""))
	require.NotNil(t, GetClient())

	assert.NoError(t, Ping(context.Background()))

	mr.Close()
	assert.Error(t, Ping(context.Background()))
}

func TestPing_NoClient(t *testing.T) {
	orig := GetClient()
	t.Cleanup(func() { SetClient(orig) })

	SetClient(nil)
	assert.Error(t, Ping(context.Background()))
}

func TestSetClient(t *testing.T) {
	orig := GetClient()
	t.Cleanup(func() { SetClient(orig) })

	mr := miniredis.RunT(t)
	c := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	SetClient(c)
	assert.Same(t, c, GetClient())
	assert.NoError(t, Ping(context.Background()))
}
