package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "filme:12", FilmeKey(12))
	assert.Equal(t, "cinema:3", CinemaKey(3))
}

func TestRedisCache_PrefixesKeys(t *testing.T) {
	c := &redisCache{prefix: "filmes"}
	assert.Equal(t, "filmes:filme:1", c.key(FilmeKey(1)))

	c.prefix = ""
	assert.Equal(t, "filme:1", c.key(FilmeKey(1)))
}

func TestRedisCache_DeleteWithoutKeysSkipsRedis(t *testing.T) {
	c := &redisCache{}
	assert.NoError(t, c.Delete(context.Background()))
}

func TestNoop(t *testing.T) {
	ctx := context.Background()
	var c Cache = Noop{}

	require.NoError(t, c.Set(ctx, "k", 1))

	var v int
	found, err := c.Get(ctx, "k", &v)
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, c.Delete(ctx, "k"))
}
