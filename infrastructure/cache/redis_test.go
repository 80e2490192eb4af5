package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedItem struct {
	ASIN  string `json:"asin"`
	Title string `json:"title"`
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	t.Run("Endereço host:porta", func(t *testing.T) {
		client, err := Connect(context.Background(), mr.Addr())
		require.NoError(t, err)
		defer client.Close()
	})

	t.Run("URL redis://", func(t *testing.T) {
		client, err := Connect(context.Background(), "redis://"+mr.Addr()+"/0")
		require.NoError(t, err)
		defer client.Close()
	})

	t.Run("URL inválida", func(t *testing.T) {
		_, err := Connect(context.Background(), "redis://:::")
		assert.Error(t, err)
	})
}

func TestCatalogCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := Connect(context.Background(), mr.Addr())
	require.NoError(t, err)
	defer client.Close()

	cache := NewCatalogCache(client, time.Hour)
	ctx := context.Background()

	var items []cachedItem
	found, err := cache.Get(ctx, "vegan pan", &items)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, cache.Set(ctx, "Vegan  Pan", []cachedItem{{ASIN: "B01", Title: "Frigideira"}}))

	found, err = cache.Get(ctx, "vegan pan", &items)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []cachedItem{{ASIN: "B01", Title: "Frigideira"}}, items)

	mr.FastForward(2 * time.Hour)

	found, err = cache.Get(ctx, "vegan pan", &items)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCatalogKey(t *testing.T) {
	assert.Equal(t, "affiliate:catalog:vegan pan", CatalogKey("  Vegan\tPAN "))
}
