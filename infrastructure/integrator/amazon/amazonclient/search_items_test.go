package amazonclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cookaing-api/infrastructure/cache"
	amazondomain "github.com/vfg2006/cookaing-api/infrastructure/integrator/amazon/domain"
	"github.com/vfg2006/cookaing-api/internal/config"
)

const searchItemsOK = `{
  "SearchResult": {
    "TotalResultCount": 1,
    "Items": [{
      "ASIN": "B0TEST",
      "DetailPageURL": "https://www.amazon.com/dp/B0TEST?tag=cookaing-20",
      "ItemInfo": {
        "Title": {"DisplayValue": "Vegan Cookbook"},
        "Classifications": {"ProductGroup": {"DisplayValue": "Book"}}
      },
      "Offers": {"Listings": [{"Price": {"Amount": 19.99, "Currency": "USD", "DisplayAmount": "$19.99"}}]}
    }]
  }
}`

func testConfig(host string) config.Amazon {
	return config.Amazon{
		AccessKey:   "AKIDEXAMPLE",
		SecretKey:   "secret",
		PartnerTag:  "cookaing-20",
		Host:        host,
		Region:      "us-east-1",
		Marketplace: "www.amazon.com",
		Timeout:     2 * time.Second,
	}
}

func TestSearchItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, searchItemsPath, r.URL.Path)
		assert.Equal(t, searchItemsTarget, r.Header.Get("X-Amz-Target"))
		assert.True(t, strings.HasPrefix(r.Header.Get("Authorization"), "AWS4-HMAC-SHA256 Credential=AKIDEXAMPLE/"))
		assert.Contains(t, r.Header.Get("Authorization"), "/us-east-1/ProductAdvertisingAPI/aws4_request")
		assert.NotEmpty(t, r.Header.Get("X-Amz-Date"))

		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), `"Keywords":"vegan cookbook"`)
		assert.Contains(t, string(body), `"PartnerTag":"cookaing-20"`)
		assert.Contains(t, string(body), `"ItemCount":3`)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(searchItemsOK))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), nil)

	items, err := client.SearchItems(context.Background(), "vegan cookbook", 3)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "B0TEST", items[0].ASIN)
	assert.Equal(t, "Vegan Cookbook", items[0].Title())
	amount, ok := items[0].PriceAmount()
	assert.True(t, ok)
	assert.Equal(t, 19.99, amount)
}

func TestSearchItems_Errors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantErr   bool
		wantItems int
		throttled bool
	}{
		{
			name:    "Credenciais inválidas",
			status:  http.StatusUnauthorized,
			body:    `{"Errors":[{"Code":"InvalidSignature","Message":"assinatura inválida"}]}`,
			wantErr: true,
		},
		{
			name:      "Limite de requisições",
			status:    http.StatusTooManyRequests,
			body:      `{"Errors":[{"Code":"TooManyRequests","Message":"limite"}]}`,
			wantErr:   true,
			throttled: true,
		},
		{
			name:      "Sem resultados não é erro",
			status:    http.StatusNotFound,
			body:      `{"Errors":[{"Code":"NoResults","Message":"nada encontrado"}]}`,
			wantItems: 0,
		},
		{
			name:    "Resposta não JSON",
			status:  http.StatusBadGateway,
			body:    `<html>bad gateway</html>`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(testConfig(server.URL), nil)
			items, err := client.SearchItems(context.Background(), "pan", 3)

			if tt.wantErr {
				require.Error(t, err)
				var apiErr *amazondomain.APIError
				if tt.throttled {
					require.ErrorAs(t, err, &apiErr)
					assert.True(t, apiErr.IsThrottled())
				}
				return
			}

			require.NoError(t, err)
			assert.Len(t, items, tt.wantItems)
		})
	}
}

func TestSearchItems_UsesCache(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(searchItemsOK))
	}))
	defer server.Close()

	mr := miniredis.RunT(t)
	redisClient, err := cache.Connect(context.Background(), mr.Addr())
	require.NoError(t, err)
	defer redisClient.Close()

	client := NewClient(testConfig(server.URL), cache.NewCatalogCache(redisClient, time.Hour))

	first, err := client.SearchItems(context.Background(), "Vegan Cookbook", 3)
	require.NoError(t, err)
	second, err := client.SearchItems(context.Background(), "vegan  cookbook", 3)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
