package shopifyclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	shopifydomain "github.com/zyra-app/zyra-api/infrastructure/integrator/shopify/domain"
	"github.com/zyra-app/zyra-api/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Shopify: config.Shopify{
			ShopDomain:  "zyra-store.myshopify.com",
			AccessToken: "shpat_test_token",
			APIVersion:  "2024-10",
		},
	}
}

func newTestClient(baseURL string) *ShopifyClient {
	return &ShopifyClient{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		config:     testConfig(),
		baseURL:    baseURL,
	}
}

func TestShopifyClient_CreateProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin/api/2024-10/products.json", r.URL.Path)
		assert.Equal(t, "shpat_test_token", r.Header.Get("X-Shopify-Access-Token"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload shopifydomain.ProductPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Organic Cotton T-Shirt", payload.Product.Title)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(shopifydomain.ProductResponse{
			Product: shopifydomain.CreatedProduct{
				ID:     880123,
				Title:  "Organic Cotton T-Shirt",
				Status: "active",
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	response, err := client.CreateProduct(shopifydomain.ProductPayload{
		Product: shopifydomain.ProductBody{
			Title:  "Organic Cotton T-Shirt",
			Status: "active",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(880123), response.Product.ID)
	assert.Equal(t, "active", response.Product.Status)
}

func TestShopifyClient_CreateProduct_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	response, err := client.CreateProduct(shopifydomain.ProductPayload{})

	assert.Error(t, err)
	assert.Nil(t, response)
	assert.Contains(t, err.Error(), "401")
}

func TestShopifyClient_CreateProduct_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	response, err := client.CreateProduct(shopifydomain.ProductPayload{})

	assert.Error(t, err)
	assert.Nil(t, response)
}
