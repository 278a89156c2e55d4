package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/products", r.URL.Path)
		assert.Equal(t, "panda", r.URL.Query().Get("query"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"products":[{"sku":"DD1391-100","name":"Dunk Low Panda","brand":"Nike","retail_price":"110"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	products, err := client.Search(context.Background(), "panda")

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "DD1391-100", products[0].SKU)
	assert.Equal(t, "Nike", products[0].Brand)
	assert.True(t, products[0].RetailPrice.Equal(decimal.NewFromInt(110)))
}

func TestClient_Lookup_Found(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/products/DD1391-100", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sku":"DD1391-100","name":"Dunk Low Panda","brand":"Nike"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	product, err := client.Lookup(context.Background(), "DD1391-100")

	require.NoError(t, err)
	assert.Equal(t, "Dunk Low Panda", product.Name)
}

func TestClient_Lookup_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Lookup(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_BreakerOpensAfterRepeatedFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	for i := 0; i < 10; i++ {
		_, _ = client.Lookup(context.Background(), "DD1391-100")
	}

	_, err := client.Lookup(context.Background(), "DD1391-100")
	assert.ErrorIs(t, err, ErrUnavailable)
}
