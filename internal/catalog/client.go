// Package catalog looks up sneaker reference data (names, SKUs, images)
// from an external catalog service. Lookups are best-effort: callers fall
// back to user-entered details when the catalog is down.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
)

var (
	ErrNotFound    = errors.New("catalog: product not found")
	ErrUnavailable = errors.New("catalog: service unavailable")
)

// Product is a catalog entry for a sneaker model
type Product struct {
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Image       string          `json:"image"`
	RetailPrice decimal.Decimal `json:"retail_price"`
}

type searchResponse struct {
	Products []Product `json:"products"`
}

// Client calls the catalog service over HTTP behind a circuit breaker
type Client struct {
	http    *resty.Client
	breaker *gobreaker.CircuitBreaker
}

func NewClient(baseURL string) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(5 * time.Second).
		SetRetryCount(0) // no automatic retries, the breaker handles failures

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "catalog",
		MaxRequests: 3,
		Interval:    15 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("[Catalog] Circuit breaker %s: %s -> %s", name, from, to)
		},
	})

	return &Client{http: httpClient, breaker: breaker}
}

// Search finds catalog entries matching a free-text query (name or SKU)
func (c *Client) Search(ctx context.Context, query string) ([]Product, error) {
	result, err := c.breaker.Execute(func() (any, error) {
		var body searchResponse
		resp, err := c.http.R().
			SetContext(ctx).
			SetQueryParam("query", query).
			SetResult(&body).
			Get("/v1/products")
		if err != nil {
			return nil, err
		}
		if resp.StatusCode() != http.StatusOK {
			return nil, fmt.Errorf("catalog: unexpected status %d", resp.StatusCode())
		}
		return body.Products, nil
	})
	if err != nil {
		return nil, wrapBreakerErr(err)
	}
	return result.([]Product), nil
}

// Lookup fetches a single catalog entry by SKU
func (c *Client) Lookup(ctx context.Context, sku string) (*Product, error) {
	result, err := c.breaker.Execute(func() (any, error) {
		var body Product
		resp, err := c.http.R().
			SetContext(ctx).
			SetResult(&body).
			Get("/v1/products/" + sku)
		if err != nil {
			return nil, err
		}
		switch resp.StatusCode() {
		case http.StatusOK:
			return &body, nil
		case http.StatusNotFound:
			return nil, ErrNotFound
		default:
			return nil, fmt.Errorf("catalog: unexpected status %d", resp.StatusCode())
		}
	})
	if err != nil {
		return nil, wrapBreakerErr(err)
	}
	return result.(*Product), nil
}

func wrapBreakerErr(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}
