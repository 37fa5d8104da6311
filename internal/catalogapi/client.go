package catalogapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/five82/storefront/internal/catalog"
)

// ErrEmptyResponse is returned when an endpoint answers with a zero-length list.
var ErrEmptyResponse = errors.New("empty response")

// Client talks to the remote product API.
type Client struct {
	baseURL        *url.URL
	http           *http.Client
	userAgent      string
	productsPath   string
	categoriesPath string
	validate       *validator.Validate
}

const (
	DefaultBaseURL        = "https://fakestoreapi.com"
	DefaultProductsPath   = "/products"
	DefaultCategoriesPath = "/products/categories"
	defaultUserAgent      = "storefront/0.1"
)

// Options configures a Client. Zero values select the defaults.
type Options struct {
	BaseURL        string
	ProductsPath   string
	CategoriesPath string
	// Timeout bounds each request. Zero leaves requests unbounded.
	Timeout time.Duration
	// HTTPClient overrides the transport; Timeout is ignored when set.
	HTTPClient *http.Client
}

// NewClient builds a Client for the given options.
func NewClient(opts Options) (*Client, error) {
	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	return &Client{
		baseURL:        base,
		http:           httpClient,
		userAgent:      defaultUserAgent,
		productsPath:   pathOrDefault(opts.ProductsPath, DefaultProductsPath),
		categoriesPath: pathOrDefault(opts.CategoriesPath, DefaultCategoriesPath),
		validate:       validator.New(),
	}, nil
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// FetchProducts retrieves and validates the product list.
func (c *Client) FetchProducts(ctx context.Context) ([]catalog.Product, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Product
	if err := c.do(ctx, http.MethodGet, c.productsPath, &payload); err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("api %s: %w", c.productsPath, ErrEmptyResponse)
	}
	products := make([]catalog.Product, 0, len(payload))
	for i, p := range payload {
		if err := c.validate.Struct(p); err != nil {
			return nil, fmt.Errorf("invalid product at index %d: %w", i, err)
		}
		products = append(products, p.ToCatalog())
	}
	return products, nil
}

// FetchCategories retrieves the category labels.
func (c *Client) FetchCategories(ctx context.Context) ([]string, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []string
	if err := c.do(ctx, http.MethodGet, c.categoriesPath, &payload); err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("api %s: %w", c.categoriesPath, ErrEmptyResponse)
	}
	if err := c.validate.Var(payload, "dive,required"); err != nil {
		return nil, fmt.Errorf("invalid categories: %w", err)
	}
	return payload, nil
}

func (c *Client) do(ctx context.Context, method, path string, dest any) error {
	rel, err := url.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return fmt.Errorf("parse path %q: %w", path, err)
	}
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("api %s returned status %d", path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// parseBaseURL normalizes the API root so relative endpoint paths resolve
// beneath it, e.g. "example.com/api" becomes "http://example.com/api/".
func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api url %q: missing host", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

func pathOrDefault(path, def string) string {
	if p := strings.TrimSpace(path); p != "" {
		return p
	}
	return def
}
