// Package catalogapi provides an HTTP client for the remote product API.
//
// # Overview
//
// The storefront reads two endpoints from a Fake Store style API and never
// writes to it:
//
//   - GET /products: JSON array of product records
//   - GET /products/categories: JSON array of category labels
//
// Both paths are configurable and resolved relative to the base URL, so an
// API mounted under a prefix ("https://example.com/api") works unchanged.
//
// # Client Usage
//
//	client, err := catalogapi.NewClient(catalogapi.Options{BaseURL: cfg.APIURL})
//	if err != nil {
//		return fmt.Errorf("init catalog client: %w", err)
//	}
//
//	products, err := client.FetchProducts(ctx)
//	if err != nil {
//		// caller decides what to do: the storefront substitutes fallback data
//	}
//
// # Validation
//
// A response is accepted only as a whole. The client rejects:
//
//   - transport failures ("execute request: ...")
//   - non-2xx statuses ("api /products returned status 503")
//   - bodies that are not a JSON array of the expected shape ("decode response: ...")
//   - empty arrays or null (ErrEmptyResponse, use errors.Is)
//   - any record failing the validate tags on Product ("invalid product at index N: ...")
//
// Validation uses go-playground/validator; the tags on Product and Rating are
// the single description of what a usable record looks like.
//
// # Timeouts and Retries
//
// There is no retry logic. Requests carry the caller's context and are
// otherwise bounded only by Options.Timeout, which defaults to zero (no
// client-side deadline) so the transport's own behaviour applies.
//
// # Wire Types
//
// Product and Rating mirror the JSON payload and carry prices as float64.
// ToCatalog converts into catalog.Product, whose price is a decimal.Decimal;
// all arithmetic happens on the decimal side. FromCatalog goes the other way
// and is used by the local catalog server to publish its dataset.
package catalogapi
