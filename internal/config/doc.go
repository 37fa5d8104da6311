// Package config loads the storefront configuration.
//
// # Resolution Order
//
// Load builds a Config in layers, later layers winning:
//
//  1. Built-in defaults (see Default)
//  2. The TOML file at the given path, or ~/.config/storefront/config.toml
//  3. STOREFRONT_* environment variables, read with envconfig
//
// A missing config file is not an error. Empty or whitespace-only values at
// any layer are ignored. LoadDotEnv can be called first to seed the
// environment from a .env file; it never overwrites variables that are
// already set.
//
// # TOML Format
//
//	api_url = "https://fakestoreapi.com"
//	products_path = "/products"
//	categories_path = "/products/categories"
//	request_timeout = "10s"   # empty or "0s" means no client-side timeout
//	log_file = "~/.local/state/storefront/storefront.log"   # "-" for stderr
//	log_level = "info"
//	currency = "$"
//
// # Environment Overrides
//
//   - STOREFRONT_API_URL
//   - STOREFRONT_PRODUCTS_PATH
//   - STOREFRONT_CATEGORIES_PATH
//   - STOREFRONT_REQUEST_TIMEOUT
//   - STOREFRONT_LOG_FILE
//   - STOREFRONT_LOG_LEVEL
//   - STOREFRONT_CURRENCY
//
// # Error Handling
//
// Load returns errors for unreadable files, invalid TOML, unparseable
// durations, negative timeouts and unknown log levels. Tilde expansion is
// applied to the config path and to log_file.
package config
