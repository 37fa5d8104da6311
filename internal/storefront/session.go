package storefront

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/five82/storefront/internal/cart"
	"github.com/five82/storefront/internal/catalog"
	"github.com/five82/storefront/internal/logging"
)

// Fetcher is the remote source the Session loads from.
type Fetcher interface {
	FetchProducts(ctx context.Context) ([]catalog.Product, error)
	FetchCategories(ctx context.Context) ([]string, error)
}

// Options configure a Session. Zero values select the defaults.
type Options struct {
	Logger logrus.FieldLogger
	// Rand drives the featured pick. Nil uses a time-seeded generator.
	Rand *rand.Rand
	// FallbackProducts and FallbackCategories replace the bundled dataset.
	FallbackProducts   []catalog.Product
	FallbackCategories []string
	Currency           string
	Now                func() time.Time
}

// Snapshot is a consistent copy of the session state for rendering.
type Snapshot struct {
	Products    []catalog.Product
	Categories  []string
	Featured    catalog.Product
	HasFeatured bool

	Category string
	Query    string

	Cart      []cart.Item
	CartCount int
	CartTotal decimal.Decimal

	Loaded         bool
	Loading        bool
	APIUnavailable bool
	ShowAdvisory   bool

	LastProductsError   error
	LastCategoriesError error
	LastLoaded          time.Time
}

// Session owns every piece of mutable storefront state. All writes replace
// whole values under the lock, so Snapshot never observes a partial update.
type Session struct {
	mu sync.RWMutex

	fetcher  Fetcher
	log      logrus.FieldLogger
	rng      *rand.Rand
	now      func() time.Time
	currency string

	fallbackProducts   []catalog.Product
	fallbackCategories []string

	products    []catalog.Product
	categories  []string
	featured    catalog.Product
	hasFeatured bool

	category string
	query    string
	cart     cart.Cart

	loaded            bool
	loading           bool
	apiUnavailable    bool
	advisoryDismissed bool

	lastProductsErr   error
	lastCategoriesErr error
	lastLoaded        time.Time
}

// New builds a Session that loads from fetcher.
func New(fetcher Fetcher, opts Options) *Session {
	var log logrus.FieldLogger = logging.Discard()
	if opts.Logger != nil {
		log = opts.Logger
	}
	rng := opts.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	currency := opts.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	fallbackProducts := catalog.Clone(opts.FallbackProducts)
	if len(fallbackProducts) == 0 {
		fallbackProducts = catalog.FallbackProducts()
	}
	fallbackCategories := cloneStrings(opts.FallbackCategories)
	if len(fallbackCategories) == 0 {
		fallbackCategories = catalog.FallbackCategories()
	}
	return &Session{
		fetcher:            fetcher,
		log:                log,
		rng:                rng,
		now:                now,
		currency:           currency,
		fallbackProducts:   fallbackProducts,
		fallbackCategories: fallbackCategories,
		category:           catalog.AllCategories,
	}
}

// DefaultCurrency is the symbol used when Options.Currency is empty.
const DefaultCurrency = "$"

// Currency returns the display currency symbol.
func (s *Session) Currency() string {
	return s.currency
}

// LoadProducts replaces the catalog with the remote product list, or with the
// fallback dataset when the fetch fails or comes back empty. The loading flag
// is raised for the duration of the fetch.
func (s *Session) LoadProducts(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	products, err := s.fetchProducts(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.lastProductsErr = err
	if err != nil {
		s.log.WithError(err).WithField("source", "products").Warn("product fetch failed, using fallback dataset")
		s.products = catalog.Clone(s.fallbackProducts)
		s.apiUnavailable = true
		s.advisoryDismissed = false
		return
	}
	s.products = products
	s.apiUnavailable = false
	s.log.WithField("count", len(products)).Info("products loaded")
}

// LoadCategories replaces the category list with the remote one, or with the
// fallback list on failure. Category failures do not raise the advisory.
func (s *Session) LoadCategories(ctx context.Context) {
	categories, err := s.fetchCategories(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastCategoriesErr = err
	if err != nil {
		s.log.WithError(err).WithField("source", "categories").Warn("category fetch failed, using fallback list")
		s.categories = cloneStrings(s.fallbackCategories)
		return
	}
	s.categories = categories
	s.log.WithField("count", len(categories)).Info("categories loaded")
}

func (s *Session) fetchProducts(ctx context.Context) ([]catalog.Product, error) {
	if s.fetcher == nil {
		return nil, fmt.Errorf("no product source configured")
	}
	products, err := s.fetcher.FetchProducts(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("product source returned no products")
	}
	return catalog.Clone(products), nil
}

func (s *Session) fetchCategories(ctx context.Context) ([]string, error) {
	if s.fetcher == nil {
		return nil, fmt.Errorf("no category source configured")
	}
	categories, err := s.fetcher.FetchCategories(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("category source returned no categories")
	}
	return cloneStrings(categories), nil
}

// Start runs the startup sequence: products, then categories, then the
// featured pick. Each step waits for the previous one.
func (s *Session) Start(ctx context.Context) {
	s.LoadProducts(ctx)
	s.LoadCategories(ctx)
	s.PickFeatured()

	s.mu.Lock()
	s.loaded = true
	s.lastLoaded = s.now()
	s.mu.Unlock()
}

// Reload fetches products and categories again. The featured product is kept.
func (s *Session) Reload(ctx context.Context) {
	s.LoadProducts(ctx)
	s.LoadCategories(ctx)

	s.mu.Lock()
	s.lastLoaded = s.now()
	s.mu.Unlock()
}

// PickFeatured selects a random featured product from the current catalog.
func (s *Session) PickFeatured() (catalog.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.featured, s.hasFeatured = catalog.PickFeatured(s.rng, s.products)
	return s.featured, s.hasFeatured
}

// Featured returns the featured product, if any.
func (s *Session) Featured() (catalog.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.featured, s.hasFeatured
}

// Products returns a copy of the full catalog.
func (s *Session) Products() []catalog.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return catalog.Clone(s.products)
}

// Categories returns a copy of the category list.
func (s *Session) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneStrings(s.categories)
}

// Loading reports whether the product fetch is in flight.
func (s *Session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// APIUnavailable reports whether the catalog currently holds fallback data.
func (s *Session) APIUnavailable() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.apiUnavailable
}

// DismissAdvisory hides the fallback advisory until the next failed load.
func (s *Session) DismissAdvisory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.advisoryDismissed = true
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Products:            catalog.Clone(s.products),
		Categories:          cloneStrings(s.categories),
		Featured:            s.featured,
		HasFeatured:         s.hasFeatured,
		Category:            s.category,
		Query:               s.query,
		Cart:                s.cart.Items(),
		CartCount:           s.cart.Count(),
		CartTotal:           s.cart.Total(),
		Loaded:              s.loaded,
		Loading:             s.loading,
		APIUnavailable:      s.apiUnavailable,
		ShowAdvisory:        s.apiUnavailable && !s.advisoryDismissed,
		LastProductsError:   s.lastProductsErr,
		LastCategoriesError: s.lastCategoriesErr,
		LastLoaded:          s.lastLoaded,
	}
}

func cloneStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	dup := make([]string, len(values))
	copy(dup, values)
	return dup
}
