package storefront_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/storefront/internal/catalog"
	"github.com/five82/storefront/internal/catalogapi"
	"github.com/five82/storefront/internal/catalogsrv"
	"github.com/five82/storefront/internal/storefront"
)

var remoteProducts = []catalog.Product{
	{ID: 101, Title: "Desk Lamp", Price: decimal.RequireFromString("10"), Category: "home", Description: "Warm light", Rating: catalog.Rating{Rate: 4.2, Count: 12}},
	{ID: 102, Title: "Tea Mug", Price: decimal.RequireFromString("5"), Category: "kitchen", Description: "Holds tea", Rating: catalog.Rating{Rate: 3.5, Count: 40}},
	{ID: 103, Title: "Plant Pot", Price: decimal.RequireFromString("7.25"), Category: "home", Description: "Terracotta", Rating: catalog.Rating{Rate: 5, Count: 3}},
}

type fixture struct {
	remote  *catalogsrv.Server
	session *storefront.Session
	hook    *logtest.Hook
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	remote := catalogsrv.New(remoteProducts, nil, nil)
	srv := httptest.NewServer(remote.Router())
	t.Cleanup(srv.Close)

	client, err := catalogapi.NewClient(catalogapi.Options{BaseURL: srv.URL, Timeout: 2 * time.Second})
	require.NoError(t, err)

	logger, hook := logtest.NewNullLogger()
	session := storefront.New(client, storefront.Options{
		Logger: logger,
		Rand:   rand.New(rand.NewPCG(1, 2)),
		Now:    func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) },
	})
	return fixture{remote: remote, session: session, hook: hook}
}

func productIDs(products []catalog.Product) []int64 {
	out := make([]int64, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestStart_LoadsRemoteCatalog(t *testing.T) {
	f := newFixture(t)
	f.session.Start(context.Background())

	snap := f.session.Snapshot()
	assert.Equal(t, []int64{101, 102, 103}, productIDs(snap.Products))
	assert.Equal(t, []string{"home", "kitchen"}, snap.Categories)
	assert.True(t, snap.Loaded)
	assert.False(t, snap.Loading)
	assert.False(t, snap.APIUnavailable)
	assert.False(t, snap.ShowAdvisory)
	assert.NoError(t, snap.LastProductsError)
	require.True(t, snap.HasFeatured)
	assert.Contains(t, productIDs(snap.Products), snap.Featured.ID)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), snap.LastLoaded)
}

func TestLoadProducts_FallsBackOnFailureModes(t *testing.T) {
	for _, mode := range []catalogsrv.Mode{catalogsrv.ModeError, catalogsrv.ModeEmpty} {
		t.Run(string(mode), func(t *testing.T) {
			f := newFixture(t)
			f.remote.SetMode(mode)

			f.session.Start(context.Background())

			snap := f.session.Snapshot()
			assert.Equal(t, catalog.FallbackProducts(), snap.Products)
			assert.Equal(t, catalog.FallbackCategories(), snap.Categories)
			assert.True(t, snap.APIUnavailable)
			assert.True(t, snap.ShowAdvisory)
			assert.Error(t, snap.LastProductsError)
			assert.Error(t, snap.LastCategoriesError)

			var warnings []string
			for _, e := range f.hook.AllEntries() {
				if e.Level == logrus.WarnLevel {
					warnings = append(warnings, e.Data["source"].(string))
				}
			}
			assert.Equal(t, []string{"products", "categories"}, warnings)
		})
	}
}

func TestLoadProducts_EmptyResponseIsSentinel(t *testing.T) {
	f := newFixture(t)
	f.remote.SetMode(catalogsrv.ModeEmpty)
	f.session.LoadProducts(context.Background())

	assert.True(t, errors.Is(f.session.Snapshot().LastProductsError, catalogapi.ErrEmptyResponse))
}

func TestLoadCategories_FailureIsSilent(t *testing.T) {
	f := newFixture(t)
	f.session.LoadProducts(context.Background())
	f.remote.SetMode(catalogsrv.ModeError)
	f.session.LoadCategories(context.Background())

	snap := f.session.Snapshot()
	assert.Equal(t, catalog.FallbackCategories(), snap.Categories)
	assert.False(t, snap.APIUnavailable)
	assert.False(t, snap.ShowAdvisory)
}

func TestReload_RecoversAndKeepsFeatured(t *testing.T) {
	f := newFixture(t)
	f.remote.SetMode(catalogsrv.ModeError)
	f.session.Start(context.Background())
	featured, ok := f.session.Featured()
	require.True(t, ok)

	f.remote.SetMode(catalogsrv.ModeOK)
	f.session.Reload(context.Background())

	snap := f.session.Snapshot()
	assert.False(t, snap.APIUnavailable)
	assert.Equal(t, []int64{101, 102, 103}, productIDs(snap.Products))
	assert.Equal(t, featured.ID, snap.Featured.ID)
}

func TestAdvisory_DismissAndReraise(t *testing.T) {
	f := newFixture(t)
	f.remote.SetMode(catalogsrv.ModeError)
	f.session.LoadProducts(context.Background())
	require.True(t, f.session.Snapshot().ShowAdvisory)

	f.session.DismissAdvisory()
	assert.False(t, f.session.Snapshot().ShowAdvisory)
	assert.True(t, f.session.APIUnavailable())

	f.session.LoadProducts(context.Background())
	assert.True(t, f.session.Snapshot().ShowAdvisory)
}

// The remote client is the production Fetcher.
var _ storefront.Fetcher = (*catalogapi.Client)(nil)

type stubFetcher struct {
	products []catalog.Product
	err      error
	calls    int
}

func (s *stubFetcher) FetchProducts(context.Context) ([]catalog.Product, error) {
	s.calls++
	return s.products, s.err
}

func (s *stubFetcher) FetchCategories(context.Context) ([]string, error) {
	return nil, s.err
}

func TestNew_CustomFallbackAndNilFetcher(t *testing.T) {
	fallback := remoteProducts[:1]
	s := storefront.New(nil, storefront.Options{FallbackProducts: fallback, FallbackCategories: []string{"home"}})
	s.Start(context.Background())

	snap := s.Snapshot()
	assert.Equal(t, []int64{101}, productIDs(snap.Products))
	assert.Equal(t, []string{"home"}, snap.Categories)
	assert.True(t, snap.APIUnavailable)
	assert.Equal(t, "$", s.Currency())
}

func TestLoadProducts_DoesNotAliasFetcherSlice(t *testing.T) {
	products := catalog.Clone(remoteProducts)
	stub := &stubFetcher{products: products}
	s := storefront.New(stub, storefront.Options{})
	s.LoadProducts(context.Background())

	products[0].Title = "changed"
	assert.Equal(t, "Desk Lamp", s.Products()[0].Title)
	assert.Equal(t, 1, stub.calls)
}

// loadingFetcher records the session's loading flag while each fetch runs.
type loadingFetcher struct {
	session            *storefront.Session
	duringProducts     bool
	duringCategories   bool
	categoriesRequests int
}

func (f *loadingFetcher) FetchProducts(context.Context) ([]catalog.Product, error) {
	f.duringProducts = f.session.Loading()
	return catalog.Clone(remoteProducts), nil
}

func (f *loadingFetcher) FetchCategories(context.Context) ([]string, error) {
	f.categoriesRequests++
	f.duringCategories = f.session.Loading()
	return []string{"home", "kitchen"}, nil
}

func TestStart_LoadingOnlyDuringProductFetch(t *testing.T) {
	fetcher := &loadingFetcher{}
	s := storefront.New(fetcher, storefront.Options{})
	fetcher.session = s

	assert.False(t, s.Loading())
	s.Start(context.Background())

	assert.True(t, fetcher.duringProducts, "loading should be raised while products are fetched")
	require.Equal(t, 1, fetcher.categoriesRequests)
	assert.False(t, fetcher.duringCategories, "loading should not be raised for categories")
	assert.False(t, s.Loading())
	assert.False(t, s.Snapshot().Loading)
}

func TestVisible_AppliesFilterState(t *testing.T) {
	f := newFixture(t)
	f.session.Start(context.Background())

	assert.Len(t, f.session.Visible(), 3)

	f.session.SetCategory("home")
	assert.Equal(t, []int64{101, 103}, productIDs(f.session.Visible()))

	f.session.SetQuery("TERRA")
	assert.Equal(t, []int64{103}, productIDs(f.session.Visible()))

	f.session.SetCategory("")
	category, query := f.session.Filter()
	assert.Equal(t, catalog.AllCategories, category)
	assert.Equal(t, "TERRA", query)

	f.session.SetQuery("")
	assert.Len(t, f.session.Visible(), 3)
}

func TestCart_ThroughSession(t *testing.T) {
	f := newFixture(t)
	f.session.Start(context.Background())

	assert.False(t, f.session.AddToCart(999))
	assert.True(t, f.session.AddToCart(101))
	assert.True(t, f.session.AddToCart(101))
	assert.True(t, f.session.AddToCart(102))

	items := f.session.CartItems()
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 3, f.session.CartCount())
	assert.Equal(t, "25.00", f.session.CartTotal().StringFixed(2))

	f.session.UpdateQuantity(102, 0)
	assert.Equal(t, 2, f.session.CartCount())
	assert.True(t, f.session.RemoveFromCart(101))
	assert.False(t, f.session.RemoveFromCart(101))
	assert.Zero(t, f.session.CartCount())

	f.session.AddToCart(103)
	f.session.ClearCart()
	assert.Empty(t, f.session.CartItems())
}

func TestCheckout(t *testing.T) {
	f := newFixture(t)
	f.session.Start(context.Background())

	_, ok := f.session.Checkout()
	assert.False(t, ok, "empty cart must not check out")

	f.session.AddToCart(101)
	f.session.AddToCart(101)
	f.session.AddToCart(102)

	receipt, ok := f.session.Checkout()
	require.True(t, ok)
	assert.Equal(t, 3, receipt.Count)
	assert.Equal(t, "25.00", receipt.Total.StringFixed(2))
	assert.NotEqual(t, [16]byte{}, [16]byte(receipt.OrderID))
	assert.Equal(t, "Order placed! 3 items, total $25.00", receipt.Message())
	assert.Empty(t, f.session.CartItems())

	last := f.hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, "order placed", last.Message)
	assert.Equal(t, "25.00", last.Data["total"])
}

func TestReceiptMessage_Singular(t *testing.T) {
	r := storefront.Receipt{Count: 1, Total: decimal.RequireFromString("9.5"), Currency: "€"}
	assert.True(t, strings.HasSuffix(r.Message(), "1 item, total €9.50"))
}
