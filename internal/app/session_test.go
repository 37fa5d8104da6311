package app

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/storefront/internal/catalog"
	"github.com/five82/storefront/internal/catalogsrv"
	"github.com/five82/storefront/internal/config"
	"github.com/five82/storefront/internal/logging"
)

func testConfig(t *testing.T, mode catalogsrv.Mode) config.Config {
	t.Helper()
	srv := catalogsrv.New(catalog.FallbackProducts()[:3], nil, nil)
	srv.SetMode(mode)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	cfg := config.Default()
	cfg.APIURL = ts.URL
	cfg.Currency = "€"
	return cfg
}

func TestNewSession_LoadsFromConfiguredAPI(t *testing.T) {
	cfg := testConfig(t, catalogsrv.ModeOK)
	session, err := newSession(cfg, 7, logging.Discard())
	require.NoError(t, err)

	session.Start(context.Background())
	snap := session.Snapshot()

	assert.False(t, snap.APIUnavailable)
	assert.Len(t, snap.Products, 3)
	assert.True(t, snap.HasFeatured)
	assert.Equal(t, "€", session.Currency())
}

func TestNewSession_FallsBackWhenAPIFails(t *testing.T) {
	cfg := testConfig(t, catalogsrv.ModeError)
	session, err := newSession(cfg, 0, logging.Discard())
	require.NoError(t, err)

	session.Start(context.Background())
	snap := session.Snapshot()

	assert.True(t, snap.APIUnavailable)
	assert.Len(t, snap.Products, len(catalog.FallbackProducts()))
}

func TestNewSession_RejectsBadURL(t *testing.T) {
	cfg := config.Default()
	cfg.APIURL = "://nope"
	_, err := newSession(cfg, 0, logging.Discard())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "init catalog client")
}

func TestNewSession_SeedMakesFeaturedRepeatable(t *testing.T) {
	cfg := testConfig(t, catalogsrv.ModeOK)

	featured := func() int64 {
		session, err := newSession(cfg, 42, logging.Discard())
		require.NoError(t, err)
		session.Start(context.Background())
		p, ok := session.Featured()
		require.True(t, ok)
		return p.ID
	}
	assert.Equal(t, featured(), featured())
}

func TestNewRand(t *testing.T) {
	assert.Nil(t, newRand(0, featuredStream))

	a := newRand(9, featuredStream).Uint64()
	b := newRand(9, featuredStream).Uint64()
	c := newRand(9, discountStream).Uint64()
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
