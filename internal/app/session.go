package app

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/five82/storefront/internal/catalogapi"
	"github.com/five82/storefront/internal/config"
	"github.com/five82/storefront/internal/storefront"
)

// Seeded generators use separate streams so the featured pick and the
// discount draws do not consume each other's values.
const (
	featuredStream uint64 = iota + 1
	discountStream
)

// newSession builds the remote client and the Session that loads from it.
func newSession(cfg config.Config, seed uint64, log logrus.FieldLogger) (*storefront.Session, error) {
	client, err := catalogapi.NewClient(catalogapi.Options{
		BaseURL:        cfg.APIURL,
		ProductsPath:   cfg.ProductsPath,
		CategoriesPath: cfg.CategoriesPath,
		Timeout:        cfg.RequestTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("init catalog client: %w", err)
	}

	return storefront.New(client, storefront.Options{
		Logger:   log.WithField("component", "session"),
		Rand:     newRand(seed, featuredStream),
		Currency: cfg.Currency,
	}), nil
}

// newRand returns nil for a zero seed, which selects the global source.
func newRand(seed, stream uint64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, stream))
}
