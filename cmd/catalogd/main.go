package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/five82/storefront/internal/catalog"
	"github.com/five82/storefront/internal/catalogsrv"
	"github.com/five82/storefront/internal/logging"
)

const shutdownTimeout = 5 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	addr := flag.String("addr", "127.0.0.1:8080", "listen address")
	modeName := flag.String("mode", "ok", "answer mode: ok, empty or error")
	dataset := flag.String("dataset", "", "JSON product list to serve (defaults to the bundled catalog)")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	log, _, err := logging.New(logging.Stderr, *logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "catalogd: %v\n", err)
		return 1
	}

	mode, err := catalogsrv.ParseMode(*modeName)
	if err != nil {
		log.WithError(err).Error("invalid mode")
		return 1
	}

	products := catalog.FallbackProducts()
	if *dataset != "" {
		products, err = catalogsrv.LoadDataset(*dataset)
		if err != nil {
			log.WithError(err).Error("load dataset failed")
			return 1
		}
	}

	srv := catalogsrv.New(products, nil, log)
	srv.SetMode(mode)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	httpServer := &http.Server{
		Addr:              *addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", *addr).WithField("mode", mode).WithField("products", len(products)).Info("catalogd listening")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("server failed")
			return 1
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelShutdown()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("graceful shutdown failed")
			return 1
		}
	}
	return 0
}
