package app

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/five82/storefront/internal/config"
	"github.com/five82/storefront/internal/logging"
	"github.com/five82/storefront/internal/prefs"
	"github.com/five82/storefront/internal/ui"
)

// Options configure the storefront application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/storefront/prefs.toml
	EnvFile    string // optional .env file loaded before the environment is read
	APIURL     string // overrides api_url from config and environment
	Seed       uint64 // non-zero makes the featured pick and discounts repeatable
}

// Run boots the storefront TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	if err := config.LoadDotEnv(opts.EnvFile); err != nil {
		return err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.APIURL != "" {
		cfg.APIURL = opts.APIURL
	}

	log, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closer.Close()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		log.WithError(err).Warn("preferences unreadable, using defaults")
	}

	session, err := newSession(cfg, opts.Seed, log)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"api_url":  cfg.APIURL,
		"currency": cfg.Currency,
		"seeded":   opts.Seed != 0,
	}).Info("storefront starting")

	err = ui.Run(ui.Options{
		Context:   ctx,
		Session:   session,
		Logger:    log,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
		Rand:      newRand(opts.Seed, discountStream),
	})
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	snap := session.Snapshot()
	log.WithFields(logrus.Fields{
		"cart_lines":      len(snap.Cart),
		"api_unavailable": snap.APIUnavailable,
	}).Info("storefront stopped")
	return nil
}
