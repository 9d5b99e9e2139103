package main

import (
	"strings"

	"github.com/raykavin/tsutil/internal/config"
	"github.com/raykavin/tsutil/pkg/core"
	"github.com/raykavin/tsutil/pkg/feed"
	"github.com/raykavin/tsutil/pkg/storage"
)

const storeScheme = "store:"

// feedOptions maps the csv configuration onto reader options
func (a *app) feedOptions() ([]feed.Option, error) {
	opts := []feed.Option{
		feed.WithTimeColumn(a.cfg.CSV.TimeColumn),
		feed.WithValueColumn(a.cfg.CSV.ValueColumn),
		feed.WithLogger(a.log),
	}

	if a.cfg.CSV.TimeUnit != "" {
		unit, err := feed.ParseTimeUnit(a.cfg.CSV.TimeUnit)
		if err != nil {
			return nil, err
		}
		opts = append(opts, feed.WithTimeUnit(unit))
	}

	return opts, nil
}

// openStore opens the configured series database
func (a *app) openStore() (storage.Store, error) {
	if a.cfg.Store.Driver == config.DriverSQLite {
		return storage.FromSQLite(a.cfg.Store.Path, a.log)
	}
	return storage.FromFile(a.cfg.Store.Path, a.log)
}

// loadSeries reads a CSV file, or a stored series when source is "store:NAME"
func (a *app) loadSeries(source string) (*core.TimeSeries, error) {
	if name, ok := strings.CutPrefix(source, storeScheme); ok {
		store, err := a.openStore()
		if err != nil {
			return nil, err
		}
		defer store.Close()

		return store.Load(name)
	}

	opts, err := a.feedOptions()
	if err != nil {
		return nil, err
	}

	return feed.ReadFile(source, opts...)
}
