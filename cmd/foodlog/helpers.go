package foodlog

import (
	"strings"

	"github.com/plateful/foodlog/internal/app"
	"github.com/plateful/foodlog/internal/catalogue"
	"github.com/plateful/foodlog/internal/datekey"
	"github.com/plateful/foodlog/internal/service"
	"github.com/plateful/foodlog/internal/store"
)

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, nil
	}
	return app.DefaultDBPath()
}

func resolveCatalogue() (*catalogue.Provider, error) {
	path := cataloguePath
	if path == "" {
		path = cfg.CataloguePath
	}
	return catalogue.Load(path)
}

func withStore(run func(*store.Store) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	st := store.New(path, store.WithLogger(logger))
	if err := st.Open(); err != nil {
		return err
	}
	defer st.Close()
	return run(st)
}

func withService(run func(*service.Service) error) error {
	return withStore(func(st *store.Store) error {
		return run(service.New(st, service.WithLogger(logger)))
	})
}

// resolveDay trims a --date value and defaults it to today.
func resolveDay(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return datekey.Today(), nil
	}
	if _, err := datekey.Start(value); err != nil {
		return "", err
	}
	return value, nil
}
