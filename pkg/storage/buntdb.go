package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/raykavin/tsutil/pkg/core"
	"github.com/raykavin/tsutil/pkg/logger"
	"github.com/tidwall/buntdb"
)

const (
	keyPrefix = "series:"
	nameIndex = "name_index"
)

var (
	ErrSeriesNotFound = errors.New("series not found")
	ErrEmptyName      = errors.New("empty series name")
)

// SeriesStore persists TimeSeries values as JSON documents keyed by name
type SeriesStore struct {
	db  *buntdb.DB
	log logger.Logger
}

// FromMemory creates an in-memory store
func FromMemory(log logger.Logger) (*SeriesStore, error) {
	return NewSeriesStore(":memory:", log)
}

// FromFile creates a file-backed store
func FromFile(file string, log logger.Logger) (*SeriesStore, error) {
	return NewSeriesStore(file, log)
}

// NewSeriesStore opens the BuntDB database at sourceFile
func NewSeriesStore(sourceFile string, log logger.Logger) (*SeriesStore, error) {
	if log == nil {
		log = logger.Nop{}
	}

	db, err := buntdb.Open(sourceFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open buntdb: %w", err)
	}

	err = db.CreateIndex(nameIndex, keyPrefix+"*", buntdb.IndexJSON("name"))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	return &SeriesStore{
		db:  db,
		log: log,
	}, nil
}

func key(name string) string {
	return keyPrefix + name
}

// Save stores the series under its name, replacing any previous version
func (s *SeriesStore) Save(series *core.TimeSeries) error {
	if series.Name == "" {
		return ErrEmptyName
	}

	if err := series.Validate(); err != nil {
		return err
	}

	content, err := json.Marshal(series)
	if err != nil {
		return fmt.Errorf("failed to marshal series: %w", err)
	}

	return s.db.Update(func(tx *buntdb.Tx) error {
		_, replaced, err := tx.Set(key(series.Name), string(content), nil)
		if err != nil {
			return fmt.Errorf("failed to store series: %w", err)
		}

		s.log.WithFields(map[string]any{
			"series":   series.Name,
			"rows":     series.Len(),
			"replaced": replaced,
		}).Debug("series stored")
		return nil
	})
}

// Load returns the series stored under name
func (s *SeriesStore) Load(name string) (*core.TimeSeries, error) {
	var series core.TimeSeries

	err := s.db.View(func(tx *buntdb.Tx) error {
		content, err := tx.Get(key(name))
		if errors.Is(err, buntdb.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrSeriesNotFound, name)
		}
		if err != nil {
			return err
		}

		if err := json.Unmarshal([]byte(content), &series); err != nil {
			return fmt.Errorf("failed to unmarshal series %s: %w", name, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &series, nil
}

// Names lists the stored series names in ascending order
func (s *SeriesStore) Names() ([]string, error) {
	names := make([]string, 0)

	err := s.db.View(func(tx *buntdb.Tx) error {
		return tx.Ascend(nameIndex, func(k, _ string) bool {
			names = append(names, strings.TrimPrefix(k, keyPrefix))
			return true
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate over series: %w", err)
	}

	return names, nil
}

// Delete removes the series stored under name
func (s *SeriesStore) Delete(name string) error {
	return s.db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(key(name))
		if errors.Is(err, buntdb.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrSeriesNotFound, name)
		}
		return err
	})
}

// Close closes the database
func (s *SeriesStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
