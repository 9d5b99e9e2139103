// Package storage keeps named time series in an embedded BuntDB database or in a
// SQL database through GORM.
package storage

import "github.com/raykavin/tsutil/pkg/core"

// Store is implemented by every series backend
type Store interface {
	Save(series *core.TimeSeries) error
	Load(name string) (*core.TimeSeries, error)
	Names() ([]string, error)
	Delete(name string) error
	Close() error
}

var (
	_ Store = (*SeriesStore)(nil)
	_ Store = (*SQLSeriesStore)(nil)
)
