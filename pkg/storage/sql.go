package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/raykavin/tsutil/pkg/core"
	"github.com/raykavin/tsutil/pkg/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// seriesRecord is one stored series; times and values are kept as a JSON document
type seriesRecord struct {
	Name      string `gorm:"primaryKey"`
	Points    int
	Datetime  bool
	Data      []byte
	UpdatedAt time.Time
}

func (seriesRecord) TableName() string {
	return "series"
}

type seriesData struct {
	Times  []int64   `json:"times"`
	Values []float64 `json:"values"`
}

// SQLConfig holds the connection pool settings of a SQL store
type SQLConfig struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// DefaultSQLConfig returns pool settings suited to a local SQLite file
func DefaultSQLConfig() SQLConfig {
	return SQLConfig{
		MaxIdleConns:    1,
		MaxOpenConns:    1,
		ConnMaxLifetime: time.Hour,
	}
}

// SQLSeriesStore persists TimeSeries values in a SQL database through GORM
type SQLSeriesStore struct {
	db  *gorm.DB
	log logger.Logger
}

// FromSQLite opens or creates the SQLite database at dbPath
func FromSQLite(dbPath string, log logger.Logger, opts ...gorm.Option) (*SQLSeriesStore, error) {
	return FromSQL(sqlite.Open(dbPath), DefaultSQLConfig(), log, opts...)
}

// FromSQL creates a store on any GORM dialect. SQL logging is silenced unless opts
// carry their own gorm.Config.
func FromSQL(dialect gorm.Dialector, config SQLConfig, log logger.Logger, opts ...gorm.Option) (*SQLSeriesStore, error) {
	if log == nil {
		log = logger.Nop{}
	}

	opts = append([]gorm.Option{&gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}}, opts...)
	db, err := gorm.Open(dialect, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)

	if err = db.AutoMigrate(&seriesRecord{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLSeriesStore{db: db, log: log}, nil
}

// Save stores the series under its name, replacing any previous version
func (s *SQLSeriesStore) Save(series *core.TimeSeries) error {
	if series.Name == "" {
		return ErrEmptyName
	}

	if err := series.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(seriesData{Times: series.Times, Values: series.Values})
	if err != nil {
		return fmt.Errorf("failed to marshal series: %w", err)
	}

	record := &seriesRecord{
		Name:     series.Name,
		Points:   series.Len(),
		Datetime: series.Datetime,
		Data:     data,
	}

	if result := s.db.Save(record); result.Error != nil {
		return fmt.Errorf("failed to store series: %w", result.Error)
	}

	s.log.WithFields(map[string]any{
		"series": series.Name,
		"rows":   series.Len(),
	}).Debug("series stored")
	return nil
}

// Load returns the series stored under name
func (s *SQLSeriesStore) Load(name string) (*core.TimeSeries, error) {
	var records []seriesRecord

	result := s.db.Where("name = ?", name).Limit(1).Find(&records)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to fetch series %s: %w", name, result.Error)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrSeriesNotFound, name)
	}

	var data seriesData
	if err := json.Unmarshal(records[0].Data, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal series %s: %w", name, err)
	}

	return &core.TimeSeries{
		Name:     records[0].Name,
		Times:    data.Times,
		Values:   data.Values,
		Datetime: records[0].Datetime,
	}, nil
}

// Names lists the stored series names in ascending order
func (s *SQLSeriesStore) Names() ([]string, error) {
	names := make([]string, 0)

	result := s.db.Model(&seriesRecord{}).Order("name").Pluck("name", &names)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list series: %w", result.Error)
	}

	return names, nil
}

// Delete removes the series stored under name
func (s *SQLSeriesStore) Delete(name string) error {
	result := s.db.Where("name = ?", name).Delete(&seriesRecord{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete series %s: %w", name, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrSeriesNotFound, name)
	}
	return nil
}

// Close closes the database connection
func (s *SQLSeriesStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	return sqlDB.Close()
}
