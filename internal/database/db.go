package database

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Blob is one persisted storage document.
type Blob struct {
	Key       string `gorm:"primary_key"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}

// SQLBackend stores blobs in a single SQLite table.
type SQLBackend struct {
	db *gorm.DB
}

// NewSQLBackend opens (or creates) the SQLite database at dbPath and ensures
// the blob table exists.
func NewSQLBackend(dbPath string) (*SQLBackend, error) {
	db, err := gorm.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.AutoMigrate(&Blob{}).Error; err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate blob table: %w", err)
	}
	return &SQLBackend{db: db}, nil
}

// Load reads the blob stored under key.
func (s *SQLBackend) Load(key string) ([]byte, error) {
	var blob Blob
	err := s.db.Where(&Blob{Key: key}).First(&blob).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}
	return []byte(blob.Value), nil
}

// Store writes the blob under key, replacing any previous value.
func (s *SQLBackend) Store(key string, value []byte) error {
	blob := Blob{Key: key}
	if err := s.db.Where(&Blob{Key: key}).FirstOrCreate(&blob).Error; err != nil {
		return fmt.Errorf("failed to upsert %s: %w", key, err)
	}
	blob.Value = string(value)
	if err := s.db.Save(&blob).Error; err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *SQLBackend) Close() error {
	return s.db.Close()
}
