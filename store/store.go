package store

import (
	"encoding/json"
	"errors"
	"log"
	"sync"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is a single persisted key/value pair. Values are JSON documents.
type Entry struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// Store is the durable key-value medium backed by a local SQLite file.
// All domain state goes through Read/Write; nothing else touches the file.
type Store struct {
	db *gorm.DB
	mu sync.Mutex
}

// Open establishes the SQLite-backed store at the given path
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(1) // SQLite allows a single writer
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0) // No timeout

	// Run database migrations
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Read deserializes the value stored under key. On a missing key or an
// undecodable value it returns def and leaves the store unchanged.
func Read[T any](s *Store, key string, def T) T {
	var entry Entry
	if err := s.db.Where("key = ?", key).First(&entry).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("store: failed to read key %q: %v", key, err)
		}
		return def
	}

	var value T
	if err := json.Unmarshal([]byte(entry.Value), &value); err != nil {
		log.Printf("store: undecodable value under key %q: %v", key, err)
		return def
	}
	return value
}

// Write serializes value and replaces the entry under key. Failures are
// logged, never raised; callers must not assume durability is guaranteed.
func Write[T any](s *Store, key string, value T) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("store: failed to serialize value for key %q: %v", key, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := Entry{Key: key, Value: string(raw)}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
	if err != nil {
		log.Printf("store: failed to write key %q: %v", key, err)
	}
}
