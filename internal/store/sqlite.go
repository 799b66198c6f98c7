package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/Faultbox/blockmodels/pkg/formats"
	"github.com/Faultbox/blockmodels/pkg/mesh"
)

// modelRecord is one row of the models table.
type modelRecord struct {
	Key       string `gorm:"primaryKey"`
	Name      string
	Codec     string
	Data      []byte
	Faces     int
	UpdatedAt time.Time
}

func (modelRecord) TableName() string { return "models" }

// SQLiteStore keeps models as binary blobs in a SQLite database.
type SQLiteStore struct {
	db    *gorm.DB
	codec formats.Codec
}

// OpenSQLite opens or creates the database at path. An empty path opens
// a private in-memory database.
func OpenSQLite(path string) (*SQLiteStore, error) {
	dsn := path
	if dsn == "" {
		dsn = ":memory:"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite store: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("opening sqlite store: %w", err)
	}
	// Each connection to :memory: is its own database.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&modelRecord{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrating sqlite store: %w", err)
	}
	return &SQLiteStore{db: db, codec: formats.Binary{}}, nil
}

// Save encodes m and upserts it under key.
func (s *SQLiteStore) Save(key string, m *mesh.Model) error {
	if err := checkKey(key); err != nil {
		return err
	}
	data, err := s.codec.Encode(m)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	rec := modelRecord{
		Key:   key,
		Name:  m.Name,
		Codec: s.codec.Name(),
		Data:  data,
		Faces: m.FaceCount(),
	}
	err = s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

// Load decodes the model stored under key.
func (s *SQLiteStore) Load(key string) (*mesh.Model, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	var rec modelRecord
	err := s.db.Where(&modelRecord{Key: key}).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", key, err)
	}

	codec, err := formats.CodecByName(rec.Codec)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", key, err)
	}
	m, err := codec.Decode(rec.Data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", key, err)
	}
	return m, nil
}

// List returns every key in order.
func (s *SQLiteStore) List() ([]string, error) {
	var keys []string
	err := s.db.Model(&modelRecord{}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "key"}}).
		Pluck("key", &keys).Error
	if err != nil {
		return nil, fmt.Errorf("listing models: %w", err)
	}
	return keys, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
