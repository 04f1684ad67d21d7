package db

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/botwatch-dev/botwatch/internal/constant"
)

// Store owns the SQLite database holding bots, tests and users. It is
// opened once at process start and passed to the domain service; there is
// no package-level singleton.
type Store struct {
	db     *gorm.DB
	dbPath string
	mu     sync.Mutex
}

// NewStore opens (or creates) the database under baseDir and migrates the
// schema.
func NewStore(baseDir string) (*Store, error) {
	logrus.Debugf("Initializing store in directory: %s", baseDir)
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	dbPath := constant.GetDBFile(baseDir)
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	// foreign_keys=1 is load-bearing: tests.bot_id integrity is enforced
	// by SQLite itself, not by application code.
	dsn := dbPath + "?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=1"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	// SQLite doesn't support multiple writers
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	store := &Store{
		db:     gdb,
		dbPath: dbPath,
	}

	if err := gdb.AutoMigrate(&UserRecord{}, &BotRecord{}, &TestRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	logrus.Debugf("Store initialization completed: %s", dbPath)

	return store, nil
}

// DBPath returns the database file path.
func (s *Store) DBPath() string {
	return s.dbPath
}

// GetDB returns the underlying GORM DB instance (for testing/advanced usage)
func (s *Store) GetDB() *gorm.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// HealthCheck pings the database.
func (s *Store) HealthCheck() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Stats holds row counts and database file information.
type Stats struct {
	BotCount       int64   `json:"bot_count"`
	TestCount      int64   `json:"test_count"`
	UserCount      int64   `json:"user_count"`
	DatabasePath   string  `json:"database_path"`
	DatabaseSizeMB float64 `json:"database_size_mb"`
}

// GetStats returns database statistics.
func (s *Store) GetStats() (*Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var botCount, testCount, userCount int64
	if err := s.db.Model(&BotRecord{}).Count(&botCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count bots: %w", err)
	}
	if err := s.db.Model(&TestRecord{}).Count(&testCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count tests: %w", err)
	}
	if err := s.db.Model(&UserRecord{}).Count(&userCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	return &Stats{
		BotCount:       botCount,
		TestCount:      testCount,
		UserCount:      userCount,
		DatabasePath:   s.dbPath,
		DatabaseSizeMB: s.databaseSize(),
	}, nil
}

func (s *Store) databaseSize() float64 {
	info, err := os.Stat(s.dbPath)
	if err != nil {
		return 0
	}
	return float64(info.Size()) / (1024 * 1024)
}
