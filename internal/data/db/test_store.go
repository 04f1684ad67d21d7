package db

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/botwatch-dev/botwatch/internal/typ"
)

// TestRecord is the GORM model for one test run against a bot. Rows are
// written once and never updated or deleted.
type TestRecord struct {
	ID         string    `gorm:"primaryKey;column:id;type:varchar(36)"`
	BotID      string    `gorm:"column:bot_id;type:varchar(36);not null;index"`
	Date       time.Time `gorm:"column:date;autoCreateTime"`
	Result     string    `gorm:"column:result;not null"`
	Conditions string    `gorm:"column:conditions"`

	// Relations
	Bot *BotRecord `gorm:"foreignKey:BotID;references:ID"`
}

// TableName specifies the table name for GORM
func (TestRecord) TableName() string {
	return "tests"
}

func (r *TestRecord) toTest() *typ.Test {
	return &typ.Test{
		ID:         r.ID,
		BotID:      r.BotID,
		Date:       r.Date,
		Result:     typ.TestResult(r.Result),
		Conditions: r.Conditions,
	}
}

// ListTests returns all tests in store-native order.
func (s *Store) ListTests() ([]*typ.Test, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var records []TestRecord
	if err := s.db.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list tests: %w", err)
	}

	tests := make([]*typ.Test, 0, len(records))
	for _, record := range records {
		tests = append(tests, record.toTest())
	}
	return tests, nil
}

// ListTestsByBotID returns all tests referencing botID. A bot with no
// tests, or an unknown botID, yields an empty slice.
func (s *Store) ListTestsByBotID(botID string) ([]*typ.Test, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var records []TestRecord
	if err := s.db.Where("bot_id = ?", botID).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list tests for bot: %w", err)
	}

	tests := make([]*typ.Test, 0, len(records))
	for _, record := range records {
		tests = append(tests, record.toTest())
	}
	return tests, nil
}

// CreateTest inserts a new test row. The foreign key constraint rejects a
// botID that does not reference an existing bot.
func (s *Store) CreateTest(test *typ.Test) (*typ.Test, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := &TestRecord{
		ID:         test.ID,
		BotID:      test.BotID,
		Date:       test.Date,
		Result:     string(test.Result),
		Conditions: test.Conditions,
	}
	if err := s.db.Create(record).Error; err != nil {
		return nil, fmt.Errorf("failed to create test record: %w", err)
	}
	logrus.Debugf("Created test %s for bot %s", test.ID, test.BotID)
	return record.toTest(), nil
}

// CountTests returns the total number of tests.
func (s *Store) CountTests() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	if err := s.db.Model(&TestRecord{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tests: %w", err)
	}
	return count, nil
}
