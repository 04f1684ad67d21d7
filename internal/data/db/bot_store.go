package db

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/botwatch-dev/botwatch/internal/typ"
)

// BotRecord is the GORM model for a monitored bot.
type BotRecord struct {
	ID        string    `gorm:"primaryKey;column:id;type:varchar(36)"`
	Name      string    `gorm:"column:name;not null;index"`
	Type      string    `gorm:"column:type;not null"`
	Status    string    `gorm:"column:status;not null;default:'inactive'"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`

	// Relations
	Tests []TestRecord `gorm:"foreignKey:BotID;references:ID"`
}

// TableName specifies the table name for GORM
func (BotRecord) TableName() string {
	return "bots"
}

func (r *BotRecord) toBot() *typ.Bot {
	return &typ.Bot{
		ID:        r.ID,
		Name:      r.Name,
		Type:      typ.BotType(r.Type),
		Status:    typ.BotStatus(r.Status),
		CreatedAt: r.CreatedAt,
	}
}

// ListBots returns all bots in store-native order.
func (s *Store) ListBots() ([]*typ.Bot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var records []BotRecord
	if err := s.db.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list bots: %w", err)
	}

	bots := make([]*typ.Bot, 0, len(records))
	for _, record := range records {
		bots = append(bots, record.toBot())
	}
	return bots, nil
}

// GetBot returns the bot with the given id, or nil when no row matches.
// Absence is not an error; the caller decides what it means.
func (s *Store) GetBot(id string) (*typ.Bot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var record BotRecord
	if err := s.db.Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get bot: %w", err)
	}
	return record.toBot(), nil
}

// CreateBot inserts a new bot row and returns the stored value.
func (s *Store) CreateBot(bot *typ.Bot) (*typ.Bot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := &BotRecord{
		ID:        bot.ID,
		Name:      bot.Name,
		Type:      string(bot.Type),
		Status:    string(bot.Status),
		CreatedAt: bot.CreatedAt,
	}
	if err := s.db.Create(record).Error; err != nil {
		return nil, fmt.Errorf("failed to create bot record: %w", err)
	}
	logrus.Debugf("Created bot: %s (%s)", bot.Name, bot.ID)
	return record.toBot(), nil
}

// UpdateBot applies a partial update keyed by id and returns the updated
// row, or nil when the id does not exist.
func (s *Store) UpdateBot(id string, update typ.UpdateBot) (*typ.Bot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var record BotRecord
	if err := s.db.Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get bot: %w", err)
	}

	changes := map[string]interface{}{}
	if update.Name != nil {
		changes["name"] = *update.Name
	}
	if update.Type != nil {
		changes["type"] = string(*update.Type)
	}
	if update.Status != nil {
		changes["status"] = string(*update.Status)
	}
	if len(changes) > 0 {
		if err := s.db.Model(&record).Updates(changes).Error; err != nil {
			return nil, fmt.Errorf("failed to update bot record: %w", err)
		}
		if err := s.db.Where("id = ?", id).First(&record).Error; err != nil {
			return nil, fmt.Errorf("failed to reload bot record: %w", err)
		}
	}

	logrus.Debugf("Updated bot: %s", id)
	return record.toBot(), nil
}

// CountBots returns the total number of bots.
func (s *Store) CountBots() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	if err := s.db.Model(&BotRecord{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count bots: %w", err)
	}
	return count, nil
}
