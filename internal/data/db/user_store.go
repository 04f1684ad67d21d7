package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/botwatch-dev/botwatch/internal/typ"
)

// UserRecord is the GORM model for a dashboard account.
type UserRecord struct {
	ID       string `gorm:"primaryKey;column:id;type:varchar(36)"`
	Username string `gorm:"uniqueIndex;column:username;not null"`
	Password string `gorm:"column:password;not null"`
}

// TableName specifies the table name for GORM
func (UserRecord) TableName() string {
	return "users"
}

func (r *UserRecord) toUser() *typ.User {
	return &typ.User{
		ID:       r.ID,
		Username: r.Username,
		Password: r.Password,
	}
}

// GetUser returns the user with the given id, or nil when absent.
func (s *Store) GetUser(id string) (*typ.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var record UserRecord
	if err := s.db.Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return record.toUser(), nil
}

// GetUserByUsername returns the user with the given username, or nil when
// absent.
func (s *Store) GetUserByUsername(username string) (*typ.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var record UserRecord
	if err := s.db.Where("username = ?", username).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return record.toUser(), nil
}

// CreateUser inserts a new user row.
func (s *Store) CreateUser(user *typ.User) (*typ.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := &UserRecord{
		ID:       user.ID,
		Username: user.Username,
		Password: user.Password,
	}
	if err := s.db.Create(record).Error; err != nil {
		return nil, fmt.Errorf("failed to create user record: %w", err)
	}
	return record.toUser(), nil
}
