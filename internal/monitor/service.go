// Package monitor is the validated CRUD boundary between HTTP handling and
// raw persistence. It holds no state of its own: every operation is a
// single mapping from an input record to a store call.
package monitor

import (
	"time"

	"github.com/google/uuid"

	"github.com/botwatch-dev/botwatch/internal/data/db"
	"github.com/botwatch-dev/botwatch/internal/typ"
)

// Storage is the domain service contract. Lookups return a nil value when
// no row matches; absence is never an error at this layer.
type Storage interface {
	// User methods
	GetUser(id string) (*typ.User, error)
	GetUserByUsername(username string) (*typ.User, error)
	CreateUser(input typ.InsertUser) (*typ.User, error)

	// Bot methods
	GetAllBots() ([]*typ.Bot, error)
	GetBot(id string) (*typ.Bot, error)
	CreateBot(input typ.InsertBot) (*typ.Bot, error)
	UpdateBot(id string, input typ.UpdateBot) (*typ.Bot, error)

	// Test methods
	GetAllTests() ([]*typ.Test, error)
	CreateTest(input typ.InsertTest) (*typ.Test, error)
	GetTestsByBotID(botID string) ([]*typ.Test, error)

	// Aggregates
	DashboardStats(recentN int) (*DashboardStats, error)
}

// Service implements Storage over a SQLite-backed store.
type Service struct {
	store *db.Store
}

// NewService creates a new domain service bound to store.
func NewService(store *db.Store) *Service {
	return &Service{store: store}
}

// GetUser retrieves a user by id.
func (s *Service) GetUser(id string) (*typ.User, error) {
	return s.store.GetUser(id)
}

// GetUserByUsername retrieves a user by username.
func (s *Service) GetUserByUsername(username string) (*typ.User, error) {
	return s.store.GetUserByUsername(username)
}

// CreateUser validates the input and inserts a new user. The password is
// expected to be hashed already; this layer never sees plain text.
func (s *Service) CreateUser(input typ.InsertUser) (*typ.User, error) {
	if err := validateInsertUser(input); err != nil {
		return nil, err
	}

	existing, err := s.store.GetUserByUsername(input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ValidationError{Issues: []FieldIssue{
			{Field: "username", Message: "username is already taken"},
		}}
	}

	user := &typ.User{
		ID:       uuid.NewString(),
		Username: input.Username,
		Password: input.Password,
	}
	return s.store.CreateUser(user)
}

// GetAllBots returns the full bots table, no pagination or filtering.
func (s *Service) GetAllBots() ([]*typ.Bot, error) {
	return s.store.ListBots()
}

// GetBot retrieves a bot by id.
func (s *Service) GetBot(id string) (*typ.Bot, error) {
	return s.store.GetBot(id)
}

// CreateBot validates the input, assigns id/createdAt and inserts the bot.
// Status defaults to inactive when omitted.
func (s *Service) CreateBot(input typ.InsertBot) (*typ.Bot, error) {
	if err := validateInsertBot(input); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = typ.BotStatusInactive
	}

	bot := &typ.Bot{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Type:      input.Type,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
	return s.store.CreateBot(bot)
}

// UpdateBot applies a partial update. Only supplied fields change; id and
// createdAt are immutable. Returns nil when the bot does not exist.
func (s *Service) UpdateBot(id string, input typ.UpdateBot) (*typ.Bot, error) {
	if err := validateUpdateBot(input); err != nil {
		return nil, err
	}
	return s.store.UpdateBot(id, input)
}

// GetAllTests returns the full tests table.
func (s *Service) GetAllTests() ([]*typ.Test, error) {
	return s.store.ListTests()
}

// CreateTest validates the input, assigns id/date and inserts the test.
// Referential integrity against bots is enforced by the store's foreign
// key constraint; an unknown botId fails the insert.
func (s *Service) CreateTest(input typ.InsertTest) (*typ.Test, error) {
	if err := validateInsertTest(input); err != nil {
		return nil, err
	}

	test := &typ.Test{
		ID:         uuid.NewString(),
		BotID:      input.BotID,
		Date:       time.Now().UTC(),
		Result:     input.Result,
		Conditions: input.Conditions,
	}
	return s.store.CreateTest(test)
}

// GetTestsByBotID returns all tests recorded for botID; empty when the bot
// has none or does not exist.
func (s *Service) GetTestsByBotID(botID string) ([]*typ.Test, error) {
	return s.store.ListTestsByBotID(botID)
}
