package typ

import "time"

// BotType identifies the kind of integration a bot represents.
type BotType string

const (
	BotTypeMCP          BotType = "MCP"
	BotTypeWebhook      BotType = "Webhook"
	BotTypeCustomOpenAI BotType = "Custom OpenAI"
)

// Valid reports whether the type is one of the known integration kinds.
func (t BotType) Valid() bool {
	switch t {
	case BotTypeMCP, BotTypeWebhook, BotTypeCustomOpenAI:
		return true
	}
	return false
}

// BotStatus is the lifecycle status of a bot.
type BotStatus string

const (
	BotStatusInactive BotStatus = "inactive"
	BotStatusActive   BotStatus = "active"
	BotStatusWarning  BotStatus = "warning"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s BotStatus) Valid() bool {
	switch s {
	case BotStatusInactive, BotStatusActive, BotStatusWarning:
		return true
	}
	return false
}

// Bot is a configured integration under monitoring.
type Bot struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      BotType   `json:"type"`
	Status    BotStatus `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertBot is the input shape for creating a bot. ID and CreatedAt are
// assigned server-side.
type InsertBot struct {
	Name   string    `json:"name"`
	Type   BotType   `json:"type"`
	Status BotStatus `json:"status"`
}

// UpdateBot is the partial-update shape for a bot. Nil fields are left
// untouched.
type UpdateBot struct {
	Name   *string    `json:"name"`
	Type   *BotType   `json:"type"`
	Status *BotStatus `json:"status"`
}
