package db

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/botwatch-dev/botwatch/internal/typ"
)

func newTestBot(name string) *typ.Bot {
	return &typ.Bot{
		ID:        uuid.NewString(),
		Name:      name,
		Type:      typ.BotTypeWebhook,
		Status:    typ.BotStatusInactive,
		CreatedAt: time.Now().UTC(),
	}
}

func TestBotCreateAndGet(t *testing.T) {
	store, _ := setupTestStore(t)

	bot := newTestBot("billing-bot")
	created, err := store.CreateBot(bot)
	if err != nil {
		t.Fatalf("Failed to create bot: %v", err)
	}
	if created.ID != bot.ID {
		t.Errorf("ID mismatch: got %s, want %s", created.ID, bot.ID)
	}

	retrieved, err := store.GetBot(bot.ID)
	if err != nil {
		t.Fatalf("Failed to get bot: %v", err)
	}
	if retrieved == nil {
		t.Fatal("Expected bot, got nil")
	}
	if retrieved.Name != "billing-bot" {
		t.Errorf("Name mismatch: got %s, want billing-bot", retrieved.Name)
	}
	if retrieved.Type != typ.BotTypeWebhook {
		t.Errorf("Type mismatch: got %s, want %s", retrieved.Type, typ.BotTypeWebhook)
	}
	if retrieved.Status != typ.BotStatusInactive {
		t.Errorf("Status mismatch: got %s, want %s", retrieved.Status, typ.BotStatusInactive)
	}
	if retrieved.CreatedAt.IsZero() {
		t.Error("CreatedAt was not persisted")
	}
}

func TestGetBotAbsent(t *testing.T) {
	store, _ := setupTestStore(t)

	bot, err := store.GetBot("no-such-id")
	if err != nil {
		t.Fatalf("Absent bot must not be an error, got: %v", err)
	}
	if bot != nil {
		t.Errorf("Expected nil for absent bot, got %+v", bot)
	}
}

func TestListBots(t *testing.T) {
	store, _ := setupTestStore(t)

	for _, name := range []string{"a", "b", "c"} {
		if _, err := store.CreateBot(newTestBot(name)); err != nil {
			t.Fatalf("Failed to create bot %s: %v", name, err)
		}
	}

	bots, err := store.ListBots()
	if err != nil {
		t.Fatalf("Failed to list bots: %v", err)
	}
	if len(bots) != 3 {
		t.Errorf("Expected 3 bots, got %d", len(bots))
	}
}

func TestUpdateBotPartial(t *testing.T) {
	store, _ := setupTestStore(t)

	bot := newTestBot("watcher")
	if _, err := store.CreateBot(bot); err != nil {
		t.Fatalf("Failed to create bot: %v", err)
	}

	status := typ.BotStatusActive
	updated, err := store.UpdateBot(bot.ID, typ.UpdateBot{Status: &status})
	if err != nil {
		t.Fatalf("Failed to update bot: %v", err)
	}
	if updated == nil {
		t.Fatal("Expected updated bot, got nil")
	}
	if updated.Status != typ.BotStatusActive {
		t.Errorf("Status not updated: got %s", updated.Status)
	}
	if updated.Name != "watcher" {
		t.Errorf("Name must be unchanged, got %s", updated.Name)
	}
	if updated.Type != typ.BotTypeWebhook {
		t.Errorf("Type must be unchanged, got %s", updated.Type)
	}
	if updated.CreatedAt.Unix() != bot.CreatedAt.Unix() {
		t.Errorf("CreatedAt must be unchanged: got %v, want %v", updated.CreatedAt, bot.CreatedAt)
	}
}

func TestUpdateBotAbsent(t *testing.T) {
	store, _ := setupTestStore(t)

	status := typ.BotStatusActive
	updated, err := store.UpdateBot("no-such-id", typ.UpdateBot{Status: &status})
	if err != nil {
		t.Fatalf("Absent bot must not be an error, got: %v", err)
	}
	if updated != nil {
		t.Errorf("Expected nil for absent bot, got %+v", updated)
	}
}
