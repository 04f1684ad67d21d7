package monitor

import (
	"errors"
	"testing"

	"github.com/botwatch-dev/botwatch/internal/data/db"
	"github.com/botwatch-dev/botwatch/internal/typ"
)

func setupService(t *testing.T) *Service {
	t.Helper()

	store, err := db.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return NewService(store)
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError, got %T: %v", err, err)
	}
	fields := make(map[string]string, len(verr.Issues))
	for _, issue := range verr.Issues {
		fields[issue.Field] = issue.Message
	}
	return fields
}

func TestCreateBotDefaultsStatus(t *testing.T) {
	svc := setupService(t)

	bot, err := svc.CreateBot(typ.InsertBot{Name: "X", Type: typ.BotTypeWebhook})
	if err != nil {
		t.Fatalf("CreateBot failed: %v", err)
	}
	if bot.ID == "" {
		t.Error("Expected server-assigned id")
	}
	if bot.Status != typ.BotStatusInactive {
		t.Errorf("Status must default to inactive, got %s", bot.Status)
	}
	if bot.CreatedAt.IsZero() {
		t.Error("Expected server-assigned createdAt")
	}

	// Round-trip through the store
	fetched, err := svc.GetBot(bot.ID)
	if err != nil {
		t.Fatalf("GetBot failed: %v", err)
	}
	if fetched == nil {
		t.Fatal("Expected bot, got nil")
	}
	if fetched.Name != "X" || fetched.Type != typ.BotTypeWebhook || fetched.Status != typ.BotStatusInactive {
		t.Errorf("Round-trip mismatch: %+v", fetched)
	}
}

func TestCreateBotAssignsUniqueIDs(t *testing.T) {
	svc := setupService(t)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		bot, err := svc.CreateBot(typ.InsertBot{Name: "n", Type: typ.BotTypeMCP})
		if err != nil {
			t.Fatalf("CreateBot failed: %v", err)
		}
		if seen[bot.ID] {
			t.Fatalf("Duplicate id %s", bot.ID)
		}
		seen[bot.ID] = true
	}
}

func TestCreateBotValidation(t *testing.T) {
	svc := setupService(t)

	_, err := svc.CreateBot(typ.InsertBot{})
	fields := fieldsOf(t, err)
	if _, ok := fields["name"]; !ok {
		t.Error("Expected issue on name")
	}
	if _, ok := fields["type"]; !ok {
		t.Error("Expected issue on type")
	}

	_, err = svc.CreateBot(typ.InsertBot{Name: "x", Type: "Telegram"})
	fields = fieldsOf(t, err)
	if _, ok := fields["type"]; !ok {
		t.Error("Expected issue on unknown type")
	}

	_, err = svc.CreateBot(typ.InsertBot{Name: "x", Type: typ.BotTypeMCP, Status: "paused"})
	fields = fieldsOf(t, err)
	if _, ok := fields["status"]; !ok {
		t.Error("Expected issue on unknown status")
	}

	// Nothing may have been written
	bots, err := svc.GetAllBots()
	if err != nil {
		t.Fatalf("GetAllBots failed: %v", err)
	}
	if len(bots) != 0 {
		t.Errorf("Validation failures must not mutate state, found %d bots", len(bots))
	}
}

func TestUpdateBotPartialAndAbsent(t *testing.T) {
	svc := setupService(t)

	bot, err := svc.CreateBot(typ.InsertBot{Name: "X", Type: typ.BotTypeWebhook})
	if err != nil {
		t.Fatalf("CreateBot failed: %v", err)
	}

	status := typ.BotStatusActive
	updated, err := svc.UpdateBot(bot.ID, typ.UpdateBot{Status: &status})
	if err != nil {
		t.Fatalf("UpdateBot failed: %v", err)
	}
	if updated.Status != typ.BotStatusActive || updated.Name != "X" || updated.Type != typ.BotTypeWebhook {
		t.Errorf("Partial update touched other fields: %+v", updated)
	}

	absent, err := svc.UpdateBot("missing", typ.UpdateBot{Status: &status})
	if err != nil {
		t.Fatalf("Absent id must not be an error, got: %v", err)
	}
	if absent != nil {
		t.Errorf("Expected nil for absent id, got %+v", absent)
	}

	bad := typ.BotStatus("paused")
	if _, err := svc.UpdateBot(bot.ID, typ.UpdateBot{Status: &bad}); err == nil {
		t.Error("Expected validation error for unknown status")
	}
}

func TestCreateTestValidationAndFK(t *testing.T) {
	svc := setupService(t)

	_, err := svc.CreateTest(typ.InsertTest{})
	fields := fieldsOf(t, err)
	if _, ok := fields["botId"]; !ok {
		t.Error("Expected issue on botId")
	}
	if _, ok := fields["result"]; !ok {
		t.Error("Expected issue on result")
	}

	_, err = svc.CreateTest(typ.InsertTest{BotID: "some-id", Result: "flaky"})
	fields = fieldsOf(t, err)
	if _, ok := fields["result"]; !ok {
		t.Error("Expected issue on unknown result")
	}

	// Unknown bot id passes validation but fails at the store
	_, err = svc.CreateTest(typ.InsertTest{BotID: "no-such-bot", Result: typ.TestResultSuccess})
	if err == nil {
		t.Fatal("Expected store failure for unknown bot id")
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		t.Errorf("FK violation must not be a validation error, got %v", err)
	}

	tests, err := svc.GetAllTests()
	if err != nil {
		t.Fatalf("GetAllTests failed: %v", err)
	}
	if len(tests) != 0 {
		t.Errorf("No test may persist after a failed insert, found %d", len(tests))
	}
}

func TestGetTestsByBotID(t *testing.T) {
	svc := setupService(t)

	bot, err := svc.CreateBot(typ.InsertBot{Name: "X", Type: typ.BotTypeMCP})
	if err != nil {
		t.Fatalf("CreateBot failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := svc.CreateTest(typ.InsertTest{BotID: bot.ID, Result: typ.TestResultSuccess}); err != nil {
			t.Fatalf("CreateTest failed: %v", err)
		}
	}

	tests, err := svc.GetTestsByBotID(bot.ID)
	if err != nil {
		t.Fatalf("GetTestsByBotID failed: %v", err)
	}
	if len(tests) != 2 {
		t.Errorf("Expected 2 tests, got %d", len(tests))
	}

	empty, err := svc.GetTestsByBotID("missing")
	if err != nil {
		t.Fatalf("Unknown bot must not be an error, got: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Expected empty list, got %d", len(empty))
	}
}

func TestCreateUserValidationAndUniqueness(t *testing.T) {
	svc := setupService(t)

	_, err := svc.CreateUser(typ.InsertUser{})
	fields := fieldsOf(t, err)
	if _, ok := fields["username"]; !ok {
		t.Error("Expected issue on username")
	}
	if _, ok := fields["password"]; !ok {
		t.Error("Expected issue on password")
	}

	user, err := svc.CreateUser(typ.InsertUser{Username: "ops", Password: "hash"})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if user.ID == "" {
		t.Error("Expected server-assigned id")
	}

	_, err = svc.CreateUser(typ.InsertUser{Username: "ops", Password: "hash2"})
	fields = fieldsOf(t, err)
	if _, ok := fields["username"]; !ok {
		t.Error("Expected issue on duplicate username")
	}

	found, err := svc.GetUserByUsername("ops")
	if err != nil {
		t.Fatalf("GetUserByUsername failed: %v", err)
	}
	if found == nil || found.ID != user.ID {
		t.Errorf("Lookup mismatch: %+v", found)
	}
}

func TestDashboardStats(t *testing.T) {
	svc := setupService(t)

	active, err := svc.CreateBot(typ.InsertBot{Name: "a", Type: typ.BotTypeMCP, Status: typ.BotStatusActive})
	if err != nil {
		t.Fatalf("CreateBot failed: %v", err)
	}
	if _, err := svc.CreateBot(typ.InsertBot{Name: "b", Type: typ.BotTypeWebhook}); err != nil {
		t.Fatalf("CreateBot failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateTest(typ.InsertTest{BotID: active.ID, Result: typ.TestResultSuccess}); err != nil {
			t.Fatalf("CreateTest failed: %v", err)
		}
	}
	if _, err := svc.CreateTest(typ.InsertTest{BotID: active.ID, Result: typ.TestResultFailure}); err != nil {
		t.Fatalf("CreateTest failed: %v", err)
	}

	stats, err := svc.DashboardStats(2)
	if err != nil {
		t.Fatalf("DashboardStats failed: %v", err)
	}
	if stats.TotalBots != 2 {
		t.Errorf("TotalBots: got %d, want 2", stats.TotalBots)
	}
	if stats.ActiveBots != 1 {
		t.Errorf("ActiveBots: got %d, want 1", stats.ActiveBots)
	}
	if stats.TotalTests != 4 {
		t.Errorf("TotalTests: got %d, want 4", stats.TotalTests)
	}
	if stats.SuccessRate != 75.0 {
		t.Errorf("SuccessRate: got %f, want 75.0", stats.SuccessRate)
	}
	if len(stats.RecentTests) != 2 {
		t.Errorf("RecentTests: got %d, want 2", len(stats.RecentTests))
	}
	for i := 1; i < len(stats.RecentTests); i++ {
		if stats.RecentTests[i].Date.After(stats.RecentTests[i-1].Date) {
			t.Error("RecentTests must be sorted newest first")
		}
	}
}
