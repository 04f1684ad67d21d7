package monitor

import (
	"fmt"
	"strings"

	"github.com/botwatch-dev/botwatch/internal/typ"
)

// FieldIssue describes one field-level schema violation.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when an input fails schema validation. It is
// raised before any state change.
type ValidationError struct {
	Issues []FieldIssue `json:"issues"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msgs = append(msgs, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

type issues []FieldIssue

func (is *issues) add(field, message string) {
	*is = append(*is, FieldIssue{Field: field, Message: message})
}

func (is issues) err() error {
	if len(is) == 0 {
		return nil
	}
	return &ValidationError{Issues: is}
}

func validateInsertBot(input typ.InsertBot) error {
	var is issues
	if strings.TrimSpace(input.Name) == "" {
		is.add("name", "name is required")
	}
	if input.Type == "" {
		is.add("type", "type is required")
	} else if !input.Type.Valid() {
		is.add("type", fmt.Sprintf("unknown bot type %q", input.Type))
	}
	if input.Status != "" && !input.Status.Valid() {
		is.add("status", fmt.Sprintf("unknown status %q", input.Status))
	}
	return is.err()
}

func validateUpdateBot(input typ.UpdateBot) error {
	var is issues
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		is.add("name", "name cannot be empty")
	}
	if input.Type != nil && !input.Type.Valid() {
		is.add("type", fmt.Sprintf("unknown bot type %q", *input.Type))
	}
	if input.Status != nil && !input.Status.Valid() {
		is.add("status", fmt.Sprintf("unknown status %q", *input.Status))
	}
	return is.err()
}

func validateInsertTest(input typ.InsertTest) error {
	var is issues
	if strings.TrimSpace(input.BotID) == "" {
		is.add("botId", "botId is required")
	}
	if input.Result == "" {
		is.add("result", "result is required")
	} else if !input.Result.Valid() {
		is.add("result", fmt.Sprintf("unknown result %q", input.Result))
	}
	return is.err()
}

func validateInsertUser(input typ.InsertUser) error {
	var is issues
	if strings.TrimSpace(input.Username) == "" {
		is.add("username", "username is required")
	}
	if input.Password == "" {
		is.add("password", "password is required")
	}
	return is.err()
}
