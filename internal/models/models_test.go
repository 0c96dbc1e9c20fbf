package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/gofrs/uuid"
)

func TestUserJSONNeverContainsPassword(t *testing.T) {
	user := User{
		ID:       uuid.Must(uuid.NewV4()),
		Email:    "alice@example.com",
		Password: "$2a$12$hash",
		Name:     "Alice",
	}

	data, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("Failed to marshal user: %v", err)
	}

	if strings.Contains(string(data), "hash") {
		t.Errorf("Password hash leaked into JSON: %s", data)
	}
	if strings.Contains(string(data), "password") {
		t.Errorf("Password field leaked into JSON: %s", data)
	}
}

func TestUserPublicView(t *testing.T) {
	user := User{
		ID:       uuid.Must(uuid.NewV4()),
		Email:    "bob@example.com",
		Password: "secret-hash",
		Name:     "Bob",
	}

	public := user.Public()

	if public.ID != user.ID.String() {
		t.Errorf("Expected ID %s, got %s", user.ID, public.ID)
	}
	if public.Email != "bob@example.com" {
		t.Errorf("Expected email preserved, got %s", public.Email)
	}
	if public.Name != "Bob" {
		t.Errorf("Expected name preserved, got %s", public.Name)
	}
}

func TestTaskJSONShape(t *testing.T) {
	task := Task{
		ID:     uuid.Must(uuid.NewV4()),
		UserID: uuid.Must(uuid.NewV4()),
		Title:  "Buy milk",
	}

	data, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("Failed to marshal task: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal task: %v", err)
	}

	for _, field := range []string{"id", "user_id", "title", "description", "completed", "created_at", "updated_at"} {
		if _, ok := decoded[field]; !ok {
			t.Errorf("Expected field %q in task JSON", field)
		}
	}
	if decoded["completed"] != false {
		t.Error("Expected completed to default to false")
	}
}
