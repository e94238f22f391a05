package msg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const testMessages = `
weather:
  current:
    received: "Weather request received for city: {0}"
  forecast:
    received: "Weather forecast request received for city: {0} for {1} days"
upstream:
  error: "Upstream failed: {0}"
  payload: "Payload {0}"
`

func loadTestMessages(t *testing.T) {
	t.Helper()
	if err := Load([]byte(testMessages)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetMessage(t *testing.T) {
	loadTestMessages(t)

	tests := []struct {
		name string
		key  string
		args []any
		want string
	}{
		{"single arg", "weather.current.received", []any{"London"}, "Weather request received for city: London"},
		{"int arg", "weather.forecast.received", []any{"Paris", 3}, "Weather forecast request received for city: Paris for 3 days"},
		{"missing arg keeps placeholder", "weather.forecast.received", []any{"Paris"}, "Weather forecast request received for city: Paris for {1} days"},
		{"error arg", "upstream.error", []any{errors.New("connection refused")}, "Upstream failed: connection refused"},
		{"struct arg", "upstream.payload", []any{struct {
			City string `json:"city"`
		}{"Rome"}}, `Payload {"city":"Rome"}`},
		{"nil arg", "upstream.payload", []any{nil}, "Payload "},
		{"missing key", "weather.unknown", nil, "Message not found: weather.unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetMessage(tt.key, tt.args...); got != tt.want {
				t.Errorf("GetMessage(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestInitFallsBackWhenFileIsMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "messages.yml")
	if err := Init(missing, []byte("app:\n  start: fallback\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := GetMessage("app.start"); got != "fallback" {
		t.Errorf("app.start = %q", got)
	}
}

func TestInitReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yml")
	if err := os.WriteFile(path, []byte("app:\n  start: from file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := Init(path, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := GetMessage("app.start"); got != "from file" {
		t.Errorf("app.start = %q", got)
	}
}
