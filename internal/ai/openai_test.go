package ai

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOpenAIClient_Complete(t *testing.T) {
	var gotAuth, gotContentType string
	var gotBody chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"09:00 出発 → 10:15 到着"}}]}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient("test-key", "gpt-4o-mini", 0.3).WithEndpoint(srv.URL)

	reply, err := client.Complete(context.Background(), "system prompt text", "user message text")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if reply != "09:00 出発 → 10:15 到着" {
		t.Errorf("reply = %q, want the stubbed content", reply)
	}

	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q, want Bearer test-key", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}
	if gotBody.Model != "gpt-4o-mini" {
		t.Errorf("model = %q, want gpt-4o-mini", gotBody.Model)
	}
	if len(gotBody.Messages) != 2 {
		t.Fatalf("got %d messages, want 2 (system + user)", len(gotBody.Messages))
	}
	if gotBody.Messages[0].Role != "system" || gotBody.Messages[0].Content != "system prompt text" {
		t.Errorf("first message = %+v, want the system instruction", gotBody.Messages[0])
	}
	if gotBody.Messages[1].Role != "user" || gotBody.Messages[1].Content != "user message text" {
		t.Errorf("second message = %+v, want the user message", gotBody.Messages[1])
	}
	if math.Abs(float64(gotBody.Temperature)-0.3) > 1e-6 {
		t.Errorf("temperature = %v, want 0.3", gotBody.Temperature)
	}
}

func TestOpenAIClient_CompleteErrors(t *testing.T) {
	tests := []struct {
		name     string
		response string
		wantErr  string
	}{
		{
			name:     "api error envelope",
			response: `{"error":{"message":"Incorrect API key provided"}}`,
			wantErr:  "Incorrect API key provided",
		},
		{
			name:     "empty choices",
			response: `{"choices":[]}`,
			wantErr:  "empty choices",
		},
		{
			name:     "blank message content",
			response: `{"choices":[{"message":{"role":"assistant","content":"   "}}]}`,
			wantErr:  "empty message content",
		},
		{
			name:     "non JSON body",
			response: `upstream exploded`,
			wantErr:  "unmarshal response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.response))
			}))
			defer srv.Close()

			client := NewOpenAIClient("test-key", "", 0.3).WithEndpoint(srv.URL)
			_, err := client.Complete(context.Background(), "system", "user")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestOpenAIClient_MissingKey(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	client := NewOpenAIClient("", "", 0.3).WithEndpoint(srv.URL)
	_, err := client.Complete(context.Background(), "system", "user")
	if err == nil || !strings.Contains(err.Error(), "missing api key") {
		t.Fatalf("error = %v, want missing api key", err)
	}
	if calls != 0 {
		t.Errorf("endpoint was called %d times, want 0", calls)
	}
}

func TestNewOpenAIClient_DefaultModel(t *testing.T) {
	client := NewOpenAIClient("k", "", 0.3)
	if client.model != DefaultOpenAIModel {
		t.Errorf("model = %q, want %q", client.model, DefaultOpenAIModel)
	}
}
