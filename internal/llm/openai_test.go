package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func fakeCompletionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing bearer token")
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": content}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func newTestClient(t *testing.T, baseURL string) *OpenAIClient {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_BASE_URL", baseURL)

	client, err := NewOpenAIClient()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return client
}

func TestNewOpenAIClient_RequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	if _, err := NewOpenAIClient(); err == nil {
		t.Fatal("expected error for missing credential")
	}
}

func TestGenerateMenu_ReturnsJSON(t *testing.T) {
	srv := fakeCompletionServer(t, `{"name":"Menu","description":"d","items":[{"name":"Soup","price":"6.00","category":"Appetizer"}]}`)
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	raw, err := client.GenerateMenu(context.Background(), "italian", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	draft, err := ParseDraft(raw)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if draft.Items[0].Name != "Soup" {
		t.Errorf("unexpected item %q", draft.Items[0].Name)
	}
}

func TestGenerateMenu_RejectsNonJSONOutput(t *testing.T) {
	srv := fakeCompletionServer(t, "Sure! Here is your menu:")
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	if _, err := client.GenerateMenu(context.Background(), "italian", ""); err == nil {
		t.Fatal("expected error for non-json model output")
	}
}

func TestGenerateMenu_EmptyReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	if _, err := client.GenerateMenu(context.Background(), "italian", ""); err == nil {
		t.Fatal("expected error for empty reply")
	}
}

func TestGenerateMenu_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	if _, err := client.GenerateMenu(context.Background(), "italian", ""); err == nil {
		t.Fatal("expected error for upstream failure")
	}
}
