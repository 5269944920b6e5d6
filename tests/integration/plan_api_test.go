package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/joho/godotenv"
)

// liveBaseURL skips the test unless TABIPLAN_API_BASE_URL points at a running
// server, then waits for it to answer /health.
func liveBaseURL(t *testing.T, client *http.Client) string {
	t.Helper()
	loadDotEnv(t)

	baseURL := strings.TrimRight(strings.TrimSpace(os.Getenv("TABIPLAN_API_BASE_URL")), "/")
	if baseURL == "" {
		t.Skip("TABIPLAN_API_BASE_URL not set; skipping live API test")
	}

	waitForAPIReady(t, client, baseURL)
	return baseURL
}

func TestPersonasEndpoint(t *testing.T) {
	client := &http.Client{Timeout: 30 * time.Second}
	baseURL := liveBaseURL(t, client)

	resp, err := client.Get(baseURL + "/api/personas")
	if err != nil {
		t.Fatalf("call /api/personas: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d, body=%s", resp.StatusCode, string(body))
	}

	var parsed struct {
		Personas []struct {
			Key   string `json:"key"`
			Title string `json:"title"`
		} `json:"personas"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("unmarshal response: %v, raw=%s", err, string(body))
	}
	if len(parsed.Personas) != 2 {
		t.Fatalf("expected 2 personas, got %d, raw=%s", len(parsed.Personas), string(body))
	}
	for _, p := range parsed.Personas {
		if p.Key == "" || p.Title == "" {
			t.Errorf("persona with empty key or title: %+v", p)
		}
	}

	// System prompts stay server-side.
	if strings.Contains(string(body), "あなたは") {
		t.Errorf("persona list leaks system prompt text: %s", string(body))
	}
}

func TestPlanEndpointEmptyInput(t *testing.T) {
	client := &http.Client{Timeout: 30 * time.Second}
	baseURL := liveBaseURL(t, client)

	status, body := callPlan(t, client, baseURL, "   ", "A")
	if status != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d, body=%s", http.StatusBadRequest, status, string(body))
	}

	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &errResp); err != nil {
		t.Fatalf("unmarshal response: %v, raw=%s", err, string(body))
	}
	if errResp.Error != "入力が空です。内容を入力してください。" {
		t.Fatalf("unexpected notice: %q", errResp.Error)
	}
}

// TestPlanEndpointGenerate exercises the live LLM path and therefore costs
// money; it needs the extra TABIPLAN_SMOKE_LLM=1 opt-in.
func TestPlanEndpointGenerate(t *testing.T) {
	if os.Getenv("TABIPLAN_SMOKE_LLM") != "1" {
		t.Skip("TABIPLAN_SMOKE_LLM not set; skipping live LLM smoke test")
	}

	client := &http.Client{Timeout: 90 * time.Second}
	baseURL := liveBaseURL(t, client)

	status, body := callPlan(t, client, baseURL, "出発地: 東京\n日程: 日帰り\n興味: 下町散策", "B")
	if status != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%s", http.StatusOK, status, string(body))
	}

	var okResp struct {
		Persona string `json:"persona"`
		Title   string `json:"title"`
		Plan    string `json:"plan"`
	}
	if err := json.Unmarshal(body, &okResp); err != nil {
		t.Fatalf("unmarshal response: %v, raw=%s", err, string(body))
	}
	if okResp.Persona != "B" {
		t.Errorf("expected persona B, got %q", okResp.Persona)
	}
	if strings.TrimSpace(okResp.Plan) == "" {
		t.Fatalf("expected non-empty plan, raw=%s", string(body))
	}
	t.Logf("[TEST LOG] generated plan (%s): %s", okResp.Title, okResp.Plan)
}

func callPlan(t *testing.T, client *http.Client, baseURL, text, persona string) (int, []byte) {
	t.Helper()

	payload, err := json.Marshal(map[string]string{
		"text":    text,
		"persona": persona,
	})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/plan", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("call /api/plan: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}

	return resp.StatusCode, body
}

func waitForAPIReady(t *testing.T, client *http.Client, baseURL string) {
	t.Helper()

	deadline := time.Now().Add(20 * time.Second)
	for time.Now().Before(deadline) {
		req, err := http.NewRequest(http.MethodGet, baseURL+"/health", nil)
		if err == nil {
			resp, err := client.Do(req)
			if err == nil {
				_ = resp.Body.Close()
				if resp.StatusCode == http.StatusOK {
					return
				}
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("api not ready: GET %s/health did not return 200 in time", baseURL)
}

// loadDotEnv walks up from the test directory so `go test ./...` from any
// depth picks up the repo-root .env.
func loadDotEnv(t *testing.T) {
	t.Helper()

	dir, err := os.Getwd()
	if err != nil {
		return
	}
	for i := 0; i < 8; i++ {
		candidate := filepath.Join(dir, ".env")
		if _, err := os.Stat(candidate); err == nil {
			_ = godotenv.Load(candidate)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
