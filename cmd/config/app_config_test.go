package config

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"ecotrack/domain"
	"ecotrack/internal/storage"
	"ecotrack/internal/utils"
	"ecotrack/pkg/jwt"
	"ecotrack/pkg/notify"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)

type stubGemini struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []string
}

func (s *stubGemini) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts = append(s.prompts, prompt)
	return s.reply, s.err
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestApp(t *testing.T, gemini *stubGemini, jwtService jwt.JWTService) *fiber.App {
	t.Helper()
	utils.SetConfig("RATE_LIMIT_MAX", "1000")
	services := NewServices(storage.NewMemoryStore(), utils.FixedClock(testNow), notify.NewLogNotifier(), gemini)
	return NewAppWithServices(services, jwtService, io.Discard)
}

func do(t *testing.T, app *fiber.App, method, path string, body any, headers ...string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestApp_Ping(t *testing.T) {
	app := newTestApp(t, &stubGemini{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestApp_InventoryFlow(t *testing.T) {
	app := newTestApp(t, &stubGemini{}, nil)

	status, env := do(t, app, http.MethodPost, "/api/v1/inventory", map[string]any{
		"food_item": "Milk",
		"quantity":  2,
		"unit":      "count",
		"category":  "dairy",
	})
	require.Equal(t, http.StatusCreated, status, env.Error)

	var milk domain.InventoryItemResponse
	require.NoError(t, json.Unmarshal(env.Data, &milk))
	assert.Equal(t, "2024-01-08", milk.ExpiryDate)

	status, env = do(t, app, http.MethodPost, "/api/v1/inventory", map[string]any{
		"food_item":   "Spinach",
		"quantity":    200,
		"unit":        "g",
		"category":    "Fruits & Vegetables",
		"expiry_date": "2024-01-02",
	})
	require.Equal(t, http.StatusCreated, status, env.Error)

	status, env = do(t, app, http.MethodGet, "/api/v1/inventory", nil)
	require.Equal(t, http.StatusOK, status)
	var items []domain.InventoryItemResponse
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Spinach", items[0].FoodItem)

	status, env = do(t, app, http.MethodGet, "/api/v1/inventory/warnings", nil)
	require.Equal(t, http.StatusOK, status)
	var warnings []domain.ExpiryWarning
	require.NoError(t, json.Unmarshal(env.Data, &warnings))
	require.Len(t, warnings, 1)
	assert.Equal(t, "Spinach", warnings[0].FoodItem)

	status, _ = do(t, app, http.MethodGet, "/api/v1/inventory/"+milk.ID, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = do(t, app, http.MethodPost, "/api/v1/inventory/"+milk.ID+"/consume", nil)
	assert.Equal(t, http.StatusOK, status)

	status, env = do(t, app, http.MethodGet, "/api/v1/inventory?include_consumed=true", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &items))
	assert.Len(t, items, 2)

	status, env = do(t, app, http.MethodPost, "/api/v1/inventory/"+milk.ID+"/waste", nil)
	require.Equal(t, http.StatusOK, status, env.Error)
	var entry domain.WasteEntryResponse
	require.NoError(t, json.Unmarshal(env.Data, &entry))
	assert.Equal(t, domain.ReasonExpiredWasted, entry.Reason)

	status, _ = do(t, app, http.MethodPost, "/api/v1/inventory/"+milk.ID+"/waste", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestApp_InventoryValidation(t *testing.T) {
	app := newTestApp(t, &stubGemini{}, nil)

	status, env := do(t, app, http.MethodPost, "/api/v1/inventory", map[string]any{
		"food_item": "Milk",
		"quantity":  0,
		"unit":      "count",
		"category":  "dairy",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Status)

	status, _ = do(t, app, http.MethodPost, "/api/v1/inventory", map[string]any{
		"food_item": "Milk",
		"quantity":  1,
		"unit":      "count",
		"category":  "beverages",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, app, http.MethodPost, "/api/v1/inventory", map[string]any{
		"food_item":     "Milk",
		"quantity":      1,
		"unit":          "count",
		"category":      "dairy",
		"purchase_date": "last week",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, app, http.MethodGet, "/api/v1/inventory/warnings?window=-1", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, app, http.MethodPost, "/api/v1/inventory/missing/consume", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestApp_WasteAndDashboard(t *testing.T) {
	app := newTestApp(t, &stubGemini{}, nil)

	status, env := do(t, app, http.MethodPost, "/api/v1/waste", map[string]any{
		"food_item": "Pork",
		"quantity":  2,
		"unit":      "kg",
		"category":  "meat_fish",
		"reason":    "Forgot in fridge",
	})
	require.Equal(t, http.StatusCreated, status, env.Error)
	var entry domain.WasteEntryResponse
	require.NoError(t, json.Unmarshal(env.Data, &entry))
	assert.Equal(t, 10.6, entry.CO2Impact)

	status, env = do(t, app, http.MethodGet, "/api/v1/waste", nil)
	require.Equal(t, http.StatusOK, status)
	var entries []domain.WasteEntryResponse
	require.NoError(t, json.Unmarshal(env.Data, &entries))
	assert.Len(t, entries, 1)

	status, env = do(t, app, http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, status)
	var stats domain.DashboardStatsResponse
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, "2.0 kg", stats.WeeklyTotalDisplay)
	assert.Equal(t, "10.6 kg CO₂", stats.TotalCO2Display)
	assert.Equal(t, domain.DailyWaste{Day: "Mon", Grams: 2000}, stats.DailySeries[0])
}

func TestApp_Assistant(t *testing.T) {
	gemini := &stubGemini{reply: "Store herbs like flowers in a glass of water."}
	app := newTestApp(t, gemini, nil)

	status, env := do(t, app, http.MethodGet, "/api/v1/assistant/greeting", nil)
	require.Equal(t, http.StatusOK, status)
	var greeting domain.GreetingResponse
	require.NoError(t, json.Unmarshal(env.Data, &greeting))
	assert.Equal(t, domain.AssistantGreeting, greeting.Message)

	status, env = do(t, app, http.MethodPost, "/api/v1/assistant/chat", map[string]any{"message": "How do I keep herbs fresh?"})
	require.Equal(t, http.StatusOK, status)
	var reply domain.ChatResponse
	require.NoError(t, json.Unmarshal(env.Data, &reply))
	assert.Equal(t, "Store herbs like flowers in a glass of water.", reply.Reply)
	assert.False(t, reply.Fallback)

	status, _ = do(t, app, http.MethodPost, "/api/v1/assistant/chat", map[string]any{"message": ""})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestApp_RequiresTokenWhenConfigured(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret")
	app := newTestApp(t, &stubGemini{}, jwtService)

	status, _ := do(t, app, http.MethodGet, "/api/v1/inventory", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = do(t, app, http.MethodGet, "/api/v1/inventory", nil, "Authorization", "Bearer nope")
	assert.Equal(t, http.StatusUnauthorized, status)

	token, err := jwtService.GenerateToken("tests", time.Hour)
	require.NoError(t, err)
	status, _ = do(t, app, http.MethodGet, "/api/v1/inventory", nil, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusOK, status)

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestOpenLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	file, err := openLogFile(dir)
	require.NoError(t, err)
	require.NoError(t, file.Close())
	assert.FileExists(t, filepath.Join(dir, "app.log"))

	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, err = openLogFile(filepath.Join(blocker, "logs"))
	assert.Error(t, err)
}
