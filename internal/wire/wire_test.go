package wire

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"car-rental/internal/data/repository"
	"car-rental/internal/notify"
	"car-rental/internal/store"
	"car-rental/pkg/middleware"
	"car-rental/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type envelope struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func newTestApp(t *testing.T, adminHash string) *App {
	t.Helper()

	table := repository.NewTable()
	bookings := store.New(repository.NewMemoryBookingRepository(table, time.UTC, zap.NewNop()), zap.NewNop())
	require.NoError(t, bookings.Refresh(context.Background()))

	config := &utils.Config{
		Admin: utils.AdminConfig{KeyHash: adminHash},
		CORS:  utils.CORSConfig{AllowedOrigins: []string{"*"}},
	}
	return Wiring(bookings, notify.Nop{}, config, time.UTC, zap.NewNop())
}

func do(t *testing.T, app *App, method, path string, body any, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	var env envelope
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func bookingForm() map[string]string {
	pickup := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Hour)
	return map[string]string{
		"carId":         "2",
		"pickupDate":    pickup.Format(time.RFC3339),
		"dropDate":      pickup.Add(25 * time.Hour).Format(time.RFC3339),
		"customerName":  "Grace Hopper",
		"customerEmail": "grace@example.com",
		"customerPhone": "+15550123",
	}
}

func TestHealth(t *testing.T) {
	app := newTestApp(t, "")

	rec, _ := do(t, app, http.MethodGet, "/health", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestCars(t *testing.T) {
	app := newTestApp(t, "")

	rec, env := do(t, app, http.MethodGet, "/api/cars?type=SUV", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var cars []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &cars))
	assert.NotEmpty(t, cars)

	rec, env = do(t, app, http.MethodGet, "/api/cars/404", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Car not found", env.Message)
}

func TestQuote(t *testing.T) {
	app := newTestApp(t, "")

	rec, env := do(t, app, http.MethodPost, "/api/quote", bookingForm(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var quote struct {
		BillableDays int     `json:"billableDays"`
		TotalPrice   float64 `json:"totalPrice"`
		CanSubmit    bool    `json:"canSubmit"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &quote))
	assert.True(t, quote.CanSubmit)
	assert.Equal(t, 2, quote.BillableDays)
	assert.Equal(t, 190.0, quote.TotalPrice)
}

func TestBookingLifecycle(t *testing.T) {
	app := newTestApp(t, "")

	rec, env := do(t, app, http.MethodPost, "/api/bookings", bookingForm(), nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID        string `json:"id"`
		CreatedAt string `json:"createdAt"`
		Status    string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.CreatedAt)
	assert.Equal(t, "confirmed", created.Status)

	rec, _ = do(t, app, http.MethodGet, "/api/bookings/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = do(t, app, http.MethodPatch, "/api/bookings/"+created.ID+"/status",
		map[string]string{"status": "pending"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"status":"pending"`)

	rec, _ = do(t, app, http.MethodDelete, "/api/bookings/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = do(t, app, http.MethodDelete, "/api/bookings/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, store.MsgNotFound, env.Message)

	rec, env = do(t, app, http.MethodGet, "/api/bookings/state", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"error":"Booking not found"`)

	rec, env = do(t, app, http.MethodDelete, "/api/bookings/state/error", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, string(env.Data), `"error"`)
}

func TestCreateBooking_ValidationFailed(t *testing.T) {
	app := newTestApp(t, "")

	form := bookingForm()
	form["dropDate"] = form["pickupDate"]
	form["customerEmail"] = "not-an-email"

	rec, env := do(t, app, http.MethodPost, "/api/bookings", form, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Drop date must be after pickup date", env.Errors["dropDate"])
	assert.Equal(t, "Invalid email format", env.Errors["customerEmail"])

	rec, env = do(t, app, http.MethodGet, "/api/bookings", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"total":0`)
}

func TestAdminRoutesRequireKey(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("fleet-admin"), bcrypt.MinCost)
	require.NoError(t, err)
	app := newTestApp(t, string(hash))

	rec, env := do(t, app, http.MethodPost, "/api/bookings", bookingForm(), nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	rec, _ = do(t, app, http.MethodDelete, "/api/bookings/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = do(t, app, http.MethodDelete, "/api/bookings/"+created.ID, nil,
		map[string]string{middleware.AdminKeyHeader: "fleet-admin"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCalendar(t *testing.T) {
	app := newTestApp(t, "")

	rec, env := do(t, app, http.MethodGet, "/api/calendar?year=2025&month=1", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var cal struct {
		Title string `json:"title"`
		Days  []any  `json:"days"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &cal))
	assert.Equal(t, "January 2025", cal.Title)
	assert.Len(t, cal.Days, 42)

	rec, _ = do(t, app, http.MethodGet, "/api/calendar?year=2025&month=13", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
