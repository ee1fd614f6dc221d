package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventconnect/internal/container"
	"github.com/joshua-takyi/eventconnect/internal/helpers"
	"github.com/joshua-takyi/eventconnect/internal/middleware"
	"github.com/joshua-takyi/eventconnect/internal/models"
	"github.com/joshua-takyi/eventconnect/internal/services"
	"github.com/joshua-takyi/eventconnect/internal/storage"
	"github.com/joshua-takyi/eventconnect/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Total   int             `json:"total"`
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
	data   *store.DataStore
	kv     *storage.MemoryStore
	auth   *services.AuthService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithLatency(t, 0)
}

func newTestServerWithLatency(t *testing.T, latency time.Duration) *testServer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	kv := storage.NewMemoryStore()
	data, err := store.Open(context.Background(), kv, store.Options{Logger: logger})
	require.NoError(t, err)

	c := container.NewContainer(container.Options{
		Logger: logger,
		KV:     kv,
		Data:   data,
		Tokens: helpers.NewTokenIssuer([]byte("route-test-secret"), time.Hour),
		Auth: services.AuthOptions{
			Latency: latency,
			Params: &argon2id.Params{Memory: 64, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32},
		},
	})
	return &testServer{t: t, router: SetupRoutes(c), data: data, kv: kv, auth: c.AuthService}
}

func (s *testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, "/api/v1"+path, r)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) login(email, password string) string {
	s.t.Helper()
	w := s.do(http.MethodPost, "/login", "", gin.H{"email": email, "password": password})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.AccessTokenCookie {
			return ck.Value
		}
	}
	s.t.Fatal("login did not set a session cookie")
	return ""
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) (T, envelope) {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var out T
	if len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, &out))
	}
	return out, env
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w := s.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "eventconnect-api")
}

func TestListEvents(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/events?category=Ceremony&sort=price-low", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	events, env := decode[[]models.Event](t, w)
	assert.Equal(t, 2, env.Total)
	require.Len(t, events, 2)
	assert.Equal(t, "4", events[0].ID)
	assert.Equal(t, "3", events[1].ID)

	w = s.do(http.MethodGet, "/events?q=sangeet", "", nil)
	events, _ = decode[[]models.Event](t, w)
	require.Len(t, events, 1)
	assert.Equal(t, "5", events[0].ID)

	w = s.do(http.MethodGet, "/events?sort=cheapest", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/events/404", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/events/1/offers", "", nil)
	offers, _ := decode[[]models.EventCompanyOffer](t, w)
	require.Len(t, offers, 1)
	assert.Equal(t, "offer_1", offers[0].ID)
}

func TestSignupAndLogin(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/signup", "", gin.H{"email": "meera@example.com", "password": "secret1", "name": "Meera"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	user, _ := decode[models.User](t, w)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotContains(t, w.Body.String(), "argon2id")
	assert.NotEmpty(t, w.Header().Get("Authorization"))

	w = s.do(http.MethodPost, "/signup", "", gin.H{"email": "MEERA@example.com", "password": "secret1", "name": "Meera"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(http.MethodPost, "/signup", "", gin.H{"email": "root@example.com", "password": "secret1", "name": "Root", "role": "admin"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodPost, "/login", "", gin.H{"email": "meera@example.com", "password": "wrong-one"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := s.login("meera@example.com", "secret1")
	w = s.do(http.MethodGet, "/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me, _ := decode[models.User](t, w)
	assert.Equal(t, user.ID, me.ID)

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/me", "", nil).Code)
}

func TestSessionCookie(t *testing.T) {
	s := newTestServer(t)
	token := s.login("planner@eventconnect.com", "planner123")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.AddCookie(&http.Cookie{Name: middleware.AccessTokenCookie, Value: token})
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), models.SeedPlannerID)

	w = s.do(http.MethodPost, "/logout", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, middleware.AccessTokenCookie, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
}

func TestSessionKeyFollowsLoginAndLogout(t *testing.T) {
	s := newTestServerWithLatency(t, 50*time.Millisecond)
	ctx := context.Background()
	assert.Equal(t, services.AuthLoading, s.auth.State())

	start := time.Now()
	s.login("admin@eventconnect.com", "admin123")
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)

	assert.Equal(t, services.AuthAuthenticated, s.auth.State())
	var current models.User
	require.NoError(t, storage.LoadJSON(ctx, s.kv, "eventconnect_user", &current))
	assert.Equal(t, models.SeedAdminID, current.ID)

	w := s.do(http.MethodPost, "/logout", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, services.AuthAnonymous, s.auth.State())
	_, err := s.kv.Load(ctx, "eventconnect_user")
	require.ErrorIs(t, err, storage.ErrNotFound)

	w = s.do(http.MethodPost, "/signup", "", gin.H{"email": "nisha@example.com", "password": "secret1", "name": "Nisha"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.NoError(t, storage.LoadJSON(ctx, s.kv, "eventconnect_user", &current))
	assert.Equal(t, "nisha@example.com", current.Email)
	assert.Empty(t, current.PasswordHash)
	user, ok := s.auth.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, current.ID, user.ID)
}

func TestAdminCannotReuseEmail(t *testing.T) {
	s := newTestServer(t)
	admin := s.login("admin@eventconnect.com", "admin123")
	w := s.do(http.MethodPost, "/signup", "", gin.H{"email": "dev@example.com", "password": "secret1", "name": "Dev"})
	require.Equal(t, http.StatusCreated, w.Code)
	dev, _ := decode[models.User](t, w)

	w = s.do(http.MethodPatch, "/admin/users/"+dev.ID, admin, gin.H{"email": "planner@eventconnect.com"})
	assert.Equal(t, http.StatusConflict, w.Code)
	got, _ := s.data.User(dev.ID)
	assert.Equal(t, "dev@example.com", got.Email)
}

func TestBookingReviewFlow(t *testing.T) {
	s := newTestServer(t)
	w := s.do(http.MethodPost, "/signup", "", gin.H{"email": "arjun@example.com", "password": "secret1", "name": "Arjun"})
	require.Equal(t, http.StatusCreated, w.Code)
	user := s.login("arjun@example.com", "secret1")
	admin := s.login("admin@eventconnect.com", "admin123")

	booking := gin.H{"eventId": "2", "companyId": "company_2", "date": "2025-12-12T00:00:00Z", "time": "5:00 PM", "urgency": "urgent"}
	w = s.do(http.MethodPost, "/bookings", user, booking)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	b, _ := decode[models.Booking](t, w)
	assert.Equal(t, 44000, b.TotalPrice)
	assert.Equal(t, models.BookingPending, b.Status)

	assert.Equal(t, http.StatusConflict, s.do(http.MethodPost, "/bookings", user, booking).Code)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodPost, "/bookings", admin, booking).Code)

	review := gin.H{"rating": 3, "comment": "Decent cake"}
	w = s.do(http.MethodPost, "/bookings/"+b.ID+"/review", user, review)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = s.do(http.MethodPatch, "/admin/bookings/"+b.ID, admin, gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/bookings/"+b.ID+"/review", user, review)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, http.StatusConflict, s.do(http.MethodPost, "/bookings/"+b.ID+"/review", user, review).Code)

	w = s.do(http.MethodGet, "/events/2", "", nil)
	ev, _ := decode[models.Event](t, w)
	assert.Equal(t, 3.0, ev.Rating)
	assert.Equal(t, 1, ev.ReviewCount)

	w = s.do(http.MethodGet, "/bookings/mine", user, nil)
	_, env := decode[[]models.Booking](t, w)
	assert.Equal(t, 1, env.Total)

	w = s.do(http.MethodDelete, "/bookings/mine", user, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, s.data.BookingsByUser(b.UserID))
}

func TestPlannerRoutes(t *testing.T) {
	s := newTestServer(t)
	w := s.do(http.MethodPost, "/signup", "", gin.H{"email": "kavya@example.com", "password": "secret1", "name": "Kavya"})
	require.Equal(t, http.StatusCreated, w.Code)
	user := s.login("kavya@example.com", "secret1")
	planner := s.login("planner@eventconnect.com", "planner123")

	w = s.do(http.MethodPost, "/bookings", user, gin.H{"eventId": "6", "companyId": "company_3", "date": "2025-11-01T00:00:00Z", "time": "9:00 AM"})
	require.Equal(t, http.StatusCreated, w.Code)
	mine, _ := decode[models.Booking](t, w)
	w = s.do(http.MethodPost, "/bookings", user, gin.H{"eventId": "1", "companyId": "company_1", "date": "2025-11-02T00:00:00Z", "time": "9:00 AM"})
	require.Equal(t, http.StatusCreated, w.Code)
	theirs, _ := decode[models.Booking](t, w)

	w = s.do(http.MethodGet, "/planner/requests?status=pending", planner, nil)
	requests, _ := decode[[]models.Booking](t, w)
	require.Len(t, requests, 1)
	assert.Equal(t, mine.ID, requests[0].ID)

	w = s.do(http.MethodPatch, "/planner/requests/"+theirs.ID, planner, gin.H{"status": "confirmed"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodPatch, "/planner/requests/"+mine.ID, planner, gin.H{"status": "cancelled"})
	require.Equal(t, http.StatusOK, w.Code)
	updated, _ := decode[models.Booking](t, w)
	assert.Equal(t, models.BookingCancelled, updated.Status)

	w = s.do(http.MethodPost, "/planner/companies", planner, gin.H{"name": "Rangoli Rentals"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = s.do(http.MethodGet, "/planner/companies", planner, nil)
	_, env := decode[[]models.Company](t, w)
	assert.Equal(t, 2, env.Total)

	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/planner/requests", user, nil).Code)
}

func TestAdminRoutes(t *testing.T) {
	s := newTestServer(t)
	admin := s.login("admin@eventconnect.com", "admin123")
	planner := s.login("planner@eventconnect.com", "planner123")

	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/admin/stats", planner, nil).Code)

	w := s.do(http.MethodGet, "/admin/stats", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats, _ := decode[store.Stats](t, w)
	assert.Equal(t, 6, stats.Events)
	assert.Equal(t, 3, stats.Companies)

	w = s.do(http.MethodPost, "/admin/events", admin, gin.H{"title": "Mehendi Evening", "category": "Wedding", "price": 40000})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	ev, _ := decode[models.Event](t, w)
	assert.Equal(t, 4.5, ev.Rating)

	w = s.do(http.MethodPost, "/admin/events", admin, gin.H{"title": "No category"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPatch, "/admin/events/"+ev.ID, admin, gin.H{"price": 42000, "rating": 1})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got, _ := s.data.Event(ev.ID)
	assert.Equal(t, 42000, got.Price)
	assert.Equal(t, 4.5, got.Rating)

	w = s.do(http.MethodDelete, "/admin/companies/company_1", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, s.data.OffersForEvent("1"))
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodDelete, "/admin/companies/company_1", admin, nil).Code)

	w = s.do(http.MethodDelete, "/admin/users/"+models.SeedAdminID, admin, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
