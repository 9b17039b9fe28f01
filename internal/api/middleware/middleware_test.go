package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PetHotelService/internal/service/auth"
	"github.com/m04kA/PetHotelService/internal/service/auth/models"
	"github.com/m04kA/PetHotelService/pkg/logger"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestAuthDisabledPassesThrough(t *testing.T) {
	svc := auth.NewService("", "", time.Hour, logger.Nop())
	h := Auth(svc)(http.HandlerFunc(okHandler))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rooms", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRequiresValidBearer(t *testing.T) {
	svc := auth.NewService("meow", "secret", time.Hour, logger.Nop())

	var seenRole string
	h := Auth(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := ClaimsFromContext(r.Context()); ok {
			seenRole = claims.Role
		}
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rooms", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	login, err := svc.Login(&models.LoginRequest{Password: "meow"})
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/rooms", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", seenRole)
}

type observed struct {
	method, path string
	status       int
}

type fakeHTTPMetrics struct {
	calls []observed
}

func (f *fakeHTTPMetrics) ObserveHTTPRequest(method, path string, status int, _ time.Duration) {
	f.calls = append(f.calls, observed{method: method, path: path, status: status})
}

func TestMetricsMiddlewareUsesRouteTemplate(t *testing.T) {
	m := &fakeHTTPMetrics{}

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/bookings/{bookingId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings/b-42", nil))

	require.Len(t, m.calls, 1)
	assert.Equal(t, observed{method: http.MethodGet, path: "/bookings/{bookingId}", status: http.StatusNotFound}, m.calls[0])
}
