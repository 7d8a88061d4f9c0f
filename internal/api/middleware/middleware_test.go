package middleware

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-GarageService/internal/auth"
	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/pkg/logger"
)

type stubTokens struct {
	userID uuid.UUID
}

func (s stubTokens) Parse(token string) (uuid.UUID, error) {
	if token != "good" {
		return uuid.Nil, auth.ErrInvalidToken
	}
	return s.userID, nil
}

type stubActors struct {
	actor *auth.Actor
	err   error
}

func (s stubActors) Actor(_ context.Context, _ uuid.UUID) (*auth.Actor, error) {
	return s.actor, s.err
}

func echoActor() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := GetActor(r.Context())
		if !ok {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		w.Header().Set("X-Actor", actor.ID.String())
		w.WriteHeader(http.StatusOK)
	})
}

func serve(h http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuth(t *testing.T) {
	userID := uuid.New()
	actor := &auth.Actor{ID: userID, Role: domain.RoleUser, Verified: true}

	tests := []struct {
		name   string
		header string
		actors stubActors
		status int
	}{
		{"no header", "", stubActors{actor: actor}, http.StatusUnauthorized},
		{"not bearer", "Basic abc", stubActors{actor: actor}, http.StatusUnauthorized},
		{"bad token", "Bearer bad", stubActors{actor: actor}, http.StatusUnauthorized},
		{"deleted user", "Bearer good", stubActors{err: fmt.Errorf("%w: user", domain.ErrNotFound)}, http.StatusUnauthorized},
		{"storage down", "Bearer good", stubActors{err: errors.New("db down")}, http.StatusInternalServerError},
		{"ok", "Bearer good", stubActors{actor: actor}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Auth(stubTokens{userID: userID}, tt.actors, logger.Nop())(echoActor())
			rec := serve(h, tt.header)
			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, userID.String(), rec.Header().Get("X-Actor"))
			}
		})
	}
}

func withActor(h http.Handler, actor *auth.Actor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, r.WithContext(auth.WithActor(r.Context(), actor)))
	})
}

func TestRequireVerified(t *testing.T) {
	unverified := &auth.Actor{ID: uuid.New(), Role: domain.RoleUser}
	verified := &auth.Actor{ID: uuid.New(), Role: domain.RoleUser, Verified: true}
	admin := &auth.Actor{ID: uuid.New(), Role: domain.RoleAdmin}

	assert.Equal(t, http.StatusUnauthorized, serve(RequireVerified(echoActor()), "").Code)
	assert.Equal(t, http.StatusForbidden, serve(withActor(RequireVerified(echoActor()), unverified), "").Code)
	assert.Equal(t, http.StatusOK, serve(withActor(RequireVerified(echoActor()), verified), "").Code)
	assert.Equal(t, http.StatusOK, serve(withActor(RequireVerified(echoActor()), admin), "").Code)
}

func TestRequireAdmin(t *testing.T) {
	user := &auth.Actor{ID: uuid.New(), Role: domain.RoleUser, Verified: true}
	admin := &auth.Actor{ID: uuid.New(), Role: domain.RoleAdmin}

	assert.Equal(t, http.StatusForbidden, serve(withActor(RequireAdmin(echoActor()), user), "").Code)
	assert.Equal(t, http.StatusOK, serve(withActor(RequireAdmin(echoActor()), admin), "").Code)
}

type recordedRequest struct {
	method, route string
	status        int
}

type recordingMetrics struct {
	requests []recordedRequest
}

func (m *recordingMetrics) ObserveHTTPRequest(method, route string, status int, _ float64) {
	m.requests = append(m.requests, recordedRequest{method, route, status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := &recordingMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/garages/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/garages/"+uuid.NewString(), nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, []recordedRequest{{http.MethodGet, "/garages/{id}", http.StatusNotFound}}, m.requests)
}

func TestLogging_LevelByStatus(t *testing.T) {
	var buf bytes.Buffer
	h := Logging(logger.NewWriter(&buf, "info"))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/reservations", nil))

	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "POST /reservations - 409")
}
