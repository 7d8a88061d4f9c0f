package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/pkg/txmanager"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: bad", domain.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("%w: who", domain.ErrUnauthenticated), http.StatusUnauthorized},
		{fmt.Errorf("%w: no", domain.ErrAuthorization), http.StatusForbidden},
		{fmt.Errorf("%w: gone", domain.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: state", domain.ErrConflict), http.StatusConflict},
		{fmt.Errorf("%w: tx", txmanager.ErrSerialization), http.StatusConflict},
		{fmt.Errorf("%w: low", domain.ErrInsufficientFunds), http.StatusBadRequest},
		{fmt.Errorf("%w: db", domain.ErrInternal), http.StatusInternalServerError},
		{fmt.Errorf("unexpected"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.err), tt.err.Error())
	}
}

func TestRespondDomainError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	status := RespondDomainError(rec, fmt.Errorf("%w: pq: password authentication failed", domain.ErrInternal))

	assert.Equal(t, http.StatusInternalServerError, status)
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, msgInternalError, body.Error)
}

func TestRespondDomainError_ExposesKindMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondDomainError(rec, fmt.Errorf("%w: reservation not found", domain.ErrNotFound))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "not found: reservation not found", body.Error)
}

func TestPathUUID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/garages/nope", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "nope"})

	_, err := PathUUID(req, "id")
	assert.ErrorIs(t, err, ErrInvalidID)

	req = mux.SetURLVars(req, map[string]string{"id": "7b0d4a6c-3f8e-4a51-9d0e-2f6a3c1b9e11"})
	id, err := PathUUID(req, "id")
	require.NoError(t, err)
	assert.Equal(t, "7b0d4a6c-3f8e-4a51-9d0e-2f6a3c1b9e11", id.String())
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.RemoteAddr = "10.0.0.7:51234"
	assert.Equal(t, "10.0.0.7", ClientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", ClientIP(req))
}
