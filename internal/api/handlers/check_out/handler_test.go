package check_out

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageService/internal/auth"
	"github.com/m04kA/SMC-GarageService/internal/domain"
	checkOut "github.com/m04kA/SMC-GarageService/internal/usecase/check_out"
	"github.com/m04kA/SMC-GarageService/pkg/logger"
)

type stubUseCase struct {
	resp *checkOut.Response
	err  error
	got  *checkOut.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *checkOut.Request) (*checkOut.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(uc CheckOutUseCase, reservationID string, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/operations/{reservationId}/check-out", NewHandler(uc, logger.Nop()).Handle)

	req := httptest.NewRequest(http.MethodPost, "/operations/"+reservationID+"/check-out", strings.NewReader(body))
	req = req.WithContext(auth.WithActor(req.Context(), &auth.Actor{ID: uuid.New(), Verified: true}))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_CompletedReturnsReleaseMovement(t *testing.T) {
	reservationID := uuid.New()
	dateID := uuid.New()
	uc := &stubUseCase{resp: &checkOut.Response{
		Reservation: &domain.Reservation{ID: reservationID, Status: domain.ReservationCompleted},
		Evidence:    &domain.Evidence{ID: uuid.New(), ReservationDateID: dateID, Moment: domain.EvidenceCheckOut},
		Movement:    &domain.Movement{ID: uuid.New(), Type: domain.MovementRelease, Amount: 9000},
	}}

	rec := serve(uc, reservationID.String(), fmt.Sprintf(`{"id_fecha_reserva": %q, "comentarios": "clean"}`, dateID))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, reservationID, uc.got.ReservationID)
	assert.Equal(t, dateID, uc.got.DateID)

	var body CheckOutResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "completed", body.Reservation.Status)
	require.NotNil(t, body.Movement)
	assert.Equal(t, "release", body.Movement.Type)
	assert.Equal(t, 90.0, body.Movement.Amount)
}

func TestHandle_NotCheckedInIsConflict(t *testing.T) {
	uc := &stubUseCase{err: checkOut.ErrNotCheckedIn}

	rec := serve(uc, uuid.NewString(), fmt.Sprintf(`{"id_fecha_reserva": %q}`, uuid.New()))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_BadInput(t *testing.T) {
	uc := &stubUseCase{}

	assert.Equal(t, http.StatusBadRequest, serve(uc, "not-a-uuid", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(uc, uuid.NewString(), `{}`).Code)
	assert.Nil(t, uc.got)
}
