package finances

import (
	"context"
	"encoding/json"
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
	financesService "github.com/m04kA/SMC-GarageService/internal/service/finances"
	"github.com/m04kA/SMC-GarageService/internal/service/ledger"
	"github.com/m04kA/SMC-GarageService/pkg/logger"
)

type stubService struct {
	balance     *ledger.Balance
	audit       *ledger.Audit
	gotOwner    *uuid.UUID
	gotStatus   *string
	gotProofURL string
	err         error
}

func (s *stubService) Wallet(_ context.Context, ownerID uuid.UUID) (*ledger.Balance, error) {
	s.gotOwner = &ownerID
	return s.balance, s.err
}

func (s *stubService) Audit(_ context.Context, ownerID uuid.UUID) (*ledger.Audit, error) {
	s.gotOwner = &ownerID
	return s.audit, s.err
}

func (s *stubService) ListWithdrawals(_ context.Context, ownerID *uuid.UUID, status *string) ([]*domain.WithdrawalRequest, error) {
	s.gotOwner = ownerID
	s.gotStatus = status
	return []*domain.WithdrawalRequest{}, s.err
}

func (s *stubService) ApproveWithdrawal(_ context.Context, id uuid.UUID, proofURL string) (*domain.WithdrawalRequest, error) {
	s.gotProofURL = proofURL
	if s.err != nil {
		return nil, s.err
	}
	return &domain.WithdrawalRequest{ID: id, Status: domain.WithdrawalProcessed, ProofURL: &proofURL}, nil
}

func router(svc FinanceService) *mux.Router {
	h := NewHandler(svc, logger.Nop())
	r := mux.NewRouter()
	r.HandleFunc("/finances/billetera", h.Wallet).Methods(http.MethodGet)
	r.HandleFunc("/finances/billetera/retiros", h.MyWithdrawals).Methods(http.MethodGet)
	r.HandleFunc("/finances/retiros", h.AllWithdrawals).Methods(http.MethodGet)
	r.HandleFunc("/finances/billetera/retiros/{id}/aprobar", h.ApproveWithdrawal).Methods(http.MethodPost)
	r.HandleFunc("/finances/billetera/{userId}/auditoria", h.Audit).Methods(http.MethodGet)
	return r
}

func do(r http.Handler, method, target, body string, actor *auth.Actor) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if actor != nil {
		req = req.WithContext(auth.WithActor(req.Context(), actor))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestWallet_ReturnsMajorUnits(t *testing.T) {
	owner := &auth.Actor{ID: uuid.New(), Verified: true}
	svc := &stubService{balance: &ledger.Balance{
		OwnerID:   owner.ID,
		Available: 12050,
		Held:      9000,
		Movements: []domain.Movement{{ID: uuid.New(), Type: domain.MovementHold, Amount: 9000}},
	}}

	rec := do(router(svc), http.MethodGet, "/finances/billetera", "", owner)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp WalletResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 120.5, resp.Available)
	assert.Equal(t, 90.0, resp.Held)
	assert.Equal(t, 210.5, resp.Total)
	require.Len(t, resp.Movements, 1)
	assert.Equal(t, "hold", resp.Movements[0].Type)
	assert.Equal(t, owner.ID, *svc.gotOwner)
}

func TestWallet_WithoutActor(t *testing.T) {
	rec := do(router(&stubService{}), http.MethodGet, "/finances/billetera", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWithdrawals_OwnerScopedAndAdminUnscoped(t *testing.T) {
	owner := &auth.Actor{ID: uuid.New(), Verified: true}

	svc := &stubService{}
	rec := do(router(svc), http.MethodGet, "/finances/billetera/retiros?estado=pending", "", owner)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.gotOwner)
	assert.Equal(t, owner.ID, *svc.gotOwner)
	assert.Equal(t, "pending", *svc.gotStatus)

	svc = &stubService{}
	rec = do(router(svc), http.MethodGet, "/finances/retiros", "", &auth.Actor{ID: uuid.New(), Role: domain.RoleAdmin})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.gotOwner)
}

func TestWithdrawals_UnknownStatus(t *testing.T) {
	svc := &stubService{err: financesService.ErrInvalidStatus}
	rec := do(router(svc), http.MethodGet, "/finances/retiros?estado=lost", "", &auth.Actor{ID: uuid.New(), Role: domain.RoleAdmin})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApproveWithdrawal(t *testing.T) {
	admin := &auth.Actor{ID: uuid.New(), Role: domain.RoleAdmin}

	t.Run("processed", func(t *testing.T) {
		svc := &stubService{}
		rec := do(router(svc), http.MethodPost, "/finances/billetera/retiros/"+uuid.NewString()+"/aprobar",
			`{"url_comprobante": "https://cdn/proof.png"}`, admin)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://cdn/proof.png", svc.gotProofURL)
		assert.Contains(t, rec.Body.String(), `"status":"processed"`)
	})

	t.Run("already processed", func(t *testing.T) {
		svc := &stubService{err: financesService.ErrAlreadyProcessed}
		rec := do(router(svc), http.MethodPost, "/finances/billetera/retiros/"+uuid.NewString()+"/aprobar",
			`{"url_comprobante": "https://cdn/proof.png"}`, admin)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		rec := do(router(&stubService{}), http.MethodPost, "/finances/billetera/retiros/42/aprobar", `{}`, admin)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAudit_ReportsDrift(t *testing.T) {
	userID := uuid.New()
	svc := &stubService{audit: &ledger.Audit{
		OwnerID:           userID,
		StoredAvailable:   1000,
		ReplayedAvailable: 900,
		Movements:         3,
		Consistent:        false,
	}}

	rec := do(router(svc), http.MethodGet, "/finances/billetera/"+userID.String()+"/auditoria", "",
		&auth.Actor{ID: uuid.New(), Role: domain.RoleAdmin})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AuditResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Consistent)
	assert.Equal(t, 10.0, resp.StoredAvailable)
	assert.Equal(t, 9.0, resp.ReplayedAvailable)
	assert.Equal(t, userID, *svc.gotOwner)
}
