package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"campuspay/internal/adapter/http/handlers/mocks"
	"campuspay/internal/domain/entities"
	"campuspay/internal/usecase"
	"campuspay/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newReconcileRouter(t *testing.T) (*gin.Engine, *mocks.MockIReconciliationUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uc := mocks.NewMockIReconciliationUseCase(ctrl)
	handler := NewReconciliationHandler(uc)

	router := gin.New()
	router.POST("/v1/payables/:payable_id/reconcile", handler.Reconcile)
	router.POST("/v1/webhooks/payments", handler.HandleWebhook)
	return router, uc
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestReconciliationHandler_Reconcile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, uc := newReconcileRouter(t)
		uc.EXPECT().VerifyAndReconcile(gomock.Any(), "pay-1", "txn-1").
			Return(usecase.ReconciliationResult{State: entities.PayableStatePaid, Reconciled: true}, nil)

		rec := doJSON(router, http.MethodPost, "/v1/payables/pay-1/reconcile", `{"reference":"txn-1"}`)
		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		assert.Equal(t, "PAID", body["state"])
		assert.Equal(t, true, body["reconciled"])
	})

	t.Run("missing reference in body", func(t *testing.T) {
		router, _ := newReconcileRouter(t)
		rec := doJSON(router, http.MethodPost, "/v1/payables/pay-1/reconcile", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("error mapping", func(t *testing.T) {
		cases := []struct {
			name       string
			err        error
			wantStatus int
			wantCode   string
		}{
			{"invalid payable id", usecase.ErrInvalidPayableID, http.StatusBadRequest, "INVALID_REQUEST"},
			{"invalid reference", interfaces.ErrInvalidReference, http.StatusBadRequest, "INVALID_REQUEST"},
			{"not found", usecase.ErrPayableNotFound, http.StatusNotFound, "PAYABLE_NOT_FOUND"},
			{"gateway unavailable", interfaces.ErrGatewayUnavailable, http.StatusAccepted, "PAYMENT_PENDING"},
			{"no provider", interfaces.ErrNoProviderConfigured, http.StatusServiceUnavailable, "PROVIDER_NOT_CONFIGURED"},
			{"amount mismatch", usecase.ErrAmountMismatch, http.StatusConflict, "PAYMENT_VERIFICATION_FAILED"},
			{"identity mismatch", usecase.ErrIdentityMismatch, http.StatusConflict, "PAYMENT_VERIFICATION_FAILED"},
			{"untrusted", usecase.ErrVerificationUntrusted, http.StatusConflict, "PAYMENT_VERIFICATION_FAILED"},
			{"gateway rejected", interfaces.ErrGatewayRejected, http.StatusUnprocessableEntity, "PAYMENT_VERIFICATION_FAILED"},
			{"protocol error", interfaces.ErrGatewayProtocolError, http.StatusUnprocessableEntity, "PAYMENT_VERIFICATION_FAILED"},
			{"unexpected", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				router, uc := newReconcileRouter(t)
				uc.EXPECT().VerifyAndReconcile(gomock.Any(), "pay-1", "txn-1").
					Return(usecase.ReconciliationResult{}, tc.err)

				rec := doJSON(router, http.MethodPost, "/v1/payables/pay-1/reconcile", `{"reference":"txn-1"}`)
				assert.Equal(t, tc.wantStatus, rec.Code)

				var body map[string]any
				if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
					t.Fatalf("invalid response body: %v", err)
				}
				assert.Equal(t, tc.wantCode, body["code"])
			})
		}
	})

	t.Run("mismatch response carries no gateway detail", func(t *testing.T) {
		router, uc := newReconcileRouter(t)
		uc.EXPECT().VerifyAndReconcile(gomock.Any(), "pay-1", "txn-1").
			Return(usecase.ReconciliationResult{}, usecase.ErrAmountMismatch)

		rec := doJSON(router, http.MethodPost, "/v1/payables/pay-1/reconcile", `{"reference":"txn-1"}`)
		assert.NotContains(t, rec.Body.String(), "amount")
		assert.Contains(t, rec.Body.String(), "Payment could not be verified")
	})
}

func TestReconciliationHandler_HandleWebhook(t *testing.T) {
	t.Run("success funnels into the same engine", func(t *testing.T) {
		router, uc := newReconcileRouter(t)
		uc.EXPECT().VerifyAndReconcile(gomock.Any(), "pay-1", "txn-1").
			Return(usecase.ReconciliationResult{State: entities.PayableStatePaid, Reconciled: true}, nil)

		rec := doJSON(router, http.MethodPost, "/v1/webhooks/payments",
			`{"event":"transaction.updated","data":{"payable_id":"pay-1","reference":"txn-1"}}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		router, _ := newReconcileRouter(t)
		rec := doJSON(router, http.MethodPost, "/v1/webhooks/payments", `{`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing identifiers", func(t *testing.T) {
		router, _ := newReconcileRouter(t)
		rec := doJSON(router, http.MethodPost, "/v1/webhooks/payments",
			`{"event":"transaction.updated","data":{"payable_id":"","reference":"txn-1"}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
