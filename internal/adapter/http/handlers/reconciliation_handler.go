package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"campuspay/internal/adapter/http/dto/request"
	response "campuspay/internal/adapter/http/dto/response"
	"campuspay/internal/usecase"
	"campuspay/internal/usecase/interfaces"
	"campuspay/pkg"

	"github.com/gin-gonic/gin"
)

// ReconciliationHandler exposes the verify-and-reconcile operation to both
// the browser polling path and the gateway webhook path. Both funnel into
// the same engine, so duplicate and out-of-order triggers are harmless.

type ReconciliationHandler struct {
	usecase usecase.IReconciliationUseCase
}

func NewReconciliationHandler(uc usecase.IReconciliationUseCase) *ReconciliationHandler {
	return &ReconciliationHandler{usecase: uc}
}

// Reconcile godoc
// @Summary      Verify a gateway transaction and reconcile the payable
// @Tags         payables
// @Accept       json
// @Produce      json
// @Param        payable_id  path      string                    true  "payable id"
// @Param        body        body      request.ReconcileRequest  true  "gateway transaction reference"
// @Success      200         {object}  response.ReconciliationResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /payables/{payable_id}/reconcile [post]
func (h *ReconciliationHandler) Reconcile(c *gin.Context) {
	payableID := c.Param("payable_id")
	log.Printf("[payment][handler] reconcile start payable_id=%s", payableID)

	var req request.ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] reconcile invalid body payable_id=%s err=%v", payableID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.verifyAndReconcile(c, payableID, req.Reference)
}

// HandleWebhook godoc
// @Summary      Ingest a gateway transaction-update event
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        event  body      request.WebhookEventRequest  true  "gateway event"
// @Success      200    {object}  response.ReconciliationResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /webhooks/payments [post]
func (h *ReconciliationHandler) HandleWebhook(c *gin.Context) {
	var event request.WebhookEventRequest
	if err := c.ShouldBindJSON(&event); err != nil {
		log.Printf("[payment][handler] webhook invalid body err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] webhook received event=%s payable_id=%s reference=%s",
		event.Event, event.Data.PayableID, event.Data.Reference)

	if strings.TrimSpace(event.Data.PayableID) == "" || strings.TrimSpace(event.Data.Reference) == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.verifyAndReconcile(c, event.Data.PayableID, event.Data.Reference)
}

func (h *ReconciliationHandler) verifyAndReconcile(c *gin.Context, payableID, reference string) {
	result, err := h.usecase.VerifyAndReconcile(c.Request.Context(), payableID, reference)
	if err != nil {
		log.Printf("[payment][handler] reconcile failed payable_id=%s err=%v", payableID, err)
		appErr := mapReconciliationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] reconcile success payable_id=%s state=%s reconciled=%t",
		payableID, result.State, result.Reconciled)

	c.JSON(http.StatusOK, response.FromReconciliationResult(result))
}

// mapReconciliationError keeps user-visible behavior deliberately coarse:
// transient gateway failures read as "payment pending, retry", integrity
// failures read as a generic verification failure with no gateway detail.
func mapReconciliationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPayableID), errors.Is(err, interfaces.ErrInvalidReference):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPayableNotFound):
		return pkg.NewDomainErrorSimple("PAYABLE_NOT_FOUND", "Payable not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrGatewayUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_PENDING", "Payment pending, retry later", http.StatusAccepted)
	case errors.Is(err, interfaces.ErrNoProviderConfigured):
		return pkg.NewDomainErrorSimple("PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrAmountMismatch),
		errors.Is(err, usecase.ErrIdentityMismatch),
		errors.Is(err, usecase.ErrVerificationUntrusted):
		return pkg.NewDomainErrorSimple("PAYMENT_VERIFICATION_FAILED", "Payment could not be verified", http.StatusConflict)
	case errors.Is(err, interfaces.ErrGatewayRejected), errors.Is(err, interfaces.ErrGatewayProtocolError):
		return pkg.NewDomainErrorSimple("PAYMENT_VERIFICATION_FAILED", "Payment could not be verified", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal error", http.StatusInternalServerError)
	}
}
