package handlers

import (
	"errors"
	"log"
	"net/http"

	"campuspay/internal/adapter/http/dto/request"
	response "campuspay/internal/adapter/http/dto/response"
	"campuspay/internal/usecase"
	"campuspay/pkg"

	"github.com/gin-gonic/gin"
)

// PayableHandler handles the collaborator-facing payable CRUD surface.

type PayableHandler struct {
	usecase usecase.IPayableUseCase
}

func NewPayableHandler(uc usecase.IPayableUseCase) *PayableHandler {
	return &PayableHandler{usecase: uc}
}

// CreatePayable godoc
// @Summary      Create a payable awaiting payment
// @Tags         payables
// @Accept       json
// @Produce      json
// @Param        payable  body      request.CreatePayableRequest  true  "payable to create"
// @Success      201      {object}  response.PayableResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /payables [post]
func (h *PayableHandler) CreatePayable(c *gin.Context) {
	var req request.CreatePayableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] create payable invalid body err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), req.EnrollmentID, req.OwnerIdentity, req.AmountCents, req.Currency, req.GatewayReference)
	if err != nil {
		log.Printf("[payment][handler] create payable failed enrollment_id=%s err=%v", req.EnrollmentID, err)
		appErr := mapPayableError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create payable success payable_id=%s enrollment_id=%s", created.ID, created.EnrollmentID)

	c.JSON(http.StatusCreated, response.FromPayable(created))
}

// GetPayable godoc
// @Summary      Get a payable by id
// @Tags         payables
// @Produce      json
// @Param        payable_id  path      string  true  "payable id"
// @Success      200         {object}  response.PayableResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /payables/{payable_id} [get]
func (h *PayableHandler) GetPayable(c *gin.Context) {
	payableID := c.Param("payable_id")

	p, err := h.usecase.GetByID(c.Request.Context(), payableID)
	if err != nil {
		log.Printf("[payment][handler] get payable failed payable_id=%s err=%v", payableID, err)
		appErr := mapPayableError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayable(p))
}

func mapPayableError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEnrollmentID),
		errors.Is(err, usecase.ErrInvalidOwner),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidCurrency),
		errors.Is(err, usecase.ErrInvalidPayableID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPayableNotFound):
		return pkg.NewDomainErrorSimple("PAYABLE_NOT_FOUND", "Payable not found", http.StatusNotFound)
	default:
		return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal error", http.StatusInternalServerError)
	}
}
