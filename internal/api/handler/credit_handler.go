package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"credit-engine/internal/api/handler/dto"
	"credit-engine/internal/domain/credit"
	"credit-engine/internal/domain/customer"
	"credit-engine/internal/pkg/apperrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CreditHandler struct {
	credits   credit.CreditService
	customers customer.CustomerService
	logger    *slog.Logger
}

func NewCreditHandler(credits credit.CreditService, customers customer.CustomerService, logger *slog.Logger) *CreditHandler {
	return &CreditHandler{
		credits:   credits,
		customers: customers,
		logger:    logger.With("component", "CreditHandler"),
	}
}

func getCustomerIDFromQuery(r *http.Request) (int64, error) {
	return parseID(r.URL.Query().Get("customerId"), "customerId")
}

// CreateCredit requests a new credit for a customer.
//
// @Summary Request a credit
// @Description The first installment must be in the future and before today plus three months. At most 48 installments.
// @Tags Credits
// @Accept json
// @Produce json
// @Param request body dto.CreateCreditRequest true "Credit request payload"
// @Success 201 {object} dto.CreditViewResponse "Credit request stored"
// @Failure 400 {object} dto.ErrorResponse "Invalid payload or first installment date"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/credits [post]
// @Security BearerAuth
func (h *CreditHandler) CreateCredit(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCreditRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, err)
		return
	}

	saved, err := h.credits.Save(r.Context(), req.ToCredit())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.NewCreditViewResponse(saved))
}

// ListCredits lists every credit of a customer.
//
// @Summary List a customer's credits
// @Tags Credits
// @Produce json
// @Param customerId query int true "Customer ID"
// @Success 200 {array} dto.CreditListResponse "Credits of the customer, oldest first"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid customer ID"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/credits [get]
// @Security BearerAuth
func (h *CreditHandler) ListCredits(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromQuery(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if _, err := h.customers.FindByID(r.Context(), customerID); err != nil {
		respondError(w, err)
		return
	}

	credits, err := h.credits.FindAllByCustomer(r.Context(), customerID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCreditListResponse(credits))
}

// GetCredit returns one credit, only to its owner.
//
// @Summary Retrieve a credit by code
// @Tags Credits
// @Produce json
// @Param creditCode path string true "Credit code (UUID)"
// @Param customerId query int true "Customer ID"
// @Success 200 {object} dto.CreditViewResponse "Credit found"
// @Failure 400 {object} dto.ErrorResponse "Invalid credit code or customer ID"
// @Failure 403 {object} dto.ErrorResponse "Credit belongs to another customer"
// @Failure 404 {object} dto.ErrorResponse "Customer or credit not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/credits/{creditCode} [get]
// @Security BearerAuth
func (h *CreditHandler) GetCredit(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromQuery(r)
	if err != nil {
		respondError(w, err)
		return
	}

	creditCode, err := uuid.Parse(chi.URLParam(r, "creditCode"))
	if err != nil {
		respondError(w, fmt.Errorf("%w: creditCode must be a UUID", apperrors.ErrInvalidArgument))
		return
	}

	if _, err := h.customers.FindByID(r.Context(), customerID); err != nil {
		respondError(w, err)
		return
	}

	c, err := h.credits.FindByCreditCode(r.Context(), customerID, creditCode)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCreditViewResponse(c))
}
