package http

import (
	"encoding/json"
	"net/http"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/service"

	"github.com/gorilla/mux"
)

// CustomerHandler serves customer account administration
type CustomerHandler struct {
	svc service.CustomerService
}

func NewCustomerHandler(svc service.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

// HandleCreate handles POST /api/customers
func (h *CustomerHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if customer.DriverLicense == "" {
		writeBadRequest(w, "dlicense is required")
		return
	}

	if err := h.svc.CreateAccount(r.Context(), &customer); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

// HandleGet handles GET /api/customers/{dlicense}
func (h *CustomerHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	dlicense := mux.Vars(r)["dlicense"]

	customer, err := h.svc.GetCustomer(r.Context(), dlicense)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}
