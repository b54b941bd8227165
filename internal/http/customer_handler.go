package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mvergaraz/puntoventa/internal/service"
)

type customerRequest struct {
	Name  string `json:"nombre" validate:"required"`
	Email string `json:"email" validate:"required"`
	Phone string `json:"telefono"`
}

type customerHandler struct {
	svc service.CustomerService
	res *responder
}

func newCustomerHandler(svc service.CustomerService, res *responder) *customerHandler {
	return &customerHandler{
		svc: svc,
		res: res,
	}
}

func (h *customerHandler) Register(r chi.Router) {
	r.Route("/clientes", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/{clienteID}", h.get)
		r.Put("/{clienteID}", h.update)
		r.Delete("/{clienteID}", h.delete)
	})
}

func (h *customerHandler) list(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.ListCustomers(r.Context())
	if err != nil {
		h.res.Error(w, r, err)
		return
	}

	h.res.JSON(w, r, http.StatusOK, customers)
}

func (h *customerHandler) get(w http.ResponseWriter, r *http.Request) {
	customer, err := h.svc.GetCustomer(r.Context(), chi.URLParam(r, "clienteID"))
	if err != nil {
		h.res.Error(w, r, err)
		return
	}

	h.res.JSON(w, r, http.StatusOK, customer)
}

func (h *customerHandler) create(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := h.res.DecodeValid(r, &req); err != nil {
		h.res.Error(w, r, err)
		return
	}

	customer, err := h.svc.CreateCustomer(r.Context(), service.CustomerParams{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		h.res.Error(w, r, err)
		return
	}

	h.res.JSON(w, r, http.StatusCreated, customer)
}

func (h *customerHandler) update(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := h.res.DecodeValid(r, &req); err != nil {
		h.res.Error(w, r, err)
		return
	}

	customer, err := h.svc.UpdateCustomer(r.Context(), chi.URLParam(r, "clienteID"), service.CustomerParams{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		h.res.Error(w, r, err)
		return
	}

	h.res.JSON(w, r, http.StatusOK, customer)
}

func (h *customerHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCustomer(r.Context(), chi.URLParam(r, "clienteID")); err != nil {
		h.res.Error(w, r, err)
		return
	}

	h.res.JSON(w, r, http.StatusOK, messageResponse{Message: "Cliente eliminado exitosamente"})
}
