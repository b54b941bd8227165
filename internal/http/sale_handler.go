package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mvergaraz/puntoventa/internal/model"
	"github.com/mvergaraz/puntoventa/internal/service"
)

type saleItemRequest struct {
	ProductID string  `json:"producto_id" validate:"required"`
	Quantity  int     `json:"cantidad" validate:"gt=0"`
	UnitPrice float64 `json:"precio_unitario" validate:"gte=0"`
}

type saleRequest struct {
	CustomerID string            `json:"cliente_id" validate:"required"`
	Items      []saleItemRequest `json:"items" validate:"required,dive"`
}

type saleHandler struct {
	svc service.SaleService
	res *responder
}

func newSaleHandler(svc service.SaleService, res *responder) *saleHandler {
	return &saleHandler{
		svc: svc,
		res: res,
	}
}

func (h *saleHandler) Register(r chi.Router) {
	r.Route("/ventas", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/{ventaID}", h.get)
		r.Get("/cliente/{clienteID}", h.listByCustomer)
	})
}

func (h *saleHandler) list(w http.ResponseWriter, r *http.Request) {
	sales, err := h.svc.ListSales(r.Context())
	if err != nil {
		h.res.Error(w, r, err)
		return
	}

	h.res.JSON(w, r, http.StatusOK, sales)
}

func (h *saleHandler) get(w http.ResponseWriter, r *http.Request) {
	sale, err := h.svc.GetSale(r.Context(), chi.URLParam(r, "ventaID"))
	if err != nil {
		h.res.Error(w, r, err)
		return
	}

	h.res.JSON(w, r, http.StatusOK, sale)
}

func (h *saleHandler) create(w http.ResponseWriter, r *http.Request) {
	var req saleRequest
	if err := h.res.DecodeValid(r, &req); err != nil {
		h.res.Error(w, r, err)
		return
	}

	items := make([]model.SaleItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.SaleItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	sale, err := h.svc.CreateSale(r.Context(), service.SaleParams{
		CustomerID: req.CustomerID,
		Items:      items,
	})
	if err != nil {
		h.res.Error(w, r, err)
		return
	}

	h.res.JSON(w, r, http.StatusCreated, sale)
}

func (h *saleHandler) listByCustomer(w http.ResponseWriter, r *http.Request) {
	sales, err := h.svc.ListSalesByCustomer(r.Context(), chi.URLParam(r, "clienteID"))
	if err != nil {
		h.res.Error(w, r, err)
		return
	}

	h.res.JSON(w, r, http.StatusOK, sales)
}
