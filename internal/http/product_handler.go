package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mvergaraz/puntoventa/internal/service"
)

type productRequest struct {
	Name     string  `json:"nombre" validate:"required"`
	Price    float64 `json:"precio" validate:"gte=0"`
	Stock    int     `json:"stock"`
	Category string  `json:"categoria" validate:"required"`
}

type productHandler struct {
	svc service.ProductService
	res *responder
}

func newProductHandler(svc service.ProductService, res *responder) *productHandler {
	return &productHandler{
		svc: svc,
		res: res,
	}
}

func (h *productHandler) Register(r chi.Router) {
	r.Route("/productos", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/{productoID}", h.get)
		r.Put("/{productoID}", h.update)
		r.Delete("/{productoID}", h.delete)
	})
}

func (h *productHandler) list(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.ListProducts(r.Context())
	if err != nil {
		h.res.Error(w, r, err)
		return
	}

	h.res.JSON(w, r, http.StatusOK, products)
}

func (h *productHandler) get(w http.ResponseWriter, r *http.Request) {
	product, err := h.svc.GetProduct(r.Context(), chi.URLParam(r, "productoID"))
	if err != nil {
		h.res.Error(w, r, err)
		return
	}

	h.res.JSON(w, r, http.StatusOK, product)
}

func (h *productHandler) create(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := h.res.DecodeValid(r, &req); err != nil {
		h.res.Error(w, r, err)
		return
	}

	product, err := h.svc.CreateProduct(r.Context(), service.ProductParams{
		Name:     req.Name,
		Price:    req.Price,
		Stock:    req.Stock,
		Category: req.Category,
	})
	if err != nil {
		h.res.Error(w, r, err)
		return
	}

	h.res.JSON(w, r, http.StatusCreated, product)
}

func (h *productHandler) update(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := h.res.DecodeValid(r, &req); err != nil {
		h.res.Error(w, r, err)
		return
	}

	product, err := h.svc.UpdateProduct(r.Context(), chi.URLParam(r, "productoID"), service.ProductParams{
		Name:     req.Name,
		Price:    req.Price,
		Stock:    req.Stock,
		Category: req.Category,
	})
	if err != nil {
		h.res.Error(w, r, err)
		return
	}

	h.res.JSON(w, r, http.StatusOK, product)
}

func (h *productHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteProduct(r.Context(), chi.URLParam(r, "productoID")); err != nil {
		h.res.Error(w, r, err)
		return
	}

	h.res.JSON(w, r, http.StatusOK, messageResponse{Message: "Producto eliminado exitosamente"})
}
