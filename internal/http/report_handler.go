package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mvergaraz/puntoventa/internal/service"
)

type reportHandler struct {
	svc service.ReportService
	res *responder
}

func newReportHandler(svc service.ReportService, res *responder) *reportHandler {
	return &reportHandler{
		svc: svc,
		res: res,
	}
}

func (h *reportHandler) Register(r chi.Router) {
	r.Route("/reportes", func(r chi.Router) {
		r.Get("/ventas-totales", h.salesSummary)
		r.Get("/productos-populares", h.popularProducts)
	})
}

func (h *reportHandler) salesSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.SalesSummary(r.Context())
	if err != nil {
		h.res.Error(w, r, err)
		return
	}

	h.res.JSON(w, r, http.StatusOK, summary)
}

func (h *reportHandler) popularProducts(w http.ResponseWriter, r *http.Request) {
	ranking, err := h.svc.PopularProducts(r.Context())
	if err != nil {
		h.res.Error(w, r, err)
		return
	}

	h.res.JSON(w, r, http.StatusOK, ranking)
}
