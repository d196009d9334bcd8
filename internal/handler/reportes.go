package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enzofs112/roxfarma-sistema-gestion/internal/apierror"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/dto"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/service"
)

type ReportesHandler struct{ svc service.ReporteService }

func NewReportesHandler(svc service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

// Ventas returns the aggregated sales report for an inclusive date range:
// GET /api/reportes/ventas?inicio=2026-01-01&fin=2026-01-31
func (h *ReportesHandler) Ventas(c *gin.Context) {
	var filter dto.ReporteFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if err := validate.Struct(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Rango de fechas invalido (formato YYYY-MM-DD)"))
		return
	}
	resp, err := h.svc.ReporteVentas(c.Request.Context(), filter)
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Inventario returns the current inventory valuation:
// GET /api/reportes/inventario
func (h *ReportesHandler) Inventario(c *gin.Context) {
	resp, err := h.svc.ReporteInventario(c.Request.Context())
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
