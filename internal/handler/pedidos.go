package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enzofs112/roxfarma-sistema-gestion/internal/apierror"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/dto"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/service"
)

type PedidosHandler struct{ svc service.PedidoService }

func NewPedidosHandler(svc service.PedidoService) *PedidosHandler {
	return &PedidosHandler{svc: svc}
}

func (h *PedidosHandler) Crear(c *gin.Context) {
	var req dto.CrearPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PedidosHandler) Listar(c *gin.Context) {
	var filter dto.PedidoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if err := validate.Struct(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Estado de filtro invalido"))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PedidosHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ActualizarEstado advances the order lifecycle. The target state arrives as a
// query parameter: PUT /api/pedidos/:id/estado?estado=ENVIADO
func (h *PedidosHandler) ActualizarEstado(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	estado := c.Query("estado")
	if estado == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Parametro estado requerido"))
		return
	}
	resp, err := h.svc.ActualizarEstado(c.Request.Context(), id, estado)
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
