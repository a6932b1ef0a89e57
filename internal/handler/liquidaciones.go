package handler

import (
	"net/http"

	"magictravel/internal/service"

	"github.com/gin-gonic/gin"
)

type LiquidacionesHandler struct{ svc service.LiquidacionService }

func NewLiquidacionesHandler(svc service.LiquidacionService) *LiquidacionesHandler {
	return &LiquidacionesHandler{svc: svc}
}

// Pendientes godoc
// @Summary      Rutas pendientes de liquidar
// @Description  Toda ruta con fecha vencida que aun no fue liquidada, con su reporte de liquidacion.
// @Tags         liquidaciones
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.LiquidacionResponse
// @Router       /v1/liquidaciones/pendientes [get]
func (h *LiquidacionesHandler) Pendientes(c *gin.Context) {
	resp, err := h.svc.LiquidacionesPendientes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ActualizarEstados godoc
// @Summary      Refrescar estados de rutas en lote
// @Description  Recalcula el estado de ocupacion (Activada/Llena) de toda ruta no liquidada. Tambien corre periodicamente en background.
// @Tags         liquidaciones
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.ActualizacionMasivaResponse
// @Router       /v1/liquidaciones/actualizar-estados [post]
func (h *LiquidacionesHandler) ActualizarEstados(c *gin.Context) {
	resp, err := h.svc.ActualizarEstadosMasivo(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
