package handler

import (
	"net/http"

	"magictravel/internal/service"

	"github.com/gin-gonic/gin"
)

type TransferenciasHandler struct{ svc service.TransferenciaService }

func NewTransferenciasHandler(svc service.TransferenciaService) *TransferenciasHandler {
	return &TransferenciasHandler{svc: svc}
}

// PorEscenario godoc
// @Summary      Reservas por escenario de transferencia
// @Description  Clasifica todas las reservas vivas y devuelve las que caen en el escenario pedido.
// @Tags         transferencias
// @Produce      json
// @Security     BearerAuth
// @Param        escenario path string true "VENTA_DIRECTA | REUBICACION_INTERNA | MAGIC_TRANSFIERE | MAGIC_RECIBE_OPERA | MAGIC_PUENTE | CASO_ESPECIAL"
// @Success      200 {array} dto.TransferenciaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/transferencias/{escenario} [get]
func (h *TransferenciasHandler) PorEscenario(c *gin.Context) {
	escenario := c.Param("escenario")
	resp, err := h.svc.ObtenerReservasPorEscenario(c.Request.Context(), escenario)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
