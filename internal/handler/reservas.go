package handler

import (
	"net/http"

	"magictravel/internal/dto"
	"magictravel/internal/service"

	"github.com/gin-gonic/gin"
)

type ReservasHandler struct {
	svc    service.ReservaService
	pagos  service.PagoService
	transf service.TransferenciaService
}

func NewReservasHandler(svc service.ReservaService, pagos service.PagoService, transf service.TransferenciaService) *ReservasHandler {
	return &ReservasHandler{svc: svc, pagos: pagos, transf: transf}
}

// Crear godoc
// @Summary      Crear reserva
// @Description  Crea una reserva sobre una ruta activada o un tour activado. Valida capacidad y calcula el monto a cobrar.
// @Tags         reservas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearReservaRequest true "Datos de la reserva"
// @Success      201  {object} dto.ReservaResponse
// @Failure      400  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Router       /v1/reservas [post]
func (h *ReservasHandler) Crear(c *gin.Context) {
	var req dto.CrearReservaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearReserva(c.Request.Context(), usuarioActual(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ReservasHandler) Obtener(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerReserva(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReservasHandler) Actualizar(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarReservaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarReserva(c.Request.Context(), id, usuarioActual(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReservasHandler) Eliminar(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.EliminarReserva(c.Request.Context(), id, usuarioActual(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Pago godoc
// @Summary      Clasificar pago de una reserva
// @Tags         reservas
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID de la reserva"
// @Success      200 {object} dto.PagoResponse
// @Router       /v1/reservas/{id}/pago [get]
func (h *ReservasHandler) Pago(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.pagos.ClasificarPago(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ConfirmarPago godoc
// @Summary      Confirmar pago entregado al conductor
// @Description  Marca la reserva como pagada y crea su registro en caja, en una sola transaccion.
// @Tags         reservas
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID de la reserva"
// @Success      200 {object} dto.ConfirmacionPagoResponse
// @Failure      409 {object} apierror.APIError
// @Router       /v1/reservas/{id}/confirmar-pago [post]
func (h *ReservasHandler) ConfirmarPago(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.pagos.ConfirmarPagoConductor(c.Request.Context(), id, usuarioActual(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Transferencia godoc
// @Summary      Clasificar escenario de transferencia de una reserva
// @Tags         reservas
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID de la reserva"
// @Success      200 {object} dto.TransferenciaResponse
// @Router       /v1/reservas/{id}/transferencia [get]
func (h *ReservasHandler) Transferencia(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.transf.Clasificar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
