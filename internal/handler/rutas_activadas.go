package handler

import (
	"net/http"
	"strconv"

	"magictravel/internal/apierror"
	"magictravel/internal/service"

	"github.com/gin-gonic/gin"
)

type RutasActivadasHandler struct {
	capacidad     service.CapacidadService
	liquidaciones service.LiquidacionService
	reservas      service.ReservaService
}

func NewRutasActivadasHandler(
	capacidad service.CapacidadService,
	liquidaciones service.LiquidacionService,
	reservas service.ReservaService,
) *RutasActivadasHandler {
	return &RutasActivadasHandler{
		capacidad:     capacidad,
		liquidaciones: liquidaciones,
		reservas:      reservas,
	}
}

// Disponibilidad godoc
// @Summary      Verificar disponibilidad de asientos
// @Tags         rutas-activadas
// @Produce      json
// @Security     BearerAuth
// @Param        id        path  string true "UUID de la ruta activada"
// @Param        pasajeros query int    false "Asientos solicitados (default 1)"
// @Success      200 {object} dto.DisponibilidadResponse
// @Router       /v1/rutas-activadas/{id}/disponibilidad [get]
func (h *RutasActivadasHandler) Disponibilidad(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	pasajeros, err := strconv.Atoi(c.DefaultQuery("pasajeros", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("pasajeros invalido"))
		return
	}

	resp, err := h.capacidad.VerificarDisponibilidad(c.Request.Context(), id, pasajeros)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Reservas lists the bookings attached to one scheduled route.
func (h *RutasActivadasHandler) Reservas(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.reservas.ListarPorRutaActivada(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Liquidacion godoc
// @Summary      Estado de liquidacion de una ruta
// @Description  Reporte completo: estado derivado, conteo de pagos de ventas directas y resumen financiero.
// @Tags         rutas-activadas
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID de la ruta activada"
// @Success      200 {object} dto.LiquidacionResponse
// @Router       /v1/rutas-activadas/{id}/liquidacion [get]
func (h *RutasActivadasHandler) Liquidacion(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.liquidaciones.EstadoLiquidacion(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Liquidar godoc
// @Summary      Ejecutar liquidacion
// @Description  Cierra financieramente la ruta. Solo procede desde LISTO_LIQUIDAR; el estado se recalcula en el servidor.
// @Tags         rutas-activadas
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID de la ruta activada"
// @Success      200 {object} dto.LiquidacionFinalResponse
// @Failure      409 {object} apierror.APIError
// @Router       /v1/rutas-activadas/{id}/liquidar [post]
func (h *RutasActivadasHandler) Liquidar(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.liquidaciones.ProcesarLiquidacion(c.Request.Context(), id, usuarioActual(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
