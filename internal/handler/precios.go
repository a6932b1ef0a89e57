package handler

import (
	"net/http"
	"strconv"

	"magictravel/internal/apierror"
	"magictravel/internal/service"

	"github.com/gin-gonic/gin"
)

type PreciosHandler struct{ svc service.PrecioService }

func NewPreciosHandler(svc service.PrecioService) *PreciosHandler {
	return &PreciosHandler{svc: svc}
}

// Desglose godoc
// @Summary      Calcular precio de una reserva
// @Description  Devuelve el total y el desglose por segmento para un servicio y una composicion de pasajeros, sin crear nada.
// @Tags         servicios
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  string true "UUID del servicio"
// @Param        adultos query int    true "Numero de adultos"
// @Param        ninos   query int    false "Numero de ninos"
// @Success      200 {object} dto.DesglosePrecioResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/servicios/{id}/precio [get]
func (h *PreciosHandler) Desglose(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	adultos, err := strconv.Atoi(c.DefaultQuery("adultos", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("adultos invalido"))
		return
	}
	ninos, err := strconv.Atoi(c.DefaultQuery("ninos", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ninos invalido"))
		return
	}

	resp, err := h.svc.CalcularDesglose(c.Request.Context(), id, adultos, ninos)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
