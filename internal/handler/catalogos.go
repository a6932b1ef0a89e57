package handler

import (
	"net/http"
	"strconv"

	"magictravel/internal/dto"
	"magictravel/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogosHandler serves the supporting catalogs: agencies, vehicles,
// expenses and the cash-record listing.
type CatalogosHandler struct{ svc service.CatalogoService }

func NewCatalogosHandler(svc service.CatalogoService) *CatalogosHandler {
	return &CatalogosHandler{svc: svc}
}

// ── Agencias ──────────────────────────────────────────────────────────────────

func (h *CatalogosHandler) CrearAgencia(c *gin.Context) {
	var req dto.AgenciaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearAgencia(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CatalogosHandler) ListarAgencias(c *gin.Context) {
	incluirInactivas := c.Query("incluir_inactivas") == "true"
	resp, err := h.svc.ListarAgencias(c.Request.Context(), incluirInactivas)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogosHandler) ActualizarAgencia(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	var req dto.AgenciaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarAgencia(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Vehiculos ─────────────────────────────────────────────────────────────────

func (h *CatalogosHandler) CrearVehiculo(c *gin.Context) {
	var req dto.VehiculoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearVehiculo(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CatalogosHandler) ListarVehiculos(c *gin.Context) {
	incluirInactivos := c.Query("incluir_inactivos") == "true"
	resp, err := h.svc.ListarVehiculos(c.Request.Context(), incluirInactivos)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogosHandler) ActualizarVehiculo(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	var req dto.VehiculoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarVehiculo(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Egresos ───────────────────────────────────────────────────────────────────

func (h *CatalogosHandler) CrearEgreso(c *gin.Context) {
	var req dto.EgresoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearEgreso(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarEgresos lists the expenses of one scheduled route.
func (h *CatalogosHandler) ListarEgresos(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ListarEgresos(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogosHandler) EliminarEgreso(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.EliminarEgreso(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Cajas ─────────────────────────────────────────────────────────────────────

func (h *CatalogosHandler) ListarCajas(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	cajas, total, err := h.svc.ListarCajas(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items": cajas,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}
