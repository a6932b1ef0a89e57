package service

import (
	"context"
	"fmt"

	"magictravel/internal/dto"
	"magictravel/internal/model"
	"magictravel/internal/repository"

	"github.com/google/uuid"
)

// CatalogoService covers the supporting catalogs: agencies, vehicles,
// expenses and the cash-record listing. Thin CRUD, no business rules.
type CatalogoService interface {
	CrearAgencia(ctx context.Context, req dto.AgenciaRequest) (*dto.AgenciaResponse, error)
	ListarAgencias(ctx context.Context, incluirInactivas bool) ([]dto.AgenciaResponse, error)
	ActualizarAgencia(ctx context.Context, id uuid.UUID, req dto.AgenciaRequest) (*dto.AgenciaResponse, error)

	CrearVehiculo(ctx context.Context, req dto.VehiculoRequest) (*dto.VehiculoResponse, error)
	ListarVehiculos(ctx context.Context, incluirInactivos bool) ([]dto.VehiculoResponse, error)
	ActualizarVehiculo(ctx context.Context, id uuid.UUID, req dto.VehiculoRequest) (*dto.VehiculoResponse, error)

	CrearEgreso(ctx context.Context, req dto.EgresoRequest) (*dto.EgresoResponse, error)
	ListarEgresos(ctx context.Context, rutaActivadaID uuid.UUID) ([]dto.EgresoResponse, error)
	EliminarEgreso(ctx context.Context, id uuid.UUID) error

	ListarCajas(ctx context.Context, page, limit int) ([]dto.CajaResponse, int64, error)
}

type catalogoService struct {
	agencias  repository.AgenciaRepository
	vehiculos repository.VehiculoRepository
	egresos   repository.EgresoRepository
	cajas     repository.CajaRepository
	rutas     repository.RutaActivadaRepository
}

func NewCatalogoService(
	agencias repository.AgenciaRepository,
	vehiculos repository.VehiculoRepository,
	egresos repository.EgresoRepository,
	cajas repository.CajaRepository,
	rutas repository.RutaActivadaRepository,
) CatalogoService {
	return &catalogoService{
		agencias:  agencias,
		vehiculos: vehiculos,
		egresos:   egresos,
		cajas:     cajas,
		rutas:     rutas,
	}
}

// ── Agencias ──────────────────────────────────────────────────────────────────

func (s *catalogoService) CrearAgencia(ctx context.Context, req dto.AgenciaRequest) (*dto.AgenciaResponse, error) {
	agencia := &model.Agencia{
		Nombre:   req.Nombre,
		Telefono: req.Telefono,
		Email:    req.Email,
		Activo:   true,
	}
	if err := s.agencias.Create(ctx, agencia); err != nil {
		return nil, err
	}
	return agenciaToResponse(agencia), nil
}

func (s *catalogoService) ListarAgencias(ctx context.Context, incluirInactivas bool) ([]dto.AgenciaResponse, error) {
	agencias, err := s.agencias.List(ctx, incluirInactivas)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AgenciaResponse, len(agencias))
	for i := range agencias {
		resp[i] = *agenciaToResponse(&agencias[i])
	}
	return resp, nil
}

func (s *catalogoService) ActualizarAgencia(ctx context.Context, id uuid.UUID, req dto.AgenciaRequest) (*dto.AgenciaResponse, error) {
	agencia, err := s.agencias.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: agencia %s", ErrNoEncontrado, id)
	}
	agencia.Nombre = req.Nombre
	agencia.Telefono = req.Telefono
	agencia.Email = req.Email
	if err := s.agencias.Update(ctx, agencia); err != nil {
		return nil, err
	}
	return agenciaToResponse(agencia), nil
}

// ── Vehiculos ─────────────────────────────────────────────────────────────────

func (s *catalogoService) CrearVehiculo(ctx context.Context, req dto.VehiculoRequest) (*dto.VehiculoResponse, error) {
	vehiculo := &model.Vehiculo{
		Placa:              req.Placa,
		Marca:              req.Marca,
		CapacidadPasajeros: req.CapacidadPasajeros,
		PagoConductor:      req.PagoConductor,
		Activo:             true,
	}
	if err := s.vehiculos.Create(ctx, vehiculo); err != nil {
		return nil, err
	}
	return vehiculoToResponse(vehiculo), nil
}

func (s *catalogoService) ListarVehiculos(ctx context.Context, incluirInactivos bool) ([]dto.VehiculoResponse, error) {
	vehiculos, err := s.vehiculos.List(ctx, incluirInactivos)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.VehiculoResponse, len(vehiculos))
	for i := range vehiculos {
		resp[i] = *vehiculoToResponse(&vehiculos[i])
	}
	return resp, nil
}

func (s *catalogoService) ActualizarVehiculo(ctx context.Context, id uuid.UUID, req dto.VehiculoRequest) (*dto.VehiculoResponse, error) {
	vehiculo, err := s.vehiculos.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: vehiculo %s", ErrNoEncontrado, id)
	}
	vehiculo.Placa = req.Placa
	vehiculo.Marca = req.Marca
	vehiculo.CapacidadPasajeros = req.CapacidadPasajeros
	vehiculo.PagoConductor = req.PagoConductor
	if err := s.vehiculos.Update(ctx, vehiculo); err != nil {
		return nil, err
	}
	return vehiculoToResponse(vehiculo), nil
}

// ── Egresos ───────────────────────────────────────────────────────────────────

func (s *catalogoService) CrearEgreso(ctx context.Context, req dto.EgresoRequest) (*dto.EgresoResponse, error) {
	rutaActivadaID, err := uuid.Parse(req.RutaActivadaID)
	if err != nil {
		return nil, fmt.Errorf("%w: ruta_activada_id invalido", ErrEntradaInvalida)
	}
	if req.Monto.IsNegative() {
		return nil, fmt.Errorf("%w: el monto no puede ser negativo", ErrEntradaInvalida)
	}

	// Expenses against a liquidated route would silently change a closed total.
	ruta, err := s.rutas.FindByID(ctx, rutaActivadaID)
	if err != nil {
		return nil, fmt.Errorf("%w: ruta activada %s", ErrNoEncontrado, rutaActivadaID)
	}
	if ruta.Estado != nil && model.ClasificarEstadoRuta(ruta.Estado.Nombre) == model.EstadoRutaLiquidada {
		return nil, fmt.Errorf("%w: la ruta ya fue liquidada", ErrEstadoInvalido)
	}

	egreso := &model.Egreso{
		RutaActivadaID: rutaActivadaID,
		Monto:          req.Monto,
		Descripcion:    req.Descripcion,
	}
	if err := s.egresos.Create(ctx, egreso); err != nil {
		return nil, err
	}
	return egresoToResponse(egreso), nil
}

func (s *catalogoService) ListarEgresos(ctx context.Context, rutaActivadaID uuid.UUID) ([]dto.EgresoResponse, error) {
	egresos, err := s.egresos.ListByRutaActivada(ctx, rutaActivadaID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.EgresoResponse, len(egresos))
	for i := range egresos {
		resp[i] = *egresoToResponse(&egresos[i])
	}
	return resp, nil
}

func (s *catalogoService) EliminarEgreso(ctx context.Context, id uuid.UUID) error {
	return s.egresos.Delete(ctx, id)
}

// ── Cajas ─────────────────────────────────────────────────────────────────────

func (s *catalogoService) ListarCajas(ctx context.Context, page, limit int) ([]dto.CajaResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}
	cajas, total, err := s.cajas.List(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}
	resp := make([]dto.CajaResponse, len(cajas))
	for i := range cajas {
		c := &cajas[i]
		resp[i] = dto.CajaResponse{
			ID:             c.ID.String(),
			ReservaID:      c.ReservaID.String(),
			Origen:         c.Origen,
			Destino:        c.Destino,
			FechaViaje:     c.FechaViaje.Format("2006-01-02"),
			NumeroAdultos:  c.NumeroAdultos,
			NumeroNinos:    c.NumeroNinos,
			PrecioUnitario: c.PrecioUnitario,
			Total:          c.Total,
			CreatedAt:      c.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}
	return resp, total, nil
}

func agenciaToResponse(a *model.Agencia) *dto.AgenciaResponse {
	return &dto.AgenciaResponse{
		ID:       a.ID.String(),
		Nombre:   a.Nombre,
		Telefono: a.Telefono,
		Email:    a.Email,
		Activo:   a.Activo,
	}
}

func vehiculoToResponse(v *model.Vehiculo) *dto.VehiculoResponse {
	return &dto.VehiculoResponse{
		ID:                 v.ID.String(),
		Placa:              v.Placa,
		Marca:              v.Marca,
		CapacidadPasajeros: v.CapacidadPasajeros,
		PagoConductor:      v.PagoConductor,
		Activo:             v.Activo,
	}
}

func egresoToResponse(e *model.Egreso) *dto.EgresoResponse {
	return &dto.EgresoResponse{
		ID:             e.ID.String(),
		RutaActivadaID: e.RutaActivadaID.String(),
		Monto:          e.Monto,
		Descripcion:    e.Descripcion,
		CreatedAt:      e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
