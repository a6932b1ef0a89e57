package service

// Shared in-memory fakes for the service unit tests. Repositories return nil
// from DB(), so runTx executes the closure directly and the nil-safe *Tx
// methods hit the maps.

import (
	"context"
	"errors"
	"strings"
	"time"

	"magictravel/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var errFakeNotFound = errors.New("not found")

// ── Estado catalog ────────────────────────────────────────────────────────────

type fakeEstadoRepo struct {
	estados []*model.Estado
}

func newFakeEstados(nombres ...string) *fakeEstadoRepo {
	r := &fakeEstadoRepo{}
	for _, n := range nombres {
		r.estados = append(r.estados, &model.Estado{ID: uuid.New(), Nombre: n})
	}
	return r
}

func (r *fakeEstadoRepo) byNombre(nombre string) *model.Estado {
	for _, e := range r.estados {
		if e.Nombre == nombre {
			return e
		}
	}
	return nil
}

func (r *fakeEstadoRepo) Create(_ context.Context, e *model.Estado) error {
	e.ID = uuid.New()
	r.estados = append(r.estados, e)
	return nil
}

func (r *fakeEstadoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Estado, error) {
	for _, e := range r.estados {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, errFakeNotFound
}

func (r *fakeEstadoRepo) FindByNombreContains(_ context.Context, fragmento string) (*model.Estado, error) {
	for _, e := range r.estados {
		if strings.Contains(strings.ToLower(e.Nombre), strings.ToLower(fragmento)) {
			return e, nil
		}
	}
	return nil, errFakeNotFound
}

func (r *fakeEstadoRepo) List(_ context.Context) ([]model.Estado, error) {
	out := make([]model.Estado, 0, len(r.estados))
	for _, e := range r.estados {
		out = append(out, *e)
	}
	return out, nil
}

// ── Reservas ──────────────────────────────────────────────────────────────────

type fakeReservaRepo struct {
	reservas map[uuid.UUID]*model.Reserva
	estados  *fakeEstadoRepo
}

func newFakeReservas(estados *fakeEstadoRepo) *fakeReservaRepo {
	return &fakeReservaRepo{reservas: make(map[uuid.UUID]*model.Reserva), estados: estados}
}

func (r *fakeReservaRepo) DB() *gorm.DB { return nil }

func (r *fakeReservaRepo) Create(_ context.Context, _ *gorm.DB, res *model.Reserva) error {
	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}
	// mimic the Estado preload the gorm repo does on reads
	if res.Estado == nil && res.EstadoID != uuid.Nil {
		if e, err := r.estados.FindByID(context.Background(), res.EstadoID); err == nil {
			res.Estado = e
		}
	}
	r.reservas[res.ID] = res
	return nil
}

func (r *fakeReservaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Reserva, error) {
	res, ok := r.reservas[id]
	if !ok {
		return nil, errFakeNotFound
	}
	return res, nil
}

func (r *fakeReservaRepo) ListByRutaActivada(_ context.Context, rutaActivadaID uuid.UUID) ([]model.Reserva, error) {
	var out []model.Reserva
	for _, res := range r.reservas {
		if res.RutaActivadaID != nil && *res.RutaActivadaID == rutaActivadaID {
			out = append(out, *res)
		}
	}
	return out, nil
}

func (r *fakeReservaRepo) ListVivas(_ context.Context) ([]model.Reserva, error) {
	out := make([]model.Reserva, 0, len(r.reservas))
	for _, res := range r.reservas {
		out = append(out, *res)
	}
	return out, nil
}

func (r *fakeReservaRepo) Update(_ context.Context, res *model.Reserva) error {
	r.reservas[res.ID] = res
	return nil
}

func (r *fakeReservaRepo) UpdateEstadoTx(_ *gorm.DB, id uuid.UUID, estadoID uuid.UUID) error {
	res, ok := r.reservas[id]
	if !ok {
		return errFakeNotFound
	}
	res.EstadoID = estadoID
	if e, err := r.estados.FindByID(context.Background(), estadoID); err == nil {
		res.Estado = e
	}
	return nil
}

func (r *fakeReservaRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.reservas, id)
	return nil
}

// ── Rutas activadas ───────────────────────────────────────────────────────────

type fakeRutaActivadaRepo struct {
	rutas   map[uuid.UUID]*model.RutaActivada
	estados *fakeEstadoRepo
}

func newFakeRutas(estados *fakeEstadoRepo) *fakeRutaActivadaRepo {
	return &fakeRutaActivadaRepo{rutas: make(map[uuid.UUID]*model.RutaActivada), estados: estados}
}

func (r *fakeRutaActivadaRepo) DB() *gorm.DB { return nil }

func (r *fakeRutaActivadaRepo) Create(_ context.Context, ra *model.RutaActivada) error {
	if ra.ID == uuid.Nil {
		ra.ID = uuid.New()
	}
	r.rutas[ra.ID] = ra
	return nil
}

func (r *fakeRutaActivadaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.RutaActivada, error) {
	ra, ok := r.rutas[id]
	if !ok {
		return nil, errFakeNotFound
	}
	return ra, nil
}

func (r *fakeRutaActivadaRepo) ListHastaFecha(_ context.Context, fecha time.Time) ([]model.RutaActivada, error) {
	var out []model.RutaActivada
	for _, ra := range r.rutas {
		if !ra.Fecha.After(fecha) {
			out = append(out, *ra)
		}
	}
	return out, nil
}

func (r *fakeRutaActivadaRepo) UpdateEstado(_ context.Context, id uuid.UUID, estadoID uuid.UUID) error {
	return r.UpdateEstadoTx(nil, id, estadoID)
}

func (r *fakeRutaActivadaRepo) UpdateEstadoTx(_ *gorm.DB, id uuid.UUID, estadoID uuid.UUID) error {
	ra, ok := r.rutas[id]
	if !ok {
		return errFakeNotFound
	}
	ra.EstadoID = estadoID
	if e, err := r.estados.FindByID(context.Background(), estadoID); err == nil {
		ra.Estado = e
	}
	return nil
}

// ── Cajas ─────────────────────────────────────────────────────────────────────

type fakeCajaRepo struct {
	cajas map[uuid.UUID]*model.Caja // keyed by ReservaID
}

func newFakeCajas() *fakeCajaRepo {
	return &fakeCajaRepo{cajas: make(map[uuid.UUID]*model.Caja)}
}

func (r *fakeCajaRepo) CreateTx(_ *gorm.DB, c *model.Caja) error {
	if _, exists := r.cajas[c.ReservaID]; exists {
		return errors.New("duplicate caja for reserva")
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.cajas[c.ReservaID] = c
	return nil
}

func (r *fakeCajaRepo) ExistsByReserva(_ context.Context, reservaID uuid.UUID) (bool, error) {
	_, ok := r.cajas[reservaID]
	return ok, nil
}

func (r *fakeCajaRepo) FindByReserva(_ context.Context, reservaID uuid.UUID) (*model.Caja, error) {
	c, ok := r.cajas[reservaID]
	if !ok {
		return nil, errFakeNotFound
	}
	return c, nil
}

func (r *fakeCajaRepo) List(_ context.Context, _, _ int) ([]model.Caja, int64, error) {
	out := make([]model.Caja, 0, len(r.cajas))
	for _, c := range r.cajas {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

// ── Egresos ───────────────────────────────────────────────────────────────────

type fakeEgresoRepo struct {
	egresos []*model.Egreso
}

func newFakeEgresos() *fakeEgresoRepo { return &fakeEgresoRepo{} }

func (r *fakeEgresoRepo) Create(_ context.Context, e *model.Egreso) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.egresos = append(r.egresos, e)
	return nil
}

func (r *fakeEgresoRepo) ListByRutaActivada(_ context.Context, rutaActivadaID uuid.UUID) ([]model.Egreso, error) {
	var out []model.Egreso
	for _, e := range r.egresos {
		if e.RutaActivadaID == rutaActivadaID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEgresoRepo) SumByRutaActivada(_ context.Context, rutaActivadaID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, e := range r.egresos {
		if e.RutaActivadaID == rutaActivadaID {
			total = total.Add(e.Monto)
		}
	}
	return total, nil
}

func (r *fakeEgresoRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, e := range r.egresos {
		if e.ID == id {
			r.egresos = append(r.egresos[:i], r.egresos[i+1:]...)
			return nil
		}
	}
	return errFakeNotFound
}

// ── Servicios ─────────────────────────────────────────────────────────────────

type fakeServicioRepo struct {
	servicios map[uuid.UUID]*model.Servicio
}

func newFakeServicios() *fakeServicioRepo {
	return &fakeServicioRepo{servicios: make(map[uuid.UUID]*model.Servicio)}
}

func (r *fakeServicioRepo) Create(_ context.Context, s *model.Servicio) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.servicios[s.ID] = s
	return nil
}

func (r *fakeServicioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Servicio, error) {
	s, ok := r.servicios[id]
	if !ok {
		return nil, errFakeNotFound
	}
	return s, nil
}

// ── Dispatcher ────────────────────────────────────────────────────────────────

type fakeDispatcher struct {
	bitacoras []interface{}
	emails    []interface{}
}

func (d *fakeDispatcher) EnqueueBitacora(_ context.Context, payload interface{}) error {
	d.bitacoras = append(d.bitacoras, payload)
	return nil
}

func (d *fakeDispatcher) EnqueueEmail(_ context.Context, payload interface{}) error {
	d.emails = append(d.emails, payload)
	return nil
}

// ── Fixture builders ──────────────────────────────────────────────────────────

// newCatalogo returns the standard state catalog used across the tests.
func newCatalogo() *fakeEstadoRepo {
	return newFakeEstados("Pendiente", "Por confirmar", "Pagada", "Activada", "Llena", "Liquidada")
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }

type fixtura struct {
	estados  *fakeEstadoRepo
	reservas *fakeReservaRepo
	rutas    *fakeRutaActivadaRepo
	cajas    *fakeCajaRepo
	egresos  *fakeEgresoRepo

	magicTravel *model.Agencia
	otraAgencia *model.Agencia
}

func newFixtura() *fixtura {
	estados := newCatalogo()
	return &fixtura{
		estados:  estados,
		reservas: newFakeReservas(estados),
		rutas:    newFakeRutas(estados),
		cajas:    newFakeCajas(),
		egresos:  newFakeEgresos(),
		magicTravel: &model.Agencia{ID: uuid.New(), Nombre: "Magic Travel", Activo: true},
		otraAgencia: &model.Agencia{ID: uuid.New(), Nombre: "Aventuras del Lago", Activo: true},
	}
}

// nuevaRuta builds a scheduled route owned by agencia with an assigned
// vehicle, registered in the fake repo.
func (f *fixtura) nuevaRuta(agencia *model.Agencia, capacidad int, pagoConductor decimal.Decimal) *model.RutaActivada {
	activada := f.estados.byNombre("Activada")
	ruta := &model.RutaActivada{
		ID:       uuid.New(),
		Fecha:    time.Now().Add(-24 * time.Hour),
		EstadoID: activada.ID,
		Estado:   activada,
		Ruta: &model.Ruta{
			ID:        uuid.New(),
			Origen:    "Antigua",
			Destino:   "Panajachel",
			AgenciaID: agencia.ID,
			Agencia:   agencia,
		},
	}
	if capacidad > 0 {
		ruta.Vehiculo = &model.Vehiculo{
			ID:                 uuid.New(),
			Placa:              "P-123ABC",
			CapacidadPasajeros: capacidad,
			PagoConductor:      pagoConductor,
		}
		ruta.VehiculoID = &ruta.Vehiculo.ID
	}
	f.rutas.rutas[ruta.ID] = ruta
	return ruta
}

// nuevaReserva attaches a reservation to ruta with the given state label and
// keeps the route's Reservas slice in sync.
func (f *fixtura) nuevaReserva(ruta *model.RutaActivada, estadoNombre string, adultos, ninos int, monto decimal.Decimal) *model.Reserva {
	estado := f.estados.byNombre(estadoNombre)
	res := &model.Reserva{
		ID:             uuid.New(),
		NombreCliente:  "Cliente de Prueba",
		NumeroAdultos:  adultos,
		NumeroNinos:    ninos,
		MontoCobrar:    monto,
		ServicioID:     uuid.New(),
		RutaActivadaID: &ruta.ID,
		RutaActivada:   ruta,
		EstadoID:       estado.ID,
		Estado:         estado,
		Servicio: &model.Servicio{
			ID:           uuid.New(),
			Tipo:         model.ServicioColectivo,
			PrecioNormal: decimal.NewFromInt(100),
		},
	}
	f.reservas.reservas[res.ID] = res
	ruta.Reservas = append(ruta.Reservas, *res)
	return res
}
