package router

import (
	"testing"

	"magictravel/internal/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wiring smoke test: New must assemble the full dependency graph and register
// every route group. DB and Redis stay nil — nothing here touches them.
func TestNew_RegistraRutas(t *testing.T) {
	cfg := &config.Config{Env: "development", JWTSecret: "secreto-de-pruebas"}

	engine, liquidaciones := New(cfg, nil, nil, uuid.New())
	require.NotNil(t, engine)
	require.NotNil(t, liquidaciones)

	registradas := make(map[string]bool)
	for _, r := range engine.Routes() {
		registradas[r.Method+" "+r.Path] = true
	}

	esperadas := []string{
		"GET /health",
		"POST /v1/auth/login",
		"POST /v1/auth/refresh",
		"POST /v1/reservas",
		"GET /v1/reservas/:id",
		"POST /v1/reservas/:id/confirmar-pago",
		"GET /v1/reservas/:id/transferencia",
		"GET /v1/servicios/:id/precio",
		"GET /v1/rutas-activadas/:id/disponibilidad",
		"GET /v1/rutas-activadas/:id/liquidacion",
		"POST /v1/rutas-activadas/:id/liquidar",
		"GET /v1/liquidaciones/pendientes",
		"POST /v1/liquidaciones/actualizar-estados",
		"GET /v1/transferencias/:escenario",
		"GET /v1/cajas",
		"POST /v1/usuarios",
		"GET /swagger/*any",
	}
	for _, ruta := range esperadas {
		assert.True(t, registradas[ruta], "ruta no registrada: %s", ruta)
	}
}

func TestNew_SinSwaggerEnProduccion(t *testing.T) {
	cfg := &config.Config{Env: "production", JWTSecret: "secreto-de-pruebas"}

	engine, _ := New(cfg, nil, nil, uuid.New())
	for _, r := range engine.Routes() {
		assert.NotContains(t, r.Path, "/swagger", "swagger expuesto en produccion")
	}
}
