package service

import "errors"

// Error taxonomy for the business layer. Services wrap these with context
// (fmt.Errorf("%w: …")); handlers map them to HTTP status codes via errors.Is.
var (
	// ErrEntradaInvalida: a caller-supplied argument violates a precondition.
	ErrEntradaInvalida = errors.New("entrada invalida")
	// ErrNoEncontrado: a referenced id has no row.
	ErrNoEncontrado = errors.New("no encontrado")
	// ErrEstadoInvalido: a mutating operation invoked when the entity's
	// current classification does not permit it.
	ErrEstadoInvalido = errors.New("estado invalido para la operacion")
	// ErrConfiguracion: a deployment/data error (e.g. the operating agency
	// cannot be resolved), not a per-request one.
	ErrConfiguracion = errors.New("error de configuracion")
)
