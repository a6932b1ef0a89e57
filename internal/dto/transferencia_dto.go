package dto

// ImplicacionesFinancieras is the static financial consequence of a transfer
// scenario: who bills, who operates, and what bookkeeping follows.
type ImplicacionesFinancieras struct {
	FacturaCliente    string `json:"factura_cliente"`
	Opera             string `json:"opera"`
	GananciaTotal     bool   `json:"ganancia_total"`
	ComisionPendiente bool   `json:"comision_pendiente"`
	CrearEnCaja       bool   `json:"crear_en_caja"`
}

type TransferenciaResponse struct {
	ReservaID            string                   `json:"reserva_id"`
	Escenario            string                   `json:"escenario"`
	AgenciaOperadoraID   *string                  `json:"agencia_operadora_id"`
	AgenciaTransferidaID *string                  `json:"agencia_transferida_id"`
	Descripcion          string                   `json:"descripcion"`
	Implicaciones        ImplicacionesFinancieras `json:"implicaciones"`
}
