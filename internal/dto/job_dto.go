package dto

// Async job payloads exchanged through the Redis queues.

// BitacoraJobPayload is the audit event envelope. UsuarioID and EntidadID are
// strings so a malformed producer degrades to a row without references
// instead of a dropped event.
type BitacoraJobPayload struct {
	UsuarioID string  `json:"usuario_id,omitempty"`
	Accion    string  `json:"accion"`
	Entidad   string  `json:"entidad"`
	EntidadID string  `json:"entidad_id,omitempty"`
	Detalle   *string `json:"detalle,omitempty"`
}

// LiquidacionEmailPayload carries everything the report email needs so the
// worker never touches the database.
type LiquidacionEmailPayload struct {
	Destinatario   string            `json:"destinatario"`
	RutaActivadaID string            `json:"ruta_activada_id"`
	Ruta           string            `json:"ruta"`
	Fecha          string            `json:"fecha"`
	Conteo         ConteoPagos       `json:"conteo"`
	Resumen        ResumenFinanciero `json:"resumen"`
}
