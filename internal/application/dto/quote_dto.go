package dto

import "github.com/tu-usuario/crm-ventas/internal/domain/entity"

// QuotePayload body para POST/PUT de cotizaciones.
// El total NUNCA se toma de este payload: siempre se recalcula en servidor.
// Folio sólo se respeta en la creación; en cero se asigna el consecutivo.
// Status sólo se respeta si el actor es OWNER (aprobación vía endpoints
// dedicados); un WORKER no puede tocar el estado de aprobación.
type QuotePayload struct {
	ClientID string          `json:"client_id"`
	Folio    int             `json:"folio,omitempty"`
	Tarifas  []entity.Tarifa `json:"tarifas"`
	Duracion string          `json:"duracion,omitempty"`

	Activacion            entity.Activacion            `json:"activacion"`
	DesarrolloInformativo entity.DesarrolloInformativo `json:"desarrollo_informativo"`
	PosteoRedesSociales   entity.PosteoRedes           `json:"posteo_redes_sociales"`
	Fajillas              entity.Fajillas              `json:"fajillas"`
	Intercambio           entity.Intercambio           `json:"intercambio"`
	Cortesias             entity.Cortesias             `json:"cortesias"`

	FormaPago         string `json:"forma_pago,omitempty"`
	UsoCFDI           string `json:"uso_cfdi,omitempty"`
	FacturacionEstado string `json:"facturacion_estado,omitempty"`
	EstadoCliente     string `json:"estado_cliente,omitempty"`

	AjustesPrecios entity.AjustePrecios `json:"ajustes_precios"`

	Status string `json:"status,omitempty"`
}
