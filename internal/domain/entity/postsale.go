package entity

import "time"

// Etapas del ciclo post-venta (independientes del pipeline de la venta).
const (
	PostSaleProspeccion          = "prospeccion"
	PostSaleAcercamiento         = "acercamiento"
	PostSalePresentacionContacto = "presentacion_contacto_indicado"
	PostSalePropuestaComercial   = "propuesta_comercial"
	PostSaleNegociacionCierre    = "negociacion_cierre"
	PostSaleDocumentacion        = "documentacion_contrato"
	PostSaleFacturacion          = "facturacion"
	PostSalePago                 = "pago"
	PostSaleServicio             = "servicio_post_venta"
	PostSaleReportes             = "reportes"
)

// PostSaleStages las diez etapas post-venta en orden.
var PostSaleStages = []string{
	PostSaleProspeccion,
	PostSaleAcercamiento,
	PostSalePresentacionContacto,
	PostSalePropuestaComercial,
	PostSaleNegociacionCierre,
	PostSaleDocumentacion,
	PostSaleFacturacion,
	PostSalePago,
	PostSaleServicio,
	PostSaleReportes,
}

// IsValidPostSaleStage valida una etapa post-venta.
func IsValidPostSaleStage(s string) bool {
	for _, st := range PostSaleStages {
		if st == s {
			return true
		}
	}
	return false
}

// EncuestaSatisfaccion encuesta de satisfacción del cliente (columna JSONB).
type EncuestaSatisfaccion struct {
	Calificacion int    `json:"calificacion,omitempty"` // 1–10
	Comentarios  string `json:"comentarios,omitempty"`
}

// Renovacion intención de renovación del servicio (columna JSONB).
type Renovacion struct {
	RequiereRenovacion     bool       `json:"requiere_renovacion"`
	FechaPosibleRenovacion *time.Time `json:"fecha_posible_renovacion,omitempty"`
}

// PostSale registro de seguimiento post-venta: uno por venta, con cliente y
// ejecutivo copiados de la venta en el momento de creación.
type PostSale struct {
	ID         string `json:"id"`
	SaleID     string `json:"sale_id"`
	ClientID   string `json:"client_id"`
	AssignedTo string `json:"assigned_to"`

	PostSaleStage      string               `json:"post_sale_stage"`
	MedicionResultados string               `json:"medicion_resultados,omitempty"`
	Encuesta           EncuestaSatisfaccion `json:"encuesta_satisfaccion"`
	Renovacion         Renovacion           `json:"renovacion"`
	Notas              string               `json:"notas,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
