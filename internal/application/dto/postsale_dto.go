package dto

import "github.com/tu-usuario/crm-ventas/internal/domain/entity"

// PostSalePayload body para POST/PUT de registros post-venta.
// En la creación, cliente y ejecutivo se copian de la venta referenciada.
type PostSalePayload struct {
	SaleID             string                      `json:"sale_id"`
	PostSaleStage      string                      `json:"post_sale_stage,omitempty"`
	MedicionResultados string                      `json:"medicion_resultados,omitempty"`
	Encuesta           entity.EncuestaSatisfaccion `json:"encuesta_satisfaccion"`
	Renovacion         entity.Renovacion           `json:"renovacion"`
	Notas              string                      `json:"notas,omitempty"`
}
