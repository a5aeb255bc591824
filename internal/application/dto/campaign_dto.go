package dto

import (
	"time"

	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
)

// CampaignPayload body para POST/PUT de campañas.
type CampaignPayload struct {
	ClientID string `json:"client_id"`
	SaleID   string `json:"sale_id,omitempty"`
	QuoteID  string `json:"quote_id,omitempty"`

	Nombre      string     `json:"nombre"`
	Descripcion string     `json:"descripcion,omitempty"`
	FechaInicio *time.Time `json:"fecha_inicio,omitempty"`
	FechaFin    *time.Time `json:"fecha_fin,omitempty"`

	Espacios []entity.CampaignSpace `json:"espacios"`
	Status   string                 `json:"status,omitempty"`

	Formatos     []string `json:"formatos,omitempty"`
	Periodicidad string   `json:"periodicidad,omitempty"`
	Cortesias    string   `json:"cortesias,omitempty"`
}
