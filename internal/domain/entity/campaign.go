package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una campaña publicitaria.
const (
	CampaignPlanificada = "planificada"
	CampaignEnCurso     = "en_curso"
	CampaignFinalizada  = "finalizada"
	CampaignCancelada   = "cancelada"
)

// Tipos de espacio dentro de una campaña.
const (
	EspacioTarifa     = "tarifa"
	EspacioFajilla    = "fajilla"
	EspacioLona       = "lona"
	EspacioActivacion = "activacion"
	EspacioOtro       = "otro"
)

// CampaignSpace espacio publicitario agendado dentro de una campaña.
type CampaignSpace struct {
	Tipo     string          `json:"tipo"` // tarifa | fajilla | lona | activacion | otro
	Seccion  string          `json:"seccion,omitempty"`
	Formato  string          `json:"formato,omitempty"`
	Cantidad int             `json:"cantidad"`
	Precio   decimal.Decimal `json:"precio"`
	Fechas   []time.Time     `json:"fechas,omitempty"`
}

// Campaign representa una campaña publicitaria ligada a cliente/venta/cotización.
type Campaign struct {
	ID       string `json:"id"`
	ClientID string `json:"client_id"`
	SaleID   string `json:"sale_id,omitempty"`
	QuoteID  string `json:"quote_id,omitempty"`

	Nombre      string     `json:"nombre"`
	Descripcion string     `json:"descripcion,omitempty"`
	FechaInicio *time.Time `json:"fecha_inicio,omitempty"`
	FechaFin    *time.Time `json:"fecha_fin,omitempty"`

	Espacios []CampaignSpace `json:"espacios"`
	Status   string          `json:"status"` // planificada | en_curso | finalizada | cancelada

	Formatos     []string `json:"formatos,omitempty"` // Ej: ["Plana", "Robaplana"]
	Periodicidad string   `json:"periodicidad,omitempty"`
	Cortesias    string   `json:"cortesias,omitempty"`

	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
