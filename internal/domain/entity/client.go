package entity

import "time"

// Etapas del pipeline comercial. Se usan tanto en Sale.PipelineStage como en
// Client.Status (espejo que se sincroniza al cerrar una venta).
const (
	StageProspeccion  = "prospeccion"
	StagePresentacion = "presentacion"
	StagePropuesta    = "propuesta"
	StageCierre       = "cierre"
)

// PipelineStages etapas ordenadas del pipeline de ventas.
var PipelineStages = []string{StageProspeccion, StagePresentacion, StagePropuesta, StageCierre}

// IsValidPipelineStage valida una etapa de pipeline.
func IsValidPipelineStage(s string) bool {
	for _, st := range PipelineStages {
		if st == s {
			return true
		}
	}
	return false
}

// Direccion domicilio fiscal del cliente (columna JSONB).
type Direccion struct {
	CalleNumero string `json:"calle_numero,omitempty"`
	Colonia     string `json:"colonia,omitempty"`
	Ciudad      string `json:"ciudad,omitempty"`
	Estado      string `json:"estado,omitempty"`
	Pais        string `json:"pais,omitempty"`
	CP          string `json:"cp,omitempty"`
	Telefono    string `json:"telefono,omitempty"`
}

// Contacto persona de contacto del cliente.
type Contacto struct {
	Nombre  string `json:"nombre,omitempty"`
	Email   string `json:"email,omitempty"`
	Celular string `json:"celular,omitempty"`
}

// Contactos los tres contactos operativos de un cliente (columna JSONB).
type Contactos struct {
	Mercadotecnia Contacto `json:"mercadotecnia,omitempty"`
	Diseno        Contacto `json:"diseno,omitempty"`
	Facturacion   Contacto `json:"facturacion,omitempty"`
}

// Client representa un cliente (anunciante) del área comercial.
type Client struct {
	ID               string    `json:"id"`
	NombreComercial  string    `json:"nombre_comercial"`
	RazonSocial      string    `json:"razon_social"`
	RFC              string    `json:"rfc"` // único (constraint en DB, verificación advisory en API)
	CURP             string    `json:"curp,omitempty"`
	Direccion        Direccion `json:"direccion"`
	Regimen          string    `json:"regimen,omitempty"`
	AgenciaODirecto  string    `json:"agencia_o_directo,omitempty"` // AGENCIA | DIRECTO
	TipoCliente      string    `json:"tipo_cliente,omitempty"`      // iniciativa privada | gobierno | corporativo
	TipoIndustria    string    `json:"tipo_industria,omitempty"`
	Contactos        Contactos `json:"contactos"`
	EjecutivoAsignado string   `json:"ejecutivo_asignado,omitempty"` // etiqueta legible del ejecutivo
	ClienteActivo    bool      `json:"cliente_activo"`
	Status           string    `json:"status"` // etapa del pipeline (espejo de la venta)
	AssignedTo       string    `json:"assigned_to"` // user ID del ejecutivo propietario
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
