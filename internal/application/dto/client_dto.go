package dto

import "github.com/tu-usuario/crm-ventas/internal/domain/entity"

// ClientPayload body para POST/PUT de clientes.
// AssignedTo sólo se respeta si el actor es OWNER; un WORKER siempre queda
// como propietario de los clientes que crea y no puede reasignarlos.
type ClientPayload struct {
	NombreComercial   string           `json:"nombre_comercial"`
	RazonSocial       string           `json:"razon_social"`
	RFC               string           `json:"rfc"`
	CURP              string           `json:"curp,omitempty"`
	Direccion         entity.Direccion `json:"direccion"`
	Regimen           string           `json:"regimen,omitempty"`
	AgenciaODirecto   string           `json:"agencia_o_directo,omitempty"`
	TipoCliente       string           `json:"tipo_cliente,omitempty"`
	TipoIndustria     string           `json:"tipo_industria,omitempty"`
	Contactos         entity.Contactos `json:"contactos"`
	EjecutivoAsignado string           `json:"ejecutivo_asignado,omitempty"`
	ClienteActivo     *bool            `json:"cliente_activo,omitempty"`
	AssignedTo        string           `json:"assigned_to,omitempty"`
}

// ClientCheckResponse respuesta de las verificaciones advisory de RFC y
// nombre comercial: indica si ya existe y quién es el ejecutivo propietario.
type ClientCheckResponse struct {
	Exists      bool   `json:"exists"`
	WorkerName  string `json:"worker_name,omitempty"`
	WorkerEmail string `json:"worker_email,omitempty"`
}
