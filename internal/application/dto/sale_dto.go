package dto

import "time"

// CreateSaleRequest body para POST /api/sales: la venta se genera desde una
// cotización aprobada, el resto de los campos se derivan de la cotización.
type CreateSaleRequest struct {
	QuoteID string `json:"quote_id"`
}

// UpdateSaleRequest body para PUT /api/sales/:id.
// Solo la etapa del pipeline es editable por esta vía; historial, notas y
// tareas tienen endpoints propios y los flags de cierre/pago son derivados.
type UpdateSaleRequest struct {
	PipelineStage string `json:"pipeline_stage"`
}

// AddNoteRequest body para POST /api/sales/:id/notes.
type AddNoteRequest struct {
	Text string `json:"text"`
}

// AddTaskRequest body para POST /api/sales/:id/tasks.
type AddTaskRequest struct {
	Title   string     `json:"title"`
	DueDate *time.Time `json:"due_date,omitempty"`
}
