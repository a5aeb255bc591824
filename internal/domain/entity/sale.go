package entity

import "time"

// HistoryEntry registro de cambio de etapa del pipeline (lista append-only).
type HistoryEntry struct {
	FromStage string    `json:"from_stage"`
	ToStage   string    `json:"to_stage"`
	ChangedAt time.Time `json:"changed_at"`
	ChangedBy string    `json:"changed_by"`
}

// FollowUpNote nota de seguimiento de la venta (lista append-only).
type FollowUpNote struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by"`
}

// Task tarea / próximo paso de la venta. Completed sólo transiciona false → true.
type Task struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	Completed bool       `json:"completed"`
	CreatedAt time.Time  `json:"created_at"`
	CreatedBy string     `json:"created_by"`
}

// Sale representa una venta generada a partir de una cotización aprobada.
type Sale struct {
	ID         string `json:"id"`
	ClientID   string `json:"client_id"`
	QuoteID    string `json:"quote_id,omitempty"`
	AssignedTo string `json:"assigned_to"`

	PipelineStage string         `json:"pipeline_stage"`
	History       []HistoryEntry `json:"history"`
	FollowUpNotes []FollowUpNote `json:"follow_up_notes"`
	Tasks         []Task         `json:"tasks"`

	IsClosed bool       `json:"is_closed"`
	ClosedAt *time.Time `json:"closed_at,omitempty"`

	Paid   bool       `json:"paid"`
	PaidAt *time.Time `json:"paid_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChangeStage mueve la venta a otra etapa del pipeline.
// Si la etapa cambia, agrega exactamente un registro al historial y retorna true.
// Si la etapa nueva es igual a la actual no agrega nada y retorna false.
func (s *Sale) ChangeStage(toStage, actorID string, now time.Time) bool {
	if toStage == s.PipelineStage {
		return false
	}
	s.History = append(s.History, HistoryEntry{
		FromStage: s.PipelineStage,
		ToStage:   toStage,
		ChangedAt: now,
		ChangedBy: actorID,
	})
	s.PipelineStage = toStage
	return true
}

// Close fuerza la etapa a "cierre", marca la venta como cerrada y registra el
// cambio en el historial si la etapa efectivamente cambió.
func (s *Sale) Close(actorID string, now time.Time) {
	s.ChangeStage(StageCierre, actorID, now)
	s.IsClosed = true
	s.ClosedAt = &now
}

// MarkPaid marca la venta como pagada. paidAt en cero usa now.
func (s *Sale) MarkPaid(paidAt time.Time, now time.Time) {
	s.Paid = true
	if paidAt.IsZero() {
		paidAt = now
	}
	s.PaidAt = &paidAt
}
