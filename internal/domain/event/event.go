// Package event define los eventos de dominio y un dispatcher síncrono.
// El único evento actual es SaleClosed: al cerrar una venta, el estado del
// cliente se sincroniza vía un suscriptor en lugar de que el caso de uso de
// ventas toque directamente la tabla de clientes.
package event

import "time"

// SaleClosed se emite cuando una venta pasa a cierre.
type SaleClosed struct {
	SaleID   string
	ClientID string
	ActorID  string
	ClosedAt time.Time
}

// SaleClosedHandler consume un evento SaleClosed.
type SaleClosedHandler func(SaleClosed) error

// Dispatcher entrega eventos a sus suscriptores de forma síncrona, en el
// mismo ciclo request/response que los originó.
type Dispatcher struct {
	saleClosed []SaleClosedHandler
}

// NewDispatcher construye un dispatcher vacío.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// SubscribeSaleClosed registra un handler para SaleClosed.
func (d *Dispatcher) SubscribeSaleClosed(h SaleClosedHandler) {
	d.saleClosed = append(d.saleClosed, h)
}

// PublishSaleClosed entrega el evento a todos los suscriptores.
// Retorna el primer error; los handlers posteriores no se ejecutan.
func (d *Dispatcher) PublishSaleClosed(e SaleClosed) error {
	for _, h := range d.saleClosed {
		if err := h(e); err != nil {
			return err
		}
	}
	return nil
}
