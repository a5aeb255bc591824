// Package pricing implementa el cálculo del total de una cotización
// (servicio de dominio, sin dependencias de infraestructura).
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
)

// Calculate recalcula los totales de línea y el total final de la cotización.
//
// Reglas, en orden:
//  1. subtotal = Σ (periodicidad × costo) de cada tarifa.
//  2. Si activación está activa: + costo × max(cantidad, 1).
//  3. Si fajillas está activa:   + precio × max(cantidad, 1).
//  4. Ajuste de precios: si tipoAccion ≠ Ninguno, el porcentaje tiene
//     precedencia sobre el valor absoluto cuando ambos son > 0; el signo
//     depende de Aumentar/Reducir.
//  5. El total nunca baja de cero.
//
// Muta q.Tarifas[i].TotalLinea y retorna el total final. El caller es
// responsable de persistir el total; nunca se acepta un total enviado por
// el cliente.
func Calculate(q *entity.Quote) decimal.Decimal {
	subtotal := decimal.Zero

	for i := range q.Tarifas {
		t := &q.Tarifas[i]
		t.TotalLinea = decimal.NewFromInt(int64(t.Periodicidad)).Mul(t.Costo)
		subtotal = subtotal.Add(t.TotalLinea)
	}

	if q.Activacion.Activo {
		subtotal = subtotal.Add(q.Activacion.Costo.Mul(atLeastOne(q.Activacion.Cantidad)))
	}
	if q.Fajillas.Activo {
		subtotal = subtotal.Add(q.Fajillas.Precio.Mul(atLeastOne(q.Fajillas.Cantidad)))
	}

	total := applyAdjustment(subtotal, q.AjustesPrecios)

	if total.IsNegative() {
		total = decimal.Zero
	}
	return total
}

// applyAdjustment aplica el ajuste porcentual o absoluto sobre el subtotal.
func applyAdjustment(subtotal decimal.Decimal, aj entity.AjustePrecios) decimal.Decimal {
	if aj.TipoAccion != entity.AjusteAumentar && aj.TipoAccion != entity.AjusteReducir {
		return subtotal
	}

	var delta decimal.Decimal
	switch {
	case aj.PorcentajeAjuste.IsPositive():
		delta = subtotal.Mul(aj.PorcentajeAjuste).Div(decimal.NewFromInt(100))
	case aj.ValorAjuste.IsPositive():
		delta = aj.ValorAjuste
	default:
		return subtotal
	}

	if aj.TipoAccion == entity.AjusteReducir {
		return subtotal.Sub(delta)
	}
	return subtotal.Add(delta)
}

func atLeastOne(n int) decimal.Decimal {
	if n < 1 {
		n = 1
	}
	return decimal.NewFromInt(int64(n))
}
