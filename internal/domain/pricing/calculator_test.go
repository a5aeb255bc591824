package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/pricing"
)

// Cotización base de los tests: dos tarifas (3×100 y 1×50) → subtotal 350.
func baseQuote() *entity.Quote {
	return &entity.Quote{
		Tarifas: []entity.Tarifa{
			{Periodicidad: 3, Costo: decimal.NewFromInt(100)},
			{Periodicidad: 1, Costo: decimal.NewFromInt(50)},
		},
		AjustesPrecios: entity.AjustePrecios{TipoAccion: entity.AjusteNinguno},
	}
}

func TestCalculate_SoloTarifas(t *testing.T) {
	q := baseQuote()

	total := pricing.Calculate(q)

	assert.True(t, decimal.NewFromInt(350).Equal(total), "total esperado 350, obtuvo %s", total)
	assert.True(t, decimal.NewFromInt(300).Equal(q.Tarifas[0].TotalLinea), "total de línea 1 debe ser 3×100")
	assert.True(t, decimal.NewFromInt(50).Equal(q.Tarifas[1].TotalLinea), "total de línea 2 debe ser 1×50")
}

func TestCalculate_ConActivacion(t *testing.T) {
	q := baseQuote()
	q.Activacion = entity.Activacion{Activo: true, Costo: decimal.NewFromInt(200), Cantidad: 2}

	total := pricing.Calculate(q)

	assert.True(t, decimal.NewFromInt(750).Equal(total), "350 + 200×2 = 750, obtuvo %s", total)
}

func TestCalculate_ActivacionInactivaNoSuma(t *testing.T) {
	q := baseQuote()
	q.Activacion = entity.Activacion{Activo: false, Costo: decimal.NewFromInt(200), Cantidad: 2}

	total := pricing.Calculate(q)

	assert.True(t, decimal.NewFromInt(350).Equal(total), "activación inactiva no debe sumar")
}

func TestCalculate_CantidadCeroCuentaComoUno(t *testing.T) {
	q := baseQuote()
	q.Fajillas = entity.Fajillas{Activo: true, Precio: decimal.NewFromInt(80), Cantidad: 0}

	total := pricing.Calculate(q)

	assert.True(t, decimal.NewFromInt(430).Equal(total), "fajillas con cantidad 0 cobra 1 pieza: 350 + 80")
}

func TestCalculate_AjustePorcentajeAumentar(t *testing.T) {
	q := baseQuote()
	q.Activacion = entity.Activacion{Activo: true, Costo: decimal.NewFromInt(200), Cantidad: 2}
	q.AjustesPrecios = entity.AjustePrecios{
		TipoAccion:       entity.AjusteAumentar,
		PorcentajeAjuste: decimal.NewFromInt(10),
	}

	total := pricing.Calculate(q)

	assert.True(t, decimal.NewFromInt(825).Equal(total), "750 + 10%% = 825, obtuvo %s", total)
}

func TestCalculate_AjusteAbsolutoReducir(t *testing.T) {
	q := baseQuote()
	q.AjustesPrecios = entity.AjustePrecios{
		TipoAccion:  entity.AjusteReducir,
		ValorAjuste: decimal.NewFromInt(100),
	}

	total := pricing.Calculate(q)

	assert.True(t, decimal.NewFromInt(250).Equal(total), "350 - 100 = 250")
}

func TestCalculate_ClampEnCero(t *testing.T) {
	q := baseQuote()
	q.AjustesPrecios = entity.AjustePrecios{
		TipoAccion:  entity.AjusteReducir,
		ValorAjuste: decimal.NewFromInt(1000),
	}

	total := pricing.Calculate(q)

	assert.True(t, total.IsZero(), "una reducción mayor al subtotal debe dejar el total en 0, obtuvo %s", total)
}

func TestCalculate_PorcentajeTienePrecedenciaSobreAbsoluto(t *testing.T) {
	q := baseQuote()
	q.AjustesPrecios = entity.AjustePrecios{
		TipoAccion:       entity.AjusteAumentar,
		PorcentajeAjuste: decimal.NewFromInt(10),
		ValorAjuste:      decimal.NewFromInt(500), // debe ignorarse
	}

	total := pricing.Calculate(q)

	assert.True(t, decimal.NewFromInt(385).Equal(total), "350 + 10%% = 385; el valor absoluto se ignora")
}

func TestCalculate_AjusteNingunoIgnoraValores(t *testing.T) {
	q := baseQuote()
	q.AjustesPrecios = entity.AjustePrecios{
		TipoAccion:       entity.AjusteNinguno,
		PorcentajeAjuste: decimal.NewFromInt(50),
		ValorAjuste:      decimal.NewFromInt(500),
	}

	total := pricing.Calculate(q)

	assert.True(t, decimal.NewFromInt(350).Equal(total), "con tipoAccion Ninguno no se aplica ajuste")
}

func TestCalculate_SinTarifas(t *testing.T) {
	q := &entity.Quote{AjustesPrecios: entity.AjustePrecios{TipoAccion: entity.AjusteNinguno}}

	total := pricing.Calculate(q)

	assert.True(t, total.IsZero())
}
