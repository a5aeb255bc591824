// Package pdf implementa la generación de la propuesta comercial de una
// cotización de espacios publicitarios.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Propuesta Comercial  │  Folio + Fecha              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre comercial + Razón social + RFC             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Formato | Inserciones | Costo | Fechas | Total      │
//	│  EXTRAS: Activación / Fajillas / Cortesías                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Ajuste / TOTAL                         │
//	│  FOOTER: Forma de pago + vigencia de la propuesta           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appbilling "github.com/tu-usuario/crm-ventas/internal/application/billing"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var _ appbilling.QuotePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa billing.QuotePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateQuotePDF genera la propuesta comercial y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateQuotePDF(
	_ context.Context,
	quote *entity.Quote,
	client *entity.Client,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Propuesta Comercial %d", quote.Folio), true).
		WithAuthor(client.NombreComercial, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(quote))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tarifaRows(quote.Tarifas) {
		m.AddRows(r)
	}
	for _, r := range extrasRows(quote) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(quote))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(quote))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y folio + fecha (der).
func headerRow(quote *entity.Quote) core.Row {
	fecha := quote.CreatedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("PROPUESTA COMERCIAL", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Espacios publicitarios", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COTIZACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Folio %d", quote.Folio), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clienteRow: datos del cliente cotizado.
func clienteRow(client *entity.Client) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(client.NombreComercial, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Razón social: %s   |   RFC: %s",
				nonEmpty(client.RazonSocial, "—"),
				nonEmpty(client.RFC, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de tarifas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Formato", 4, align.Left),
		h("Inserciones", 2, align.Center),
		h("Costo Unit.", 2, align.Right),
		h("Fechas", 2, align.Center),
		h("Total", 2, align.Right),
	)
}

// tarifaRows: una fila por línea de tarifa.
func tarifaRows(tarifas []entity.Tarifa) []core.Row {
	result := make([]core.Row, 0, len(tarifas))
	for _, t := range tarifas {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(
				nonEmpty(t.Formato, "Espacio publicitario"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", t.Periodicidad),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				"$"+t.Costo.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				fechasLabel(t.Fechas),
				props.Text{Size: 7, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				"$"+t.TotalLinea.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// extrasRows: secciones activas que suman o acompañan la propuesta.
func extrasRows(quote *entity.Quote) []core.Row {
	extra := func(label, detail string) core.Row {
		return row.New(6).Add(
			col.New(4).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1,
			})),
			col.New(8).Add(text.New(detail, props.Text{
				Size: 8, Top: 1, Color: colorGray,
			})),
		)
	}

	var rows []core.Row
	if quote.Activacion.Activo {
		rows = append(rows, extra("Activación de marca",
			fmt.Sprintf("%d activación(es) × $%s   %s",
				quote.Activacion.Cantidad, quote.Activacion.Costo.StringFixed(2),
				quote.Activacion.PuntosDistribucion)))
	}
	if quote.Fajillas.Activo {
		rows = append(rows, extra("Fajillas",
			fmt.Sprintf("%d fajilla(s) × $%s", quote.Fajillas.Cantidad, quote.Fajillas.Precio.StringFixed(2))))
	}
	if quote.Cortesias.Activo {
		rows = append(rows, extra("Cortesías",
			fmt.Sprintf("%d inserción(es) sin costo", quote.Cortesias.Cantidad)))
	}
	if quote.DesarrolloInformativo.Activo {
		rows = append(rows, extra("Desarrollo informativo",
			nonEmpty(quote.DesarrolloInformativo.Formato, "Incluido")))
	}
	if quote.PosteoRedesSociales.Activo {
		rows = append(rows, extra("Posteo en redes",
			fmt.Sprintf("%d posteo(s)", quote.PosteoRedesSociales.Cantidad)))
	}
	if quote.Intercambio.Activo {
		rows = append(rows, extra("Intercambio",
			fmt.Sprintf("%s%% efectivo / %s%% especie",
				quote.Intercambio.PorcentajeEfectivo.StringFixed(0),
				quote.Intercambio.PorcentajeEspecie.StringFixed(0))))
	}
	return rows
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(quote *entity.Quote) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	ajuste := ajusteLabel(quote.AjustesPrecios)

	return row.New(20).Add(
		col.New(3),
		col.New(4).Add(
			label("Ajuste:"),
			grandLabel("TOTAL:"),
		),
		col.New(4).Add(
			value(ajuste),
			grandValue("$"+quote.Total.StringFixed(2)+" MXN"),
		),
		col.New(1),
	)
}

// footerRow: condiciones comerciales de la propuesta.
func footerRow(quote *entity.Quote) core.Row {
	condiciones := fmt.Sprintf("Forma de pago: %s   |   Uso CFDI: %s   |   Duración: %s",
		nonEmpty(quote.FormaPago, "Por definir"),
		nonEmpty(quote.UsoCFDI, "Por definir"),
		nonEmpty(quote.Duracion, "Por definir"),
	)
	return row.New(12).Add(col.New(12).Add(
		text.New(condiciones, props.Text{Size: 8, Color: colorGray, Top: 2}),
		text.New("Propuesta sujeta a disponibilidad de espacios. Precios antes de IVA.", props.Text{
			Size: 6.5, Color: colorGray, Top: 8,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// fechasLabel resume las fechas de publicación de una línea.
func fechasLabel(fechas []time.Time) string {
	switch len(fechas) {
	case 0:
		return "—"
	case 1:
		return fechas[0].Format("02/01")
	default:
		return fmt.Sprintf("%s +%d", fechas[0].Format("02/01"), len(fechas)-1)
	}
}

// ajusteLabel describe el ajuste aplicado al subtotal.
func ajusteLabel(a entity.AjustePrecios) string {
	switch a.TipoAccion {
	case entity.AjusteAumentar:
		if !a.PorcentajeAjuste.Equal(decimal.Zero) {
			return "+" + a.PorcentajeAjuste.StringFixed(0) + "%"
		}
		return "+$" + a.ValorAjuste.StringFixed(2)
	case entity.AjusteReducir:
		if !a.PorcentajeAjuste.Equal(decimal.Zero) {
			return "-" + a.PorcentajeAjuste.StringFixed(0) + "%"
		}
		return "-$" + a.ValorAjuste.StringFixed(2)
	default:
		return "Sin ajuste"
	}
}
