// Package pdf implementa la exportación del resumen del dashboard como
// documento imprimible para los comités de operación.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Pendientes | Sin stock | En tránsito | Atendidos mes  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Serie mensual de solicitudes (12 meses)              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RANKINGS: Top clientes atendidos / Top SKUs sin stock       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

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

	"github.com/jhoicas/printops-api/internal/domain/reporte"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReportePDFGenerator genera el resumen del dashboard usando Maroto v2.
type ReportePDFGenerator struct{}

// NewReportePDFGenerator construye el generador.
func NewReportePDFGenerator() *ReportePDFGenerator { return &ReportePDFGenerator{} }

// GenerateResumenPDF genera el PDF del resumen y devuelve sus bytes.
func (g *ReportePDFGenerator) GenerateResumenPDF(_ context.Context, res *reporte.Resumen) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Operaciones", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(res))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpisRow(res.KPIs))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitleRow("SOLICITUDES POR MES (ventana móvil)"))
	m.AddRows(serieHeaderRow())
	for _, r := range serieRows(res.SerieMensual) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitleRow("RANKINGS DEL MES"))
	m.AddRows(rankingsRow(res.TopClientes, res.TopSinStock))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y timestamp de generación (der).
func headerRow(res *reporte.Resumen) core.Row {
	fecha := res.GeneradoEn.Format("02/01/2006 15:04")

	return row.New(14).Add(
		col.New(7).Add(
			text.New("REPORTE DE OPERACIONES", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Requerimientos de suministros", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// kpisRow: los cuatro widgets de cabecera del panel.
func kpisRow(k reporte.KPIs) core.Row {
	widget := func(label string, total int) core.Col {
		return col.New(3).Add(
			text.New(strconv.Itoa(total), props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Center,
				Color: colorPrimary, Top: 2,
			}),
			text.New(label, props.Text{
				Size: 8, Align: align.Center, Top: 11, Color: colorGray,
			}),
		)
	}
	return row.New(18).Add(
		widget("Pendientes", k.Pendientes),
		widget("Sin stock", k.SinStock),
		widget("En tránsito", k.EnTransito),
		widget("Atendidos del mes", k.AtendidosMes),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		})),
	)
}

// serieHeaderRow: cabecera de la tabla de la serie mensual.
func serieHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		h("Mes", 6, align.Left),
		h("Solicitudes", 6, align.Right),
	)
}

// serieRows: una fila por mes, cronológica del más antiguo al más reciente.
func serieRows(serie []reporte.PuntoMensual) []core.Row {
	result := make([]core.Row, 0, len(serie))
	for _, p := range serie {
		result = append(result, row.New(6).Add(
			col.New(6).Add(text.New(p.Mes, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(6).Add(text.New(strconv.Itoa(p.Total), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

// rankingsRow: top clientes atendidos y top SKUs sin stock, lado a lado.
func rankingsRow(clientes, skus []reporte.EntradaRanking) core.Row {
	alto := len(clientes)
	if len(skus) > alto {
		alto = len(skus)
	}

	return row.New(float64(10+alto*6)).Add(
		rankingCol("Clientes atendidos en el mes", clientes),
		rankingCol("SKUs sin stock", skus),
	)
}

func rankingCol(title string, entradas []reporte.EntradaRanking) core.Col {
	comps := []core.Component{
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Top: 1, Color: colorPrimary,
		}),
	}
	if len(entradas) == 0 {
		comps = append(comps, text.New("— sin datos —", props.Text{
			Size: 8, Top: 8, Color: colorGray,
		}))
	}
	for i, e := range entradas {
		comps = append(comps, text.New(
			fmt.Sprintf("%d. %s (%d)", i+1, e.Clave, e.Total),
			props.Text{Size: 8, Top: float64(8 + i*6)},
		))
	}
	return col.New(6).Add(comps...)
}
