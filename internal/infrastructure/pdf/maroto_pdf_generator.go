// Package pdf implementa a geração do relatório consolidado da serraria.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nome da serraria  │  Data de geração               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: Produção / Vendas / Faturamento / Tipos de madeira │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Itens com estoque baixo (tipo, atual, mínimo)      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
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

	"github.com/serranorte/serraria-api/internal/application/dto"
	"github.com/serranorte/serraria-api/internal/application/reporting"
)

var (
	colorPrimary = &props.Color{Red: 34, Green: 85, Blue: 51}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ reporting.PDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa reporting.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	appName string
}

// NewMarotoPDFGenerator constrói o gerador.
func NewMarotoPDFGenerator(appName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{appName: appName}
}

// GenerateSummary gera o PDF do relatório consolidado e devolve seus bytes.
func (g *MarotoPDFGenerator) GenerateSummary(
	summary dto.ReportSummaryResponse,
	lowStock []dto.StockItemResponse,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório da Serraria", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.appName, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalsRows(summary)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(lowStockHeaderRow())
	if len(lowStock) == 0 {
		m.AddRows(row.New(8).Add(
			col.New(12).Add(
				text.New("Nenhum item abaixo do ponto de reposição.", props.Text{
					Size: 9, Top: 1, Color: colorGray,
				}),
			),
		))
	} else {
		m.AddRows(lowStockTableHeader())
		for _, item := range lowStock {
			m.AddRows(lowStockItemRow(item))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nome da serraria (esq) e data de geração (dir).
func headerRow(appName string, generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Relatório consolidado", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Gerado em: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// totalsRows: os quatro totais consolidados em linhas rotuladas.
func totalsRows(summary dto.ReportSummaryResponse) []core.Row {
	entries := []struct {
		label string
		value string
	}{
		{"Paletes produzidos (total)", fmt.Sprintf("%d", summary.TotalProduction)},
		{"Vendas registradas", fmt.Sprintf("%d", summary.TotalSalesCount)},
		{"Faturamento total", "R$ " + summary.TotalRevenue.StringFixed(2)},
		{"Tipos de madeira em estoque", fmt.Sprintf("%d", summary.StockItemCount)},
	}
	rows := make([]core.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, row.New(7).Add(
			col.New(8).Add(
				text.New(e.label, props.Text{Size: 9, Top: 1}),
			),
			col.New(4).Add(
				text.New(e.value, props.Text{
					Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
				}),
			),
		))
	}
	return rows
}

func lowStockHeaderRow() core.Row {
	return row.New(9).Add(
		col.New(12).Add(
			text.New("ESTOQUE BAIXO", props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
			}),
		),
	)
}

func lowStockTableHeader() core.Row {
	return row.New(6).Add(
		col.New(6).Add(text.New("Tipo de madeira", props.Text{Style: fontstyle.Bold, Size: 8})),
		col.New(3).Add(text.New("Atual", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right})),
		col.New(3).Add(text.New("Mínimo", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right})),
	)
}

func lowStockItemRow(item dto.StockItemResponse) core.Row {
	return row.New(6).Add(
		col.New(6).Add(text.New(item.WoodType, props.Text{Size: 8})),
		col.New(3).Add(text.New(item.CurrentQuantity.String()+" "+item.Unit, props.Text{Size: 8, Align: align.Right})),
		col.New(3).Add(text.New(item.MinimumQuantity.String()+" "+item.Unit, props.Text{Size: 8, Align: align.Right})),
	)
}
