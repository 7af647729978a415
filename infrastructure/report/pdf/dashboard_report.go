// Package pdf gera o relatório executivo do painel em PDF com o Maroto v2.
//
// Layout A4:
//
//	Título, filtros aplicados e data de geração
//	Cartões do resumo executivo
//	Vendas por mês, top produtos
//	Canais, regiões e categorias
//	Perfil de clientes
//	Insights
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"
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
	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
	"github.com/vfg2006/strategic-dashboard-api/pkg/utils"
)

const reportTitle = "Dashboard Estratégico de Vendas"

var (
	colorPrimary = &props.Color{Red: 29, Green: 78, Blue: 216}
	colorGray    = &props.Color{Red: 107, Green: 114, Blue: 128}
)

// DashboardRenderer implementa exporting.PDFRenderer
type DashboardRenderer struct {
	location *time.Location
}

func NewDashboardRenderer(location *time.Location) *DashboardRenderer {
	if location == nil {
		location = time.UTC
	}
	return &DashboardRenderer{location: location}
}

func (r *DashboardRenderer) RenderDashboard(_ context.Context, dashboard *domain.Dashboard, insights []domain.Insight) ([]byte, error) {
	if dashboard == nil {
		return nil, fmt.Errorf("pdf: painel não informado")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(reportTitle, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(r.headerRow(dashboard))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(dashboard.Summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}))

	m.AddRows(sectionRow("Vendas por mês"))
	m.AddRows(tableRows([]string{"Mês", "Faturamento"}, monthlyLines(dashboard.MonthlyRevenue))...)

	m.AddRows(sectionRow("Top produtos"))
	m.AddRows(tableRows([]string{"Produto", "Faturamento"}, productLines(dashboard.TopProducts))...)

	m.AddRows(sectionRow("Distribuição por canal"))
	m.AddRows(channelRows(dashboard.Channels)...)

	m.AddRows(sectionRow("Vendas por região"))
	m.AddRows(tableRows([]string{"Região", "Faturamento"}, regionLines(dashboard.Regions))...)

	m.AddRows(sectionRow("Vendas por categoria"))
	m.AddRows(tableRows([]string{"Categoria", "Faturamento"}, categoryLines(dashboard.Categories))...)

	m.AddRows(sectionRow("Perfil de clientes"))
	m.AddRows(tableRows([]string{"Faixa etária / Sexo", "Clientes"}, profileLines(dashboard.CustomerProfile))...)

	if len(insights) > 0 {
		m.AddRows(sectionRow("Insights"))
		for _, insight := range insights {
			m.AddRows(row.New(6).Add(col.New(12).Add(
				text.New("• "+insight.Message, props.Text{Size: 9, Top: 1, Left: 2}),
			)))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (r *DashboardRenderer) headerRow(dashboard *domain.Dashboard) core.Row {
	filters := dashboard.Filters.Normalize()
	description := fmt.Sprintf("Período: %s   |   Canal: %s   |   Região: %s   |   Categoria: %s",
		filters.Period, filters.Channel, filters.Region, filters.Category)

	generatedAt := dashboard.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	return row.New(18).Add(
		col.New(8).Add(
			text.New(reportTitle, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(description, props.Text{Size: 8, Top: 10, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Gerado em", props.Text{Size: 8, Align: align.Right, Top: 2, Color: colorGray}),
			text.New(generatedAt.In(r.location).Format("02/01/2006 15:04"), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
		),
	)
}

func summaryRow(summary domain.ExecutiveSummary) core.Row {
	ticket := "Não se aplica"
	if summary.AverageTicket != nil {
		ticket = utils.FormatBRL(*summary.AverageTicket)
	}

	card := func(label string, value string, detail string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 2}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Top: 7}),
			text.New(detail, props.Text{Size: 7, Color: colorGray, Top: 14}),
		)
	}

	return row.New(20).Add(
		card("Total de Vendas", utils.FormatBRL(summary.TotalRevenue), fmt.Sprintf("%d transações", summary.Transactions)),
		card("Ticket Médio", ticket, "por transação"),
		card("Clientes Ativos", strconv.Itoa(summary.UniqueCustomers), "clientes únicos"),
		card("Produtos Vendidos", strconv.Itoa(summary.UniqueProducts), "produtos distintos"),
	)
}

func sectionRow(title string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(strings.ToUpper(title), props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 4,
		}),
	))
}

func tableRows(header []string, lines [][2]string) []core.Row {
	rows := []core.Row{
		row.New(6).Add(
			col.New(8).Add(text.New(header[0], props.Text{Style: fontstyle.Bold, Size: 8, Top: 1})),
			col.New(4).Add(text.New(header[1], props.Text{Style: fontstyle.Bold, Size: 8, Top: 1, Align: align.Right})),
		),
	}

	if len(lines) == 0 {
		return append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Sem dados para os filtros selecionados", props.Text{Size: 8, Top: 1, Color: colorGray}),
		)))
	}

	for _, l := range lines {
		rows = append(rows, row.New(5).Add(
			col.New(8).Add(text.New(l[0], props.Text{Size: 8, Top: 0.5})),
			col.New(4).Add(text.New(l[1], props.Text{Size: 8, Top: 0.5, Align: align.Right})),
		))
	}
	return rows
}

func channelRows(channels []domain.ChannelRevenue) []core.Row {
	rows := []core.Row{
		row.New(6).Add(
			col.New(6).Add(text.New("Canal", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1})),
			col.New(3).Add(text.New("Faturamento", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1, Align: align.Right})),
			col.New(3).Add(text.New("Percentual", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1, Align: align.Right})),
		),
	}

	for _, channel := range channels {
		rows = append(rows, row.New(5).Add(
			col.New(6).Add(text.New(channel.Channel.Label(), props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 0.5, Color: hexColor(channel.Channel.Color()),
			})),
			col.New(3).Add(text.New(utils.FormatBRL(channel.Revenue), props.Text{Size: 8, Top: 0.5, Align: align.Right})),
			col.New(3).Add(text.New(utils.FormatPercent(channel.Share), props.Text{Size: 8, Top: 0.5, Align: align.Right})),
		))
	}
	return rows
}

func monthlyLines(months []domain.MonthlyRevenue) [][2]string {
	lines := make([][2]string, 0, len(months))
	for _, month := range months {
		lines = append(lines, [2]string{month.Month, utils.FormatBRL(month.Revenue)})
	}
	return lines
}

func productLines(products []domain.ProductRevenue) [][2]string {
	lines := make([][2]string, 0, len(products))
	for i, product := range products {
		lines = append(lines, [2]string{fmt.Sprintf("%dº %s", i+1, product.Product), utils.FormatBRL(product.Revenue)})
	}
	return lines
}

func regionLines(regions []domain.RegionRevenue) [][2]string {
	lines := make([][2]string, 0, len(regions))
	for _, region := range regions {
		lines = append(lines, [2]string{string(region.Region), utils.FormatBRL(region.Revenue)})
	}
	return lines
}

func categoryLines(categories []domain.CategoryRevenue) [][2]string {
	lines := make([][2]string, 0, len(categories))
	for _, category := range categories {
		lines = append(lines, [2]string{category.Category, utils.FormatBRL(category.Revenue)})
	}
	return lines
}

func profileLines(profile domain.CustomerProfile) [][2]string {
	lines := make([][2]string, 0, len(profile.ByAgeBracket)+len(profile.BySex))
	for _, bracket := range profile.ByAgeBracket {
		lines = append(lines, [2]string{string(bracket.AgeBracket) + " anos", strconv.Itoa(bracket.Customers)})
	}
	for _, sex := range profile.BySex {
		lines = append(lines, [2]string{sex.Sex.Label(), strconv.Itoa(sex.Customers)})
	}
	return lines
}

// hexColor converte #rrggbb; valores inválidos resultam em cinza
func hexColor(hex string) *props.Color {
	value, err := strconv.ParseUint(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil || len(strings.TrimPrefix(hex, "#")) != 6 {
		return colorGray
	}

	return &props.Color{
		Red:   int(value >> 16 & 0xff),
		Green: int(value >> 8 & 0xff),
		Blue:  int(value & 0xff),
	}
}
