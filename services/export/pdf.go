package export

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GeneratePDF renders the quote document and returns the raw PDF bytes.
func GeneratePDF(data QuoteExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, data)
	addQuoteIntro(m, data)
	addQuoteItemsTable(m, data)
	addQuoteTotal(m, data)
	addQuoteTerms(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quote PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// addQuoteHeader adds the studio name, the QUOTE title, reference and date.
func addQuoteHeader(m core.Maroto, data QuoteExportData) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New(data.StudioName, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New("QUOTE", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Ref: %s", data.QuoteRef), props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", data.Date), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
		),
	)

	m.AddRows(row.New(4))
}

// addQuoteIntro adds the project title, the summary paragraph, and the
// customer block.
func addQuoteIntro(m core.Maroto, data QuoteExportData) {
	m.AddRows(
		row.New(9).Add(
			col.New(12).Add(
				text.New(data.Title, props.Text{
					Size:  12,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)
	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New(data.Summary, props.Text{
					Size:  9,
					Align: align.Left,
				}),
			),
		),
	)

	labelStyle := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	valueStyle := props.Text{
		Size:  9,
		Align: align.Left,
	}

	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("PREPARED FOR", labelStyle)),
			col.New(6).Add(text.New("SERVICE", labelStyle)),
		),
	)
	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New(data.Customer.Name, props.Text{
				Size:  9,
				Style: fontstyle.Bold,
				Align: align.Left,
			})),
			col.New(6).Add(text.New(data.Service, valueStyle)),
		),
	)

	contact := data.Customer.Email
	if data.Customer.Phone != "" {
		contact = fmt.Sprintf("%s | %s", contact, data.Customer.Phone)
	}
	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New(contact, valueStyle)),
			col.New(6).Add(text.New(data.Location, valueStyle)),
		),
	)

	m.AddRows(row.New(4))
}

// addQuoteItemsTable adds the line items table.
func addQuoteItemsTable(m core.Maroto, data QuoteExportData) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerCell := props.Cell{BackgroundColor: headerBg}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextRight := headerText
	headerTextRight.Align = align.Right

	m.AddRows(
		row.New(8).Add(
			col.New(9).Add(text.New("Description", headerText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Amount", headerTextRight)).WithStyle(&headerCell),
		),
	)

	altBg := &props.Color{Red: 248, Green: 249, Blue: 250}
	for i, item := range data.Items {
		bodyText := props.Text{Size: 9, Align: align.Left}
		bodyTextRight := props.Text{Size: 9, Align: align.Right}

		colDesc := col.New(9).Add(text.New(item.Label, bodyText))
		colAmount := col.New(3).Add(text.New(formatAED(item.Amount), bodyTextRight))
		if i%2 == 1 {
			cellStyle := &props.Cell{BackgroundColor: altBg}
			colDesc = colDesc.WithStyle(cellStyle)
			colAmount = colAmount.WithStyle(cellStyle)
		}

		m.AddRows(row.New(7).Add(colDesc, colAmount))
	}

	m.AddRows(row.New(2))
}

// addQuoteTotal adds the highlighted total row.
func addQuoteTotal(m core.Maroto, data QuoteExportData) {
	totalBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	totalCell := &props.Cell{BackgroundColor: totalBg}
	totalText := props.Text{
		Size:  10,
		Style: fontstyle.Bold,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	totalLabel := totalText
	totalLabel.Align = align.Right
	totalValue := totalText
	totalValue.Align = align.Right

	m.AddRows(
		row.New(9).Add(
			col.New(9).Add(text.New("Estimated Total", totalLabel)).WithStyle(totalCell),
			col.New(3).Add(text.New(formatAED(data.Total), totalValue)).WithStyle(totalCell),
		),
	)

	m.AddRows(row.New(4))
}

// addQuoteTerms adds the standard terms at the bottom.
func addQuoteTerms(m core.Maroto, data QuoteExportData) {
	if len(data.Terms) == 0 {
		return
	}

	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(text.New("TERMS", props.Text{
				Size:  7,
				Style: fontstyle.Bold,
				Align: align.Left,
				Color: &props.Color{Red: 100, Green: 100, Blue: 100},
			})),
		),
	)
	for _, term := range data.Terms {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(text.New(term, props.Text{
					Size:  8,
					Align: align.Left,
				})),
			),
		)
	}
}
