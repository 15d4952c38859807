// Package pdf renders the HPP cost sheet of a product with maroto.
//
// Page layout (A4):
//
//	┌──────────────────────────────────────────────┐
//	│ HEADER: produk name + category │ date        │
//	│ BOM TABLE: bahan | qty | unit price | total  │
//	│ ALLOCATION: overhead, labor, monthly basis   │
//	│ HPP BREAKDOWN + tier prices                  │
//	│ warnings                                     │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"fmt"

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

	"github.com/sigitdim/fortisapp-sub002/internal/application/dto"
	"github.com/sigitdim/fortisapp-sub002/internal/application/ports"
	"github.com/sigitdim/fortisapp-sub002/pkg/money"
)

var _ ports.CostSheetGenerator = (*CostSheetGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 150, Green: 40, Blue: 27}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// CostSheetGenerator implements ports.CostSheetGenerator.
type CostSheetGenerator struct {
	appName string
}

func NewCostSheetGenerator(appName string) *CostSheetGenerator {
	return &CostSheetGenerator{appName: appName}
}

func (g *CostSheetGenerator) GenerateCostSheet(sheet dto.CostSheet) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("HPP "+sheet.ProdukNama, true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(g.appName, sheet))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionRow("Komposisi bahan per batch (yield " + money.Qty(sheet.YieldPorsi) + " porsi)"))
	m.AddRows(bomHeaderRow())
	m.AddRows(bomRows(sheet.Lines)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}))

	m.AddRows(sectionRow("Alokasi bulanan"))
	m.AddRows(
		keyValueRow("Overhead aktif / bulan", money.Rupiah(sheet.OverheadBulanan)),
		keyValueRow("Gaji tenaga kerja / bulan", money.Rupiah(sheet.GajiBulanan)),
		keyValueRow("Basis porsi / bulan", money.Qty(sheet.PorsiBulanan)),
	)

	m.AddRows(sectionRow("HPP per porsi"))
	m.AddRows(
		keyValueRow("Bahan", money.Rupiah(sheet.HPP.BahanPerPorsi)),
		keyValueRow("Overhead", money.Rupiah(sheet.HPP.OverheadPerPorsi)),
		keyValueRow("Tenaga kerja", money.Rupiah(sheet.HPP.TenagaKerjaPerPorsi)),
		totalRow("TOTAL HPP", money.Rupiah(sheet.HPP.TotalHPP)),
	)

	m.AddRows(sectionRow("Harga jual"))
	if sheet.HargaJual != nil {
		m.AddRows(keyValueRow("Harga jual saat ini", money.Rupiah(*sheet.HargaJual)))
	}
	for _, t := range sheet.Tiers {
		m.AddRows(keyValueRow("Margin "+t.MarginPct.StringFixed(0)+"%", money.Rupiah(t.Price)))
	}

	if len(sheet.Warnings) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(sectionRow("Catatan"))
		for _, w := range sheet.Warnings {
			m.AddRows(row.New(5).Add(col.New(12).Add(
				text.New("- "+w, props.Text{Size: 8, Color: colorGray, Left: 2}),
			)))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate cost sheet: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(appName string, sheet dto.CostSheet) core.Row {
	subtitle := sheet.Kategori
	if subtitle == "" {
		subtitle = "Lembar HPP"
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New(sheet.ProdukNama, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New(subtitle, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(appName, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1}),
			text.New(sheet.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func sectionRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 3}),
	))
}

func bomHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Align: a, Top: 1}))
	}
	return row.New(6).Add(
		h("Bahan", 5, align.Left),
		h("Qty", 2, align.Right),
		h("Harga satuan", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

func bomRows(lines []dto.CostSheetLine) []core.Row {
	if len(lines) == 0 {
		return []core.Row{row.New(6).Add(col.New(12).Add(
			text.New("Belum ada komposisi.", props.Text{Size: 8, Color: colorGray, Top: 1}),
		))}
	}
	out := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		out = append(out, row.New(6).Add(
			col.New(5).Add(text.New(l.BahanNama, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(money.Qty(l.Qty)+" "+l.Satuan, props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(money.Rupiah(l.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(3).Add(text.New(money.Rupiah(l.Subtotal), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return out
}

func keyValueRow(label, value string) core.Row {
	return row.New(5).Add(
		col.New(8).Add(text.New(label, props.Text{Size: 9, Left: 2})),
		col.New(4).Add(text.New(value, props.Text{Size: 9, Align: align.Right})),
	)
}

func totalRow(label, value string) core.Row {
	return row.New(7).Add(
		col.New(8).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Left: 2, Top: 1})),
		col.New(4).Add(text.New(value, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Align: align.Right, Top: 1})),
	)
}
