// Package report renders stored quotes as technical markdown reports.
package report

import (
	"fmt"
	"strings"

	"github.com/litoflex/quote-service/internal/domain/model"
)

// Generator renders quote documents into markdown.
type Generator struct{}

// NewGenerator creates a report generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Technical renders the full technical report for a quote: job header,
// print parameters, materials, base costs, and the per-scale cost table.
// The material and finish give display names for the catalog codes; finish
// may be nil.
func (g *Generator) Technical(quote *model.Quote, material *model.Material, finish *model.Material) string {
	var b strings.Builder
	in := quote.Input

	b.WriteString("## Technical Quote Report\n\n")
	fmt.Fprintf(&b, "- **Quote Number**: %s\n", quote.QuoteNumber)
	fmt.Fprintf(&b, "- **Client**: %s\n", orNA(in.ClientName))
	fmt.Fprintf(&b, "- **Description**: %s\n", orNA(in.Description))
	fmt.Fprintf(&b, "- **Product Type**: %s\n", in.ProductType)
	fmt.Fprintf(&b, "- **Date**: %s\n", quote.CreatedAt.Format("2006-01-02"))

	b.WriteString("\n### Print Parameters\n\n")
	fmt.Fprintf(&b, "- **Width**: %.2f mm\n", in.WidthMM)
	fmt.Fprintf(&b, "- **Advance**: %.2f mm\n", in.AdvanceMM)
	fmt.Fprintf(&b, "- **Tracks**: %d\n", in.Tracks)
	fmt.Fprintf(&b, "- **Inks**: %d\n", in.NumInks)
	fmt.Fprintf(&b, "- **Total Printable Width**: %.2f mm\n", quote.Litho.TotalWidthMM)
	fmt.Fprintf(&b, "- **Cylinder (Z teeth)**: %.0f\n", quote.Litho.MountTeeth)
	fmt.Fprintf(&b, "- **Repetitions**: %d\n", quote.Litho.Best.Repetitions)
	fmt.Fprintf(&b, "- **Waste per Repetition**: %.2f mm\n", quote.Litho.Best.WasteMM)
	fmt.Fprintf(&b, "- **Unit Area**: %.2f mm²\n", quote.Litho.LabelAreaMM2)

	b.WriteString("\n### Materials\n\n")
	fmt.Fprintf(&b, "- **Substrate**: %s\n", materialDisplay(material, in.MaterialCode))
	if in.IsSleeve() {
		b.WriteString("- **Finish**: N/A (sleeve)\n")
	} else if in.FinishCode != "" {
		fmt.Fprintf(&b, "- **Finish**: %s\n", materialDisplay(finish, in.FinishCode))
	} else {
		b.WriteString("- **Finish**: none\n")
	}

	b.WriteString("\n### Base Costs\n\n")
	if material != nil {
		fmt.Fprintf(&b, "- **Substrate Value**: $%.2f/m²\n", material.ValuePerM2)
	}
	if finish != nil {
		fmt.Fprintf(&b, "- **Finish Value**: $%.2f/m²\n", finish.ValuePerM2)
	}
	fmt.Fprintf(&b, "- **Plate Value**: $%.2f\n", quote.Litho.PlatePrice)
	if in.IncludeDie {
		fmt.Fprintf(&b, "- **Die Value**: $%.2f\n", quote.Litho.DieValue)
	}
	fmt.Fprintf(&b, "- **Ink Value per Unit**: $%.6f\n", quote.Litho.InkValuePerUnit)

	if in.PlatesSeparate && quote.Litho.PlateSeparateValue > 0 {
		b.WriteString("\n### Separate Plate Billing\n\n")
		fmt.Fprintf(&b, "- **Calculated Plate Value**: $%.2f\n", quote.Litho.PlatePrice)
		fmt.Fprintf(&b, "- **Plate Value Billed Separately**: $%.2f\n", quote.Litho.PlateSeparateValue)
	}

	b.WriteString("\n### Cost per Scale\n\n")
	b.WriteString("| Quantity | Unit Price | Run Value (MM) | Meters | Hours |\n")
	b.WriteString("|---------:|-----------:|---------------:|-------:|------:|\n")
	for _, res := range quote.Results {
		fmt.Fprintf(&b, "| %d | $%.2f | %.4f | %.1f | %.2f |\n",
			res.Scale, res.UnitValue, res.MMValue, res.Meters, res.Hours)
	}

	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func materialDisplay(m *model.Material, code string) string {
	if m == nil {
		return code
	}
	return fmt.Sprintf("%s - %s", m.Code, m.Name)
}
