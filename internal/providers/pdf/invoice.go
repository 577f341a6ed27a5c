package pdf

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	invoicedomain "github.com/rpsgarage/servicecenter/internal/invoice/domain"
)

// InvoiceGenerator builds a downloadable PDF document from an invoice
// read model.
type InvoiceGenerator struct{}

func NewInvoiceGenerator() *InvoiceGenerator {
	return &InvoiceGenerator{}
}

func (g *InvoiceGenerator) Generate(view invoicedomain.InvoiceView) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, "Invoice", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	// Invoice meta
	m.AddRow(20,
		col.New(6).Add(
			text.New("Invoice number: "+view.Number, props.Text{Top: 0}),
			text.New("Date of issue: "+formatDate(view.CreatedAt), props.Text{Top: 4}),
			text.New("Date due: "+formatDueDate(view.DueAt), props.Text{Top: 8}),
			text.New("Payment status: "+string(view.PaymentStatus), props.Text{Top: 12}),
		),
		col.New(6),
	)

	// Customer and vehicle
	m.AddRow(30,
		col.New(6).Add(
			text.New("Bill to", props.Text{Style: fontstyle.Bold}),
			text.New(view.CustomerName, props.Text{Top: 5}),
			text.New(view.CustomerEmail, props.Text{Top: 9}),
			text.New(view.CustomerPhone, props.Text{Top: 13}),
		),
		col.New(6).Add(
			text.New("Vehicle", props.Text{Style: fontstyle.Bold}),
			text.New(view.VehicleNumber, props.Text{Top: 5}),
			text.New(view.VehicleModel, props.Text{Top: 9}),
			text.New(view.VehicleType, props.Text{Top: 13}),
		),
	)

	if view.ServiceRequestDescription != "" {
		m.AddRow(12,
			text.NewCol(12, view.ServiceRequestDescription, props.Text{Size: 9}),
		)
	}

	// Table header
	m.AddRow(10,
		text.NewCol(6, "Service", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(4, "Technician", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Cost", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, job := range view.Jobs {
		name := job.JobName
		if job.Description != "" {
			name = name + " - " + job.Description
		}
		technician := job.TechnicianName
		if technician == "" {
			technician = "-"
		}
		m.AddRow(10,
			text.NewCol(6, name, props.Text{Size: 9}),
			text.NewCol(4, technician, props.Text{Size: 9}),
			text.NewCol(2, formatMoney(job.Cost), props.Text{Size: 9, Align: align.Right}),
		)
	}

	// Totals
	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Subtotal", props.Text{Size: 9}),
		text.NewCol(2, formatMoney(view.Subtotal), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Tax", props.Text{Size: 9}),
		text.NewCol(2, formatMoney(view.TaxAmount), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Discount", props.Text{Size: 9}),
		text.NewCol(2, formatMoney(view.DiscountAmount), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, formatMoney(view.TotalAmount), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	if view.Notes != "" {
		m.AddRow(15,
			text.NewCol(12, view.Notes, props.Text{Size: 8, Top: 5}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return doc.GetBytes(), nil
}

func formatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

func formatDate(value time.Time) string {
	return value.UTC().Format("2006-01-02")
}

func formatDueDate(value *time.Time) string {
	if value == nil {
		return "-"
	}
	return value.UTC().Format("2006-01-02")
}
