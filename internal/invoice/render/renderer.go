package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	domain "github.com/rpsgarage/servicecenter/internal/invoice/domain"
)

const invoiceHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Invoice {{.Number}}</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 40px;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      color: #1a1f36;
      background: #f7f9fc;
      -webkit-font-smoothing: antialiased;
    }
    .invoice-card {
      background: #ffffff;
      max-width: 760px;
      margin: 0 auto;
      padding: 60px;
      box-shadow: 0 2px 5px rgba(0,0,0,0.04);
      border-radius: 4px;
    }
    .header {
      display: flex;
      justify-content: space-between;
      margin-bottom: 40px;
    }
    .header-left h1 {
      margin: 0;
      font-size: 24px;
      font-weight: 700;
      color: #1a1f36;
    }
    .header-right {
      text-align: right;
      font-weight: 600;
      color: #8792a2;
      font-size: 16px;
    }

    .meta-grid {
      display: flex;
      justify-content: space-between;
      margin-bottom: 40px;
    }
    .col {
      flex: 1;
    }
    .label {
      font-size: 11px;
      text-transform: uppercase;
      color: #8792a2;
      margin-bottom: 6px;
      font-weight: 600;
      letter-spacing: 0.3px;
    }
    .value {
      font-size: 14px;
      line-height: 1.5;
      color: #1a1f36;
    }

    .amount-section {
      margin-bottom: 40px;
    }
    .amount-large {
      font-size: 32px;
      font-weight: 700;
      color: #1a1f36;
      margin-bottom: 4px;
    }
    .badge {
      display: inline-block;
      font-size: 12px;
      font-weight: 600;
      padding: 2px 10px;
      border-radius: 10px;
      text-transform: uppercase;
      letter-spacing: 0.3px;
    }
    .badge-paid { background: #d7f7c2; color: #05690d; }
    .badge-unpaid { background: #fde2dd; color: #b3093c; }

    table {
      width: 100%;
      border-collapse: collapse;
      margin-bottom: 30px;
    }
    th {
      text-align: left;
      text-transform: uppercase;
      font-size: 11px;
      color: #8792a2;
      border-bottom: 1px solid #e3e8ee;
      padding: 10px 0;
      font-weight: 600;
      letter-spacing: 0.3px;
    }
    td {
      padding: 16px 0;
      border-bottom: 1px solid #e3e8ee;
      font-size: 14px;
      color: #1a1f36;
      vertical-align: top;
    }
    .td-right { text-align: right; }

    .item-title { font-weight: 600; margin-bottom: 2px; }
    .item-sub { font-size: 12px; color: #697386; }

    .totals {
      width: 100%;
      display: flex;
      flex-direction: column;
      align-items: flex-end;
    }
    .total-row {
      display: flex;
      justify-content: space-between;
      width: 250px;
      padding: 6px 0;
      font-size: 14px;
    }
    .total-label { color: #697386; }
    .total-value { color: #1a1f36; text-align: right; font-weight: 500; }
    .total-final {
      border-top: 1px solid #e3e8ee;
      margin-top: 10px;
      padding-top: 10px;
      font-weight: 700;
      font-size: 16px;
      color: #1a1f36;
    }

    .footer {
      margin-top: 60px;
      font-size: 12px;
      color: #8792a2;
      border-top: 1px solid #e3e8ee;
      padding-top: 20px;
    }
  </style>
</head>
<body>
  <div class="invoice-card">
    <!-- Header -->
    <div class="header">
      <div class="header-left">
        <h1>Invoice</h1>
        <div class="label" style="margin-top: 12px;">Invoice number</div>
        <div class="value">{{.Number}}</div>
      </div>
      <div class="header-right">
        Service Center
      </div>
    </div>

    <!-- Metadata Grid -->
    <div class="meta-grid">
      <div class="col">
        <div class="label">Bill to</div>
        <div class="value">
          <strong>{{.CustomerName}}</strong><br>
          {{if .CustomerEmail}}{{.CustomerEmail}}<br>{{end}}
          {{if .CustomerPhone}}{{.CustomerPhone}}{{end}}
        </div>
      </div>
      <div class="col">
        <div class="label">Vehicle</div>
        <div class="value">
          <strong>{{.VehicleNumber}}</strong><br>
          {{if .VehicleModel}}{{.VehicleModel}}<br>{{end}}
          {{if .VehicleType}}{{.VehicleType}}{{end}}
        </div>
      </div>
      <div class="col" style="flex: 0 0 200px;">
        <div class="label">Date issued</div>
        <div class="value">{{formatDate .CreatedAt}}</div>

        <div class="label" style="margin-top: 16px;">Date due</div>
        <div class="value">{{formatDueDate .DueAt}}</div>
      </div>
    </div>

    <!-- Amount Due -->
    <div class="amount-section">
      <div class="amount-large">{{formatMoney .TotalAmount}}</div>
      <div class="value" style="color: #697386; margin-bottom: 8px;">
        <span class="badge badge-{{lower (printf "%s" .PaymentStatus)}}">{{.PaymentStatus}}</span>
      </div>
      {{if .ServiceRequestDescription}}<div class="value" style="color: #697386;">{{.ServiceRequestDescription}}</div>{{end}}
    </div>

    <!-- Line Items -->
    <table>
      <thead>
        <tr>
          <th style="width: 60%;">Service</th>
          <th>Technician</th>
          <th class="td-right">Cost</th>
        </tr>
      </thead>
      <tbody>
        {{range .Jobs}}
        <tr>
          <td>
            <div class="item-title">{{.JobName}}</div>
            {{if .Description}}<div class="item-sub">{{.Description}}</div>{{end}}
          </td>
          <td>{{if .TechnicianName}}{{.TechnicianName}}{{else}}-{{end}}</td>
          <td class="td-right" style="font-weight: 500;">{{formatMoney .Cost}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>

    <!-- Totals -->
    <div class="totals">
      <div class="total-row">
        <span class="total-label">Subtotal</span>
        <span class="total-value">{{formatMoney .Subtotal}}</span>
      </div>
      <div class="total-row">
        <span class="total-label">Tax</span>
        <span class="total-value">{{formatMoney .TaxAmount}}</span>
      </div>
      <div class="total-row">
        <span class="total-label">Discount</span>
        <span class="total-value">-{{formatMoney .DiscountAmount}}</span>
      </div>
      <div class="total-row total-final">
        <span class="total-label" style="color: #1a1f36;">Total</span>
        <span class="total-value">{{formatMoney .TotalAmount}}</span>
      </div>
    </div>

    <!-- Footer -->
    {{if .Notes}}
    <div class="footer">
      {{.Notes}}
    </div>
    {{end}}

  </div>
</body>
</html>
`

// InvoiceRenderer turns an invoice read model into a printable HTML page.
type InvoiceRenderer struct {
	tpl *template.Template
}

func NewInvoiceRenderer() *InvoiceRenderer {
	funcs := template.FuncMap{
		"formatMoney":    formatMoney,
		"formatDate":     formatDate,
		"formatDueDate":  formatDueDate,
		"lower":          strings.ToLower,
	}
	return &InvoiceRenderer{
		tpl: template.Must(template.New("invoice").Funcs(funcs).Parse(invoiceHTMLTemplate)),
	}
}

func (r *InvoiceRenderer) Render(view domain.InvoiceView) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, view); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

func formatDate(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.UTC().Format("2006-01-02")
}

func formatDueDate(value *time.Time) string {
	if value == nil || value.IsZero() {
		return "-"
	}
	return value.UTC().Format("2006-01-02")
}
