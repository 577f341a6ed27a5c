package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// InvoiceView is the fully resolved read model returned to callers and
// rendered by the printable view. No lazy or partial fields.
type InvoiceView struct {
	ID                        snowflake.ID  `json:"id"`
	Number                    string        `json:"number"`
	ServiceRequestID          snowflake.ID  `json:"service_request_id"`
	ServiceRequestDescription string        `json:"service_request_description,omitempty"`
	CustomerID                snowflake.ID  `json:"customer_id"`
	CustomerName              string        `json:"customer_name"`
	CustomerEmail             string        `json:"customer_email,omitempty"`
	CustomerPhone             string        `json:"customer_phone,omitempty"`
	VehicleID                 snowflake.ID  `json:"vehicle_id"`
	VehicleNumber             string        `json:"vehicle_number"`
	VehicleModel              string        `json:"vehicle_model,omitempty"`
	VehicleType               string        `json:"vehicle_type,omitempty"`
	Subtotal                  float64       `json:"subtotal"`
	TaxAmount                 float64       `json:"tax_amount"`
	DiscountAmount            float64       `json:"discount_amount"`
	TotalAmount               float64       `json:"total_amount"`
	PaymentStatus             PaymentStatus `json:"payment_status"`
	Notes                     string        `json:"notes,omitempty"`
	CreatedAt                 time.Time     `json:"created_at"`
	DueAt                     *time.Time    `json:"due_at,omitempty"`
	Jobs                      []JobView     `json:"jobs"`
}

// JobView is one line item on the invoice read model.
type JobView struct {
	ID             snowflake.ID  `json:"id"`
	JobName        string        `json:"job_name"`
	Description    string        `json:"description,omitempty"`
	Cost           float64       `json:"cost"`
	TechnicianID   *snowflake.ID `json:"technician_id,omitempty"`
	TechnicianName string        `json:"technician_name,omitempty"`
}
