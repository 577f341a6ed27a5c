package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// PaymentStatus is the settlement state of an invoice, stored as text.
type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "PAID"
	PaymentStatusUnpaid PaymentStatus = "UNPAID"
)

// ParsePaymentStatus validates an inbound payment status string.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentStatusPaid, PaymentStatusUnpaid:
		return PaymentStatus(s), nil
	default:
		return "", ErrInvalidPaymentStatus
	}
}

// Invoice is the billing document derived from a service request's jobs
// at creation or update time. CustomerID and VehicleID are denormalized
// from the request's vehicle chain when totals are computed. Tax and
// discount hold derived amounts, not the input percentages.
type Invoice struct {
	ID               snowflake.ID  `gorm:"primaryKey" json:"id"`
	Number           string        `gorm:"not null;uniqueIndex:ux_invoices_number" json:"number"`
	ServiceRequestID snowflake.ID  `gorm:"not null;index:ix_invoices_request" json:"service_request_id"`
	CustomerID       snowflake.ID  `gorm:"not null;index:ix_invoices_customer" json:"customer_id"`
	VehicleID        snowflake.ID  `gorm:"not null" json:"vehicle_id"`
	Subtotal         float64       `gorm:"not null" json:"subtotal"`
	TaxAmount        float64       `gorm:"column:tax_amount;not null" json:"tax_amount"`
	DiscountAmount   float64       `gorm:"column:discount_amount;not null" json:"discount_amount"`
	TotalAmount      float64       `gorm:"column:total_amount;not null" json:"total_amount"`
	PaymentStatus    PaymentStatus `gorm:"type:text;not null;default:'UNPAID'" json:"payment_status"`
	Notes            string        `gorm:"column:notes" json:"notes,omitempty"`
	CreatedAt        time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
	DueAt            *time.Time    `gorm:"column:due_at" json:"due_at,omitempty"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }
