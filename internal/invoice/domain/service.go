package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

type CreateInvoiceRequest struct {
	ServiceRequestID snowflake.ID
	TaxPercent       float64
	DiscountPercent  float64
	PaymentStatus    string
	Notes            string
	DueDays          int
}

// UpdateInvoiceRequest retargets the invoice when ServiceRequestID is
// set to a different request. An empty PaymentStatus keeps the stored
// value; notes overwrite unconditionally.
type UpdateInvoiceRequest struct {
	ServiceRequestID *snowflake.ID
	TaxPercent       float64
	DiscountPercent  float64
	PaymentStatus    string
	Notes            string
	DueDays          int
}

// ListFilter narrows List results. PaymentStatus is not validated at
// this layer; an unknown value simply matches nothing.
type ListFilter struct {
	CustomerID    *snowflake.ID
	PaymentStatus string
}

type Service interface {
	List(ctx context.Context, filter ListFilter) ([]InvoiceView, error)
	GetByID(ctx context.Context, id snowflake.ID) (InvoiceView, error)
	GetByNumber(ctx context.Context, number string) (InvoiceView, error)
	Create(ctx context.Context, req CreateInvoiceRequest) (InvoiceView, error)
	Update(ctx context.Context, id snowflake.ID, req UpdateInvoiceRequest) (InvoiceView, error)
	Delete(ctx context.Context, id snowflake.ID) error
}

var (
	ErrNotFound             = errors.New("invoice_not_found")
	ErrAlreadyExists        = errors.New("invoice_exists_for_service_request")
	ErrNumberTaken          = errors.New("invoice_number_taken")
	ErrInvalidTaxPercent    = errors.New("invalid_tax_percent")
	ErrInvalidDiscount      = errors.New("invalid_discount_percent")
	ErrInvalidDueDays       = errors.New("invalid_due_days")
	ErrInvalidPaymentStatus = errors.New("invalid_payment_status")
)
