package server

import (
	"net/http"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	invoicedomain "github.com/rpsgarage/servicecenter/internal/invoice/domain"
)

type createInvoiceRequest struct {
	ServiceRequestID string  `json:"service_request_id"`
	TaxPercent       float64 `json:"tax_percent"`
	DiscountPercent  float64 `json:"discount_percent"`
	PaymentStatus    string  `json:"payment_status"`
	Notes            string  `json:"notes"`
	DueDays          int     `json:"due_days"`
}

type updateInvoiceRequest struct {
	ServiceRequestID string  `json:"service_request_id"`
	TaxPercent       float64 `json:"tax_percent"`
	DiscountPercent  float64 `json:"discount_percent"`
	PaymentStatus    string  `json:"payment_status"`
	Notes            string  `json:"notes"`
	DueDays          int     `json:"due_days"`
}

func (s *Server) ListInvoices(c *gin.Context) {
	var query struct {
		CustomerID    string `form:"customer_id"`
		PaymentStatus string `form:"payment_status"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	customerID, err := optionalID(query.CustomerID)
	if err != nil {
		AbortWithError(c, newValidationError("customer_id", "invalid_customer_id", "invalid identifier"))
		return
	}

	resp, err := s.invoiceSvc.List(c.Request.Context(), invoicedomain.ListFilter{
		CustomerID:    customerID,
		PaymentStatus: strings.TrimSpace(query.PaymentStatus),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetInvoiceByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.invoiceSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetInvoiceByNumber(c *gin.Context) {
	number := strings.TrimSpace(c.Param("number"))
	if number == "" {
		AbortWithError(c, newValidationError("number", "invalid_number", "invalid invoice number"))
		return
	}

	resp, err := s.invoiceSvc.GetByNumber(c.Request.Context(), number)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CreateInvoice(c *gin.Context) {
	var req createInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	requestID, err := snowflake.ParseString(req.ServiceRequestID)
	if err != nil {
		AbortWithError(c, newValidationError("service_request_id", "invalid_service_request_id", "invalid identifier"))
		return
	}

	resp, err := s.invoiceSvc.Create(c.Request.Context(), invoicedomain.CreateInvoiceRequest{
		ServiceRequestID: requestID,
		TaxPercent:       req.TaxPercent,
		DiscountPercent:  req.DiscountPercent,
		PaymentStatus:    strings.TrimSpace(req.PaymentStatus),
		Notes:            req.Notes,
		DueDays:          req.DueDays,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateInvoice(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req updateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	requestID, err := optionalID(req.ServiceRequestID)
	if err != nil {
		AbortWithError(c, newValidationError("service_request_id", "invalid_service_request_id", "invalid identifier"))
		return
	}

	resp, err := s.invoiceSvc.Update(c.Request.Context(), id, invoicedomain.UpdateInvoiceRequest{
		ServiceRequestID: requestID,
		TaxPercent:       req.TaxPercent,
		DiscountPercent:  req.DiscountPercent,
		PaymentStatus:    strings.TrimSpace(req.PaymentStatus),
		Notes:            req.Notes,
		DueDays:          req.DueDays,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteInvoice(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.invoiceSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func (s *Server) PrintInvoiceByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	view, err := s.invoiceSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.renderInvoiceHTML(c, view)
}

func (s *Server) PrintInvoiceByNumber(c *gin.Context) {
	number := strings.TrimSpace(c.Param("number"))
	if number == "" {
		AbortWithError(c, newValidationError("number", "invalid_number", "invalid invoice number"))
		return
	}

	view, err := s.invoiceSvc.GetByNumber(c.Request.Context(), number)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.renderInvoiceHTML(c, view)
}

func (s *Server) renderInvoiceHTML(c *gin.Context, view invoicedomain.InvoiceView) {
	html, err := s.invoiceHTML.Render(view)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

func (s *Server) DownloadInvoicePDF(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	view, err := s.invoiceSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	doc, err := s.invoicePDF.Generate(view)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+view.Number+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}
