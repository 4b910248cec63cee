package controllers

import (
	"net/http"

	"hotel-backoffice/services"
	"hotel-backoffice/utils"

	"github.com/gin-gonic/gin"
)

type InvoiceController struct {
	Invoices *services.InvoiceService
}

func NewInvoiceController(svc *services.InvoiceService) *InvoiceController {
	return &InvoiceController{Invoices: svc}
}

// GetInvoices (GET /api/invoices)
func (ic *InvoiceController) GetInvoices(c *gin.Context) {
	invoices, err := ic.Invoices.List(queryHotelID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, invoices)
}

// GetInvoice (GET /api/invoices/:id)
func (ic *InvoiceController) GetInvoice(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid invoice id")
		return
	}
	invoice, err := ic.Invoices.GetByID(id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, invoice)
}

// CreateInvoice (POST /api/invoices)
func (ic *InvoiceController) CreateInvoice(c *gin.Context) {
	var payload services.CreateInvoiceInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	invoice, err := ic.Invoices.Create(payload, actorID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, invoice)
}

type addItemsPayload struct {
	HotelID uint                        `json:"hotelId,omitempty"`
	Items   []services.InvoiceLineInput `json:"items" binding:"required"`
}

// AddInvoiceItems (POST /api/invoices/:id/items)
func (ic *InvoiceController) AddInvoiceItems(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid invoice id")
		return
	}
	var payload addItemsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	invoice, err := ic.Invoices.AddItems(id, payload.HotelID, payload.Items, actorID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, invoice)
}

// UpdateInvoice (PATCH /api/invoices/:id)
func (ic *InvoiceController) UpdateInvoice(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid invoice id")
		return
	}
	var payload services.UpdateInvoiceInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	invoice, err := ic.Invoices.Update(id, payload, actorID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, invoice)
}

type checkoutPayload struct {
	PaymentMethod string `json:"paymentMethod"`
}

// CheckoutInvoice (POST /api/invoices/:id/checkout)
func (ic *InvoiceController) CheckoutInvoice(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid invoice id")
		return
	}
	var payload checkoutPayload
	if err := c.ShouldBindJSON(&payload); err != nil && err.Error() != "EOF" {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	invoice, err := ic.Invoices.Checkout(id, payload.PaymentMethod, actorID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, invoice)
}

// CancelInvoice (POST /api/invoices/:id/cancel)
func (ic *InvoiceController) CancelInvoice(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid invoice id")
		return
	}
	invoice, err := ic.Invoices.Cancel(id, actorID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, invoice)
}

// DeleteInvoice (DELETE /api/invoices/:id)
func (ic *InvoiceController) DeleteInvoice(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid invoice id")
		return
	}
	if err := ic.Invoices.Remove(id); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "invoice deleted"})
}
