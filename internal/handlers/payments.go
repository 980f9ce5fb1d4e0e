package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"property-dashboard/internal/query"
	"property-dashboard/internal/store"
)

// ListPayments returns payments filtered by search text and status, most
// recent first
func (h *Handler) ListPayments(c *gin.Context) {
	filter := query.PaymentFilter{
		Search: c.Query("q"),
		Status: c.DefaultQuery("status", query.FilterAll),
	}

	payments := query.FilterPayments(h.store, filter)
	c.JSON(http.StatusOK, gin.H{
		"payments": payments,
		"count":    len(payments),
	})
}

// RecordPayment records a rent payment already received against a lease
func (h *Handler) RecordPayment(c *gin.Context) {
	var req struct {
		LeaseID   string `json:"lease_id" binding:"required"`
		Amount    int    `json:"amount" binding:"required"`
		Date      string `json:"date" binding:"required"`
		Reference string `json:"reference"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	payment, err := h.store.RecordPayment(store.PaymentInput{
		LeaseID:   req.LeaseID,
		Amount:    req.Amount,
		Date:      date,
		Reference: req.Reference,
	})
	if err != nil {
		h.storeError(c, err)
		return
	}

	h.logger.Info("payment recorded", zapID(payment.ID))
	c.JSON(http.StatusCreated, payment)
}
