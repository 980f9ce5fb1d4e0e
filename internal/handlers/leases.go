package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"property-dashboard/internal/query"
	"property-dashboard/internal/store"
)

// ListLeases returns leases filtered by tenant-name search, status and property
func (h *Handler) ListLeases(c *gin.Context) {
	filter := query.LeaseFilter{
		Search:     c.Query("q"),
		Status:     c.DefaultQuery("status", query.FilterAll),
		PropertyID: c.DefaultQuery("property", query.FilterAll),
	}

	leases := query.FilterLeases(h.store, filter)
	c.JSON(http.StatusOK, gin.H{
		"leases": leases,
		"count":  len(leases),
	})
}

// GetLease returns one lease joined with its tenant, unit and property, plus
// derived payment figures. Dangling references are omitted from the response
// rather than failing it.
func (h *Handler) GetLease(c *gin.Context) {
	lease, err := h.store.LeaseByID(c.Param("id"))
	if err != nil {
		h.storeError(c, err)
		return
	}

	now := time.Now()
	payments := h.store.PaymentsByLease(lease.ID)

	resp := gin.H{
		"lease":            lease,
		"payments":         payments,
		"total_paid":       query.TotalPaid(payments),
		"months_remaining": query.MonthsRemaining(lease.EndDate, now),
		"expiring_soon":    query.ExpiringSoon(lease, now),
	}
	if tenant, err := h.store.TenantByID(lease.TenantID); err == nil {
		resp["tenant"] = tenant
	}
	if unit, err := h.store.UnitByID(lease.UnitID); err == nil {
		resp["unit"] = unit
	}
	if property, err := h.store.PropertyByID(lease.PropertyID); err == nil {
		resp["property"] = property
	}

	c.JSON(http.StatusOK, resp)
}

// GetRentSchedule returns the per-month installment list for a lease
func (h *Handler) GetRentSchedule(c *gin.Context) {
	lease, err := h.store.LeaseByID(c.Param("id"))
	if err != nil {
		h.storeError(c, err)
		return
	}

	schedule := query.RentSchedule(lease, h.store.PaymentsByLease(lease.ID), time.Now())
	c.JSON(http.StatusOK, gin.H{
		"lease_id": lease.ID,
		"schedule": schedule,
		"count":    len(schedule),
	})
}

// CreateLease adds a new lease; the unit becomes occupied in the same step
func (h *Handler) CreateLease(c *gin.Context) {
	var req struct {
		TenantID      string `json:"tenant_id" binding:"required"`
		UnitID        string `json:"unit_id" binding:"required"`
		StartDate     string `json:"start_date" binding:"required"`
		EndDate       string `json:"end_date" binding:"required"`
		MonthlyRent   int    `json:"monthly_rent" binding:"required"`
		DepositAmount int    `json:"deposit_amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be YYYY-MM-DD"})
		return
	}

	lease, err := h.store.CreateLease(store.LeaseInput{
		TenantID:      req.TenantID,
		UnitID:        req.UnitID,
		StartDate:     start,
		EndDate:       end,
		MonthlyRent:   req.MonthlyRent,
		DepositAmount: req.DepositAmount,
	})
	if err != nil {
		h.storeError(c, err)
		return
	}

	h.logger.Info("lease created", zapID(lease.ID))
	c.JSON(http.StatusCreated, lease)
}

// TerminateLease ends an active lease and frees its unit
func (h *Handler) TerminateLease(c *gin.Context) {
	lease, err := h.store.TerminateLease(c.Param("id"))
	if err != nil {
		h.storeError(c, err)
		return
	}

	h.logger.Info("lease terminated", zapID(lease.ID))
	c.JSON(http.StatusOK, lease)
}
