package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"property-dashboard/internal/query"
	"property-dashboard/internal/store"
)

// ListTenants returns tenants filtered by search text, status and business type
func (h *Handler) ListTenants(c *gin.Context) {
	filter := query.TenantFilter{
		Search:       c.Query("q"),
		Status:       c.DefaultQuery("status", query.FilterAll),
		BusinessType: c.DefaultQuery("business_type", query.FilterAll),
	}

	tenants := query.FilterTenants(h.store, filter)
	c.JSON(http.StatusOK, gin.H{
		"tenants": tenants,
		"count":   len(tenants),
	})
}

// GetTenant returns one tenant with their leases and maintenance requests
func (h *Handler) GetTenant(c *gin.Context) {
	id := c.Param("id")

	tenant, err := h.store.TenantByID(id)
	if err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tenant":      tenant,
		"leases":      h.store.LeasesByTenant(id),
		"maintenance": h.store.MaintenanceByTenant(id),
	})
}

// CreateTenant adds a new tenant
func (h *Handler) CreateTenant(c *gin.Context) {
	var req struct {
		Name          string `json:"name" binding:"required"`
		Email         string `json:"email" binding:"required,email"`
		Phone         string `json:"phone"`
		BusinessType  string `json:"business_type"`
		ContactPerson string `json:"contact_person"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tenant, err := h.store.CreateTenant(store.TenantInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		BusinessType:  req.BusinessType,
		ContactPerson: req.ContactPerson,
	})
	if err != nil {
		h.storeError(c, err)
		return
	}

	h.logger.Info("tenant created", zapID(tenant.ID))
	c.JSON(http.StatusCreated, tenant)
}
