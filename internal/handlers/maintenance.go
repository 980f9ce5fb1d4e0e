package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"property-dashboard/internal/models"
	"property-dashboard/internal/query"
	"property-dashboard/internal/store"
)

// ListMaintenance returns maintenance requests filtered by search text,
// status and urgency, in display order (open work first)
func (h *Handler) ListMaintenance(c *gin.Context) {
	filter := query.MaintenanceFilter{
		Search:  c.Query("q"),
		Status:  c.DefaultQuery("status", query.FilterAll),
		Urgency: c.DefaultQuery("urgency", query.FilterAll),
	}

	requests := query.FilterMaintenance(h.store, filter)
	c.JSON(http.StatusOK, gin.H{
		"requests": requests,
		"count":    len(requests),
	})
}

// GetMaintenance returns one maintenance request with its tenant and unit
func (h *Handler) GetMaintenance(c *gin.Context) {
	request, err := h.store.MaintenanceRequestByID(c.Param("id"))
	if err != nil {
		h.storeError(c, err)
		return
	}

	resp := gin.H{"request": request}
	if tenant, err := h.store.TenantByID(request.TenantID); err == nil {
		resp["tenant"] = tenant
	}
	if unit, err := h.store.UnitByID(request.UnitID); err == nil {
		resp["unit"] = unit
	}

	c.JSON(http.StatusOK, resp)
}

// SubmitMaintenance files a new maintenance request
func (h *Handler) SubmitMaintenance(c *gin.Context) {
	var req struct {
		TenantID    string `json:"tenant_id" binding:"required"`
		UnitID      string `json:"unit_id" binding:"required"`
		Category    string `json:"category" binding:"required"`
		Description string `json:"description" binding:"required"`
		Urgency     string `json:"urgency"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.store.SubmitMaintenanceRequest(store.MaintenanceInput{
		TenantID:    req.TenantID,
		UnitID:      req.UnitID,
		Category:    models.MaintenanceCategory(req.Category),
		Description: req.Description,
		Urgency:     models.MaintenanceUrgency(req.Urgency),
	}, time.Now())
	if err != nil {
		h.storeError(c, err)
		return
	}

	h.logger.Info("maintenance request submitted", zapID(request.ID))
	c.JSON(http.StatusCreated, request)
}

// UpdateMaintenanceStatus moves a request along its workflow
func (h *Handler) UpdateMaintenanceStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
		Notes  string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.store.UpdateMaintenanceStatus(
		c.Param("id"), models.MaintenanceStatus(req.Status), req.Notes, time.Now())
	if err != nil {
		h.storeError(c, err)
		return
	}

	h.logger.Info("maintenance status updated",
		zapID(request.ID))
	c.JSON(http.StatusOK, request)
}
