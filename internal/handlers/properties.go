package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"property-dashboard/internal/models"
	"property-dashboard/internal/query"
	"property-dashboard/internal/store"
)

// ListProperties returns properties filtered by search text and status
func (h *Handler) ListProperties(c *gin.Context) {
	filter := query.PropertyFilter{
		Search: c.Query("q"),
		Status: c.DefaultQuery("status", query.FilterAll),
	}

	properties := query.FilterProperties(h.store, filter)
	c.JSON(http.StatusOK, gin.H{
		"properties": properties,
		"count":      len(properties),
	})
}

// GetProperty returns one property with its units
func (h *Handler) GetProperty(c *gin.Context) {
	id := c.Param("id")

	property, err := h.store.PropertyByID(id)
	if err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"property": property,
		"units":    h.store.UnitsByProperty(id),
	})
}

// CreateProperty adds a new property
func (h *Handler) CreateProperty(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Address     string `json:"address" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	property, err := h.store.CreateProperty(store.PropertyInput{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
	}, time.Now())
	if err != nil {
		h.storeError(c, err)
		return
	}

	h.logger.Info("property created", zapID(property.ID))
	c.JSON(http.StatusCreated, property)
}

// ListPropertyUnits returns the units of one property in insertion order
func (h *Handler) ListPropertyUnits(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.store.PropertyByID(id); err != nil {
		h.storeError(c, err)
		return
	}

	units := h.store.UnitsByProperty(id)
	c.JSON(http.StatusOK, gin.H{
		"units": units,
		"count": len(units),
	})
}

// CreateUnit adds a new unit under a property
func (h *Handler) CreateUnit(c *gin.Context) {
	var req struct {
		UnitNumber string `json:"unit_number" binding:"required"`
		Floor      int    `json:"floor"`
		Size       int    `json:"size" binding:"required"`
		BaseRent   int    `json:"base_rent" binding:"required"`
		Status     string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	unit, err := h.store.CreateUnit(c.Param("id"), store.UnitInput{
		UnitNumber: req.UnitNumber,
		Floor:      req.Floor,
		Size:       req.Size,
		BaseRent:   req.BaseRent,
		Status:     models.UnitStatus(req.Status),
	})
	if err != nil {
		h.storeError(c, err)
		return
	}

	h.logger.Info("unit created", zapID(unit.ID))
	c.JSON(http.StatusCreated, unit)
}

// ListUnits returns units filtered by search text, property and status
func (h *Handler) ListUnits(c *gin.Context) {
	filter := query.UnitFilter{
		Search:     c.Query("q"),
		PropertyID: c.DefaultQuery("property", query.FilterAll),
		Status:     c.DefaultQuery("status", query.FilterAll),
	}

	units := query.FilterUnits(h.store, filter)
	c.JSON(http.StatusOK, gin.H{
		"units": units,
		"count": len(units),
	})
}
