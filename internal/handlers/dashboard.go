package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"property-dashboard/internal/query"
)

// GetDashboardMetrics returns the portfolio-wide aggregate metrics
func (h *Handler) GetDashboardMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, query.Metrics(h.store))
}

// GetOccupancy returns the occupied/total unit breakdown per property
func (h *Handler) GetOccupancy(c *gin.Context) {
	occupancy := query.OccupancyByProperty(h.store)
	c.JSON(http.StatusOK, gin.H{
		"occupancy": occupancy,
		"count":     len(occupancy),
	})
}

// GetRevenueTrend returns completed-payment revenue per month for the
// trailing window (default 6 months)
func (h *Handler) GetRevenueTrend(c *gin.Context) {
	months := intQuery(c, "months", 6)
	if months < 1 || months > 36 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "months must be between 1 and 36"})
		return
	}

	trend := query.RevenueTrend(h.store, time.Now(), months)
	c.JSON(http.StatusOK, gin.H{
		"revenue": trend,
		"count":   len(trend),
	})
}

// GetRecentActivity returns the newest active leases and open maintenance
// requests for the dashboard overview, each list capped by the limit param
func (h *Handler) GetRecentActivity(c *gin.Context) {
	limit := intQuery(c, "limit", 4)
	if limit < 1 || limit > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
		return
	}

	leases := query.RecentLeases(h.store, limit)
	requests := query.OpenMaintenance(h.store, limit)
	c.JSON(http.StatusOK, gin.H{
		"leases":      leases,
		"maintenance": requests,
	})
}

// GetSnapshots returns the retained daily metrics snapshots, newest first
func (h *Handler) GetSnapshots(c *gin.Context) {
	limit := intQuery(c, "limit", 30)

	snapshots := h.snapshot.History(limit)
	c.JSON(http.StatusOK, gin.H{
		"snapshots": snapshots,
		"count":     len(snapshots),
	})
}

// CaptureSnapshot captures a metrics snapshot immediately (manual trigger)
func (h *Handler) CaptureSnapshot(c *gin.Context) {
	c.JSON(http.StatusCreated, h.snapshot.Capture(time.Now()))
}
