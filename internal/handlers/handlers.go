package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"property-dashboard/internal/snapshot"
	"property-dashboard/internal/store"
)

// dateFormat is the wire format for date fields in requests
const dateFormat = "2006-01-02"

// Handler serves the dashboard API over the in-memory store
type Handler struct {
	store    *store.Store
	snapshot *snapshot.Service
	logger   *zap.Logger
}

// NewHandler creates a new API handler
func NewHandler(st *store.Store, snap *snapshot.Service, logger *zap.Logger) *Handler {
	return &Handler{
		store:    st,
		snapshot: snap,
		logger:   logger,
	}
}

// Register attaches all API routes to the router
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/health", h.HealthCheck)

	api := r.Group("/api")
	{
		api.GET("/properties", h.ListProperties)
		api.GET("/properties/:id", h.GetProperty)
		api.POST("/properties", h.CreateProperty)
		api.GET("/properties/:id/units", h.ListPropertyUnits)
		api.POST("/properties/:id/units", h.CreateUnit)

		api.GET("/units", h.ListUnits)

		api.GET("/tenants", h.ListTenants)
		api.GET("/tenants/:id", h.GetTenant)
		api.POST("/tenants", h.CreateTenant)

		api.GET("/leases", h.ListLeases)
		api.GET("/leases/:id", h.GetLease)
		api.GET("/leases/:id/schedule", h.GetRentSchedule)
		api.POST("/leases", h.CreateLease)
		api.POST("/leases/:id/terminate", h.TerminateLease)

		api.GET("/payments", h.ListPayments)
		api.POST("/payments", h.RecordPayment)

		api.GET("/maintenance", h.ListMaintenance)
		api.GET("/maintenance/:id", h.GetMaintenance)
		api.POST("/maintenance", h.SubmitMaintenance)
		api.PUT("/maintenance/:id/status", h.UpdateMaintenanceStatus)

		api.GET("/dashboard/metrics", h.GetDashboardMetrics)
		api.GET("/dashboard/occupancy", h.GetOccupancy)
		api.GET("/dashboard/revenue", h.GetRevenueTrend)
		api.GET("/dashboard/recent", h.GetRecentActivity)
		api.GET("/dashboard/snapshots", h.GetSnapshots)
		api.POST("/dashboard/snapshots", h.CaptureSnapshot)
	}
}

// HealthCheck reports service liveness
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now(),
	})
}

// storeError maps store errors to HTTP status codes: not-found 404,
// invalid-transition 409, invalid-input and everything else 400.
func (h *Handler) storeError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, store.ErrInvalidTransition):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func zapID(id string) zap.Field {
	return zap.String("id", id)
}

// parseDate parses a YYYY-MM-DD request field
func parseDate(value string) (time.Time, error) {
	return time.Parse(dateFormat, value)
}

// intQuery reads an integer query parameter with a default
func intQuery(c *gin.Context, name string, def int) int {
	raw := c.DefaultQuery(name, strconv.Itoa(def))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
