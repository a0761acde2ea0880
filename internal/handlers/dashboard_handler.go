package handlers

import (
	"net/http"
	"strconv"
	"time"

	"mangan/internal/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats degrades to zeroes on datastore failure rather than crashing the page.
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats()
	if err != nil {
		logger.Error().Err(err).Msg("dashboard stats query failed")
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "failed to load stats", "data": stats})
		return
	}
	respondOK(c, "", stats)
}

func (h *DashboardHandler) TopPackages(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	rows, err := h.dashboardService.GetTopPackages(limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", rows)
}

func (h *DashboardHandler) MonthlyRevenue(c *gin.Context) {
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().Year())))
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	buckets, err := h.dashboardService.GetMonthlyRevenue(year)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", buckets)
}
