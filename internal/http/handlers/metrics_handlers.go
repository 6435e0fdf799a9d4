package handlers

import (
	"net/http"
)

// GetDashboardMetricsHandler godoc
// @Summary Dashboard metrics for the caller's shops
// @Tags metrics
// @Produce json
// @Security BearerAuth
// @Param shopId query string false "Shop to narrow to"
// @Success 200 {object} repo.Metrics
// @Failure 500 {string} string "Internal error"
// @Router /metrics/dashboard [get]
func GetDashboardMetricsHandler(w http.ResponseWriter, r *http.Request) {
	scope, ok := scopeFromQuery(w, r)
	if !ok {
		return
	}
	m, err := metricsRepo.GetDashboardMetrics(r.Context(), scope)
	if err != nil {
		writeRepoError(w, r, err, "failed to fetch metrics")
		return
	}
	respond(w, r, http.StatusOK, m)
}
