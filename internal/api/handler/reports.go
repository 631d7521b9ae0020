package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wheely/backend/internal/models"
)

// GetReports handles GET /reports.
func (h *Handler) GetReports(c *gin.Context) {
	reports, err := h.Reports.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "reports retrieved", reports)
}

// GetReportByID handles GET /reports/:id.
func (h *Handler) GetReportByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondFailure(c, http.StatusBadRequest, "invalid report id")
		return
	}

	rep, err := h.Reports.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "report found", rep)
}

// GetReportsByAuthor handles GET /reports/author/:authorId.
func (h *Handler) GetReportsByAuthor(c *gin.Context) {
	authorID, err := strconv.Atoi(c.Param("authorId"))
	if err != nil {
		respondFailure(c, http.StatusBadRequest, "invalid author id")
		return
	}

	reports, err := h.Reports.GetByAuthor(authorID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "reports retrieved", reports)
}

// CreateReport handles POST /reports.
func (h *Handler) CreateReport(c *gin.Context) {
	var rep models.Report
	if err := c.ShouldBindJSON(&rep); err != nil {
		respondFailure(c, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.Reports.Create(&rep)
	if err != nil {
		respondError(c, err)
		return
	}

	rep.ID = id
	respondSuccess(c, http.StatusCreated, "report created", rep)
}

// UpdateReport handles PUT /reports/:id.
func (h *Handler) UpdateReport(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondFailure(c, http.StatusBadRequest, "invalid report id")
		return
	}

	var rep models.Report
	if err := c.ShouldBindJSON(&rep); err != nil {
		respondFailure(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Reports.Update(id, &rep); err != nil {
		respondError(c, err)
		return
	}

	updated, err := h.Reports.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "report updated", updated)
}

// DeleteReport handles DELETE /reports/:id?authorId=N. The author id is the
// requester's proof of authorship.
func (h *Handler) DeleteReport(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondFailure(c, http.StatusBadRequest, "invalid report id")
		return
	}

	authorID, err := strconv.Atoi(c.Query("authorId"))
	if err != nil {
		respondFailure(c, http.StatusBadRequest, "authorId query parameter is required")
		return
	}

	if err := h.Reports.Delete(id, authorID); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "report deleted", nil)
}

// GetReportStats handles GET /reports/stats.
func (h *Handler) GetReportStats(c *gin.Context) {
	stats, err := h.Reports.Stats()
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "stats computed", stats)
}

// GetReportCategories handles GET /reports/categories.
func (h *Handler) GetReportCategories(c *gin.Context) {
	categories := make([]gin.H, 0, len(models.CategoryNames))
	for _, id := range []int{models.CategoryIncident, models.CategorySuggestion, models.CategoryComplaint} {
		categories = append(categories, gin.H{"id": id, "name": models.CategoryNames[id]})
	}
	respondSuccess(c, http.StatusOK, "categories retrieved", categories)
}
