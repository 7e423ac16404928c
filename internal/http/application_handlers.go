package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jobnest/jobnest-api/internal/domain"
	"github.com/jobnest/jobnest-api/internal/repo"
)

type createApplicationReq struct {
	JobID      string `json:"job_id"`
	ResumeURL  string `json:"resume_url"`
	Skills     string `json:"skills"`
	Experience int    `json:"experience"`
	Education  string `json:"education"`
	Name       string `json:"name"`
	Level      string `json:"level"`
}

// CreateApplication godoc
// @Summary Apply to a job (candidates only)
// @Tags applications
// @Accept json
// @Produce json
// @Param payload body createApplicationReq true "application"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/application [post]
func (h *Handler) CreateApplication(c *gin.Context) {
	u, err := h.currentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	if u.Role != domain.RoleCandidate {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized - Only candidates can apply"})
		return
	}

	var in createApplicationReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}
	if in.JobID == "" || in.ResumeURL == "" || strings.TrimSpace(in.Skills) == "" ||
		strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Level) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}
	if in.Experience < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Experience should be greater than 0"})
		return
	}

	jobID, err := primitive.ObjectIDFromHex(in.JobID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job ID"})
		return
	}
	if _, err := h.Store.FindJobByID(c.Request.Context(), jobID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		return
	}

	app := &domain.Application{
		JobID:       jobID,
		CandidateID: u.ID,
		Status:      domain.StatusApplied,
		ResumeURL:   in.ResumeURL,
		Skills:      strings.TrimSpace(in.Skills),
		Experience:  in.Experience,
		Education:   strings.TrimSpace(in.Education),
		Name:        strings.TrimSpace(in.Name),
		Level:       strings.TrimSpace(in.Level),
	}
	if err := h.Store.CreateApplication(c.Request.Context(), app); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"application": app, "message": "Application submitted successfully"})
}

// JobApplications godoc
// @Summary List applications for a job (job owner only)
// @Tags applications
// @Produce json
// @Param jobId path string true "job id"
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]string
// @Router /api/application/job/{jobId} [get]
func (h *Handler) JobApplications(c *gin.Context) {
	u, err := h.currentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	jobID, err := primitive.ObjectIDFromHex(c.Param("jobId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job ID"})
		return
	}
	job, err := h.Store.FindJobByID(c.Request.Context(), jobID)
	if err == repo.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	if job.RecruiterID != u.ID {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized - not the job owner"})
		return
	}

	apps, err := h.Store.ListApplicationsByJob(c.Request.Context(), jobID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// MyApplications godoc
// @Summary List the caller's applications
// @Tags applications
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]string
// @Router /api/application/me [get]
func (h *Handler) MyApplications(c *gin.Context) {
	u, err := h.currentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	apps, err := h.Store.ListApplicationsByCandidate(c.Request.Context(), u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

type updateStatusReq struct {
	Status domain.ApplicationStatus `json:"status"`
}

// UpdateApplicationStatus godoc
// @Summary Update application status (job owner only)
// @Tags applications
// @Accept json
// @Produce json
// @Param id path string true "application id"
// @Param payload body updateStatusReq true "status"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/application/{id}/status [patch]
func (h *Handler) UpdateApplicationStatus(c *gin.Context) {
	u, err := h.currentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var in updateStatusReq
	if err := c.ShouldBindJSON(&in); err != nil || !in.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Status must be applied, shortlisted, rejected or accepted"})
		return
	}

	appID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid application ID"})
		return
	}
	app, err := h.Store.FindApplicationByID(c.Request.Context(), appID)
	if err == repo.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Application not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	job, err := h.Store.FindJobByID(c.Request.Context(), app.JobID)
	if err != nil || job.RecruiterID != u.ID {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized - not the job owner"})
		return
	}

	if err := h.Store.UpdateApplicationStatus(c.Request.Context(), appID, in.Status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application status updated"})
}
