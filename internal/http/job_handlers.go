package http

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jobnest/jobnest-api/internal/domain"
	"github.com/jobnest/jobnest-api/internal/repo"
)

// ListJobs godoc
// @Summary List jobs
// @Tags jobs
// @Produce json
// @Param page query int false "page"
// @Param limit query int false "page size"
// @Success 200 {object} map[string]any
// @Router /api/jobs [get]
func (h *Handler) ListJobs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	jobs, total, err := h.Store.ListJobs(c.Request.Context(), limit, (page-1)*limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"jobs":        jobs,
		"page":        page,
		"total_pages": int(math.Ceil(float64(total) / float64(limit))),
		"total_jobs":  total,
	})
}

// GetJob godoc
// @Summary Get a job by id
// @Tags jobs
// @Produce json
// @Param id path string true "job id"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /api/jobs/{id} [get]
func (h *Handler) GetJob(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job ID"})
		return
	}
	job, err := h.Store.FindJobByID(c.Request.Context(), id)
	if err == repo.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

// EmployerJobs godoc
// @Summary List an employer's jobs
// @Tags jobs
// @Produce json
// @Param id path string true "recruiter id"
// @Success 200 {object} map[string]any
// @Router /api/employer/{id}/jobs [get]
func (h *Handler) EmployerJobs(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid recruiter ID"})
		return
	}
	jobs, err := h.Store.ListJobsByRecruiter(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

type createJobReq struct {
	Title        string `json:"title"`
	CompanyID    string `json:"company_id"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	Requirements string `json:"requirements"`
}

// CreateJob godoc
// @Summary Post a job (employers only)
// @Tags jobs
// @Accept json
// @Produce json
// @Param payload body createJobReq true "job"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/jobs [post]
func (h *Handler) CreateJob(c *gin.Context) {
	u, err := h.currentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	if u.Role != domain.RoleEmployer {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized - Only employers can post jobs"})
		return
	}

	var in createJobReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}
	if strings.TrimSpace(in.Title) == "" || in.CompanyID == "" ||
		strings.TrimSpace(in.Description) == "" || strings.TrimSpace(in.Location) == "" ||
		strings.TrimSpace(in.Requirements) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide all required fields"})
		return
	}

	companyID, err := primitive.ObjectIDFromHex(in.CompanyID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid company ID"})
		return
	}
	if _, err := h.Store.FindCompanyByID(c.Request.Context(), companyID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Company not found"})
		return
	}

	job := &domain.Job{
		RecruiterID:  u.ID,
		CompanyID:    companyID,
		Title:        strings.TrimSpace(in.Title),
		Description:  strings.TrimSpace(in.Description),
		Location:     strings.TrimSpace(in.Location),
		Requirements: strings.TrimSpace(in.Requirements),
		IsOpen:       true,
	}
	if err := h.Store.CreateJob(c.Request.Context(), job); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"job": job, "message": "Job created successfully"})
}

type updateJobReq struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Location     *string `json:"location"`
	Requirements *string `json:"requirements"`
	IsOpen       *bool   `json:"is_open"`
}

// UpdateJob godoc
// @Summary Update a job (owner only)
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "job id"
// @Param payload body updateJobReq true "fields to update"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/jobs/{id} [put]
func (h *Handler) UpdateJob(c *gin.Context) {
	_, job, ok := h.ownedJob(c)
	if !ok {
		return
	}

	var in updateJobReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}

	set := bson.M{}
	if in.Title != nil {
		set["title"] = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		set["description"] = strings.TrimSpace(*in.Description)
	}
	if in.Location != nil {
		set["location"] = strings.TrimSpace(*in.Location)
	}
	if in.Requirements != nil {
		set["requirements"] = strings.TrimSpace(*in.Requirements)
	}
	if in.IsOpen != nil {
		set["is_open"] = *in.IsOpen
	}
	if len(set) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Nothing to update"})
		return
	}

	if err := h.Store.UpdateJob(c.Request.Context(), job.ID, set); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job updated successfully"})
}

// DeleteJob godoc
// @Summary Delete a job (owner only)
// @Tags jobs
// @Produce json
// @Param id path string true "job id"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/jobs/{id} [delete]
func (h *Handler) DeleteJob(c *gin.Context) {
	_, job, ok := h.ownedJob(c)
	if !ok {
		return
	}
	if err := h.Store.DeleteJob(c.Request.Context(), job.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

// ownedJob resolves the :id job and checks the caller owns it. Writes the
// error response itself when ok is false.
func (h *Handler) ownedJob(c *gin.Context) (*domain.User, *domain.Job, bool) {
	u, err := h.currentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return nil, nil, false
	}
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job ID"})
		return nil, nil, false
	}
	job, err := h.Store.FindJobByID(c.Request.Context(), id)
	if err == repo.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		return nil, nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return nil, nil, false
	}
	if job.RecruiterID != u.ID {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized - not the job owner"})
		return nil, nil, false
	}
	return u, job, true
}
