package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jobnest/jobnest-api/internal/repo"
)

type saveJobReq struct {
	JobID string `json:"job_id"`
}

// SaveJob godoc
// @Summary Save a job for later
// @Tags saved-jobs
// @Accept json
// @Produce json
// @Param payload body saveJobReq true "job id"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /api/saved-jobs [post]
func (h *Handler) SaveJob(c *gin.Context) {
	u, err := h.currentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var in saveJobReq
	if err := c.ShouldBindJSON(&in); err != nil || in.JobID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Job ID is required"})
		return
	}
	jobID, err := primitive.ObjectIDFromHex(in.JobID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job ID"})
		return
	}

	sj, err := h.Store.SaveJob(c.Request.Context(), u.ID, jobID)
	if err == repo.ErrDuplicate {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Job already saved"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"saved_job": sj, "message": "Job saved successfully"})
}

// SavedJobs godoc
// @Summary List the caller's saved jobs
// @Tags saved-jobs
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/saved-jobs [get]
func (h *Handler) SavedJobs(c *gin.Context) {
	u, err := h.currentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	out, err := h.Store.ListSavedJobs(c.Request.Context(), u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved_jobs": out})
}

// DeleteSavedJob godoc
// @Summary Remove a job from saved jobs
// @Tags saved-jobs
// @Produce json
// @Param id path string true "job id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/saved-jobs/{id} [delete]
func (h *Handler) DeleteSavedJob(c *gin.Context) {
	u, err := h.currentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	jobID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job ID"})
		return
	}
	if err := h.Store.DeleteSavedJob(c.Request.Context(), u.ID, jobID); err != nil {
		if err == repo.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Saved job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job removed from saved jobs"})
}
