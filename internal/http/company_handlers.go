package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jobnest/jobnest-api/internal/domain"
	"github.com/jobnest/jobnest-api/internal/repo"
)

// ListCompanies godoc
// @Summary List companies
// @Tags companies
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/company [get]
func (h *Handler) ListCompanies(c *gin.Context) {
	companies, err := h.Store.ListCompanies(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

type createCompanyReq struct {
	Name    string `json:"name"`
	LogoURL string `json:"logo_url"`
}

// CreateCompany godoc
// @Summary Create a company
// @Tags companies
// @Accept json
// @Produce json
// @Param payload body createCompanyReq true "company"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /api/company [post]
func (h *Handler) CreateCompany(c *gin.Context) {
	var in createCompanyReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}
	name := strings.TrimSpace(in.Name)
	if name == "" || in.LogoURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide all required fields"})
		return
	}

	company := &domain.Company{Name: name, LogoURL: in.LogoURL}
	if err := h.Store.CreateCompany(c.Request.Context(), company); err != nil {
		if err == repo.ErrDuplicate {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Company already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"company": company, "message": "Company created successfully"})
}
