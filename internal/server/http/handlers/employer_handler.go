package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/mmtc/internal/server/http/dto"
)

// EmployerHandler manages employer endpoints.
type EmployerHandler struct {
	facade EmployerFacade
}

// NewEmployerHandler constructs EmployerHandler.
func NewEmployerHandler(facade EmployerFacade) *EmployerHandler {
	return &EmployerHandler{facade: facade}
}

// List handles GET /employers.
func (h *EmployerHandler) List(c *gin.Context) {
	employers, err := h.facade.Employers(c.Request.Context(), queryParams(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.EmployersResponse{Employers: employers})
}

// Get handles GET /employers/:id.
func (h *EmployerHandler) Get(c *gin.Context) {
	employer, err := h.facade.Employer(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, employer)
}

// Create handles POST /employers.
func (h *EmployerHandler) Create(c *gin.Context) {
	var req dto.EmployerRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.facade.CreateEmployer(c.Request.Context(), req.ToModel())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "employer data created successfully", Result: id})
}

// Update handles PUT /employers/:id.
func (h *EmployerHandler) Update(c *gin.Context) {
	var req dto.EmployerRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.facade.UpdateEmployer(c.Request.Context(), c.Param("id"), req.ToModel()); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Employer updated"})
}

// Delete handles DELETE /employers/:id.
func (h *EmployerHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteEmployer(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Employer has been deleted successfully"})
}
