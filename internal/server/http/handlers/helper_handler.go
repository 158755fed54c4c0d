package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/mmtc/internal/server/http/dto"
)

// HelperHandler manages helper endpoints.
type HelperHandler struct {
	facade HelperFacade
}

// NewHelperHandler constructs HelperHandler.
func NewHelperHandler(facade HelperFacade) *HelperHandler {
	return &HelperHandler{facade: facade}
}

// List handles GET /helpers.
func (h *HelperHandler) List(c *gin.Context) {
	helpers, err := h.facade.Helpers(c.Request.Context(), queryParams(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.HelpersResponse{Helpers: helpers})
}

// Get handles GET /helpers/:id.
func (h *HelperHandler) Get(c *gin.Context) {
	helper, err := h.facade.Helper(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, helper)
}

// Create handles POST /helpers.
func (h *HelperHandler) Create(c *gin.Context) {
	var req dto.HelperRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.facade.CreateHelper(c.Request.Context(), req.ToModel())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "helper data created successfully", Result: id})
}

// Update handles PUT /helpers/:id.
func (h *HelperHandler) Update(c *gin.Context) {
	var req dto.HelperRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.facade.UpdateHelper(c.Request.Context(), c.Param("id"), req.ToModel()); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Helper updated successfully"})
}

// Delete handles DELETE /helpers/:id.
func (h *HelperHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteHelper(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Helper has been deleted successfully"})
}
