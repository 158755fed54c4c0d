package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/mmtc/internal/server/http/dto"
)

// ContractHandler manages contract endpoints.
type ContractHandler struct {
	facade ContractFacade
}

// NewContractHandler constructs ContractHandler.
func NewContractHandler(facade ContractFacade) *ContractHandler {
	return &ContractHandler{facade: facade}
}

// List handles GET /contract.
func (h *ContractHandler) List(c *gin.Context) {
	contracts, err := h.facade.Contracts(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ContractsResponse{Contracts: contracts})
}

// Get handles GET /contract/:id.
func (h *ContractHandler) Get(c *gin.Context) {
	contract, err := h.facade.Contract(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, contract)
}

// Create handles POST /contract.
func (h *ContractHandler) Create(c *gin.Context) {
	var req dto.ContractRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.facade.OriginateContract(c.Request.Context(), req.EmployerName, req.HelperName)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Contract data setup successfully", Result: id})
}

// Delete handles DELETE /contract/:id.
func (h *ContractHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteContract(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Contract deleted successfully"})
}
