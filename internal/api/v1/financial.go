package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafaelredel/sglc-prefeituras/internal/api/dto"
	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
	"github.com/rafaelredel/sglc-prefeituras/internal/service"
)

type FinancialHandler struct {
	service service.FinancialService
	log     *logger.Logger
}

func NewFinancialHandler(service service.FinancialService, log *logger.Logger) *FinancialHandler {
	return &FinancialHandler{service: service, log: log}
}

// @Router /processes/{id}/financial [get]
func (h *FinancialHandler) ListMovements(c *gin.Context) {
	resp, err := h.service.ListMovements(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewResponse(resp))
}

// @Router /processes/{id}/financial [post]
func (h *FinancialHandler) CreateMovement(c *gin.Context) {
	var req dto.CreateFinancialMovementRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.CreateMovement(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewResponse(resp))
}

// @Router /processes/{id}/financial/{record_id} [put]
func (h *FinancialHandler) UpdateMovement(c *gin.Context) {
	var req dto.UpdateFinancialMovementRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.UpdateMovement(c.Request.Context(), c.Param("id"), c.Param("record_id"), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewResponse(resp))
}
