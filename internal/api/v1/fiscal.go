package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafaelredel/sglc-prefeituras/internal/api/dto"
	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
	"github.com/rafaelredel/sglc-prefeituras/internal/service"
)

type FiscalHandler struct {
	service service.FiscalService
	log     *logger.Logger
}

func NewFiscalHandler(service service.FiscalService, log *logger.Logger) *FiscalHandler {
	return &FiscalHandler{service: service, log: log}
}

// @Router /processes/{id}/fiscals [get]
func (h *FiscalHandler) ListFiscals(c *gin.Context) {
	resp, err := h.service.ListFiscals(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewResponse(resp))
}

// @Router /processes/{id}/fiscals [post]
func (h *FiscalHandler) CreateFiscal(c *gin.Context) {
	var req dto.CreateFiscalRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.CreateFiscal(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewResponse(resp))
}

// @Router /processes/{id}/fiscals/{record_id} [put]
func (h *FiscalHandler) UpdateFiscal(c *gin.Context) {
	var req dto.UpdateFiscalRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.UpdateFiscal(c.Request.Context(), c.Param("id"), c.Param("record_id"), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewResponse(resp))
}
