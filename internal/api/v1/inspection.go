package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafaelredel/sglc-prefeituras/internal/api/dto"
	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
	"github.com/rafaelredel/sglc-prefeituras/internal/service"
)

type InspectionHandler struct {
	service service.InspectionService
	log     *logger.Logger
}

func NewInspectionHandler(service service.InspectionService, log *logger.Logger) *InspectionHandler {
	return &InspectionHandler{service: service, log: log}
}

// @Router /processes/{id}/inspections [get]
func (h *InspectionHandler) ListInspections(c *gin.Context) {
	resp, err := h.service.ListInspections(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewResponse(resp))
}

// @Router /processes/{id}/inspections [post]
func (h *InspectionHandler) CreateInspection(c *gin.Context) {
	var req dto.CreateInspectionRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.CreateInspection(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewResponse(resp))
}
