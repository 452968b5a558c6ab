package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafaelredel/sglc-prefeituras/internal/api/dto"
	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
	"github.com/rafaelredel/sglc-prefeituras/internal/service"
)

type ObservationHandler struct {
	service service.ObservationService
	log     *logger.Logger
}

func NewObservationHandler(service service.ObservationService, log *logger.Logger) *ObservationHandler {
	return &ObservationHandler{service: service, log: log}
}

// @Router /processes/{id}/observations [get]
func (h *ObservationHandler) ListObservations(c *gin.Context) {
	resp, err := h.service.ListObservations(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewResponse(resp))
}

// @Router /processes/{id}/observations [post]
func (h *ObservationHandler) CreateObservation(c *gin.Context) {
	var req dto.CreateObservationRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.CreateObservation(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewResponse(resp))
}
